package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/fuel-backend/internal/data/repos"
	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

type ActivityLogAggregateDeps struct {
	Base BaseDeps

	Logs          repos.ActivityLogRepo
	Manual        repos.ManualLogRepo
	Commits       repos.GitCommitRepo
	Conversations repos.ConversationRepo
	Checkouts     repos.GitCheckoutRepo
	HookInstalls  repos.GitHookInstallRepo
}

type activityLogAggregate struct {
	deps ActivityLogAggregateDeps
}

func NewActivityLogAggregate(deps ActivityLogAggregateDeps) domainagg.ActivityLogAggregate {
	deps.Base = deps.Base.withDefaults()
	return &activityLogAggregate{deps: deps}
}

func (a *activityLogAggregate) Contract() domainagg.Contract {
	return domainagg.ActivityLogAggregateContract
}

func (a *activityLogAggregate) at(t time.Time) time.Time {
	if t.IsZero() {
		return a.deps.Base.Now().UTC()
	}
	return t.UTC()
}

func (a *activityLogAggregate) CreateManual(ctx context.Context, in domainagg.CreateManualInput) (*types.Entry, error) {
	const op = "Activity.Log.CreateManual"
	if err := requireContent(op, in.Content); err != nil {
		return nil, err
	}
	if a.deps.Logs == nil || a.deps.Manual == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "activity log aggregate repos not configured", nil)
	}

	var out *types.Entry
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		log := &types.ActivityLog{Type: types.LogTypeManual}
		if !in.At.IsZero() {
			log.CreatedAt = in.At.UTC()
		}
		if _, err := a.deps.Logs.Create(dbc, []*types.ActivityLog{log}); err != nil {
			return err
		}
		detail := &types.ManualLog{ActivityID: log.ID, Content: in.Content}
		if _, err := a.deps.Manual.Create(dbc, []*types.ManualLog{detail}); err != nil {
			return err
		}
		out = &types.Entry{Log: log, Details: detail}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *activityLogAggregate) UpdateManual(ctx context.Context, in domainagg.UpdateManualInput) (*types.Entry, error) {
	const op = "Activity.Log.UpdateManual"
	if err := requireID(op, in.ID); err != nil {
		return nil, err
	}
	if a.deps.Logs == nil || a.deps.Manual == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "activity log aggregate repos not configured", nil)
	}
	at := a.at(in.At)

	var out *types.Entry
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		current, err := a.deps.Logs.GetByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if err := requireFound(op, current); err != nil {
			return err
		}
		if err := requireMutable(op, current); err != nil {
			return err
		}
		if in.Content != nil {
			if err := requireContent(op, *in.Content); err != nil {
				return err
			}
		}

		if in.Reviewed != nil {
			updates := map[string]interface{}{"reviewed": *in.Reviewed}
			if *in.Reviewed {
				updates["reviewed_at"] = at
			}
			if _, err := a.deps.Logs.UpdateFields(dbc, in.ID, updates); err != nil {
				return err
			}
		}
		if in.Content != nil {
			ok, err := a.deps.Manual.UpdateContent(dbc, in.ID, *in.Content)
			if err != nil {
				return err
			}
			if !ok {
				// Restore the one-detail-per-log invariant for a log whose row went missing.
				row := &types.ManualLog{ActivityID: in.ID, Content: *in.Content}
				if _, err := a.deps.Manual.Create(dbc, []*types.ManualLog{row}); err != nil {
					return err
				}
			}
		}

		refreshed, err := a.deps.Logs.GetByID(dbc, in.ID)
		if err != nil {
			return err
		}
		if err := requireFound(op, refreshed); err != nil {
			return err
		}
		detail, err := a.deps.Manual.GetByActivityID(dbc, in.ID)
		if err != nil {
			return err
		}
		out = &types.Entry{Log: refreshed}
		if detail != nil {
			out.Details = detail
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *activityLogAggregate) DeleteManual(ctx context.Context, id uuid.UUID) error {
	const op = "Activity.Log.DeleteManual"
	if err := requireID(op, id); err != nil {
		return err
	}
	if a.deps.Logs == nil {
		return domainagg.NewError(domainagg.CodeInternal, op, "activity log aggregate repos not configured", nil)
	}
	return executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		current, err := a.deps.Logs.GetByID(dbc, id)
		if err != nil {
			return err
		}
		if err := requireFound(op, current); err != nil {
			return err
		}
		if err := requireMutable(op, current); err != nil {
			return err
		}
		deleted, err := a.deps.Logs.DeleteByID(dbc, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domainagg.NotFound(op, "activity log not found")
		}
		return nil
	})
}

func (a *activityLogAggregate) MarkReviewed(ctx context.Context, ids []uuid.UUID, at time.Time) ([]*types.ActivityLog, error) {
	const op = "Activity.Log.MarkReviewed"
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*types.ActivityLog{}, nil
	}
	if a.deps.Logs == nil {
		return nil, domainagg.NewError(domainagg.CodeInternal, op, "activity log aggregate repos not configured", nil)
	}
	stamp := a.at(at)

	var out []*types.ActivityLog
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := a.deps.Logs.MarkReviewed(dbc, ids, stamp); err != nil {
			return err
		}
		rows, err := a.deps.Logs.GetByIDs(dbc, ids)
		if err != nil {
			return err
		}
		out = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*types.ActivityLog{}
	}
	return out, nil
}

// Attach pairs each log with its detail row. Only the requested types are
// loaded (all types when none are given); the loader is chosen by the log's
// own type, so a detail of another type can never be attached.
func (a *activityLogAggregate) Attach(ctx context.Context, logs []*types.ActivityLog, want ...types.LogType) ([]*types.Entry, error) {
	const op = "Activity.Log.Attach"
	out := make([]*types.Entry, 0, len(logs))
	if len(logs) == 0 {
		return out, nil
	}
	if len(want) == 0 {
		want = types.LogTypes
	}
	wanted := make(map[types.LogType]bool, len(want))
	for _, t := range want {
		wanted[t] = true
	}

	byType := map[types.LogType][]uuid.UUID{}
	for _, l := range logs {
		if l == nil || !wanted[l.Type] {
			continue
		}
		byType[l.Type] = append(byType[l.Type], l.ID)
	}

	dbc := dbctx.Context{Ctx: ctx}
	details := make(map[uuid.UUID]types.Details, len(logs))
	for t, ids := range byType {
		if err := a.loadDetails(dbc, t, ids, details); err != nil {
			return nil, MapError(op, err)
		}
	}

	for _, l := range logs {
		if l == nil {
			continue
		}
		e := &types.Entry{Log: l}
		if d, ok := details[l.ID]; ok && types.Matches(l.Type, d) {
			e.Details = d
		}
		out = append(out, e)
	}
	return out, nil
}

func (a *activityLogAggregate) loadDetails(dbc dbctx.Context, t types.LogType, ids []uuid.UUID, into map[uuid.UUID]types.Details) error {
	switch t {
	case types.LogTypeManual:
		if a.deps.Manual == nil {
			return nil
		}
		rows, err := a.deps.Manual.GetByActivityIDs(dbc, ids)
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.ActivityID] = r
		}
	case types.LogTypeGitCommit:
		if a.deps.Commits == nil {
			return nil
		}
		rows, err := a.deps.Commits.GetByActivityIDs(dbc, ids)
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.ActivityID] = r
		}
	case types.LogTypeClaudeCode:
		if a.deps.Conversations == nil {
			return nil
		}
		rows, err := a.deps.Conversations.GetByActivityIDs(dbc, ids)
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.ActivityID] = r
		}
	case types.LogTypeGitCheckout:
		if a.deps.Checkouts == nil {
			return nil
		}
		rows, err := a.deps.Checkouts.GetByActivityIDs(dbc, ids)
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.ActivityID] = r
		}
	case types.LogTypeGitHookInstall:
		if a.deps.HookInstalls == nil {
			return nil
		}
		rows, err := a.deps.HookInstalls.GetByActivityIDs(dbc, ids)
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.ActivityID] = r
		}
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
