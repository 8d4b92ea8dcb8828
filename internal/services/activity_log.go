package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/fuel-backend/internal/data/repos"
	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

// UpdateActivityLogInput carries the optional fields of a manual log edit.
type UpdateActivityLogInput struct {
	Reviewed *bool
	Content  *string
}

type ActivityLogService interface {
	// List returns logs matching f, newest first, with manual content attached.
	List(ctx context.Context, f *types.Filter) ([]*types.Entry, error)
	// ListUnreviewedAndAcknowledge returns the logs that were unreviewed and
	// then marks them reviewed. The returned entries show their prior state.
	ListUnreviewedAndAcknowledge(ctx context.Context) ([]*types.Entry, error)

	CreateManual(ctx context.Context, content string) (*types.Entry, error)
	Update(ctx context.Context, rawID string, in UpdateActivityLogInput) (*types.Entry, error)
	Delete(ctx context.Context, rawID string) error

	MarkReviewed(ctx context.Context, ids []uuid.UUID) ([]*types.ActivityLog, error)
}

type activityLogService struct {
	log       *logger.Logger
	logs      repos.ActivityLogRepo
	aggregate domainagg.ActivityLogAggregate
	metrics   *observability.Metrics
	now       func() time.Time
}

func NewActivityLogService(
	log *logger.Logger,
	logs repos.ActivityLogRepo,
	aggregate domainagg.ActivityLogAggregate,
	metrics *observability.Metrics,
) ActivityLogService {
	return &activityLogService{
		log:       log.With("service", "ActivityLogService"),
		logs:      logs,
		aggregate: aggregate,
		metrics:   metrics,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var errAggregateMissing = errors.New("activity log aggregate not configured")

func (s *activityLogService) List(ctx context.Context, f *types.Filter) ([]*types.Entry, error) {
	rows, err := s.logs.List(dbctx.Context{Ctx: ctx}, f)
	if err != nil {
		s.log.Error("List activity logs failed", "error", err)
		return nil, err
	}
	return s.attachManual(ctx, rows)
}

func (s *activityLogService) ListUnreviewedAndAcknowledge(ctx context.Context) ([]*types.Entry, error) {
	unreviewed := false
	rows, err := s.logs.List(dbctx.Context{Ctx: ctx}, &types.Filter{Reviewed: &unreviewed})
	if err != nil {
		s.log.Error("List unreviewed activity logs failed", "error", err)
		return nil, err
	}
	entries, err := s.attachManual(ctx, rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return entries, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	if _, err := s.MarkReviewed(ctx, ids); err != nil {
		return nil, err
	}
	s.log.Debug("Acknowledged unreviewed activity logs", "count", len(ids))
	return entries, nil
}

func (s *activityLogService) CreateManual(ctx context.Context, content string) (*types.Entry, error) {
	if s.aggregate == nil {
		return nil, errAggregateMissing
	}
	e, err := s.aggregate.CreateManual(ctx, domainagg.CreateManualInput{Content: content})
	if err != nil {
		s.logFailure("CreateManual", err)
		return nil, err
	}
	s.metrics.IncActivityLog("create", string(types.LogTypeManual))
	s.log.Info("Created manual activity log", "activity_log_id", e.Log.ID)
	return e, nil
}

func (s *activityLogService) Update(ctx context.Context, rawID string, in UpdateActivityLogInput) (*types.Entry, error) {
	const op = "ActivityLogService.Update"
	id, err := parseActivityLogID(op, rawID)
	if err != nil {
		return nil, err
	}
	if s.aggregate == nil {
		return nil, errAggregateMissing
	}
	e, err := s.aggregate.UpdateManual(ctx, domainagg.UpdateManualInput{
		ID:       id,
		Reviewed: in.Reviewed,
		Content:  in.Content,
		At:       s.now(),
	})
	if err != nil {
		s.logFailure("Update", err, "activity_log_id", id)
		return nil, err
	}
	s.metrics.IncActivityLog("update", string(e.Log.Type))
	return e, nil
}

func (s *activityLogService) Delete(ctx context.Context, rawID string) error {
	const op = "ActivityLogService.Delete"
	id, err := parseActivityLogID(op, rawID)
	if err != nil {
		return err
	}
	if s.aggregate == nil {
		return errAggregateMissing
	}
	if err := s.aggregate.DeleteManual(ctx, id); err != nil {
		s.logFailure("Delete", err, "activity_log_id", id)
		return err
	}
	s.metrics.IncActivityLog("delete", string(types.LogTypeManual))
	s.log.Info("Deleted manual activity log", "activity_log_id", id)
	return nil
}

func (s *activityLogService) MarkReviewed(ctx context.Context, ids []uuid.UUID) ([]*types.ActivityLog, error) {
	if len(ids) == 0 {
		return []*types.ActivityLog{}, nil
	}
	if s.aggregate == nil {
		return nil, errAggregateMissing
	}
	rows, err := s.aggregate.MarkReviewed(ctx, ids, s.now())
	if err != nil {
		s.logFailure("MarkReviewed", err, "count", len(ids))
		return nil, err
	}
	for _, r := range rows {
		s.metrics.IncActivityLog("review", string(r.Type))
	}
	return rows, nil
}

func (s *activityLogService) attachManual(ctx context.Context, rows []*types.ActivityLog) ([]*types.Entry, error) {
	if s.aggregate == nil {
		out := make([]*types.Entry, 0, len(rows))
		for _, r := range rows {
			out = append(out, &types.Entry{Log: r})
		}
		return out, nil
	}
	out, err := s.aggregate.Attach(ctx, rows, types.LogTypeManual)
	if err != nil {
		s.log.Error("Attach manual details failed", "error", err)
		return nil, err
	}
	return out, nil
}

// logFailure keeps expected client errors at warn and everything else at error.
func (s *activityLogService) logFailure(action string, err error, kv ...interface{}) {
	kv = append(kv, "error", err)
	switch domainagg.CodeOf(err) {
	case domainagg.CodeValidation, domainagg.CodeNotFound:
		s.log.Warn(action+" rejected", kv...)
	default:
		s.log.Error(action+" failed", kv...)
	}
}

// parseActivityLogID accepts only the canonical 8-4-4-4-12 form. The nil uuid
// is well formed but never stored, so it reports not found.
func parseActivityLogID(op, raw string) (uuid.UUID, error) {
	if len(raw) != canonicalUUIDLen {
		return uuid.Nil, errInvalidID(op)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errInvalidID(op)
	}
	if id == uuid.Nil {
		return uuid.Nil, domainagg.NotFound(op, "activity log not found")
	}
	return id, nil
}

const canonicalUUIDLen = 36

func errInvalidID(op string) error {
	return domainagg.Validation(op, "invalid activity log id", domainagg.FieldError{Field: "id", Message: "must be a valid UUID"})
}
