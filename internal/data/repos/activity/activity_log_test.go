package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/fuel-backend/internal/data/repos/testutil"
	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

func TestActivityLogRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewActivityLogRepo(db, testutil.Logger(t))

	created, err := repo.Create(dbc, []*types.ActivityLog{{Type: types.LogTypeManual}})
	if err != nil || len(created) != 1 {
		t.Fatalf("Create: err=%v len=%d", err, len(created))
	}
	a := created[0]
	if a.ID == uuid.Nil || a.CreatedAt.IsZero() || a.Reviewed || a.ReviewedAt != nil {
		t.Fatalf("Create defaults: %+v", a)
	}

	if got, err := repo.GetByID(dbc, a.ID); err != nil || got == nil || got.ID != a.ID {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetByID(missing): got=%v err=%v", got, err)
	}

	ok, err := repo.UpdateFields(dbc, a.ID, map[string]interface{}{"reviewed": true})
	if err != nil || !ok {
		t.Fatalf("UpdateFields: ok=%v err=%v", ok, err)
	}
	if got, _ := repo.GetByID(dbc, a.ID); got == nil || !got.Reviewed {
		t.Fatalf("UpdateFields not applied: %+v", got)
	}
	if ok, err := repo.UpdateFields(dbc, uuid.New(), map[string]interface{}{"reviewed": true}); err != nil || ok {
		t.Fatalf("UpdateFields(missing): ok=%v err=%v", ok, err)
	}

	deleted, err := repo.DeleteByID(dbc, a.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteByID: deleted=%v err=%v", deleted, err)
	}
	deleted, err = repo.DeleteByID(dbc, a.ID)
	if err != nil || deleted {
		t.Fatalf("DeleteByID twice: deleted=%v err=%v", deleted, err)
	}
}

func TestActivityLogRepo_ListFilters(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewActivityLogRepo(db, testutil.Logger(t))

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	day1 := testutil.SeedLog(t, ctx, tx, types.LogTypeManual, base, false)
	day2 := testutil.SeedLog(t, ctx, tx, types.LogTypeGitCommit, base.Add(24*time.Hour), true)
	day3 := testutil.SeedLog(t, ctx, tx, types.LogTypeManual, base.Add(48*time.Hour), true)

	all, err := repo.List(dbc, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("List(nil): err=%v len=%d", err, len(all))
	}
	if all[0].ID != day3.ID || all[1].ID != day2.ID || all[2].ID != day1.ID {
		t.Fatalf("List order: got=%v,%v,%v", all[0].ID, all[1].ID, all[2].ID)
	}

	cases := []struct {
		name string
		f    *types.Filter
		want []uuid.UUID
	}{
		{name: "empty", f: &types.Filter{}, want: []uuid.UUID{day3.ID, day2.ID, day1.ID}},
		{name: "from", f: &types.Filter{FromDate: testutil.PtrTime(base.Add(time.Hour))}, want: []uuid.UUID{day3.ID, day2.ID}},
		{name: "to", f: &types.Filter{ToDate: testutil.PtrTime(base.Add(24 * time.Hour))}, want: []uuid.UUID{day2.ID, day1.ID}},
		{name: "reviewed", f: &types.Filter{Reviewed: testutil.PtrBool(false)}, want: []uuid.UUID{day1.ID}},
		{name: "type", f: &types.Filter{Type: testutil.PtrType(types.LogTypeManual)}, want: []uuid.UUID{day3.ID, day1.ID}},
		{
			name: "intersection",
			f: &types.Filter{
				FromDate: testutil.PtrTime(base.Add(time.Hour)),
				Reviewed: testutil.PtrBool(true),
				Type:     testutil.PtrType(types.LogTypeManual),
			},
			want: []uuid.UUID{day3.ID},
		},
		{name: "none", f: &types.Filter{Type: testutil.PtrType(types.LogTypeGitCheckout)}, want: []uuid.UUID{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(dbc, tc.f)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if got == nil {
				t.Fatalf("List returned nil slice")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("List: got=%d want=%d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].ID != tc.want[i] {
					t.Fatalf("List[%d]: got=%v want=%v", i, got[i].ID, tc.want[i])
				}
				if !tc.f.Match(got[i]) {
					t.Fatalf("List[%d] does not satisfy filter", i)
				}
			}
		})
	}
}

func TestActivityLogRepo_MarkReviewed(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewActivityLogRepo(db, testutil.Logger(t))

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	a := testutil.SeedLog(t, ctx, tx, types.LogTypeManual, base, false)
	b := testutil.SeedLog(t, ctx, tx, types.LogTypeGitCommit, base.Add(time.Minute), false)
	c := testutil.SeedLog(t, ctx, tx, types.LogTypeManual, base.Add(2*time.Minute), false)

	if n, err := repo.MarkReviewed(dbc, nil, time.Now()); err != nil || n != 0 {
		t.Fatalf("MarkReviewed(empty): n=%d err=%v", n, err)
	}

	at := base.Add(time.Hour)
	n, err := repo.MarkReviewed(dbc, []uuid.UUID{a.ID, b.ID}, at)
	if err != nil || n != 2 {
		t.Fatalf("MarkReviewed: n=%d err=%v", n, err)
	}
	rows, err := repo.GetByIDs(dbc, []uuid.UUID{a.ID, b.ID, c.ID})
	if err != nil || len(rows) != 3 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	for _, row := range rows {
		switch row.ID {
		case a.ID, b.ID:
			if !row.Reviewed || row.ReviewedAt == nil || !row.ReviewedAt.Equal(at) {
				t.Fatalf("row %v not reviewed at %v: %+v", row.ID, at, row)
			}
		case c.ID:
			if row.Reviewed || row.ReviewedAt != nil {
				t.Fatalf("row %v should be untouched: %+v", row.ID, row)
			}
		}
	}
}
