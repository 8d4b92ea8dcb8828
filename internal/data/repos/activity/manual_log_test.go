package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/data/repos/testutil"
	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

func TestManualLogRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	logs := NewActivityLogRepo(db, testutil.Logger(t))
	repo := NewManualLogRepo(db, testutil.Logger(t))

	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	parent := testutil.SeedLog(t, ctx, tx, types.LogTypeManual, base, false)
	other, _ := testutil.SeedManual(t, ctx, tx, base.Add(time.Minute), "other")

	created, err := repo.Create(dbc, []*types.ManualLog{{ActivityID: parent.ID, Content: "first"}})
	if err != nil || len(created) != 1 || created[0].ID == uuid.Nil {
		t.Fatalf("Create: err=%v rows=%v", err, created)
	}

	got, err := repo.GetByActivityID(dbc, parent.ID)
	if err != nil || got == nil || got.Content != "first" {
		t.Fatalf("GetByActivityID: got=%v err=%v", got, err)
	}
	if rows, err := repo.GetByActivityIDs(dbc, []uuid.UUID{parent.ID, other.ID}); err != nil || len(rows) != 2 {
		t.Fatalf("GetByActivityIDs: err=%v len=%d", err, len(rows))
	}

	ok, err := repo.UpdateContent(dbc, parent.ID, "second")
	if err != nil || !ok {
		t.Fatalf("UpdateContent: ok=%v err=%v", ok, err)
	}
	updated, _ := repo.GetByActivityID(dbc, parent.ID)
	if updated == nil || updated.Content != "second" || updated.UpdatedAt.Before(got.UpdatedAt) {
		t.Fatalf("UpdateContent not applied: %+v", updated)
	}

	// Deleting the parent removes the detail row through the foreign key.
	if deleted, err := logs.DeleteByID(dbc, parent.ID); err != nil || !deleted {
		t.Fatalf("DeleteByID(parent): deleted=%v err=%v", deleted, err)
	}
	if got, err := repo.GetByActivityID(dbc, parent.ID); err != nil || got != nil {
		t.Fatalf("detail should cascade: got=%v err=%v", got, err)
	}

	if deleted, err := repo.DeleteByActivityID(dbc, other.ID); err != nil || !deleted {
		t.Fatalf("DeleteByActivityID: deleted=%v err=%v", deleted, err)
	}
	if deleted, err := repo.DeleteByActivityID(dbc, other.ID); err != nil || deleted {
		t.Fatalf("DeleteByActivityID twice: deleted=%v err=%v", deleted, err)
	}
}

func TestManualLogRepo_UniquePerActivity(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewManualLogRepo(db, testutil.Logger(t))

	parent, _ := testutil.SeedManual(t, ctx, tx, time.Now(), "note")
	// A second detail row for the same log violates the unique index. Run it in
	// a savepoint so the outer test transaction stays usable on Postgres.
	err := tx.Transaction(func(inner *gorm.DB) error {
		_, err := repo.Create(dbctx.Context{Ctx: ctx, Tx: inner}, []*types.ManualLog{{ActivityID: parent.ID, Content: "dup"}})
		return err
	})
	if err == nil {
		t.Fatalf("expected unique violation for second manual row")
	}
}
