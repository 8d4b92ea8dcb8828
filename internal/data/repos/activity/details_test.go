package activity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/fuel-backend/internal/data/repos/testutil"
	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

func TestGitCommitRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewGitCommitRepo(db, testutil.Logger(t))

	r := testutil.SeedConnectedRepo(t, ctx, tx, "/src/fuel")
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l, c := testutil.SeedGitCommit(t, ctx, tx, r.ID, base, "abc123")

	got, err := repo.GetByActivityID(dbc, l.ID)
	if err != nil || got == nil || got.ID != c.ID {
		t.Fatalf("GetByActivityID: got=%v err=%v", got, err)
	}
	if got.LogType() != types.LogTypeGitCommit {
		t.Fatalf("LogType: got=%s", got.LogType())
	}
	if string(got.FilesChanged) != `["main.go"]` {
		t.Fatalf("FilesChanged: got=%s", got.FilesChanged)
	}

	found, err := repo.FindByHash(dbc, r.ID, "abc123")
	if err != nil || found == nil || found.ID != c.ID {
		t.Fatalf("FindByHash: got=%v err=%v", found, err)
	}
	if found, err := repo.FindByHash(dbc, r.ID, "nope"); err != nil || found != nil {
		t.Fatalf("FindByHash(missing): got=%v err=%v", found, err)
	}
	if found, err := repo.FindByHash(dbc, uuid.New(), "abc123"); err != nil || found != nil {
		t.Fatalf("FindByHash(other repo): got=%v err=%v", found, err)
	}
}

func TestConversationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewConversationRepo(db, testutil.Logger(t))

	parent := testutil.SeedLog(t, ctx, tx, types.LogTypeClaudeCode, time.Now(), false)
	started := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows, err := repo.Create(dbc, []*types.Conversation{{
		ActivityID:           parent.ID,
		ConversationFilePath: "/home/dev/.claude/projects/fuel/session.jsonl",
		ProjectDirectoryName: testutil.PtrString("fuel"),
		BulletPoints:         datatypes.JSON([]byte(`["wired store","added tests"]`)),
		NumExchanges:         4,
		NumToolUsages:        9,
		NumTokens:            5120,
		StartedAt:            &started,
	}})
	if err != nil || len(rows) != 1 {
		t.Fatalf("Create: err=%v len=%d", err, len(rows))
	}

	got, err := repo.GetByActivityID(dbc, parent.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByActivityID: got=%v err=%v", got, err)
	}
	if got.NumTokens != 5120 || got.ProjectDirectoryName == nil || *got.ProjectDirectoryName != "fuel" {
		t.Fatalf("unexpected conversation: %+v", got)
	}
	if got.StartedAt == nil || !got.StartedAt.Equal(started) || got.EndedAt != nil {
		t.Fatalf("timestamps: started=%v ended=%v", got.StartedAt, got.EndedAt)
	}
}

func TestGitCheckoutRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewGitCheckoutRepo(db, testutil.Logger(t))

	r := testutil.SeedConnectedRepo(t, ctx, tx, "/src/fuel")
	parent := testutil.SeedLog(t, ctx, tx, types.LogTypeGitCheckout, time.Now(), false)
	if _, err := repo.Create(dbc, []*types.GitCheckout{{
		ActivityID: parent.ID,
		RepoID:     r.ID,
		Timestamp:  "2025-03-10T12:00:00Z",
		PrevHead:   "aaa",
		NewHead:    "bbb",
		PrevBranch: "main",
		NewBranch:  "feature/filters",
		RepoPath:   r.LocalRepoPath,
		RepoName:   r.Name,
	}}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByActivityID(dbc, parent.ID)
	if err != nil || got == nil || got.NewBranch != "feature/filters" {
		t.Fatalf("GetByActivityID: got=%v err=%v", got, err)
	}
	if rows, err := repo.GetByActivityIDs(dbc, nil); err != nil || len(rows) != 0 {
		t.Fatalf("GetByActivityIDs(nil): err=%v len=%d", err, len(rows))
	}
}

func TestGitHookInstallRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewGitHookInstallRepo(db, testutil.Logger(t))

	r := testutil.SeedConnectedRepo(t, ctx, tx, "/src/fuel")
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i, hook := range []string{"post-commit", "post-checkout"} {
		parent := testutil.SeedLog(t, ctx, tx, types.LogTypeGitHookInstall, base.Add(time.Duration(i)*time.Minute), false)
		rows, err := repo.Create(dbc, []*types.GitHookInstall{{
			ActivityID:            parent.ID,
			RepoID:                r.ID,
			HookType:              hook,
			InstallationTimestamp: base,
			RepoPath:              r.LocalRepoPath,
			RepoName:              r.Name,
			CreatedAt:             base.Add(time.Duration(i) * time.Minute),
		}})
		if err != nil {
			t.Fatalf("Create(%s): %v", hook, err)
		}
		ids = append(ids, rows[0].ID)
	}

	rows, err := repo.ListByRepo(dbc, r.ID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("ListByRepo: err=%v len=%d", err, len(rows))
	}
	if rows[0].ID != ids[1] || rows[0].HookType != "post-checkout" {
		t.Fatalf("ListByRepo should be newest first: %+v", rows[0])
	}
	if rows, err := repo.ListByRepo(dbc, uuid.New()); err != nil || len(rows) != 0 {
		t.Fatalf("ListByRepo(other): err=%v len=%d", err, len(rows))
	}
}

func TestConnectedRepoRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewConnectedRepoRepo(db, testutil.Logger(t))

	rows, err := repo.Create(dbc, []*types.ConnectedRepo{
		{Name: "fuel", LocalRepoPath: "/src/fuel"},
		{Name: "site", LocalRepoPath: "/src/site", RemoteURL: testutil.PtrString("git@example.com:site.git")},
	})
	if err != nil || len(rows) != 2 {
		t.Fatalf("Create: err=%v len=%d", err, len(rows))
	}
	for _, row := range rows {
		if !row.IsActive {
			t.Fatalf("new repos must be active: %+v", row)
		}
	}

	if got, err := repo.FindByPath(dbc, " /src/site "); err != nil || got == nil || got.Name != "site" {
		t.Fatalf("FindByPath: got=%v err=%v", got, err)
	}
	if got, err := repo.GetByID(dbc, rows[0].ID); err != nil || got == nil || got.LocalRepoPath != "/src/fuel" {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}

	if err := tx.Model(&types.ConnectedRepo{}).Where("id = ?", rows[1].ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if all, err := repo.ListAll(dbc); err != nil || len(all) != 2 {
		t.Fatalf("ListAll: err=%v len=%d", err, len(all))
	}
	active, err := repo.ListActive(dbc)
	if err != nil || len(active) != 1 || active[0].ID != rows[0].ID {
		t.Fatalf("ListActive: err=%v rows=%v", err, active)
	}

	if deleted, err := repo.DeleteByID(dbc, rows[1].ID); err != nil || !deleted {
		t.Fatalf("DeleteByID: deleted=%v err=%v", deleted, err)
	}
	if deleted, err := repo.DeleteByID(dbc, rows[1].ID); err != nil || deleted {
		t.Fatalf("DeleteByID twice: deleted=%v err=%v", deleted, err)
	}
}
