package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/domain/activity"
)

func PtrBool(v bool) *bool                         { return &v }
func PtrString(v string) *string                   { return &v }
func PtrTime(v time.Time) *time.Time               { return &v }
func PtrType(v activity.LogType) *activity.LogType { return &v }

func SeedLog(tb testing.TB, ctx context.Context, tx *gorm.DB, typ activity.LogType, createdAt time.Time, reviewed bool) *activity.ActivityLog {
	tb.Helper()
	l := &activity.ActivityLog{
		ID:        uuid.New(),
		Type:      typ,
		Reviewed:  reviewed,
		CreatedAt: createdAt.UTC(),
	}
	if reviewed {
		at := createdAt.UTC().Add(time.Minute)
		l.ReviewedAt = &at
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed activity log: %v", err)
	}
	return l
}

func SeedManual(tb testing.TB, ctx context.Context, tx *gorm.DB, createdAt time.Time, content string) (*activity.ActivityLog, *activity.ManualLog) {
	tb.Helper()
	l := SeedLog(tb, ctx, tx, activity.LogTypeManual, createdAt, false)
	m := &activity.ManualLog{ID: uuid.New(), ActivityID: l.ID, Content: content}
	if err := tx.WithContext(ctx).Omit("Activity").Create(m).Error; err != nil {
		tb.Fatalf("seed manual log: %v", err)
	}
	return l, m
}

func SeedConnectedRepo(tb testing.TB, ctx context.Context, tx *gorm.DB, path string) *activity.ConnectedRepo {
	tb.Helper()
	r := &activity.ConnectedRepo{
		ID:            uuid.New(),
		Name:          "repo",
		LocalRepoPath: path,
		IsActive:      true,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed connected repo: %v", err)
	}
	return r
}

func SeedGitCommit(tb testing.TB, ctx context.Context, tx *gorm.DB, repoID uuid.UUID, createdAt time.Time, hash string) (*activity.ActivityLog, *activity.GitCommit) {
	tb.Helper()
	l := SeedLog(tb, ctx, tx, activity.LogTypeGitCommit, createdAt, false)
	c := &activity.GitCommit{
		ID:           uuid.New(),
		ActivityID:   l.ID,
		RepoID:       repoID,
		CommitHash:   hash,
		Message:      "commit " + hash,
		CommittedAt:  createdAt.UTC(),
		FilesChanged: datatypes.JSON([]byte(`["main.go"]`)),
	}
	if err := tx.WithContext(ctx).Omit("Activity", "Repo").Create(c).Error; err != nil {
		tb.Fatalf("seed git commit: %v", err)
	}
	return l, c
}

func SeedConversation(tb testing.TB, ctx context.Context, tx *gorm.DB, createdAt time.Time) (*activity.ActivityLog, *activity.Conversation) {
	tb.Helper()
	l := SeedLog(tb, ctx, tx, activity.LogTypeClaudeCode, createdAt, false)
	c := &activity.Conversation{
		ID:                   uuid.New(),
		ActivityID:           l.ID,
		ConversationFilePath: "/tmp/session.jsonl",
		BulletPoints:         datatypes.JSON([]byte(`["refactored store"]`)),
		NumExchanges:         3,
		NumToolUsages:        2,
		NumTokens:            1200,
	}
	if err := tx.WithContext(ctx).Omit("Activity").Create(c).Error; err != nil {
		tb.Fatalf("seed conversation: %v", err)
	}
	return l, c
}
