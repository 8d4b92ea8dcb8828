package activity

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type GitCommitRepo interface {
	Create(dbc dbctx.Context, rows []*types.GitCommit) ([]*types.GitCommit, error)

	GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitCommit, error)
	GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitCommit, error)

	// FindByHash looks up a commit already recorded for repoID.
	FindByHash(dbc dbctx.Context, repoID uuid.UUID, hash string) (*types.GitCommit, error)
}

type gitCommitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGitCommitRepo(db *gorm.DB, baseLog *logger.Logger) GitCommitRepo {
	return &gitCommitRepo{db: db, log: baseLog.With("repo", "GitCommitRepo")}
}

func (r *gitCommitRepo) Create(dbc dbctx.Context, rows []*types.GitCommit) ([]*types.GitCommit, error) {
	return createRows(dbc, r.db, rows)
}

func (r *gitCommitRepo) GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitCommit, error) {
	return detailsByActivityIDs[types.GitCommit](dbc, r.db, activityIDs)
}

func (r *gitCommitRepo) GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitCommit, error) {
	return detailByActivityID[types.GitCommit](dbc, r.db, activityID)
}

func (r *gitCommitRepo) FindByHash(dbc dbctx.Context, repoID uuid.UUID, hash string) (*types.GitCommit, error) {
	hash = strings.TrimSpace(hash)
	if repoID == uuid.Nil || hash == "" {
		return nil, nil
	}
	var out []*types.GitCommit
	if err := dbc.DB(r.db).
		Where("repo_id = ? AND commit_hash = ?", repoID, hash).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
