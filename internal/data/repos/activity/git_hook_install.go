package activity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type GitHookInstallRepo interface {
	Create(dbc dbctx.Context, rows []*types.GitHookInstall) ([]*types.GitHookInstall, error)

	GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitHookInstall, error)
	GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitHookInstall, error)

	ListByRepo(dbc dbctx.Context, repoID uuid.UUID) ([]*types.GitHookInstall, error)
}

type gitHookInstallRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGitHookInstallRepo(db *gorm.DB, baseLog *logger.Logger) GitHookInstallRepo {
	return &gitHookInstallRepo{db: db, log: baseLog.With("repo", "GitHookInstallRepo")}
}

func (r *gitHookInstallRepo) Create(dbc dbctx.Context, rows []*types.GitHookInstall) ([]*types.GitHookInstall, error) {
	return createRows(dbc, r.db, rows)
}

func (r *gitHookInstallRepo) GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitHookInstall, error) {
	return detailsByActivityIDs[types.GitHookInstall](dbc, r.db, activityIDs)
}

func (r *gitHookInstallRepo) GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitHookInstall, error) {
	return detailByActivityID[types.GitHookInstall](dbc, r.db, activityID)
}

func (r *gitHookInstallRepo) ListByRepo(dbc dbctx.Context, repoID uuid.UUID) ([]*types.GitHookInstall, error) {
	out := []*types.GitHookInstall{}
	if repoID == uuid.Nil {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("repo_id = ?", repoID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
