package activity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type GitCheckoutRepo interface {
	Create(dbc dbctx.Context, rows []*types.GitCheckout) ([]*types.GitCheckout, error)

	GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitCheckout, error)
	GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitCheckout, error)
}

type gitCheckoutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGitCheckoutRepo(db *gorm.DB, baseLog *logger.Logger) GitCheckoutRepo {
	return &gitCheckoutRepo{db: db, log: baseLog.With("repo", "GitCheckoutRepo")}
}

func (r *gitCheckoutRepo) Create(dbc dbctx.Context, rows []*types.GitCheckout) ([]*types.GitCheckout, error) {
	return createRows(dbc, r.db, rows)
}

func (r *gitCheckoutRepo) GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.GitCheckout, error) {
	return detailsByActivityIDs[types.GitCheckout](dbc, r.db, activityIDs)
}

func (r *gitCheckoutRepo) GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.GitCheckout, error) {
	return detailByActivityID[types.GitCheckout](dbc, r.db, activityID)
}
