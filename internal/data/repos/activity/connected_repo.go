package activity

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type ConnectedRepoRepo interface {
	Create(dbc dbctx.Context, rows []*types.ConnectedRepo) ([]*types.ConnectedRepo, error)

	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ConnectedRepo, error)
	FindByPath(dbc dbctx.Context, localPath string) (*types.ConnectedRepo, error)

	ListAll(dbc dbctx.Context) ([]*types.ConnectedRepo, error)
	ListActive(dbc dbctx.Context) ([]*types.ConnectedRepo, error)

	DeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type connectedRepoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConnectedRepoRepo(db *gorm.DB, baseLog *logger.Logger) ConnectedRepoRepo {
	return &connectedRepoRepo{db: db, log: baseLog.With("repo", "ConnectedRepoRepo")}
}

// Create inserts repos as active; is_active is never persisted false on insert.
func (r *connectedRepoRepo) Create(dbc dbctx.Context, rows []*types.ConnectedRepo) ([]*types.ConnectedRepo, error) {
	for _, row := range rows {
		if row != nil {
			row.IsActive = true
		}
	}
	return createRows(dbc, r.db, rows)
}

func (r *connectedRepoRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ConnectedRepo, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.ConnectedRepo
	if err := dbc.DB(r.db).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *connectedRepoRepo) FindByPath(dbc dbctx.Context, localPath string) (*types.ConnectedRepo, error) {
	localPath = strings.TrimSpace(localPath)
	if localPath == "" {
		return nil, nil
	}
	var out []*types.ConnectedRepo
	if err := dbc.DB(r.db).Where("local_repo_path = ?", localPath).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *connectedRepoRepo) ListAll(dbc dbctx.Context) ([]*types.ConnectedRepo, error) {
	out := []*types.ConnectedRepo{}
	if err := dbc.DB(r.db).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *connectedRepoRepo) ListActive(dbc dbctx.Context) ([]*types.ConnectedRepo, error) {
	out := []*types.ConnectedRepo{}
	if err := dbc.DB(r.db).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *connectedRepoRepo) DeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.ConnectedRepo{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
