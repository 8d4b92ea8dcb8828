package activity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type ManualLogRepo interface {
	Create(dbc dbctx.Context, rows []*types.ManualLog) ([]*types.ManualLog, error)

	GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.ManualLog, error)
	GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.ManualLog, error)

	UpdateContent(dbc dbctx.Context, activityID uuid.UUID, content string) (bool, error)

	DeleteByActivityID(dbc dbctx.Context, activityID uuid.UUID) (bool, error)
}

type manualLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewManualLogRepo(db *gorm.DB, baseLog *logger.Logger) ManualLogRepo {
	return &manualLogRepo{db: db, log: baseLog.With("repo", "ManualLogRepo")}
}

func (r *manualLogRepo) Create(dbc dbctx.Context, rows []*types.ManualLog) ([]*types.ManualLog, error) {
	return createRows(dbc, r.db, rows)
}

func (r *manualLogRepo) GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.ManualLog, error) {
	return detailsByActivityIDs[types.ManualLog](dbc, r.db, activityIDs)
}

func (r *manualLogRepo) GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.ManualLog, error) {
	return detailByActivityID[types.ManualLog](dbc, r.db, activityID)
}

// UpdateContent replaces the note text; updated_at is bumped by GORM.
func (r *manualLogRepo) UpdateContent(dbc dbctx.Context, activityID uuid.UUID, content string) (bool, error) {
	if activityID == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).
		Model(&types.ManualLog{}).
		Where("activity_id = ?", activityID).
		Update("content", content)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *manualLogRepo) DeleteByActivityID(dbc dbctx.Context, activityID uuid.UUID) (bool, error) {
	if activityID == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).
		Where("activity_id = ?", activityID).
		Delete(&types.ManualLog{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
