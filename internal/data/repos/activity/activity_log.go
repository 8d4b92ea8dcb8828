package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type ActivityLogRepo interface {
	Create(dbc dbctx.Context, rows []*types.ActivityLog) ([]*types.ActivityLog, error)

	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.ActivityLog, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ActivityLog, error)

	// List returns logs matching every set field of f, newest first.
	List(dbc dbctx.Context, f *types.Filter) ([]*types.ActivityLog, error)

	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (bool, error)
	MarkReviewed(dbc dbctx.Context, ids []uuid.UUID, at time.Time) (int64, error)

	DeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error)
}

type activityLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActivityLogRepo(db *gorm.DB, baseLog *logger.Logger) ActivityLogRepo {
	return &activityLogRepo{db: db, log: baseLog.With("repo", "ActivityLogRepo")}
}

func (r *activityLogRepo) Create(dbc dbctx.Context, rows []*types.ActivityLog) ([]*types.ActivityLog, error) {
	if len(rows) == 0 {
		return []*types.ActivityLog{}, nil
	}
	if err := dbc.DB(r.db).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *activityLogRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.ActivityLog, error) {
	var out []*types.ActivityLog
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *activityLogRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.ActivityLog, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := r.GetByIDs(dbc, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *activityLogRepo) List(dbc dbctx.Context, f *types.Filter) ([]*types.ActivityLog, error) {
	out := []*types.ActivityLog{}
	q := applyFilter(dbc.DB(r.db).Model(&types.ActivityLog{}), f)
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// applyFilter adds one bound predicate per set field.
func applyFilter(q *gorm.DB, f *types.Filter) *gorm.DB {
	if f == nil {
		return q
	}
	if f.FromDate != nil {
		q = q.Where("created_at >= ?", f.FromDate.UTC())
	}
	if f.ToDate != nil {
		q = q.Where("created_at <= ?", f.ToDate.UTC())
	}
	if f.Reviewed != nil {
		q = q.Where("reviewed = ?", *f.Reviewed)
	}
	if f.Type != nil {
		q = q.Where("type = ?", string(*f.Type))
	}
	return q
}

func (r *activityLogRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (bool, error) {
	if id == uuid.Nil || len(updates) == 0 {
		return false, nil
	}
	res := dbc.DB(r.db).
		Model(&types.ActivityLog{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *activityLogRepo) MarkReviewed(dbc dbctx.Context, ids []uuid.UUID, at time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&types.ActivityLog{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"reviewed":    true,
			"reviewed_at": at.UTC(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *activityLogRepo) DeleteByID(dbc dbctx.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	res := dbc.DB(r.db).
		Where("id = ?", id).
		Delete(&types.ActivityLog{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
