package activity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

// detailsByActivityIDs loads detail rows of one table keyed by their parent log.
func detailsByActivityIDs[T any](dbc dbctx.Context, db *gorm.DB, ids []uuid.UUID) ([]*T, error) {
	var out []*T
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(db).
		Where("activity_id IN ?", ids).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func detailByActivityID[T any](dbc dbctx.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	rows, err := detailsByActivityIDs[T](dbc, db, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// createRows inserts rows without touching the parent rows their belongs-to fields reference.
func createRows[T any](dbc dbctx.Context, db *gorm.DB, rows []*T) ([]*T, error) {
	if len(rows) == 0 {
		return []*T{}, nil
	}
	if err := dbc.DB(db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
