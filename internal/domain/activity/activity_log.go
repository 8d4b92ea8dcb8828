package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLog is the base record shared by every logged event.
type ActivityLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Type       LogType    `gorm:"type:varchar(32);not null;index;column:type" json:"type"`
	Reviewed   bool       `gorm:"not null;default:false;index;column:reviewed" json:"reviewed"`
	CreatedAt  time.Time  `gorm:"not null;index;column:created_at" json:"created_at"`
	ReviewedAt *time.Time `gorm:"column:reviewed_at" json:"reviewed_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
