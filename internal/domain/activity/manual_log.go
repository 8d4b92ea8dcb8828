package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ManualContentMinLen = 1
	ManualContentMaxLen = 10000
)

// ManualLog holds the free-text note behind a manual ActivityLog.
type ManualLog struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex;column:activity_id" json:"activity_id"`
	Activity   *ActivityLog `gorm:"constraint:OnDelete:CASCADE;foreignKey:ActivityID;references:ID" json:"-"`
	Content    string       `gorm:"type:text;not null;column:content" json:"content"`
	CreatedAt  time.Time    `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (ManualLog) TableName() string { return "manual_logs" }

func (m *ManualLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (*ManualLog) LogType() LogType { return LogTypeManual }
func (*ManualLog) isDetails()       {}
