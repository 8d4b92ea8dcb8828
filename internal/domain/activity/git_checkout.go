package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GitCheckout struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:activity_id" json:"activity_id"`
	Activity   *ActivityLog   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ActivityID;references:ID" json:"-"`
	RepoID     uuid.UUID      `gorm:"type:uuid;not null;index;column:repo_id" json:"repo_id"`
	Repo       *ConnectedRepo `gorm:"constraint:OnDelete:RESTRICT;foreignKey:RepoID;references:ID" json:"-"`
	Timestamp  string         `gorm:"not null;column:timestamp" json:"timestamp"`
	PrevHead   string         `gorm:"not null;column:prev_head" json:"prev_head"`
	NewHead    string         `gorm:"not null;column:new_head" json:"new_head"`
	PrevBranch string         `gorm:"not null;column:prev_branch" json:"prev_branch"`
	NewBranch  string         `gorm:"not null;column:new_branch" json:"new_branch"`
	RepoPath   string         `gorm:"not null;column:repo_path" json:"repo_path"`
	RepoName   string         `gorm:"not null;column:repo_name" json:"repo_name"`
	CreatedAt  time.Time      `gorm:"not null;column:created_at" json:"created_at"`
}

func (GitCheckout) TableName() string { return "git_checkouts" }

func (c *GitCheckout) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (*GitCheckout) LogType() LogType { return LogTypeGitCheckout }
func (*GitCheckout) isDetails()       {}
