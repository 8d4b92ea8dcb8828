package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GitCommit struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:activity_id" json:"activity_id"`
	Activity     *ActivityLog   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ActivityID;references:ID" json:"-"`
	RepoID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_git_commit_repo_hash,priority:1;column:repo_id" json:"repo_id"`
	Repo         *ConnectedRepo `gorm:"constraint:OnDelete:RESTRICT;foreignKey:RepoID;references:ID" json:"-"`
	CommitHash   string         `gorm:"not null;index:idx_git_commit_repo_hash,priority:2;column:commit_hash" json:"commit_hash"`
	Message      string         `gorm:"type:text;not null;column:message" json:"message"`
	AuthorName   *string        `gorm:"column:author_name" json:"author_name,omitempty"`
	AuthorEmail  *string        `gorm:"column:author_email" json:"author_email,omitempty"`
	CommittedAt  time.Time      `gorm:"not null;column:committed_at" json:"committed_at"`
	FilesChanged datatypes.JSON `gorm:"column:files_changed" json:"files_changed,omitempty"`
	Metadata     datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (GitCommit) TableName() string { return "git_commits" }

func (c *GitCommit) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (*GitCommit) LogType() LogType { return LogTypeGitCommit }
func (*GitCommit) isDetails()       {}
