package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GitHookInstall struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:activity_id" json:"activity_id"`
	Activity              *ActivityLog   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ActivityID;references:ID" json:"-"`
	RepoID                uuid.UUID      `gorm:"type:uuid;not null;index;column:repo_id" json:"repo_id"`
	Repo                  *ConnectedRepo `gorm:"constraint:OnDelete:RESTRICT;foreignKey:RepoID;references:ID" json:"-"`
	HookType              string         `gorm:"not null;column:hook_type" json:"hook_type"`
	HookScriptPath        *string        `gorm:"column:hook_script_path" json:"hook_script_path,omitempty"`
	InstallationTimestamp time.Time      `gorm:"not null;column:installation_timestamp" json:"installation_timestamp"`
	RepoPath              string         `gorm:"not null;column:repo_path" json:"repo_path"`
	RepoName              string         `gorm:"not null;column:repo_name" json:"repo_name"`
	Metadata              datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt             time.Time      `gorm:"not null;index;column:created_at" json:"created_at"`
}

func (GitHookInstall) TableName() string { return "git_hooks_installed" }

func (h *GitHookInstall) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

func (*GitHookInstall) LogType() LogType { return LogTypeGitHookInstall }
func (*GitHookInstall) isDetails()       {}
