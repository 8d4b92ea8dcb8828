package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConnectedRepo is a local git checkout the ingestion side watches.
// It is referenced by commit, checkout and hook-install details but owned by none of them.
type ConnectedRepo struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null;column:name" json:"name"`
	LocalRepoPath string    `gorm:"not null;uniqueIndex;column:local_repo_path" json:"local_repo_path"`
	RemoteURL     *string   `gorm:"column:remote_url" json:"remote_url,omitempty"`
	IsActive      bool      `gorm:"not null;default:true;index;column:is_active" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (ConnectedRepo) TableName() string { return "connected_local_git_repos" }

func (r *ConnectedRepo) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
