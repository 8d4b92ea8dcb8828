package activity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Conversation summarizes one AI-assistant session transcript.
type Conversation struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActivityID           uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:activity_id" json:"activity_id"`
	Activity             *ActivityLog   `gorm:"constraint:OnDelete:CASCADE;foreignKey:ActivityID;references:ID" json:"-"`
	ProjectDirectoryName *string        `gorm:"column:project_directory_name" json:"project_directory_name,omitempty"`
	ConversationFilePath string         `gorm:"not null;column:conversation_file_path" json:"conversation_file_path"`
	RawJSONL             *string        `gorm:"type:text;column:raw_jsonl" json:"raw_jsonl,omitempty"`
	ParsedContent        datatypes.JSON `gorm:"column:parsed_content" json:"parsed_content,omitempty"`
	BulletPoints         datatypes.JSON `gorm:"column:bullet_points" json:"bullet_points,omitempty"`
	NumExchanges         int            `gorm:"not null;default:0;check:chk_conv_exchanges,num_exchanges >= 0;column:num_exchanges" json:"num_exchanges"`
	NumToolUsages        int            `gorm:"not null;default:0;check:chk_conv_tool_usages,num_tool_usages >= 0;column:num_tool_usages" json:"num_tool_usages"`
	NumTokens            int            `gorm:"not null;default:0;check:chk_conv_tokens,num_tokens >= 0;column:num_tokens" json:"num_tokens"`
	StartedAt            *time.Time     `gorm:"column:started_at" json:"started_at,omitempty"`
	EndedAt              *time.Time     `gorm:"column:ended_at" json:"ended_at,omitempty"`
	Metadata             datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
}

func (Conversation) TableName() string { return "claude_code_conversations" }

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (*Conversation) LogType() LogType { return LogTypeClaudeCode }
func (*Conversation) isDetails()       {}
