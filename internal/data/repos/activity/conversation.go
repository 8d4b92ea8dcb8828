package activity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type ConversationRepo interface {
	Create(dbc dbctx.Context, rows []*types.Conversation) ([]*types.Conversation, error)

	GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.Conversation, error)
	GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.Conversation, error)
}

type conversationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
	return &conversationRepo{db: db, log: baseLog.With("repo", "ConversationRepo")}
}

func (r *conversationRepo) Create(dbc dbctx.Context, rows []*types.Conversation) ([]*types.Conversation, error) {
	return createRows(dbc, r.db, rows)
}

func (r *conversationRepo) GetByActivityIDs(dbc dbctx.Context, activityIDs []uuid.UUID) ([]*types.Conversation, error) {
	return detailsByActivityIDs[types.Conversation](dbc, r.db, activityIDs)
}

func (r *conversationRepo) GetByActivityID(dbc dbctx.Context, activityID uuid.UUID) (*types.Conversation, error) {
	return detailByActivityID[types.Conversation](dbc, r.db, activityID)
}
