package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/data/repos/activity"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type ActivityLogRepo = activity.ActivityLogRepo
type ManualLogRepo = activity.ManualLogRepo
type GitCommitRepo = activity.GitCommitRepo
type ConversationRepo = activity.ConversationRepo
type GitCheckoutRepo = activity.GitCheckoutRepo
type GitHookInstallRepo = activity.GitHookInstallRepo
type ConnectedRepoRepo = activity.ConnectedRepoRepo

func NewActivityLogRepo(db *gorm.DB, baseLog *logger.Logger) ActivityLogRepo {
	return activity.NewActivityLogRepo(db, baseLog)
}

func NewManualLogRepo(db *gorm.DB, baseLog *logger.Logger) ManualLogRepo {
	return activity.NewManualLogRepo(db, baseLog)
}

func NewGitCommitRepo(db *gorm.DB, baseLog *logger.Logger) GitCommitRepo {
	return activity.NewGitCommitRepo(db, baseLog)
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
	return activity.NewConversationRepo(db, baseLog)
}

func NewGitCheckoutRepo(db *gorm.DB, baseLog *logger.Logger) GitCheckoutRepo {
	return activity.NewGitCheckoutRepo(db, baseLog)
}

func NewGitHookInstallRepo(db *gorm.DB, baseLog *logger.Logger) GitHookInstallRepo {
	return activity.NewGitHookInstallRepo(db, baseLog)
}

func NewConnectedRepoRepo(db *gorm.DB, baseLog *logger.Logger) ConnectedRepoRepo {
	return activity.NewConnectedRepoRepo(db, baseLog)
}
