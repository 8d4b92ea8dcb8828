package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/data/repos"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type Repos struct {
	ActivityLog    repos.ActivityLogRepo
	ManualLog      repos.ManualLogRepo
	GitCommit      repos.GitCommitRepo
	Conversation   repos.ConversationRepo
	GitCheckout    repos.GitCheckoutRepo
	GitHookInstall repos.GitHookInstallRepo
	ConnectedRepo  repos.ConnectedRepoRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		ActivityLog:    repos.NewActivityLogRepo(db, log),
		ManualLog:      repos.NewManualLogRepo(db, log),
		GitCommit:      repos.NewGitCommitRepo(db, log),
		Conversation:   repos.NewConversationRepo(db, log),
		GitCheckout:    repos.NewGitCheckoutRepo(db, log),
		GitHookInstall: repos.NewGitHookInstallRepo(db, log),
		ConnectedRepo:  repos.NewConnectedRepoRepo(db, log),
	}
}
