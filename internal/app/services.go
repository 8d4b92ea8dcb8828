package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
	"github.com/yungbote/fuel-backend/internal/services"
)

type Services struct {
	ActivityLogAggregate domainagg.ActivityLogAggregate

	ActivityLog services.ActivityLogService
	FrontendLog services.FrontendLogService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	agg := aggregates.NewActivityLogAggregate(aggregates.ActivityLogAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(metrics),
		},
		Logs:          r.ActivityLog,
		Manual:        r.ManualLog,
		Commits:       r.GitCommit,
		Conversations: r.Conversation,
		Checkouts:     r.GitCheckout,
		HookInstalls:  r.GitHookInstall,
	})
	return Services{
		ActivityLogAggregate: agg,
		ActivityLog:          services.NewActivityLogService(log, r.ActivityLog, agg, metrics),
		FrontendLog:          services.NewFrontendLogService(log, metrics),
	}
}
