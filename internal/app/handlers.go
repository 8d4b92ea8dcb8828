package app

import (
	httpserver "github.com/yungbote/fuel-backend/internal/http"
	httpH "github.com/yungbote/fuel-backend/internal/http/handlers"
	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type Handlers struct {
	Health      *httpH.HealthHandler
	ActivityLog *httpH.ActivityLogHandler
	FrontendLog *httpH.FrontendLogHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:      httpH.NewHealthHandler(),
		ActivityLog: httpH.NewActivityLogHandler(log, s.ActivityLog),
		FrontendLog: httpH.NewFrontendLogHandler(log, s.FrontendLog),
	}
}

func wireServer(cfg Config, log *logger.Logger, h Handlers, metrics *observability.Metrics) *httpserver.Server {
	serviceName := ""
	if cfg.Observability.OTel.Enabled {
		serviceName = cfg.Observability.OTel.ServiceName
	}
	return httpserver.NewServer(
		httpserver.ServerConfig{
			Addr:              cfg.HTTP.Addr,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
			ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
		},
		httpserver.RouterConfig{
			Log:                log,
			Metrics:            metrics,
			ServiceName:        serviceName,
			FrontendURL:        cfg.HTTP.FrontendURL,
			MaxBodyBytes:       cfg.HTTP.MaxBodyBytes,
			ActivityLogHandler: h.ActivityLog,
			FrontendLogHandler: h.FrontendLog,
			HealthHandler:      h.Health,
		},
		log,
	)
}
