package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/fuel-backend/internal/http/handlers"
	httpMW "github.com/yungbote/fuel-backend/internal/http/middleware"
	"github.com/yungbote/fuel-backend/internal/http/validation"
	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// ServiceName labels the OTel server spans; empty disables otelgin.
	ServiceName  string
	FrontendURL  string
	MaxBodyBytes int64

	ActivityLogHandler *httpH.ActivityLogHandler
	FrontendLogHandler *httpH.FrontendLogHandler
	HealthHandler      *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	validation.Install()

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.FrontendURL))
	r.Use(httpMW.BodyLimit(cfg.MaxBodyBytes))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/health", cfg.HealthHandler.HealthCheck)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api/v1")
	{
		// Activity logs
		if cfg.ActivityLogHandler != nil {
			logs := api.Group("/activity-logs")
			logs.GET("", cfg.ActivityLogHandler.List)
			logs.POST("/search", cfg.ActivityLogHandler.Search)
			logs.GET("/unreviewed", cfg.ActivityLogHandler.Unreviewed)
			logs.POST("", cfg.ActivityLogHandler.Create)
			logs.PUT("/:id", cfg.ActivityLogHandler.Update)
			logs.DELETE("/:id", cfg.ActivityLogHandler.Delete)
		}

		// Frontend logs
		if cfg.FrontendLogHandler != nil {
			api.POST("/frontend-logs", cfg.FrontendLogHandler.Ingest)
		}
	}

	return r
}
