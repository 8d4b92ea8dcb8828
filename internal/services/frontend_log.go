package services

import (
	"context"
	"strings"

	"github.com/yungbote/fuel-backend/internal/observability"
	"github.com/yungbote/fuel-backend/internal/platform/ctxutil"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

// FrontendLogEntry is one log line shipped by the browser client.
type FrontendLogEntry struct {
	Level     string
	Message   string
	Timestamp string
	SessionID string
	Context   map[string]interface{}
}

// ClientMeta describes the request that delivered a batch of entries.
type ClientMeta struct {
	UserAgent string
	ClientIP  string
}

type FrontendLogService interface {
	// Ingest re-emits each entry through the service logger and returns how many were accepted.
	Ingest(ctx context.Context, entries []FrontendLogEntry, meta ClientMeta) int
}

type frontendLogService struct {
	log     *logger.Logger
	metrics *observability.Metrics
}

func NewFrontendLogService(log *logger.Logger, metrics *observability.Metrics) FrontendLogService {
	return &frontendLogService{
		log:     log.With("service", "FrontendLogService", "source", "frontend"),
		metrics: metrics,
	}
}

func (s *frontendLogService) Ingest(ctx context.Context, entries []FrontendLogEntry, meta ClientMeta) int {
	for _, e := range entries {
		level := normalizeFrontendLevel(e.Level)
		kv := []interface{}{
			"frontend_timestamp", e.Timestamp,
			"session_id", e.SessionID,
			"user_agent", meta.UserAgent,
			"client_ip", meta.ClientIP,
			"request_id", ctxutil.RequestID(ctx),
		}
		if len(e.Context) > 0 {
			kv = append(kv, "context", e.Context)
		}
		msg := "[FRONTEND] " + e.Message
		switch level {
		case "debug":
			s.log.Debug(msg, kv...)
		case "warn":
			s.log.Warn(msg, kv...)
		case "error":
			s.log.Error(msg, kv...)
		default:
			s.log.Info(msg, kv...)
		}
		s.metrics.IncFrontendLog(level)
	}
	return len(entries)
}

func normalizeFrontendLevel(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug", "trace":
		return "debug"
	case "warn", "warning":
		return "warn"
	case "error", "fatal":
		return "error"
	default:
		return "info"
	}
}
