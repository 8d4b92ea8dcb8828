package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/fuel-backend/internal/platform/ctxutil"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

// gormZapLogger routes GORM's diagnostics into the service logger.
type gormZapLogger struct {
	log           *logger.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(log *logger.Logger, slow time.Duration) gormLogger.Interface {
	return &gormZapLogger{
		log:           log.With("component", "gorm"),
		level:         gormLogger.Warn,
		slowThreshold: slow,
	}
}

func (l *gormZapLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *gormZapLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...), "request_id", ctxutil.RequestID(ctx))
	}
}

func (l *gormZapLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...), "request_id", ctxutil.RequestID(ctx))
	}
}

func (l *gormZapLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...), "request_id", ctxutil.RequestID(ctx))
	}
}

func (l *gormZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormLogger.Error:
		sql, rows := fc()
		l.log.Error("SQL error", "error", err, "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql, "request_id", ctxutil.RequestID(ctx))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormLogger.Warn:
		sql, rows := fc()
		l.log.Warn("Slow SQL", "elapsed_ms", elapsed.Milliseconds(), "threshold_ms", l.slowThreshold.Milliseconds(), "rows", rows, "sql", sql, "request_id", ctxutil.RequestID(ctx))
	case l.level >= gormLogger.Info:
		sql, rows := fc()
		l.log.Debug("SQL", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	}
}
