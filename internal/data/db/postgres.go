package db

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

// Config configures the Postgres pool.
type Config struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
	SlowThreshold   time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = 10
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = 10
	}
	if c.ConnMaxIdleTime <= 0 {
		c.ConnMaxIdleTime = 20 * time.Second
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.SlowThreshold <= 0 {
		c.SlowThreshold = time.Second
	}
	return c
}

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(cfg Config, logg *logger.Logger) (*PostgresService, error) {
	serviceLog := logg.With("service", "PostgresService")
	cfg = cfg.withDefaults()

	dsn, err := withConnectTimeout(cfg.URL, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), GormConfig(logg, cfg.SlowThreshold))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach Postgres: %w", err)
	}

	serviceLog.Info("Connected to Postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_idle_time", cfg.ConnMaxIdleTime.String(),
	)
	return &PostgresService{db: db, log: serviceLog}, nil
}

// GormConfig is shared by the Postgres service and the SQLite test store.
func GormConfig(logg *logger.Logger, slow time.Duration) *gorm.Config {
	return &gorm.Config{
		Logger:  NewGormLogger(logg, slow),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

func (s *PostgresService) DB() *gorm.DB { return s.db }

func (s *PostgresService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.log.Info("Closing Postgres pool")
	return sqlDB.Close()
}

// Ping reports whether the pool can reach the server.
func (s *PostgresService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// withConnectTimeout adds connect_timeout to a URL or key/value DSN unless already present.
func withConnectTimeout(dsn string, timeout time.Duration) (string, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return "", fmt.Errorf("database url is required")
	}
	secs := strconv.Itoa(int(timeout / time.Second))
	if timeout > 0 && timeout < time.Second {
		secs = "1"
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid database url: %w", err)
		}
		q := u.Query()
		if q.Get("connect_timeout") == "" {
			q.Set("connect_timeout", secs)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	}
	if strings.Contains(dsn, "connect_timeout=") {
		return dsn, nil
	}
	return dsn + " connect_timeout=" + secs, nil
}
