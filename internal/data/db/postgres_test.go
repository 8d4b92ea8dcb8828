package db

import (
	"strings"
	"testing"
	"time"
)

func TestWithConnectTimeout(t *testing.T) {
	got, err := withConnectTimeout("postgres://u:p@localhost:5432/fuel?sslmode=disable", 10*time.Second)
	if err != nil {
		t.Fatalf("withConnectTimeout: %v", err)
	}
	if !strings.Contains(got, "connect_timeout=10") || !strings.Contains(got, "sslmode=disable") {
		t.Fatalf("unexpected dsn: %s", got)
	}

	got, err = withConnectTimeout("postgres://localhost/fuel?connect_timeout=3", 10*time.Second)
	if err != nil {
		t.Fatalf("withConnectTimeout: %v", err)
	}
	if !strings.Contains(got, "connect_timeout=3") || strings.Contains(got, "connect_timeout=10") {
		t.Fatalf("existing timeout should win: %s", got)
	}

	got, err = withConnectTimeout("host=localhost dbname=fuel", 5*time.Second)
	if err != nil {
		t.Fatalf("withConnectTimeout: %v", err)
	}
	if got != "host=localhost dbname=fuel connect_timeout=5" {
		t.Fatalf("unexpected kv dsn: %s", got)
	}

	if _, err := withConnectTimeout("  ", time.Second); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}.withDefaults()
	if c.MaxOpenConns != 10 || c.MaxIdleConns != 10 {
		t.Fatalf("pool defaults: got open=%d idle=%d", c.MaxOpenConns, c.MaxIdleConns)
	}
	if c.ConnMaxIdleTime != 20*time.Second || c.ConnectTimeout != 10*time.Second {
		t.Fatalf("time defaults: got idle=%v connect=%v", c.ConnMaxIdleTime, c.ConnectTimeout)
	}
}
