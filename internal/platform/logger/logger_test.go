package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestRedactsSensitiveKeys(t *testing.T) {
	log, logs := observed()
	log.Info("frontend log",
		"authorization", "Bearer abc",
		"author_email", "dev@example.com",
		"num_tokens", 42,
		"message", "hello",
	)
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["authorization"] != "[REDACTED]" {
		t.Fatalf("authorization not redacted: %v", ctx["authorization"])
	}
	if ctx["author_email"] != "[REDACTED]" {
		t.Fatalf("author_email not redacted: %v", ctx["author_email"])
	}
	if ctx["num_tokens"] != int64(42) {
		t.Fatalf("num_tokens should pass through, got %v (%T)", ctx["num_tokens"], ctx["num_tokens"])
	}
	if ctx["message"] != "hello" {
		t.Fatalf("message altered: %v", ctx["message"])
	}
}

func TestHashesSessionIDs(t *testing.T) {
	log, logs := observed()
	log.With("session_id", "sess-123").Warn("x")
	ctx := logs.All()[0].ContextMap()
	got, _ := ctx["session_id"].(string)
	if !strings.HasPrefix(got, "hash:") || strings.Contains(got, "sess-123") {
		t.Fatalf("session id not hashed: %q", got)
	}
}

func TestNestedMapsAreSanitized(t *testing.T) {
	log, logs := observed()
	log.Info("ctx", "context", map[string]interface{}{"password": "hunter2", "component": "LogFeed"})
	ctx := logs.All()[0].ContextMap()
	nested, ok := ctx["context"].(map[string]interface{})
	if !ok {
		t.Fatalf("context not a map: %T", ctx["context"])
	}
	if nested["password"] != "[REDACTED]" || nested["component"] != "LogFeed" {
		t.Fatalf("unexpected nested map: %v", nested)
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := NewWithOptions("development", Options{Level: "loud"}); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
