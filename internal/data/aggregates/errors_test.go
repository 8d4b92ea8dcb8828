package aggregates

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
)

func TestMapError_Validation(t *testing.T) {
	err := MapError("op", ValidationError("bad input"))
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_Conflict(t *testing.T) {
	err := MapError("op", ConflictError("stale"))
	if !domainagg.IsCode(err, domainagg.CodeConflict) {
		t.Fatalf("expected conflict code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_NotFound(t *testing.T) {
	err := MapError("op", gorm.ErrRecordNotFound)
	if !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("expected not_found code, got %q (%v)", domainagg.CodeOf(err), err)
	}
}

func TestMapError_PgCodes(t *testing.T) {
	cases := []struct {
		code string
		want domainagg.ErrorCode
	}{
		{"23505", domainagg.CodeConflict},
		{"23503", domainagg.CodePreconditionFailed},
		{"23514", domainagg.CodeValidation},
		{"57014", domainagg.CodeInternal},
	}
	for _, tc := range cases {
		err := MapError("op", fmt.Errorf("insert: %w", &pgconn.PgError{Code: tc.code, Message: "x"}))
		if got := domainagg.CodeOf(err); got != tc.want {
			t.Fatalf("pg code %s: got=%s want=%s", tc.code, got, tc.want)
		}
	}
}

func TestMapError_SQLiteMessages(t *testing.T) {
	if got := domainagg.CodeOf(MapError("op", errors.New("UNIQUE constraint failed: manual_logs.activity_id"))); got != domainagg.CodeConflict {
		t.Fatalf("sqlite unique: got=%s", got)
	}
	if got := domainagg.CodeOf(MapError("op", errors.New("FOREIGN KEY constraint failed"))); got != domainagg.CodePreconditionFailed {
		t.Fatalf("sqlite fk: got=%s", got)
	}
}

func TestMapError_PassthroughAggregateError(t *testing.T) {
	in := domainagg.NewError(domainagg.CodeNotFound, "op", "missing", errors.New("boom"))
	out := MapError("other", in)
	if out != in {
		t.Fatalf("expected passthrough aggregate error")
	}
	wrapped := fmt.Errorf("context: %w", in)
	if got := MapError("other", wrapped); got != wrapped {
		t.Fatalf("expected passthrough of wrapped aggregate error")
	}
}

func TestIsTransient(t *testing.T) {
	if !isTransient(&pgconn.PgError{Code: "40001"}) {
		t.Fatalf("serialization failure should be transient")
	}
	if !isTransient(errors.New("database is locked")) {
		t.Fatalf("sqlite lock should be transient")
	}
	if isTransient(errors.New("syntax error")) {
		t.Fatalf("syntax error is not transient")
	}
}
