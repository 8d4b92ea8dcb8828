package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Code: CodeNotFound, Op: "activity.update", Message: "activity log not found"}, "activity.update: activity log not found (not_found)"},
		{&Error{Code: CodeValidation, Op: "activity.create"}, "activity.create (validation)"},
		{&Error{Code: CodeInternal, Message: "boom"}, "boom (internal)"},
		{&Error{Code: CodeConflict}, "conflict"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("Error()=%q want %q", got, tc.want)
		}
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := Validation("activity.create", "content cannot be empty", FieldError{Field: "details.content", Message: "content cannot be empty"})
	wrapped := fmt.Errorf("handler: %w", base)
	if !IsCode(wrapped, CodeValidation) {
		t.Fatalf("expected validation code through wrap, got %q", CodeOf(wrapped))
	}
	if fields := FieldsOf(wrapped); len(fields) != 1 || fields[0].Field != "details.content" {
		t.Fatalf("unexpected fields: %+v", fields)
	}
	if MessageOf(wrapped) != "content cannot be empty" {
		t.Fatalf("unexpected message: %q", MessageOf(wrapped))
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("db down")
	err := Wrap(CodeInternal, "op", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved")
	}
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatalf("Wrap(nil) must be nil")
	}
	if CodeOf(cause) != "" {
		t.Fatalf("plain errors carry no code")
	}
}
