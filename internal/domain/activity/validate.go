package activity

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrContentEmpty   = errors.New("content cannot be empty")
	ErrContentTooLong = fmt.Errorf("content cannot exceed %d characters", ManualContentMaxLen)
)

// ValidateManualContent enforces the manual note length bounds, counted in characters.
func ValidateManualContent(content string) error {
	n := utf8.RuneCountInString(content)
	switch {
	case n < ManualContentMinLen:
		return ErrContentEmpty
	case n > ManualContentMaxLen:
		return ErrContentTooLong
	default:
		return nil
	}
}
