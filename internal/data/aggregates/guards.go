package aggregates

import (
	"github.com/google/uuid"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
)

const msgManualOnly = "can only modify manual log entries"

// requireID rejects the zero uuid, which never names a stored log.
func requireID(op string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainagg.Validation(op, "invalid activity log id", domainagg.FieldError{Field: "id", Message: "must be a valid UUID"})
	}
	return nil
}

// requireFound converts a missing row into CodeNotFound.
func requireFound(op string, row *types.ActivityLog) error {
	if row == nil {
		return domainagg.NotFound(op, "activity log not found")
	}
	return nil
}

// requireMutable enforces that only manual logs change through the API.
func requireMutable(op string, row *types.ActivityLog) error {
	if !row.Type.Mutable() {
		return domainagg.Validation(op, msgManualOnly)
	}
	return nil
}

// requireContent validates manual note text and tags the offending field.
func requireContent(op, content string) error {
	if err := types.ValidateManualContent(content); err != nil {
		return domainagg.Validation(op, err.Error(), domainagg.FieldError{Field: "details.content", Message: err.Error()})
	}
	return nil
}
