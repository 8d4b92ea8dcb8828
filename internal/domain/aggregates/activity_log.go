package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/fuel-backend/internal/domain/activity"
)

var ActivityLogAggregateContract = Contract{
	Name:             "Activity.LogAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns the base log + detail row pair: creation, manual-only mutation, deletion and acknowledgement.",
}

// ActivityLogAggregate owns the invariants spanning activity_logs and its detail tables.
//
// Write method failures return *aggregates.Error with codes:
// CodeValidation, CodeNotFound, CodePreconditionFailed, CodeInternal.
type ActivityLogAggregate interface {
	Aggregate

	// CreateManual atomically inserts a manual base log and its content row.
	CreateManual(ctx context.Context, in CreateManualInput) (*activity.Entry, error)

	// UpdateManual applies reviewed/content changes to a manual log in one transaction.
	UpdateManual(ctx context.Context, in UpdateManualInput) (*activity.Entry, error)

	// DeleteManual removes a manual log; the detail row goes with it by cascade.
	DeleteManual(ctx context.Context, id uuid.UUID) error

	// MarkReviewed acknowledges every listed log in a single statement.
	MarkReviewed(ctx context.Context, ids []uuid.UUID, at time.Time) ([]*activity.ActivityLog, error)

	// Attach joins each log with its detail row for the requested types,
	// preserving input order. Logs of other types get nil Details.
	Attach(ctx context.Context, logs []*activity.ActivityLog, types ...activity.LogType) ([]*activity.Entry, error)
}

type CreateManualInput struct {
	Content string
	At      time.Time
}

type UpdateManualInput struct {
	ID       uuid.UUID
	Reviewed *bool
	Content  *string
	At       time.Time
}
