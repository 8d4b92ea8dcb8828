package aggregates_test

import (
	"context"

	"github.com/yungbote/fuel-backend/internal/platform/dbctx"
)

// dbcOf reads through the repos' own handle, which tests bind to their transaction.
func dbcOf(ctx context.Context) dbctx.Context { return dbctx.Context{Ctx: ctx} }
