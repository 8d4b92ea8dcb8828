package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/http/validation"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
	"github.com/yungbote/fuel-backend/internal/services"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Install()
	return gin.New()
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

// fakeActivityLogService records calls and returns canned results.
type fakeActivityLogService struct {
	entries []*types.Entry
	err     error

	gotFilter   *types.Filter
	listCalls   int
	ackCalls    int
	created     string
	updatedID   string
	updateInput services.UpdateActivityLogInput
	deletedID   string
}

var _ services.ActivityLogService = (*fakeActivityLogService)(nil)

func (f *fakeActivityLogService) List(_ context.Context, filter *types.Filter) ([]*types.Entry, error) {
	f.listCalls++
	f.gotFilter = filter
	return f.entries, f.err
}

func (f *fakeActivityLogService) ListUnreviewedAndAcknowledge(context.Context) ([]*types.Entry, error) {
	f.ackCalls++
	return f.entries, f.err
}

func (f *fakeActivityLogService) CreateManual(_ context.Context, content string) (*types.Entry, error) {
	f.created = content
	if f.err != nil {
		return nil, f.err
	}
	return manualEntry(content, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), nil), nil
}

func (f *fakeActivityLogService) Update(_ context.Context, rawID string, in services.UpdateActivityLogInput) (*types.Entry, error) {
	f.updatedID = rawID
	f.updateInput = in
	if f.err != nil {
		return nil, f.err
	}
	return manualEntry("updated", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), nil), nil
}

func (f *fakeActivityLogService) Delete(_ context.Context, rawID string) error {
	f.deletedID = rawID
	return f.err
}

func (f *fakeActivityLogService) MarkReviewed(context.Context, []uuid.UUID) ([]*types.ActivityLog, error) {
	return []*types.ActivityLog{}, f.err
}

func manualEntry(content string, createdAt time.Time, reviewedAt *time.Time) *types.Entry {
	id := uuid.New()
	return &types.Entry{
		Log: &types.ActivityLog{
			ID:         id,
			Type:       types.LogTypeManual,
			Reviewed:   reviewedAt != nil,
			CreatedAt:  createdAt,
			ReviewedAt: reviewedAt,
		},
		Details: &types.ManualLog{ActivityID: id, Content: content},
	}
}

func testLogger() *logger.Logger { return logger.NewNop() }
