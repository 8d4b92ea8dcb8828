package handlers

import (
	"time"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
)

// timeLayout renders instants in UTC with millisecond precision.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type manualDetailsResponse struct {
	Content string `json:"content"`
}

type activityLogResponse struct {
	ID         string                `json:"id"`
	Type       types.LogType         `json:"type"`
	Reviewed   bool                  `json:"reviewed"`
	CreatedAt  string                `json:"created_at"`
	ReviewedAt *string               `json:"reviewed_at"`
	Details    manualDetailsResponse `json:"details"`
}

// formatActivityLog renders one entry. Only manual content is joined; other
// types carry an empty content placeholder.
func formatActivityLog(e *types.Entry) activityLogResponse {
	out := activityLogResponse{
		ID:        e.Log.ID.String(),
		Type:      e.Log.Type,
		Reviewed:  e.Log.Reviewed,
		CreatedAt: formatTime(e.Log.CreatedAt),
	}
	if e.Log.ReviewedAt != nil {
		s := formatTime(*e.Log.ReviewedAt)
		out.ReviewedAt = &s
	}
	if m, ok := e.Manual(); ok && e.Log.Type == types.LogTypeManual {
		out.Details.Content = m.Content
	}
	return out
}

func formatActivityLogs(entries []*types.Entry) []activityLogResponse {
	out := make([]activityLogResponse, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.Log == nil {
			continue
		}
		out = append(out, formatActivityLog(e))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
