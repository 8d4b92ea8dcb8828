package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fuel-backend/internal/http/response"
	"github.com/yungbote/fuel-backend/internal/http/validation"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
	"github.com/yungbote/fuel-backend/internal/services"
)

type FrontendLogHandler struct {
	log      *logger.Logger
	frontend services.FrontendLogService
}

func NewFrontendLogHandler(log *logger.Logger, frontend services.FrontendLogService) *FrontendLogHandler {
	return &FrontendLogHandler{
		log:      log.With("handler", "FrontendLogHandler"),
		frontend: frontend,
	}
}

type frontendLogEntryRequest struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp"`
	SessionID string                 `json:"sessionId"`
	Context   map[string]interface{} `json:"context"`
}

// POST /api/v1/frontend-logs
// Accepts a single entry or an array of entries.
func (h *FrontendLogHandler) Ingest(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.RespondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", err)
			return
		}
		response.RespondValidation(c, "invalid request body", validation.Details(err))
		return
	}
	entries, err := decodeFrontendEntries(raw)
	if err != nil {
		h.log.Warn("Frontend log batch rejected", "error", err)
		response.RespondValidation(c, "invalid request body", validation.Details(err))
		return
	}

	batch := make([]services.FrontendLogEntry, 0, len(entries))
	for _, e := range entries {
		batch = append(batch, services.FrontendLogEntry{
			Level:     e.Level,
			Message:   e.Message,
			Timestamp: e.Timestamp,
			SessionID: e.SessionID,
			Context:   e.Context,
		})
	}
	n := h.frontend.Ingest(c.Request.Context(), batch, services.ClientMeta{
		UserAgent: c.Request.UserAgent(),
		ClientIP:  c.ClientIP(),
	})
	h.log.Debug("Received frontend logs", "count", n)
	response.RespondOK(c, gin.H{"received": n})
}

func decodeFrontendEntries(raw []byte) ([]frontendLogEntryRequest, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, io.EOF
	}
	if trimmed[0] == '[' {
		var entries []frontendLogEntryRequest
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, err
		}
		return entries, nil
	}
	var one frontendLogEntryRequest
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, err
	}
	return []frontendLogEntryRequest{one}, nil
}
