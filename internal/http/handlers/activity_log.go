package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/fuel-backend/internal/domain/activity"
	"github.com/yungbote/fuel-backend/internal/http/response"
	"github.com/yungbote/fuel-backend/internal/http/validation"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
	"github.com/yungbote/fuel-backend/internal/services"
)

type ActivityLogHandler struct {
	log  *logger.Logger
	logs services.ActivityLogService
}

func NewActivityLogHandler(log *logger.Logger, logs services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{
		log:  log.With("handler", "ActivityLogHandler"),
		logs: logs,
	}
}

type manualDetailsRequest struct {
	Content *string `json:"content" binding:"required"`
}

type createActivityLogRequest struct {
	Details *manualDetailsRequest `json:"details" binding:"required"`
}

type updateActivityLogRequest struct {
	Reviewed *bool                 `json:"reviewed"`
	Details  *manualDetailsRequest `json:"details"`
}

type activityLogFilters struct {
	FromDate *string `json:"from_date" binding:"omitempty,filterdate"`
	ToDate   *string `json:"to_date" binding:"omitempty,filterdate"`
	Reviewed *bool   `json:"reviewed"`
	Type     *string `json:"type" binding:"omitempty,logtype"`
}

type searchActivityLogsRequest struct {
	Filters *activityLogFilters `json:"filters"`
}

// GET /api/v1/activity-logs
func (h *ActivityLogHandler) List(c *gin.Context) {
	entries, err := h.logs.List(c.Request.Context(), nil)
	if err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	response.RespondOK(c, formatActivityLogs(entries))
}

// POST /api/v1/activity-logs/search
func (h *ActivityLogHandler) Search(c *gin.Context) {
	var req searchActivityLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Search rejected", "error", err)
		response.RespondValidation(c, "invalid filters", validation.Details(err))
		return
	}
	f, err := req.Filters.toFilter()
	if err != nil {
		response.RespondValidation(c, "invalid filters", []response.FieldDetail{{Field: "filters", Message: err.Error()}})
		return
	}
	entries, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	response.RespondOK(c, formatActivityLogs(entries))
}

// GET /api/v1/activity-logs/unreviewed
// Lists the unreviewed logs and acknowledges them in the same call.
func (h *ActivityLogHandler) Unreviewed(c *gin.Context) {
	entries, err := h.logs.ListUnreviewedAndAcknowledge(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	response.RespondOK(c, formatActivityLogs(entries))
}

// POST /api/v1/activity-logs
func (h *ActivityLogHandler) Create(c *gin.Context) {
	var req createActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Create rejected", "error", err)
		response.RespondValidation(c, "invalid request body", validation.Details(err))
		return
	}
	e, err := h.logs.CreateManual(c.Request.Context(), *req.Details.Content)
	if err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	response.RespondCreated(c, formatActivityLog(e))
}

// PUT /api/v1/activity-logs/:id
func (h *ActivityLogHandler) Update(c *gin.Context) {
	var req updateActivityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Update rejected", "error", err)
		response.RespondValidation(c, "invalid request body", validation.Details(err))
		return
	}
	in := services.UpdateActivityLogInput{Reviewed: req.Reviewed}
	if req.Details != nil {
		in.Content = req.Details.Content
	}
	e, err := h.logs.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	response.RespondOK(c, formatActivityLog(e))
}

// DELETE /api/v1/activity-logs/:id
func (h *ActivityLogHandler) Delete(c *gin.Context) {
	if err := h.logs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.RespondDomainError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// toFilter converts request filters into a store filter. A to_date given as
// a bare date covers that whole day.
func (f *activityLogFilters) toFilter() (*types.Filter, error) {
	if f == nil {
		return nil, nil
	}
	out := &types.Filter{Reviewed: f.Reviewed}
	if f.FromDate != nil {
		t, _, err := validation.ParseFilterDate(*f.FromDate)
		if err != nil {
			return nil, err
		}
		out.FromDate = &t
	}
	if f.ToDate != nil {
		t, dateOnly, err := validation.ParseFilterDate(*f.ToDate)
		if err != nil {
			return nil, err
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Microsecond)
		}
		out.ToDate = &t
	}
	if f.Type != nil {
		lt := types.LogType(*f.Type)
		if !lt.Valid() {
			return nil, errors.New("unknown log type")
		}
		out.Type = &lt
	}
	return out, nil
}
