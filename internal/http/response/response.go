package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/yungbote/fuel-backend/internal/domain/aggregates"
	"github.com/yungbote/fuel-backend/internal/platform/ctxutil"
	"github.com/yungbote/fuel-backend/internal/platform/logger"
)

const msgInternal = "internal server error"

type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type APIError struct {
	Message string        `json:"message"`
	Code    string        `json:"code,omitempty"`
	Details []FieldDetail `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	if status >= http.StatusInternalServerError {
		msg = msgInternal
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// RespondValidation writes a 400 carrying per-field details.
func RespondValidation(c *gin.Context, message string, details []FieldDetail) {
	if message == "" {
		message = "validation failed"
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    string(domainagg.CodeValidation),
			Details: details,
		},
	})
}

// RespondDomainError maps an aggregates.Error code onto an HTTP status and logs
// the failure with the request id and route.
func RespondDomainError(c *gin.Context, log *logger.Logger, err error) {
	code := domainagg.CodeOf(err)
	status := StatusFor(code)

	if log != nil {
		kv := []interface{}{
			"error", err,
			"code", string(code),
			"status", status,
			"route", c.FullPath(),
			"request_id", ctxutil.RequestID(c.Request.Context()),
		}
		if status >= http.StatusInternalServerError {
			log.Error("Request failed", kv...)
		} else {
			log.Warn("Request rejected", kv...)
		}
	}

	switch code {
	case domainagg.CodeValidation:
		fields := domainagg.FieldsOf(err)
		details := make([]FieldDetail, 0, len(fields))
		for _, f := range fields {
			details = append(details, FieldDetail{Field: f.Field, Message: f.Message})
		}
		RespondValidation(c, domainagg.MessageOf(err), details)
	case domainagg.CodeNotFound:
		msg := domainagg.MessageOf(err)
		if msg == "" {
			msg = "not found"
		}
		c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msg, Code: string(code)}})
	default:
		c.AbortWithStatusJSON(status, ErrorEnvelope{Error: APIError{Message: msgInternal, Code: string(domainagg.CodeInternal)}})
	}
}

// StatusFor returns the HTTP status used for a domain error code. Codes other
// than validation and not_found surface as 500.
func StatusFor(code domainagg.ErrorCode) int {
	switch code {
	case domainagg.CodeValidation:
		return http.StatusBadRequest
	case domainagg.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
