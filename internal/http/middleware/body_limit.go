package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/fuel-backend/internal/http/response"
)

// DefaultMaxBodyBytes caps JSON request bodies at 10 MB.
const DefaultMaxBodyBytes int64 = 10 << 20

var errBodyTooLarge = errors.New("request body too large")

// BodyLimit rejects requests whose declared length exceeds max and caps the
// reader for the rest, so oversized chunked bodies fail during decoding.
func BodyLimit(max int64) gin.HandlerFunc {
	if max <= 0 {
		max = DefaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			response.RespondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", errBodyTooLarge)
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
