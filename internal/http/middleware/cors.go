package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const defaultFrontendURL = "http://localhost:3000"

var localDevOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5174",
}

// CORS allows the configured frontend origin plus the local dev servers, with credentials.
func CORS(frontendURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(frontendURL),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", headerRequestID, headerTraceID},
		ExposeHeaders:    []string{headerRequestID, headerTraceID},
		AllowCredentials: true,
	})
}

func allowedOrigins(frontendURL string) []string {
	primary := strings.TrimRight(strings.TrimSpace(frontendURL), "/")
	if primary == "" {
		primary = defaultFrontendURL
	}
	out := []string{primary}
	for _, o := range localDevOrigins {
		if o != primary {
			out = append(out, o)
		}
	}
	return out
}
