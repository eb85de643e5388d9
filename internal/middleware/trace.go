package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TraceContextKey is where the request trace id lives in the context.
const TraceContextKey = "traceID"

// TraceMiddleware tags every request with a trace id, reusing the
// caller's X-Trace-Id header when present.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-Id")
		if traceID == "" {
			traceID = strings.ReplaceAll(uuid.New().String(), "-", "")
		}

		c.Set(TraceContextKey, traceID)
		ctx := context.WithValue(c.Request.Context(), TraceContextKey, traceID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Trace-Id", traceID)
		c.Next()
	}
}
