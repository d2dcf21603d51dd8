package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the Gin context key holding the request ID.
const RequestIDKey = "request_id"

// RequestID tags every request with an ID and attaches a request-scoped
// logger to the context. Incoming X-Request-ID headers are honored so IDs
// survive proxy hops.
func RequestID(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		reqLog := log.With().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Set(RequestIDKey, id)
		c.Set(loggerKey, reqLog)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

const loggerKey = "logger"

// Logger returns the request-scoped logger set by RequestID. Outside of
// that middleware it returns a disabled logger.
func Logger(c *gin.Context) zerolog.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(zerolog.Logger); ok {
			return log
		}
	}
	return zerolog.Nop()
}
