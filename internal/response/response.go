package response

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the standardized API response shape. Every endpoint returns
// it: successful responses carry Data, failures carry Message plus an
// optional underlying error string.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success sends a successful JSON response with the given status and data.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Envelope{Success: true, Data: data})
}

// Fail sends a failure response with a human-readable message.
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Success: false, Message: message})
}

// FailWithError sends a failure response carrying the underlying error
// text alongside the message. Used for 500s where the diagnostic matters.
func FailWithError(c *gin.Context, statusCode int, message string, err error) {
	env := Envelope{Success: false, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	c.JSON(statusCode, env)
}

// AbortFail aborts the middleware chain and sends a failure response.
func AbortFail(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Message: message})
}
