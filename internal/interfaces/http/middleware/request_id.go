package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request id
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key for the request id
const RequestIDKey = "request_id"

// RequestID accepts an incoming X-Request-ID or generates one, and
// echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request id from the gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
