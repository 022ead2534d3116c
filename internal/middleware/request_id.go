package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	logEntryKey     = "log_entry"
)

// RequestID tags every request with an id, taken from the X-Request-ID
// header when the client sent a valid uuid, and stores a logrus entry
// carrying it for the handlers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Set(logEntryKey, logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
		}))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Log returns the request's logrus entry, or the standard logger's when the
// RequestID middleware did not run.
func Log(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(logEntryKey); ok {
		if entry, ok := v.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
