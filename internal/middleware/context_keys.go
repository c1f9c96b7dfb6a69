package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// subjectKey is the key used to store the authenticated token subject.
const subjectKey = contextKey("subject")

// GetSubjectFromContext retrieves the authenticated token subject from the Gin context.
// It returns the subject and a boolean indicating if it was found.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(subjectKey)); exists {
		subject, ok := v.(string)
		return subject, ok
	}
	return GetSubjectFromCtx(c.Request.Context())
}

// GetSubjectFromCtx retrieves the authenticated token subject from a standard context.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok && subject != ""
}

// GetRequestIDFromCtx returns the request ID assigned by the logging middleware.
func GetRequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
