package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/model"
)

// AuditLog records a plan change made through the API. The entry carries
// the request and the operator identity and is written asynchronously.
func AuditLog(sink *AsyncLogger, c *gin.Context, actionType, planID, message string, fields map[string]interface{}) {
	sink.Log(auditEntry(c, "info", actionType, planID, message, fields))
}

// AuditLogError records a failed plan change.
func AuditLogError(sink *AsyncLogger, c *gin.Context, actionType, planID, message string, err error, fields map[string]interface{}) {
	entry := auditEntry(c, "error", actionType, planID, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	sink.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, planID, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Operator:   GetOperator(c),
		ActionType: actionType,
		PlanID:     planID,
		Fields:     fields,
	}
}
