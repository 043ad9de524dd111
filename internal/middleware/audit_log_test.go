package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func auditContext(operator string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPatch, "/api/plans/abc", nil)
	c.Request.Header.Set("User-Agent", "planner-ui")
	c.Set(string(RequestIDKey), "req-1")
	if operator != "" {
		c.Set(OperatorKey, operator)
	}
	return c
}

func TestAuditLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		operator string
		log      func(*AsyncLogger, *gin.Context)
		match    func(*model.LogEntry) bool
	}{
		{
			name:     "edit with operator",
			operator: "marta",
			log: func(al *AsyncLogger, c *gin.Context) {
				AuditLog(al, c, model.ActionPlanEdit, "abc", "Plan edited", map[string]interface{}{"field": "meters"})
			},
			match: func(e *model.LogEntry) bool {
				return e.ActionType == model.ActionPlanEdit &&
					e.Level == "info" &&
					e.PlanID == "abc" &&
					e.Operator == "marta" &&
					e.RequestID == "req-1" &&
					e.Method == http.MethodPatch &&
					e.Path == "/api/plans/abc" &&
					e.UserAgent == "planner-ui" &&
					e.Fields["field"] == "meters"
			},
		},
		{
			name: "anonymous delete",
			log: func(al *AsyncLogger, c *gin.Context) {
				AuditLog(al, c, model.ActionPlanDelete, "abc", "Plan deleted", nil)
			},
			match: func(e *model.LogEntry) bool {
				return e.ActionType == model.ActionPlanDelete && e.Operator == "" && e.Fields == nil
			},
		},
		{
			name:     "failed save",
			operator: "marta",
			log: func(al *AsyncLogger, c *gin.Context) {
				AuditLogError(al, c, model.ActionPlanSave, "abc", "Plan save failed", errors.New("duplicate key"), nil)
			},
			match: func(e *model.LogEntry) bool {
				return e.ActionType == model.ActionPlanSave && e.Level == "error" && e.Error == "duplicate key"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLoggingService)
			svc.On("CreateLog", mock.Anything, mock.MatchedBy(tt.match)).Return(nil).Once()
			al := NewAsyncLogger(svc, DefaultAsyncLoggerConfig())
			require.NotNil(t, al)

			tt.log(al, auditContext(tt.operator))
			al.Stop()

			svc.AssertExpectations(t)
		})
	}
}

func TestAuditLog_NilLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := auditContext("marta")

	assert.NotPanics(t, func() {
		AuditLog(nil, c, model.ActionPlanSave, "abc", "Plan saved", nil)
		AuditLogError(nil, c, model.ActionPlanSave, "abc", "Plan save failed", nil, nil)
	})
}
