package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/i18n"
	"github.com/guttosm/planning-service/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorHandler logs the errors handlers attached to the gin context. Client
// errors are logged as warnings. A handler that attached an error without
// writing a response gets a translated 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = http.StatusInternalServerError
		}

		level := zerolog.ErrorLevel
		if status < http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		logger.FromContext(c.Request.Context()).WithLevel(level).
			Strs("errors", c.Errors.Errors()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(GetRequestID(c)))
		}
	}
}
