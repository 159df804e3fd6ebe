package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/threadline/ratio-service/internal/domain/dto"
	"github.com/threadline/ratio-service/internal/i18n"
	"github.com/threadline/ratio-service/internal/logger"
)

// ErrorHandler is the last-resort error surface: any sink error a handler
// attached to the context without writing a response becomes a localized
// 500 here, logged with the request ID.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("error", err.Error()).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
		c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
