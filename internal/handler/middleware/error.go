package middleware

import (
	"log/slog"
	"net/http"

	"appointment-scheduler/internal/handler/httperr"
	"appointment-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders the last public error left by a handler and logs
// server-side failures with their cause and stack.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.ErrorContext(c.Request.Context(), "request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.Request.URL.Path),
				slog.String("error", ginErr.Err.Error()),
				slog.Any("stack", errs.ExtractStackLines(ginErr.Err, stackLinesLogged)))
			break
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.JSON(http.StatusInternalServerError, resp)
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "error", rec, "path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
