package middleware

import (
	"log/slog"
	"net/http"

	"click-collect/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers attached with c.Error but did not
// write themselves. Public errors carry their response in Meta; any other
// error is classified and answered with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		status := httperr.StatusOf(last.Err)
		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"status", status,
			"error", last.Error(),
		)

		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status >= http.StatusInternalServerError {
			resp.Error.Message = "Internal server error"
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}

// NotFound answers unknown routes in the API error shape.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusNotFound}
		resp.Error.Message = "Route not found"
		c.AbortWithStatusJSON(http.StatusNotFound, resp)
	}
}
