package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto"
)

// getRequestID reads the id set by the RequestID middleware, falling back to the inbound header
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the 200 response body using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Stringer("app_code", appErr.Code),
				zap.Any("details", appErr.Details),
				zap.Error(err),
			)
		}

		return c.JSON(appErr.HTTPCode, dto.ErrorResponse{Error: appErr.Message})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

// NewHTTPErrorHandler renders errors that escape the handlers (unknown routes, body limit,
// recovered panics) with the same {"error": ...} body
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
			if he.Code >= http.StatusInternalServerError && logger != nil {
				logger.Error("http.response.error",
					zap.String("request_id", getRequestID(c)),
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			}

			var writeErr error
			if c.Request().Method == http.MethodHead {
				writeErr = c.NoContent(he.Code)
			} else {
				writeErr = c.JSON(he.Code, dto.ErrorResponse{Error: msg})
			}
			if writeErr != nil && logger != nil {
				logger.Error("failed to write error response", zap.Error(writeErr))
			}
			return
		}

		if writeErr := HandleError(logger, c, err); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
