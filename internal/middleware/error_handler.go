package middleware

import (
	"net/http"

	"nepolianStore/pkg/logger"

	jsonres "nepolianStore/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the catch-all for errors that escape the handlers, mostly
// routing and binding failures.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
