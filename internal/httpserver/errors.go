package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"brandhub/internal/apperr"
	"brandhub/internal/logging"
)

// NewHTTPErrorHandler is the single boundary where typed errors become the
// JSON envelope {"message": ...}. Nothing below the transport knows about
// HTTP response shapes.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var msg any = "Internal Server Error"

		var ae *apperr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status
			msg = ae.Message
		case errors.As(err, &he):
			status = he.Code
			msg = he.Message
		default:
			l := logging.FromContext(c.Request().Context())
			l.Error("unhandled_error", "status", 500, "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, echo.Map{"message": msg})
	}
}
