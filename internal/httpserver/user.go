package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brandhub/internal/logging"
	"brandhub/internal/service"
	"brandhub/internal/transport"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.create")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("user_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Register(ctx, identityFrom(c), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user)
}
