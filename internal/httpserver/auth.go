package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brandhub/internal/logging"
	"brandhub/internal/service"
	"brandhub/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

// AccessToken exchanges form credentials (username = email) for a bearer
// access token.
func (h *AuthHTTP) AccessToken(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.access_token")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, transport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
