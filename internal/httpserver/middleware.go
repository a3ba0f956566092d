package httpserver

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"brandhub/internal/identity"
	"brandhub/internal/logging"
)

const identityKey = "identity"

type AuthMiddleware struct {
	Resolver *identity.Resolver
}

// ResolveIdentity resolves the optional bearer token for every request under
// /api. Absent token is anonymous; a bad token fails here with 401/403 before
// any handler runs.
func (m *AuthMiddleware) ResolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		ident, err := m.Resolver.Resolve(c.Request().Context(), token)
		if err != nil {
			return err
		}
		c.Set(identityKey, ident)
		return next(c)
	}
}

// RequireAuth escalates the resolved identity to a required one.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := identity.Require(identityFrom(c)); err != nil {
			return err
		}
		return next(c)
	}
}

func identityFrom(c echo.Context) *identity.Identity {
	if v := c.Get(identityKey); v != nil {
		if ident, ok := v.(*identity.Identity); ok {
			return ident
		}
	}
	return nil
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// RequestLogger attaches a request-scoped slog logger to the context and logs
// every completed request in the service's key/value style.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)

			l := base.With(
				"method", c.Request().Method,
				"path", c.Path(),
				"url", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)
			status := c.Response().Status

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				status = c.Response().Status
			}

			switch {
			case status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
