package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brandhub/internal/identity"
	"brandhub/internal/transport"
)

type Deps struct {
	Resolver *identity.Resolver
	Auth     *AuthHTTP
	Users    *UserHTTP
	Brands   *BrandHTTP
	Products *ProductHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, transport.Message{Message: "Hello!"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := &AuthMiddleware{Resolver: d.Resolver}

	api := e.Group("/api", authMW.ResolveIdentity)
	api.POST("/users", d.Users.Create)
	api.POST("/auth/access-token", d.Auth.AccessToken)

	brands := api.Group("/brands")
	brands.GET("", d.Brands.List, authMW.RequireAuth)
	brands.POST("", d.Brands.Create, authMW.RequireAuth)
	brands.GET("/:brand_id", d.Brands.Get)
	brands.PATCH("/:brand_id", d.Brands.Update, authMW.RequireAuth)
	brands.DELETE("/:brand_id", d.Brands.Delete, authMW.RequireAuth)

	brands.GET("/:brand_id/products", d.Products.List)
	brands.GET("/:brand_id/products/search", d.Products.Search)
	brands.POST("/:brand_id/products", d.Products.Create, authMW.RequireAuth)
	brands.PATCH("/:brand_id/products", d.Products.Update, authMW.RequireAuth)
	brands.DELETE("/:brand_id/products", d.Products.Delete, authMW.RequireAuth)
}
