package httpserver

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"brandhub/internal/apperr"
	"brandhub/internal/logging"
	"brandhub/internal/service"
	"brandhub/internal/transport"
)

type BrandHTTP struct {
	Svc *service.BrandService
}

func (h *BrandHTTP) List(c echo.Context) error {
	brands, err := h.Svc.List(c.Request().Context(), identityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brands)
}

func (h *BrandHTTP) Get(c echo.Context) error {
	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	brand, err := h.Svc.Get(c.Request().Context(), identityFrom(c), brandID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

func (h *BrandHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.create")

	var req transport.CreateBrandRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("brand_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	brand, err := h.Svc.Create(ctx, identityFrom(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, brand)
}

func (h *BrandHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "brand.update")

	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	var req transport.UpdateBrandRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("brand_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	brand, err := h.Svc.Update(ctx, identityFrom(c), brandID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, brand)
}

func (h *BrandHTTP) Delete(c echo.Context) error {
	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	brand, err := h.Svc.Delete(c.Request().Context(), identityFrom(c), brandID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Message{
		Message: fmt.Sprintf("Deleted brand: %s", brand.Name),
	})
}

func brandIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("brand_id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("brand_id must be a UUID")
	}
	return id, nil
}
