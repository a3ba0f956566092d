package httpserver

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"brandhub/internal/apperr"
	"brandhub/internal/logging"
	"brandhub/internal/service"
	"brandhub/internal/transport"
	"brandhub/internal/util"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) List(c echo.Context) error {
	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	products, err := h.Svc.List(c.Request().Context(), identityFrom(c), brandID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) Search(c echo.Context) error {
	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	q := c.QueryParam("q")
	if q == "" {
		return apperr.Validation("q must not be empty")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, products, err := h.Svc.Search(c.Request().Context(), identityFrom(c), brandID, q, offset, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}

// Create accepts a multipart form (title, description, discount_rate and an
// optional image file) the way the original upload endpoint did.
func (h *ProductHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	image, err := imageBytes(c)
	if err != nil {
		l.Warn("product_create_error", "status", 400, "reason", "unreadable image", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image")
	}

	product, err := h.Svc.Create(ctx, identityFrom(c), brandID, req, image)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}
	title, err := titleQuery(c)
	if err != nil {
		return err
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("product_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.Update(ctx, identityFrom(c), brandID, title, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) Delete(c echo.Context) error {
	brandID, err := brandIDParam(c)
	if err != nil {
		return err
	}
	title, err := titleQuery(c)
	if err != nil {
		return err
	}

	product, err := h.Svc.Delete(c.Request().Context(), identityFrom(c), brandID, title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transport.Message{
		Message: fmt.Sprintf("Deleted product: %s", product.Title),
	})
}

func titleQuery(c echo.Context) (string, error) {
	title := c.QueryParam("title")
	if title == "" {
		return "", apperr.Validation("title query parameter is required")
	}
	return title, nil
}

func imageBytes(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
