package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetProductsHandler lists the full boutique catalog.
func GetProductsHandler(c echo.Context) error {
	type productsResponse struct {
		Products []shop.Product `json:"products"`
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	products, err := app.Catalog.ListProducts(ctx)
	if err != nil {
		logger.Error("Failed to list products", "err", err)
		return detail(c, http.StatusInternalServerError, "Error fetching products: %v", err)
	}
	if products == nil {
		products = []shop.Product{}
	}

	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// GetProductByIDHandler looks up a single product. Catalog failures map to
// 404, matching the storefront's expectations for unknown IDs.
func GetProductByIDHandler(c echo.Context) error {
	type productParams struct {
		ID string `param:"id" validate:"required"`
	}

	data := new(productParams)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	product, err := app.Catalog.GetProduct(ctx, data.ID)
	if err != nil {
		return detail(c, http.StatusNotFound, "Product not found: %v", err)
	}

	return c.JSON(http.StatusOK, product)
}

// GetProductsByNameHandler returns all catalog entries whose name matches
// exactly.
func GetProductsByNameHandler(c echo.Context) error {
	type productNameParams struct {
		Name string `param:"name" validate:"required"`
	}

	type productsResponse struct {
		Products []shop.Product `json:"products"`
	}

	data := new(productNameParams)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	products, err := app.Catalog.FindByName(ctx, data.Name)
	if err != nil {
		logger.Error("Failed to search products", "name", data.Name, "err", err)
		return detail(c, http.StatusInternalServerError, "Error searching products: %v", err)
	}
	if products == nil {
		products = []shop.Product{}
	}

	return c.JSON(http.StatusOK, productsResponse{Products: products})
}
