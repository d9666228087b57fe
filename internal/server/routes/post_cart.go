package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// AddCartItemHandler puts a product into the user's cart.
func AddCartItemHandler(c echo.Context) error {
	type addItemBody struct {
		UserID    string `form:"user_id" validate:"required"`
		ProductID string `form:"product_id" validate:"required"`
		Quantity  int32  `form:"quantity"`
	}

	type messageResponse struct {
		Message string `json:"message"`
	}

	data := new(addItemBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "user_id and product_id are required")
	}
	if data.Quantity <= 0 {
		data.Quantity = 1
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	err := app.Cart.AddItem(ctx, data.UserID, data.ProductID, data.Quantity)
	if err != nil {
		logger.Error("Failed to add cart item", "user_id", data.UserID, "err", err)
		return detail(c, http.StatusInternalServerError, "Error adding item to cart: %v", err)
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Item " + data.ProductID + " added to cart for user " + data.UserID,
	})
}
