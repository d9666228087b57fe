package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// GetCartHandler returns the user's current cart contents.
func GetCartHandler(c echo.Context) error {
	type cartParams struct {
		UserID string `param:"user_id" validate:"required"`
	}

	type cartResponse struct {
		UserID string          `json:"user_id"`
		Items  []shop.CartItem `json:"items"`
	}

	data := new(cartParams)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request")
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	items, err := app.Cart.GetCart(ctx, data.UserID)
	if err != nil {
		logger.Error("Failed to fetch cart", "user_id", data.UserID, "err", err)
		return detail(c, http.StatusInternalServerError, "Error retrieving cart: %v", err)
	}
	if items == nil {
		items = []shop.CartItem{}
	}

	return c.JSON(http.StatusOK, cartResponse{
		UserID: data.UserID,
		Items:  items,
	})
}
