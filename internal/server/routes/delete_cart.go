package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// EmptyCartHandler removes every item from the user's cart.
func EmptyCartHandler(c echo.Context) error {
	type cartParams struct {
		UserID string `param:"user_id" validate:"required"`
	}

	type messageResponse struct {
		Message string `json:"message"`
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

	if err := app.Cart.EmptyCart(ctx, data.UserID); err != nil {
		logger.Error("Failed to empty cart", "user_id", data.UserID, "err", err)
		return detail(c, http.StatusInternalServerError, "Error emptying cart: %v", err)
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Cart emptied for user " + data.UserID,
	})
}
