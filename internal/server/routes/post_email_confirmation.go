package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// SendOrderConfirmationHandler forwards an order confirmation to the email
// service.
func SendOrderConfirmationHandler(c echo.Context) error {
	type confirmationBody struct {
		Email              string `form:"email" validate:"required,email"`
		OrderID            string `form:"order_id" validate:"required"`
		ShippingTrackingID string `form:"shipping_tracking_id" validate:"required"`
		StreetAddress      string `form:"street_address" validate:"required"`
		City               string `form:"city" validate:"required"`
		State              string `form:"state" validate:"required"`
		Country            string `form:"country" validate:"required"`
		ZipCode            string `form:"zip_code" validate:"required"`
	}

	type messageResponse struct {
		Message string `json:"message"`
	}

	data := new(confirmationBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "All order fields are required")
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	err := app.Email.SendOrderConfirmation(ctx, shop.OrderConfirmation{
		Email:              data.Email,
		OrderID:            data.OrderID,
		ShippingTrackingID: data.ShippingTrackingID,
		StreetAddress:      data.StreetAddress,
		City:               data.City,
		State:              data.State,
		Country:            data.Country,
		ZipCode:            data.ZipCode,
	})
	if err != nil {
		logger.Error("Failed to send confirmation email", "order_id", data.OrderID, "err", err)
		return detail(c, http.StatusInternalServerError, "Error sending email: %v", err)
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Confirmation email sent to " + data.Email,
	})
}
