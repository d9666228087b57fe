package routes

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/sell"
	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// SellProductFromQueryHandler runs the full sell pipeline: identify the
// product the user asked for, blend it onto their photo and pitch it.
func SellProductFromQueryHandler(c echo.Context) error {
	type sellBody struct {
		Text      string `form:"text" validate:"required"`
		ModelName string `form:"model_name"`
		Stream    bool   `form:"stream"`
	}

	type sellResponse struct {
		ImageID     string `json:"image_id"`
		ImageBase64 string `json:"image_base64"`
		SellText    string `json:"sell_text"`
		ProductID   string `json:"product_id"`
		ProductName string `json:"product_name"`
	}

	data := new(sellBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "text is required")
	}

	image, err := readImageUpload(c, "image")
	if err != nil {
		return uploadError(c, err)
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	result, err := app.Sell.Run(ctx, sell.Params{
		Image:  image,
		Text:   data.Text,
		Model:  data.ModelName,
		Stream: data.Stream,
	})
	if err != nil {
		var serr *sell.Error
		if errors.As(err, &serr) {
			if serr.Kind == sell.KindUpstream {
				logger.Error("Sell pipeline failed", "err", err)
			}
			return detail(c, serr.HTTPStatus(), "%s", serr.Message)
		}
		logger.Error("Sell pipeline failed", "err", err)
		return detail(c, http.StatusInternalServerError, "Processing error: %v", err)
	}

	return c.JSON(http.StatusOK, sellResponse{
		ImageID:     result.ImageID,
		ImageBase64: base64.StdEncoding.EncodeToString(result.Image),
		SellText:    result.SellText,
		ProductID:   result.ProductID,
		ProductName: result.ProductName,
	})
}
