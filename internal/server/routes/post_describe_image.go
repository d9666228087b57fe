package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// DescribeImageHandler describes an uploaded product or person photo.
func DescribeImageHandler(c echo.Context) error {
	type describeBody struct {
		TypePrompt string `form:"type_prompt" validate:"omitempty,oneof=product person"`
	}

	type describeResponse struct {
		ImageID     string `json:"image_id"`
		Description string `json:"description"`
	}

	data := new(describeBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "type_prompt must be 'product' or 'person'")
	}

	prompt := gemini.PromptDescribeProduct
	if data.TypePrompt == "person" {
		prompt = gemini.PromptDescribePerson
	}

	image, err := readImageUpload(c, "image")
	if err != nil {
		return uploadError(c, err)
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	description, err := app.Gateway.Describe(ctx, image, gemini.DescribeSpec{
		Prompt: prompt,
	})
	if err != nil {
		logger.Error("Image description failed", "err", err)
		return detail(c, http.StatusInternalServerError, "Processing error: %v", err)
	}

	return c.JSON(http.StatusOK, describeResponse{
		ImageID:     util.NewImageID(),
		Description: description,
	})
}
