package routes

import (
	"fmt"
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// RemixImagesHandler blends two uploaded images with Gemini and returns the
// generated PNG, tagging the response with a fresh image ID.
func RemixImagesHandler(c echo.Context) error {
	type remixBody struct {
		Prompt string `form:"prompt" validate:"required"`
		Stream bool   `form:"stream"`
	}

	data := new(remixBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "prompt is required")
	}

	image1, err := readImageUpload(c, "image1")
	if err != nil {
		return uploadError(c, err)
	}
	image2, err := readImageUpload(c, "image2")
	if err != nil {
		return uploadError(c, err)
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	result, err := app.Gateway.Remix(ctx, gemini.RemixParams{
		Image1: image1,
		Image2: image2,
		Prompt: data.Prompt,
		Stream: data.Stream,
	})
	if err != nil {
		logger.Error("Image remix failed", "err", err)
		return detail(c, http.StatusInternalServerError, "Processing error: %v", err)
	}

	imageID := util.NewImageID()
	c.Response().Header().Set("X-Image-ID", imageID)
	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=remixed_%s.png", imageID),
	)

	return c.Blob(http.StatusOK, "image/png", result)
}
