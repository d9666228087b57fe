package routes

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	"github.com/labstack/echo/v4"
)

const fashionModel = "gemini-2.0-flash"

// AssistantFashionHandler compliments the user's outfit and suggests
// matching boutique items based on their photo.
func AssistantFashionHandler(c echo.Context) error {
	type fashionResponse struct {
		ImageID     string `json:"image_id"`
		Description string `json:"description"`
	}

	image, err := readImageUpload(c, "image")
	if err != nil {
		return uploadError(c, err)
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	description, err := app.Gateway.Describe(ctx, image, gemini.DescribeSpec{
		Prompt: gemini.PromptAssistantFashion,
		Model:  fashionModel,
	})
	if err != nil {
		logger.Error("Fashion assistant failed", "err", err)
		return detail(c, http.StatusInternalServerError, "Processing error: %v", err)
	}

	return c.JSON(http.StatusOK, fashionResponse{
		ImageID:     util.NewImageID(),
		Description: description,
	})
}
