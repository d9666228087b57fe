package routes

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	_ "github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
)

// AssistantHandler answers a free-form shopping question. The optional
// image field carries a base64-encoded photo, with or without a data URL
// prefix.
func AssistantHandler(c echo.Context) error {
	type assistantBody struct {
		Message string `json:"message" validate:"required"`
		Image   string `json:"image"`
	}

	type assistantResponse struct {
		Content string `json:"content"`
	}

	data := new(assistantBody)
	if err := c.Bind(data); err != nil {
		return detail(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(data); err != nil {
		return detail(c, http.StatusBadRequest, "message is required")
	}

	var image []byte
	if data.Image != "" {
		encoded := data.Image
		if idx := strings.Index(encoded, ","); idx >= 0 && strings.HasPrefix(encoded, "data:") {
			encoded = encoded[idx+1:]
		}
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return detail(c, http.StatusBadRequest, "image must be base64 encoded")
		}
		image = decoded
	}

	app := c.(*middleware.AppContext).App
	ctx := c.Request().Context()

	content, err := app.Assistant.Chat(ctx, data.Message, image)
	if err != nil {
		logger.Error("Assistant chat failed", "err", err)
		return detail(c, http.StatusInternalServerError, "Processing error: %v", err)
	}

	return c.JSON(http.StatusOK, assistantResponse{Content: content})
}
