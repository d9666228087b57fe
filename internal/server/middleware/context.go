package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/banana-boutique/bananaservice/internal/sell"
	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/pkg/assistant"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
)

// App bundles the long-lived clients every handler needs. It is built once
// at startup and read-only afterwards.
type App struct {
	Gateway   gemini.Gateway
	Catalog   shop.Catalog
	Cart      shop.Cart
	Email     shop.Email
	Assistant assistant.Assistant
	Sell      *sell.Pipeline
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{
				Context: c,
				App:     app,
			})
		}
	}
}
