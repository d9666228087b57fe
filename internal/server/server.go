package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/banana-boutique/bananaservice/internal/server/middleware"
	"github.com/banana-boutique/bananaservice/internal/sell"
	"github.com/banana-boutique/bananaservice/internal/shop"
	"github.com/banana-boutique/bananaservice/internal/util"
	"github.com/banana-boutique/bananaservice/pkg/assistant"
	"github.com/banana-boutique/bananaservice/pkg/gemini"
	"github.com/banana-boutique/bananaservice/pkg/logger"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, err := gemini.NewClient(ctx, gemini.ClientParams{
		APIKey: util.MustGetEnv("GEMINI_API_KEY"),
	})
	if err != nil {
		logger.Fatal("Failed to create Gemini client", "err", err)
	}

	shopper, err := assistant.NewClient(assistant.ClientParams{
		APIKey: util.MustGetEnv("OPENAI_API_KEY"),
	})
	if err != nil {
		logger.Fatal("Failed to create assistant client", "err", err)
	}

	clients, err := shop.Dial(shop.ClientParams{
		CatalogAddr: util.GetEnvString("PRODUCT_CATALOG_SERVICE_ADDR", "productcatalogservice:3550"),
		CartAddr:    util.GetEnvString("CART_SERVICE_ADDR", "cartservice:7070"),
		EmailAddr:   util.GetEnvString("EMAIL_SERVICE_ADDR", "emailservice:5000"),
	})
	if err != nil {
		logger.Fatal("Failed to dial boutique services", "err", err)
	}
	defer clients.Close()

	app := &mid.App{
		Gateway:   gateway,
		Catalog:   clients.Catalog,
		Cart:      clients.Cart,
		Email:     clients.Email,
		Assistant: shopper,
		Sell: &sell.Pipeline{
			Gateway:   gateway,
			Catalog:   clients.Catalog,
			ImageRoot: util.GetEnvString("PRODUCT_IMAGE_ROOT", "."),
		},
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit("32M"))

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
