package server

import (
	"net/http"

	"github.com/banana-boutique/bananaservice/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Banana service is running!"})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Product catalog routes
	e.GET("/products", routes.GetProductsHandler)
	e.GET("/products/:id", routes.GetProductByIDHandler)
	e.GET("/products-name/:name", routes.GetProductsByNameHandler)

	// Image routes
	e.POST("/remix-images", routes.RemixImagesHandler)
	e.POST("/describe-image", routes.DescribeImageHandler)
	e.POST("/assistant-fashion", routes.AssistantFashionHandler)
	e.POST("/sell-product-from-query", routes.SellProductFromQueryHandler)

	// Cart routes
	e.POST("/cart/add-item", routes.AddCartItemHandler)
	e.GET("/cart/:user_id", routes.GetCartHandler)
	e.DELETE("/cart/:user_id", routes.EmptyCartHandler)

	// Email routes
	e.POST("/email/send-confirmation", routes.SendOrderConfirmationHandler)

	// Shopping assistant
	e.POST("/assistant", routes.AssistantHandler)
}
