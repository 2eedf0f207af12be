package router

import (
	"nepolianStore/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	products := api.Group("/products")

	products.GET("", handler.GetProducts)
	products.GET("/:id", handler.GetProductByID)
}

func SetupProductAdminRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	admin := api.Group("/admin/products", authRequired, adminOnly)

	admin.GET("", handler.GetAllProducts)
	admin.POST("", handler.CreateProduct)
	admin.PUT("/:id", handler.UpdateProduct)
	admin.DELETE("/:id", handler.DeleteProduct)
	admin.POST("/image", handler.UploadImage)
}

func SetCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)

	cart.GET("", handler.GetCart)
	cart.POST("", handler.AddToCart)
	cart.PUT("/:id", handler.SetQuantity)
	cart.DELETE("/:id", handler.RemoveFromCart)
	cart.DELETE("", handler.ClearCart)
}

func SetCheckoutRoutes(api *echo.Group, handler *rest.CheckoutHandler, authRequired echo.MiddlewareFunc) {
	checkout := api.Group("/checkout", authRequired)

	checkout.GET("", handler.GetSession)
	checkout.POST("/payment-method", handler.SelectPaymentMethod)
	checkout.POST("/address", handler.SubmitAddress)
	checkout.POST("/confirm", handler.Confirm)
}

func SetOrdersConsoleRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/orders", authRequired, adminOnly)

	orders.GET("", handler.GetOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PATCH("/:id/delivered", handler.MarkDelivered)
}

func SetContactRoutes(api *echo.Group, handler *rest.ContactHandler) {
	api.POST("/contact", handler.SubmitContact)
}

func SetPaymentRoutes(api *echo.Group, handler *rest.PaymentHandler) {
	payment := api.Group("/payment")

	payment.GET("/success", handler.PaymentSuccess)
	payment.GET("/failure", handler.PaymentFailure)
}
