package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/panganku/internal/server/http/handlers"
	"github.com/polkiloo/panganku/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)

	engine.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	engine.POST("/payment/notification", paymentHandler.Notification)

	engine.GET("/products", catalogHandler.Products)
	engine.GET("/products/:id", catalogHandler.Product)
	engine.GET("/products/:id/reviews", reviewHandler.List)
	engine.GET("/categories", catalogHandler.Categories)

	user := engine.Group("")
	user.Use(middleware.AuthRequired(facade))
	user.POST("/products/:id/reviews", reviewHandler.Create)

	user.GET("/cart", cartHandler.Get)
	user.POST("/cart/items", cartHandler.AddItem)
	user.PATCH("/cart/items/:itemId", cartHandler.SetItem)
	user.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)
	user.POST("/cart/checkout", cartHandler.Checkout)

	user.GET("/profile/orders", orderHandler.List)
	user.GET("/profile/order/:id", orderHandler.Get)
	user.PATCH("/profile/order/:id", orderHandler.UpdateOwnStatus)
	user.GET("/orders/:id/status", orderHandler.Status)

	user.GET("/profile/addresses", profileHandler.Addresses)
	user.POST("/profile/addresses", profileHandler.CreateAddress)
	user.PUT("/profile/addresses/:id", profileHandler.UpdateAddress)
	user.DELETE("/profile/addresses/:id", profileHandler.DeleteAddress)

	user.GET("/notifications", profileHandler.Notifications)
	user.PATCH("/notifications/:id/read", profileHandler.MarkRead)

	admin := engine.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired())
	admin.GET("/orders", orderHandler.AdminList)
	admin.PATCH("/order/:id", orderHandler.AdminUpdateStatus)

	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)

	admin.POST("/reviews/:id/reply", reviewHandler.Reply)

	return engine
}
