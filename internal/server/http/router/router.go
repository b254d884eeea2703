package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/ecosystuz/tezkor-backend/internal/server/http/handlers"
	"github.com/ecosystuz/tezkor-backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.DispatchFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.Default())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)
	masterHandler := handlers.NewMasterHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.GET("/ping", handlers.Ping)

	users := api.Group("/users")
	users.POST("/register", userHandler.Register)
	users.GET("/check/:chatId", userHandler.Check)
	users.PATCH("/subscription/:chatId", userHandler.Subscription)
	users.GET("/subscribers/analytics", userHandler.Stats)
	users.PATCH("/update-language/:chatId", userHandler.UpdateLanguage)
	users.PATCH("/update-name/:chatId", userHandler.UpdateName)

	masters := api.Group("/masters")
	masters.POST("/create", masterHandler.Create)
	masters.GET("/all", masterHandler.List)
	masters.GET("/available/:serviceType", masterHandler.ListAvailable)
	masters.PUT("/assign/:orderId", orderHandler.Assign)

	orders := api.Group("/orders")
	orders.POST("/create", orderHandler.Create)
	orders.GET("/user/:chatId", orderHandler.ListByChat)
	orders.GET("/all", orderHandler.ListAll)
	orders.PUT("/:orderId", orderHandler.Update)
	orders.PUT("/:orderId/pay", orderHandler.Pay)

	return engine
}
