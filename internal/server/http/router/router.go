package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/greenloop/greenpoints/internal/server/http/handlers"
	"github.com/greenloop/greenpoints/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.RewardsFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	rewardHandler := handlers.NewRewardHandler(facade)
	balanceHandler := handlers.NewBalanceHandler(facade)
	exchangeHandler := handlers.NewExchangeHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")
	api.GET("/rewards", rewardHandler.List)
	api.GET("/rewards/:id", rewardHandler.Get)

	user := api.Group("/user")
	user.POST("/register", authHandler.Register)
	user.POST("/login", authHandler.Login)

	userAuth := user.Group("")
	userAuth.Use(middleware.AuthRequired(facade))
	userAuth.GET("/balance", balanceHandler.Summary)
	userAuth.POST("/exchanges", exchangeHandler.Create)
	userAuth.GET("/exchanges", exchangeHandler.List)
	userAuth.GET("/exchanges/:id", exchangeHandler.Get)
	userAuth.POST("/exchanges/:id/cancel", exchangeHandler.Cancel)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade), middleware.AdminRequired(facade))
	admin.POST("/rewards", adminHandler.CreateReward)
	admin.PUT("/rewards/:id", adminHandler.UpdateReward)
	admin.DELETE("/rewards/:id", adminHandler.DeleteReward)
	admin.POST("/exchanges/:id/status", adminHandler.UpdateExchangeStatus)
	admin.POST("/points/credit", adminHandler.CreditPoints)

	return engine
}
