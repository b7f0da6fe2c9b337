package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/greenloop/greenpoints/internal/app"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(func(facade *app.RewardsFacade, logger *slog.Logger) *gin.Engine {
	return Setup(facade, logger)
})
