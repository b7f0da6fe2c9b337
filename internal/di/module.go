package di

import (
	"go.uber.org/fx"

	"github.com/greenloop/greenpoints/internal/adapter/cache"
	"github.com/greenloop/greenpoints/internal/app"
	"github.com/greenloop/greenpoints/internal/config"
	"github.com/greenloop/greenpoints/internal/logger"
	"github.com/greenloop/greenpoints/internal/pkg/auth"
	"github.com/greenloop/greenpoints/internal/server/http/router"
	"github.com/greenloop/greenpoints/internal/storage/postgres"
	"github.com/greenloop/greenpoints/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
