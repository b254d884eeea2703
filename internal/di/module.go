package di

import (
	"go.uber.org/fx"

	"github.com/ecosystuz/tezkor-backend/internal/adapter/keepalive"
	"github.com/ecosystuz/tezkor-backend/internal/app"
	"github.com/ecosystuz/tezkor-backend/internal/config"
	"github.com/ecosystuz/tezkor-backend/internal/logger"
	"github.com/ecosystuz/tezkor-backend/internal/server/http/handlers"
	"github.com/ecosystuz/tezkor-backend/internal/server/http/router"
	"github.com/ecosystuz/tezkor-backend/internal/storage/postgres"
	"github.com/ecosystuz/tezkor-backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		keepalive.Module,
		usecase.Module,
		fx.Provide(func(f *app.DispatchFacade) handlers.DispatchFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
