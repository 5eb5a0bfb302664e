package main

import (
	"context"

	"github.com/Behyna/sms-services/clickatell/internal/config"
	"github.com/Behyna/sms-services/clickatell/internal/sandbox"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			fiber.New,
			NewStore,
			NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func startServer(app *fiber.App, handler *sandbox.Handler, cfg *config.Config,
	logger *zap.Logger, lc fx.Lifecycle,
) {
	sandbox.SetupRoutes(app, handler)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("sandbox gateway listening", zap.String("port", cfg.Sandbox.Port))
			go app.Listen(cfg.Sandbox.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func NewStore(cfg *config.Config) *sandbox.Store {
	return sandbox.NewStore(cfg.Sandbox.Balance)
}

func NewHandler(cfg *config.Config, store *sandbox.Store, logger *zap.Logger) *sandbox.Handler {
	return sandbox.NewHandler(cfg.Sandbox, store, logger)
}
