package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "mercadopago_provider/docs"
	"mercadopago_provider/internal/adapter/http/routes"
	"mercadopago_provider/internal/infrastructure/config"
	"mercadopago_provider/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Mercado Pago Payment Provider API
// @version         1.0
// @description     Mercado Pago payment provider for the storefront checkout: preferences, webhook notifications and order payment operations.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		logger.L().Error("failed to startup the application", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
