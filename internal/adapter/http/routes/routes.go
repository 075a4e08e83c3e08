package routes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "mercadopago_provider/docs"
	"mercadopago_provider/internal/adapter/http/handlers"
	"mercadopago_provider/internal/adapter/persistence/repository"
	"mercadopago_provider/internal/infrastructure/config"
	"mercadopago_provider/internal/infrastructure/database"
	"mercadopago_provider/internal/infrastructure/logger"
	"mercadopago_provider/internal/infrastructure/payments"
	"mercadopago_provider/internal/usecase"
	"mercadopago_provider/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers are the HTTP entry points the router exposes.
type Handlers struct {
	Webhook        *handlers.WebhookHandler
	PaymentSession *handlers.PaymentSessionHandler
	Order          *handlers.OrderHandler
}

// Store is the host persistence selected by STORE_DRIVER.
type Store struct {
	Carts   interfaces.ICartRepository
	Orders  interfaces.IOrderRepository
	Regions interfaces.IRegionRepository
	Tx      interfaces.ITransactionManager
	Close   func() error
}

// Run wires the service and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.L().Warn("[store] close failed", zap.Error(err))
		}
	}()

	h, err := BuildHandlers(cfg, store)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L().Info("[http] listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	logger.L().Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares, swagger and every route.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addWebhookRoutes(router, h.Webhook)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, h.PaymentSession, h.Order)

	return router
}

// BuildHandlers wires the gateway, the use cases and the handlers over store.
func BuildHandlers(cfg config.Config, store Store) (Handlers, error) {
	gateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken, cfg.GatewayTimeout, cfg.GatewayMock)
	if err != nil {
		return Handlers{}, fmt.Errorf("mercado pago gateway not configured: %w", err)
	}

	provider := usecase.NewMercadoPagoProviderUseCase(gateway, store.Regions, usecase.ProviderOptions{
		WebhookURL:     cfg.WebhookURL,
		SuccessBackURL: cfg.SuccessBackURL,
	})
	cartUseCase := usecase.NewCartUseCase(store.Carts, store.Regions, provider)
	orderUseCase := usecase.NewOrderUseCase(store.Orders, store.Carts, store.Regions, store.Tx, provider)
	webhookUseCase := usecase.NewWebhookUseCase(provider, cartUseCase, orderUseCase, store.Tx)

	var verifier interfaces.IWebhookSignatureVerifier
	if cfg.WebhookSecret != "" {
		verifier = payments.NewSignatureVerifier(cfg.WebhookSecret)
	} else {
		logger.L().Warn("[webhook] MERCADOPAGO_WEBHOOK_SECRET not set, signatures are not verified")
	}

	return Handlers{
		Webhook:        handlers.NewWebhookHandler(webhookUseCase, verifier),
		PaymentSession: handlers.NewPaymentSessionHandler(cartUseCase, usecase.MercadoPagoProviderID),
		Order:          handlers.NewOrderHandler(orderUseCase),
	}, nil
}

// OpenStore connects to the configured host store.
func OpenStore(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return Store{}, err
		}
		if err := repository.EnsurePostgresSchema(ctx, db); err != nil {
			_ = db.Close()
			return Store{}, err
		}
		return postgresStore(db), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return Store{}, err
		}
		return Store{
			Carts:   repository.NewCartDynamoRepository(ddb),
			Orders:  repository.NewOrderDynamoRepository(ddb),
			Regions: repository.NewRegionDynamoRepository(ddb),
			Tx:      repository.NewDynamoTransactionManager(ddb),
			Close:   func() error { return nil },
		}, nil
	}
}

func postgresStore(db *sql.DB) Store {
	return Store{
		Carts:   repository.NewCartPostgresRepository(db),
		Orders:  repository.NewOrderPostgresRepository(db),
		Regions: repository.NewRegionPostgresRepository(db),
		Tx:      repository.NewPostgresTransactionManager(db),
		Close:   db.Close,
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(logger.GinMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromCtx(c.Request.Context()).Error("[http] recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
