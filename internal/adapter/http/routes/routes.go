package routes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	_ "paypal_checkout/docs" // This will be auto-generated
	"paypal_checkout/internal/adapter/http/handlers"
	"paypal_checkout/internal/adapter/http/middleware"
	repository2 "paypal_checkout/internal/adapter/persistence/repository"
	"paypal_checkout/internal/config"
	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/infrastructure/database"
	"paypal_checkout/internal/infrastructure/events"
	"paypal_checkout/internal/infrastructure/payments"
	"paypal_checkout/internal/usecase"
	"paypal_checkout/internal/usecase/interfaces"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, publisher, err := buildPaymentUseCase(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to wire the payment use case: %v", err.Error())
	}

	router := NewRouter(cfg, uc)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           withCORS(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("[payment][routes] listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	<-ctx.Done()
	log.Printf("[payment][routes] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[payment][routes] server shutdown failed err=%v", err)
	}
	closePublisher(publisher)
}

// closePublisher flushes and closes publishers that hold a connection.
func closePublisher(publisher interfaces.IEventPublisher) {
	closer, ok := publisher.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Printf("[payment][routes] event publisher close failed err=%v", err)
	}
}

// withCORS lets the front end call the confirm endpoint from the browser.
func withCORS(cfg *config.Config, h http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(h)
}

// NewRouter registers middlewares, docs, metrics and the API routes.
func NewRouter(cfg *config.Config, uc usecase.IPaymentUseCase) *gin.Engine {
	router := gin.New()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	setMiddlewares(router, middleware.NewHTTPMetrics(reg))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathMetrics, gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	paymentHandler := handlers.NewPaymentHandler(uc, cfg.FrontendSuccessURL, cfg.PayerIDRequired())

	api := router.Group(PathAPI)
	addPingRoutes(router)
	addPaymentRoutes(api, paymentHandler)
	return router
}

func buildPaymentUseCase(ctx context.Context, cfg *config.Config) (*usecase.PaymentUseCase, interfaces.IEventPublisher, error) {
	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		return nil, nil, err
	}

	repo, err := newPaymentRecordRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	publisher := events.NewPublisher(cfg)
	redirect := entities.RedirectURLs{ReturnURL: cfg.PaymentSuccessURL, CancelURL: cfg.PaymentCancelURL}
	return usecase.NewPaymentUseCase(gateway, repo, publisher, redirect), publisher, nil
}

func newPaymentRecordRepository(ctx context.Context, cfg *config.Config) (interfaces.IPaymentRecordRepository, error) {
	switch cfg.StoreDriver {
	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repository2.NewPaymentRecordDynamoRepository(ddb, cfg.PaymentsTable), nil
	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			return nil, err
		}
		if err := repository2.MigratePaymentRecords(db); err != nil {
			return nil, err
		}
		return repository2.NewPaymentRecordGormRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
}

func setMiddlewares(router *gin.Engine, metrics *middleware.HTTPMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(metrics.Handler())
}
