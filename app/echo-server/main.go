package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nepolianStore/app/echo-server/router"
	"nepolianStore/business/cart"
	"nepolianStore/business/catalog"
	"nepolianStore/business/checkout"
	"nepolianStore/business/contact"
	"nepolianStore/business/orders"
	"nepolianStore/business/product"
	"nepolianStore/internal/db"
	"nepolianStore/internal/middleware"
	"nepolianStore/internal/repository/esewa"
	"nepolianStore/internal/repository/notification"
	psqlRepo "nepolianStore/internal/repository/postgres"
	redisRepo "nepolianStore/internal/repository/redis"
	"nepolianStore/internal/repository/storage"
	"nepolianStore/internal/rest"
	"nepolianStore/pkg/config"
	"nepolianStore/pkg/database"
	redisClient "nepolianStore/pkg/database/redis"
	"nepolianStore/pkg/logger"
	"nepolianStore/pkg/metrics"
	"nepolianStore/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Nepolian Store", "version", cfg.App.Version)

	utils.InitJWT(cfg.Auth.JWTSecret)
	metrics.Init()

	gormDB, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Local databases get the schema applied on boot; production migrations
	// run out of band.
	if cfg.App.Environment == "development" {
		if err := gormDB.Exec(db.Schema).Error; err != nil {
			logger.Fatal("Failed to apply bootstrap schema", "error", err)
		}
	}

	rdb, err := redisClient.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer redisClient.CloseRedisClient(rdb)

	// Init notification from Brevo
	brevoEmail := notification.NewBrevoRepository(
		notification.BrevoConfig{
			BrevoBaseUrl:     cfg.Brevo.BrevoBaseUrl,
			BrevoAPIKey:      cfg.Brevo.BrevoAPIKey,
			BrevoSenderEmail: cfg.Brevo.BrevoSenderEmail,
			BrevoSenderName:  cfg.Brevo.BrevoSenderName,
			AdminEmails:      cfg.Auth.AdminEmails,
		},
	)

	storageRepo := storage.NewStorageRepository(
		storage.StorageConfig{
			StorageBaseUrl:    cfg.Storage.StorageBaseUrl,
			StorageBucket:     cfg.Storage.StorageBucket,
			StorageServiceKey: cfg.Storage.StorageServiceKey,
		},
	)

	esewaRepo := esewa.NewEsewaRepository(
		esewa.EsewaConfig{
			EsewaMerchantCode: cfg.Esewa.EsewaMerchantCode,
			EsewaSecretKey:    cfg.Esewa.EsewaSecretKey,
			EsewaPaymentUrl:   cfg.Esewa.EsewaPaymentUrl,
			SuccessUrl:        cfg.Esewa.SuccessUrl,
			FailureUrl:        cfg.Esewa.FailureUrl,
			EsewaEnabled:      cfg.Esewa.Enabled,
		},
	)

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(gormDB)
	ordersRepo := psqlRepo.NewOrdersRepository(gormDB)
	cartRepo := redisRepo.NewCartRepository(rdb)
	sessionRepo := redisRepo.NewCheckoutSessionRepository(rdb)

	// Init service
	catalogService := catalog.NewCatalogService(productsRepo)
	productService := product.NewProductService(productsRepo, storageRepo)
	cartService := cart.NewCartService(cartRepo, productsRepo)
	checkoutService := checkout.NewCheckoutService(sessionRepo, cartRepo, ordersRepo, productsRepo, brevoEmail, esewaRepo)
	ordersService := orders.NewOrdersService(ordersRepo)
	contactService := contact.NewContactService(brevoEmail)

	// Init handler
	catalogHandler := rest.NewCatalogHandler(catalogService)
	productHandler := rest.NewProductHandler(productService)
	cartHandler := rest.NewCartHandler(cartService)
	checkoutHandler := rest.NewCheckoutHandler(checkoutService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	contactHandler := rest.NewContactHandler(contactService)
	paymentHandler := rest.NewPaymentHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.SessionAuth()
	adminOnly := middleware.AdminOnly(cfg.Auth.AdminEmails)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCatalogRoutes(api, catalogHandler)
	router.SetupProductAdminRoutes(api, productHandler, authRequired, adminOnly)
	router.SetCartRoutes(api, cartHandler, authRequired)
	router.SetCheckoutRoutes(api, checkoutHandler, authRequired)
	router.SetOrdersConsoleRoutes(api, ordersHandler, authRequired, adminOnly)
	router.SetContactRoutes(api, contactHandler)
	router.SetPaymentRoutes(api, paymentHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
