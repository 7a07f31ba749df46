package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/prodsheet/backend/internal/application/catalog"
	importapp "github.com/prodsheet/backend/internal/application/importing"
	libraryapp "github.com/prodsheet/backend/internal/application/library"
	printapp "github.com/prodsheet/backend/internal/application/printing"
	productionapp "github.com/prodsheet/backend/internal/application/production"
	quotationapp "github.com/prodsheet/backend/internal/application/quotation"
	"github.com/prodsheet/backend/internal/domain/library"
	"github.com/prodsheet/backend/internal/infrastructure/config"
	"github.com/prodsheet/backend/internal/infrastructure/imagefetch"
	"github.com/prodsheet/backend/internal/infrastructure/logger"
	"github.com/prodsheet/backend/internal/infrastructure/persistence"
	"github.com/prodsheet/backend/internal/infrastructure/printing"
	"github.com/prodsheet/backend/internal/interfaces/http/handler"
	"github.com/prodsheet/backend/internal/interfaces/http/middleware"
	"github.com/prodsheet/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting production sheet backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env))

	// Connect to the document store
	db, err := persistence.NewDatabase(&cfg.Mongo)
	if err != nil {
		log.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Error("Failed to close document store connection", zap.Error(err))
		}
	}()

	// Repositories
	orderRepo := persistence.NewMongoOrderRepository(db)
	leatherRepo := persistence.NewMongoLeatherRepository(db)
	finishRepo := persistence.NewMongoFinishRepository(db)
	factoryRepo := persistence.NewMongoFactoryRepository(db)
	categoryRepo := persistence.NewMongoCategoryRepository(db)
	productRepo := persistence.NewMongoProductRepository(db)
	quotationRepo := persistence.NewMongoQuotationRepository(db)
	settingsRepo := persistence.NewMongoSettingsRepository(db)
	exportRepo := persistence.NewMongoExportRepository(db)

	// Optional header logo, loaded once at startup
	var logo []byte
	if cfg.Render.LogoPath != "" {
		logo, err = os.ReadFile(cfg.Render.LogoPath)
		if err != nil {
			log.Warn("Failed to read logo, falling back to logo text",
				zap.String("path", cfg.Render.LogoPath), zap.Error(err))
			logo = nil
		}
	}

	// Application services
	orderService := productionapp.NewOrderService(orderRepo)
	leatherService := libraryapp.NewMaterialService(leatherRepo, library.MaterialLeather)
	finishService := libraryapp.NewMaterialService(finishRepo, library.MaterialFinish)
	factoryService := catalogapp.NewFactoryService(factoryRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	productService := catalogapp.NewProductService(productRepo)
	quotationService := quotationapp.NewQuotationService(quotationRepo)
	settingsService := printapp.NewSettingsService(settingsRepo)

	importFetcher := imagefetch.New(cfg.Import.FetchTimeout)
	importService := importapp.NewImportService(
		productRepo, leatherRepo, finishRepo, factoryRepo,
		importFetcher, cfg.Import.MaxErrors, cfg.Import.MaxFileSize, log)

	exportService := printapp.NewExportService(
		orderRepo, settingsService, exportRepo,
		printing.NewPDFRenderer(log), printing.NewDeckRenderer(log),
		printing.RenderPreviewHTML, logo, log)

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Secure(),
		middleware.CORSWithConfig(corsCfg),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewMaterialHandler(leatherService, "/leather-library")).
		Register(handler.NewMaterialHandler(finishService, "/finish-library")).
		Register(handler.NewFactoryHandler(factoryService)).
		Register(handler.NewCategoryHandler(categoryService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewQuotationHandler(quotationService)).
		Register(handler.NewSettingsHandler(settingsService)).
		Register(handler.NewImportHandler(importService)).
		Register(handler.NewExportHandler(exportService))
	r.Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
