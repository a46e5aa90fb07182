package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/alshbh/storefront/internal/application/catalog"
	identityapp "github.com/alshbh/storefront/internal/application/identity"
	marketingapp "github.com/alshbh/storefront/internal/application/marketing"
	shippingapp "github.com/alshbh/storefront/internal/application/shipping"
	shoppingapp "github.com/alshbh/storefront/internal/application/shopping"
	storefrontapp "github.com/alshbh/storefront/internal/application/storefront"
	tradeapp "github.com/alshbh/storefront/internal/application/trade"
	uploadapp "github.com/alshbh/storefront/internal/application/upload"
	"github.com/alshbh/storefront/internal/domain/shopping"
	"github.com/alshbh/storefront/internal/infrastructure/auth"
	"github.com/alshbh/storefront/internal/infrastructure/cache"
	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/alshbh/storefront/internal/infrastructure/event"
	"github.com/alshbh/storefront/internal/infrastructure/logger"
	"github.com/alshbh/storefront/internal/infrastructure/persistence"
	"github.com/alshbh/storefront/internal/infrastructure/printing"
	"github.com/alshbh/storefront/internal/infrastructure/storage"
	"github.com/alshbh/storefront/internal/infrastructure/telemetry"
	"github.com/alshbh/storefront/internal/interfaces/http/handler"
	"github.com/alshbh/storefront/internal/interfaces/http/middleware"
	"github.com/alshbh/storefront/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/alshbh/storefront/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is stamped at build time with -ldflags "-X main.Version=..."
var Version = "dev"

//	@title			Alshbh Fashion API
//	@version		1.0
//	@description	Storefront and back-office API for the Alshbh Fashion shop
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	Alshbh Fashion
//	@contact.url	https://github.com/alshbh/storefront

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Log level follows config.toml edits without a restart
	var atom zap.AtomicLevel
	cfg, err := config.LoadAndWatch(func(c *config.Config) {
		logger.SetLevel(atom, c.Log.Level)
	})
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, atom, err := logger.NewWithLevel(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	tel, err := telemetry.Setup(context.Background(), cfg.Telemetry, Version, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			baseLog.Error("Error shutting down telemetry", zap.Error(err))
		}
	}()

	log := tel.Logger(baseLog, atom)
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Alshbh storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", Version),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.Open(context.Background(), &cfg.Database, persistence.WithLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := tel.InstrumentDB(db.DB, cfg.Database.DBName, log); err != nil {
		log.Warn("Database tracing disabled", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Redis-backed session state, in memory when Redis is absent
	backend, err := cache.NewBackend(context.Background(), cfg.Redis,
		cache.WithLogger(log),
		cache.WithSessionTTL(cfg.Session.TTL),
		cache.WithInMemoryFallback(cfg.App.Env != "production"),
	)
	if err != nil {
		log.Fatal("Failed to initialize session backend", zap.Error(err))
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error("Error closing session backend", zap.Error(err))
		}
	}()

	cartStore := cache.NewSessionStore[shopping.Cart](backend, "cart")
	favoritesStore := cache.NewSessionStore[shopping.Favorites](backend, "favorites")
	preferenceStore := cache.NewSessionStore[shopping.Preferences](backend, "preferences")
	idempotencyStore := backend.IdempotencyStore()

	var tokenBlacklist auth.TokenBlacklist
	if backend.IsDistributed() {
		tokenBlacklist = auth.NewRedisTokenBlacklist(backend.Client())
	} else {
		tokenBlacklist = auth.NewInMemoryTokenBlacklist()
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	colorRepo := persistence.NewGormColorRepository(db.DB)
	sizeRepo := persistence.NewGormSizeRepository(db.DB)
	governorateRepo := persistence.NewGormGovernorateRepository(db.DB)
	advertisementRepo := persistence.NewGormAdvertisementRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Application services
	productService := catalogapp.NewProductService(productRepo, categoryRepo, colorRepo, sizeRepo, log)
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	attributeService := catalogapp.NewAttributeService(colorRepo, sizeRepo)
	governorateService := shippingapp.NewGovernorateService(governorateRepo)
	advertisementService := marketingapp.NewAdvertisementService(advertisementRepo)
	cartService := shoppingapp.NewCartService(cartStore, productRepo, colorRepo, sizeRepo)
	favoritesService := shoppingapp.NewFavoritesService(favoritesStore, productRepo)
	preferenceService := shoppingapp.NewPreferenceService(preferenceStore)
	checkoutService := tradeapp.NewCheckoutService(cartStore, governorateRepo, orderRepo, idempotencyStore, log)
	orderService := tradeapp.NewOrderService(orderRepo, governorateRepo, log)
	homeService := storefrontapp.NewHomeService(productRepo, categoryRepo, advertisementRepo)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(settingRepo, jwtService, tokenBlacklist,
		identityapp.AuthServiceConfig{BootstrapPassword: cfg.Admin.BootstrapPassword}, log)
	settingService := identityapp.NewSettingService(settingRepo)

	// Event bus
	eventBus := event.NewInMemoryEventBus(log)
	orderEventLogger := tradeapp.NewOrderEventLogger(log)
	eventBus.Subscribe(orderEventLogger)
	orderMetrics, err := tradeapp.NewOrderMetrics(tel.Metrics.Meter("storefront/trade"))
	if err != nil {
		log.Fatal("Failed to create order metrics", zap.Error(err))
	}
	eventBus.Subscribe(orderMetrics)
	log.Info("Event handlers registered",
		zap.Strings("order_events", orderEventLogger.EventTypes()),
		zap.Bool("order_metrics", tel.Metrics.IsEnabled()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	productService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)

	// Image uploads
	presigner, localStore, objectStore, err := newUploadStorage(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize upload storage", zap.Error(err))
	}
	uploadService := uploadapp.NewService(presigner)

	// Packing slips
	slipRenderer, closeRenderer, err := newSlipRenderer(cfg.Printing, log)
	if err != nil {
		log.Fatal("Failed to initialize packing slip printer", zap.Error(err))
	}
	defer closeRenderer()
	slipService := tradeapp.NewPackingSlipService(orderService, slipRenderer)

	// Health checks shared by /health
	checks := []handler.HealthCheck{
		{Name: "database", Check: db.Ping},
	}
	if backend.IsDistributed() {
		checks = append(checks, handler.HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return backend.Client().Ping(ctx).Err()
		}})
	}
	if objectStore != nil {
		checks = append(checks, handler.HealthCheck{Name: "storage", Check: objectStore.Check})
	}
	systemHandler := handler.NewSystemHandler(Version, checks...)

	handlers := router.Handlers{
		System:        systemHandler,
		Storefront:    handler.NewStorefrontHandler(homeService),
		Catalog:       handler.NewCatalogHandler(productService, categoryService, attributeService),
		Governorate:   handler.NewGovernorateHandler(governorateService),
		Advertisement: handler.NewAdvertisementHandler(advertisementService),
		Cart:          handler.NewCartHandler(cartService),
		Favorites:     handler.NewFavoritesHandler(favoritesService),
		Preference:    handler.NewPreferenceHandler(preferenceService),
		Checkout:      handler.NewCheckoutHandler(checkoutService),
		Auth:          handler.NewAuthHandler(authService),
		Product:       handler.NewProductHandler(productService),
		Category:      handler.NewCategoryHandler(categoryService),
		Attribute:     handler.NewAttributeHandler(attributeService),
		Order:         handler.NewOrderHandler(orderService, slipService),
		Setting:       handler.NewSettingHandler(settingService),
		Upload:        handler.NewUploadHandler(uploadService),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Tracing - Start the request span
	// 4. Metrics - Count requests per route
	// 5. Logger - Log requests with trace IDs
	// 6. CORS - Handle cross-origin requests
	// 7. RateLimit - Apply rate limiting (if enabled)
	// Security headers and the body limit are scoped to the API below.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled))
	engine.Use(middleware.SpanAttributes())
	httpMetrics, err := middleware.HTTPMetrics(tel.Metrics.Meter("storefront/http"))
	if err != nil {
		log.Fatal("Failed to create HTTP metrics", zap.Error(err))
	}
	engine.Use(httpMetrics)
	engine.Use(logger.GinMiddleware(log))

	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-Session-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	var loginGuard gin.HandlerFunc
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		defer authLimiter.Stop()
		loginGuard = middleware.AuthRateLimit(authLimiter)
	}

	secure := middleware.SecureWithConfig(middleware.DefaultSecurityConfig())
	adminAuth := middleware.AdminAuth(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		Logger:         log,
	})

	// Health check endpoint (outside API versioning)
	engine.GET("/health", secure, systemHandler.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:     cfg.Swagger.Enabled,
			RequireAuth: cfg.Swagger.RequireAuth,
			AllowedIPs:  cfg.Swagger.AllowedIPs,
		}, adminAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	// The local driver receives uploads itself and serves them back
	if localStore != nil {
		engine.PUT(localStore.BasePath()+"/*key",
			handler.NewLocalUploadHandler(localStore, cfg.Storage.MaxUploadSize).Put)
		engine.Static(localStore.BasePath(), localStore.Dir())
	}

	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(secure, middleware.BodyLimit(cfg.HTTP.MaxBodySize)),
	)
	router.RegisterAPI(r, handlers, router.Guards{
		Session: middleware.Session(middleware.NewSessionConfig(cfg.Session, cfg.Cookie)),
		Admin:   adminAuth,
		Login:   loginGuard,
	})
	r.Setup()

	for _, route := range r.Routes() {
		log.Debug("Route registered",
			zap.String("method", route.Method),
			zap.String("path", route.Path),
			zap.String("group", route.Group),
			zap.String("description", route.Description),
		)
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// newUploadStorage picks the presign backend for storage.driver. Exactly one
// of the local or S3 stores is returned alongside the presigner.
func newUploadStorage(cfg *config.Config, log *zap.Logger) (uploadapp.Presigner, *storage.LocalStorage, *storage.S3Storage, error) {
	if cfg.Storage.Driver == "s3" {
		s3Store, err := storage.NewS3Storage(context.Background(), &cfg.Storage, log)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info("Uploads go to S3", zap.String("bucket", s3Store.Bucket()))
		return s3Store, nil, s3Store, nil
	}

	localStore, err := storage.NewLocalStorage(&cfg.Storage, cfg.JWT.Secret)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("Uploads stored locally", zap.String("dir", localStore.Dir()))
	return localStore, localStore, nil, nil
}

// newSlipRenderer builds the packing slip printer. Without Chrome the slip
// is served as printable HTML.
func newSlipRenderer(cfg config.PrintingConfig, log *zap.Logger) (tradeapp.SlipRenderer, func(), error) {
	engine, err := printing.NewTemplateEngine()
	if err != nil {
		return nil, func() {}, err
	}

	var pdf printing.PDFRenderer
	closeFn := func() {}
	if cfg.PDFEnabled {
		chrome := printing.NewChromedpRenderer(printing.ChromedpConfig{
			ExecPath:  cfg.ChromeExecPath,
			Timeout:   cfg.Timeout,
			NoSandbox: true,
			Logger:    log,
		})
		pdf = chrome
		closeFn = func() {
			if err := chrome.Close(); err != nil {
				log.Error("Error closing PDF renderer", zap.Error(err))
			}
		}
	}

	printer := printing.NewSlipPrinter(engine, pdf, printing.SlipConfig{
		StoreName:  cfg.StoreName,
		StorePhone: cfg.StorePhone,
		PaperSize:  printing.PaperA5,
	}, log)
	return printer, closeFn, nil
}
