package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"localmarket/internal/adapter/api"
	"localmarket/internal/adapter/api/handler"
	apimiddleware "localmarket/internal/adapter/api/middleware"
	"localmarket/internal/adapter/api/router"
	"localmarket/internal/adapter/repository"
	"localmarket/internal/adapter/repository/memory"
	domainrepo "localmarket/internal/domain/repository"
	"localmarket/internal/domain/service"
	"localmarket/internal/infrastructure/firebase"
	"localmarket/internal/infrastructure/metrics"
	"localmarket/internal/infrastructure/queue"
	"localmarket/internal/infrastructure/ratelimit"
	"localmarket/internal/usecase"
	"localmarket/pkg/config"
	"localmarket/pkg/logger"
	"localmarket/pkg/response"
)

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:3000",
	"https://localmarkettrackerbd.netlify.app",
}

type stores struct {
	users          domainrepo.UserRepository
	products       domainrepo.ProductRepository
	advertisements domainrepo.AdvertisementRepository
	orders         domainrepo.OrderRepository
	watchlist      domainrepo.WatchlistRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)
	defer logger.Sync()

	response.ExposeErrorDetails(cfg.ExposeErrorDetails)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []option.ClientOption
	switch {
	case cfg.FirebaseServiceAccountJSON != "":
		logger.Info("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON)))
	case cfg.FirebaseServiceAccountPath != "":
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); os.IsNotExist(err) {
			logger.Fatal("Service account file does not exist: %s", cfg.FirebaseServiceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseServiceAccountPath))
	default:
		logger.Warn("No Firebase service account configured, using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Firebase Auth: %v", err)
	}
	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	checks := map[string]handler.HealthCheck{}

	var repos stores
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using in-memory store, data is lost on restart")
		store := memory.NewStore()
		repos = stores{
			users:          store.Users(),
			products:       store.Products(),
			advertisements: store.Advertisements(),
			orders:         store.Orders(),
			watchlist:      store.Watchlist(),
		}
	default:
		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			logger.Fatal("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		repos = stores{
			users:          repository.NewFirestoreUserRepository(firestoreClient),
			products:       repository.NewFirestoreProductRepository(firestoreClient),
			advertisements: repository.NewFirestoreAdvertisementRepository(firestoreClient),
			orders:         repository.NewFirestoreOrderRepository(firestoreClient),
			watchlist:      repository.NewFirestoreWatchlistRepository(firestoreClient),
		}
		checks["firestore"] = func(ctx context.Context) error {
			_, err := repos.users.AnyExists(ctx)
			return err
		}
	}

	var publisher usecase.EventPublisher
	if cfg.AMQPURL != "" {
		p, err := queue.NewPublisher(cfg.AMQPURL, queue.DefaultExchange)
		if err != nil {
			logger.Warn("Event publishing disabled: %v", err)
		} else {
			defer p.Close()
			publisher = p
		}
	}

	var limiter ratelimit.Limiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		limiter = ratelimit.NewRedisLimiter(rdb, "ratelimit", cfg.RateLimitRequests, cfg.RateLimitWindow)
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		memLimiter.StartCleanupRoutine(ctx, 5*time.Minute)
		limiter = memLimiter
	}

	if cfg.StripeSecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is not set, checkout sessions will fail")
	}
	paymentService := service.NewStripePaymentService(cfg.StripeSecretKey)
	exchangeRates := service.NewExchangeRateService(cfg.ExchangeRateURL, cfg.FallbackUSDRate)

	userUseCase := usecase.NewUserUseCase(repos.users, firebaseAuthClient)
	productUseCase := usecase.NewProductUseCase(repos.products)
	reviewUseCase := usecase.NewReviewUseCase(repos.products, publisher)
	advertisementUseCase := usecase.NewAdvertisementUseCase(repos.advertisements)
	orderUseCase := usecase.NewOrderUseCase(repos.orders, publisher)
	watchlistUseCase := usecase.NewWatchlistUseCase(repos.watchlist, repos.products)
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentService, exchangeRates, defaultOrigins[0])
	authorizationUseCase := usecase.NewAuthorizationUseCase(repos.users)

	handler.Setup(userUseCase, productUseCase, reviewUseCase, advertisementUseCase, orderUseCase, watchlistUseCase, checkoutUseCase)
	handler.SetupHealthHandler(checks)

	appMetrics := metrics.New(nil)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler
	e.Validator = api.NewValidator()

	origins := defaultOrigins
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				logger.Zap().Warn("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Zap().Info("request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, echo.HeaderXRequestedWith},
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	authMiddleware := apimiddleware.NewAuthMiddleware(firebaseAuthClient)
	roleMiddleware := apimiddleware.NewRoleMiddleware(authorizationUseCase, appMetrics)

	router.SetupHealthRouter(e, appMetrics.Registry())
	router.Setup(e, authMiddleware, roleMiddleware,
		apimiddleware.Metrics(appMetrics),
		router.IdentifyCaller(firebaseAuthClient),
		apimiddleware.RateLimit(limiter, appMetrics),
	)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}
