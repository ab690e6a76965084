package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rxmart/vendormart/config"
	"github.com/rxmart/vendormart/internal/auth"
	"github.com/rxmart/vendormart/internal/backend"
	handler "github.com/rxmart/vendormart/internal/handler/http"
	"github.com/rxmart/vendormart/internal/middleware"
	"github.com/rxmart/vendormart/internal/order"
	"github.com/rxmart/vendormart/internal/refresh"
	"github.com/rxmart/vendormart/internal/service"
	"github.com/rxmart/vendormart/internal/session"
	"go.uber.org/zap"
)

const defaultAuthTokenKey = "f53ac685bbceebd75043e6be2e06ee07"

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	keyHex := cfg.AuthTokenKey
	if keyHex == "" {
		keyHex = defaultAuthTokenKey
	}
	tokenKey, err := hex.DecodeString(keyHex)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey, cfg.SessionTTL)

	// session store
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Error connecting to redis", zap.Error(err))
	}
	sessions := session.NewRedisStore(redisClient, cfg.SessionTTL)

	// admin backend client
	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	// dependency injection
	// auth
	authService := service.NewAuthService(client, sessions, token, logger)
	authHandler := handler.NewAuthHandler(authService)

	// orders
	coordinator := refresh.NewCoordinator(client, logger)
	engine := order.NewEngine(client, logger)
	orderService := service.NewOrderService(coordinator, engine, logger)
	orderHandler := handler.NewOrderHandler(orderService)

	// vendor profile, dashboard, catalog
	vendorService := service.NewVendorService(client, cfg.VendorImageURL, cfg.ProductImageURL)
	vendorHandler := handler.NewVendorHandler(vendorService)

	// payouts
	payoutService := service.NewPayoutService(client)
	payoutHandler := handler.NewPayoutHandler(payoutService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Post("/api/auth/login", authHandler.LoginVendor())
	router.Post("/api/auth/verify", authHandler.VerifyVendorOTP())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token, sessions))
		group.Post("/api/auth/logout", authHandler.LogoutVendor())

		group.Get("/api/orders", orderHandler.ListOrders())
		group.Post("/api/orders/{id}/decision", orderHandler.DecideOrder())
		group.Post("/api/orders/{id}/out-for-delivery", orderHandler.StartDelivery())
		group.Post("/api/orders/{id}/delivered", orderHandler.MarkDelivered())
		group.Get("/api/orders/{id}/steps", orderHandler.OrderSteps())

		group.Get("/api/dashboard", vendorHandler.GetDashboard())
		group.Get("/api/products", vendorHandler.ListProducts())
		group.Get("/api/profile", vendorHandler.GetProfile())
		group.Put("/api/profile", vendorHandler.UpdateProfile())

		group.Get("/api/payouts/summary", payoutHandler.GetSummary())
		group.Get("/api/payouts/transactions/{kind}", payoutHandler.ListTransactions())
		group.Post("/api/payouts/withdraw", payoutHandler.RequestWithdrawal())
	})

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
