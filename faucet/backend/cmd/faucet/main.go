package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/grid-chain/grid/faucet/pkg/api"
	"github.com/grid-chain/grid/faucet/pkg/config"
	"github.com/grid-chain/grid/faucet/pkg/database"
	"github.com/grid-chain/grid/faucet/pkg/faucet"
	"github.com/grid-chain/grid/faucet/pkg/metrics"
	"github.com/grid-chain/grid/faucet/pkg/monitor"
	"github.com/grid-chain/grid/faucet/pkg/ratelimit"
)

const version = "1.0.0"

func main() {
	// Load .env if present; real deployments use environment variables
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded configuration from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	setupLogging(cfg)

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}

	log.WithFields(log.Fields{
		"chain_id": cfg.ChainID,
		"denom":    cfg.Denom,
		"amount":   cfg.AmountPerRequest,
		"port":     cfg.Port,
	}).Info("Starting GridChain faucet")

	// Connect to postgres
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	// Connect to redis
	redisClient, err := ratelimit.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to redis")
	}
	defer redisClient.Close()

	rateLimiter := ratelimit.NewRateLimiter(redisClient, cfg.RateLimitConfig())

	// Faucet service
	faucetService, err := faucet.NewService(cfg, db)
	if err != nil {
		log.WithError(err).Fatal("Failed to create faucet service")
	}

	metrics.Initialize(version, cfg.Environment, cfg.ChainID, cfg.Denom, cfg.AmountPerRequest)

	// Balance monitor
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.LowBalanceThreshold > 0 {
		balanceMonitor := monitor.NewBalanceMonitor(cfg, faucetService)
		go balanceMonitor.Start(ctx)
	}

	// HTTP server
	router := setupRouter(cfg, faucetService, rateLimiter, db)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down faucet")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Faucet stopped")
}

func setupLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		log.SetLevel(log.DebugLevel)
	}
}

func setupRouter(cfg *config.Config, faucetService *faucet.Service, rateLimiter *ratelimit.RateLimiter, db *database.DB) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	handler := api.NewHandler(cfg, faucetService, rateLimiter, db)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handler.Health)
		v1.GET("/faucet/info", handler.GetFaucetInfo)
		v1.GET("/faucet/recent", handler.GetRecentTransactions)
		v1.GET("/faucet/stats", handler.GetStatistics)
		v1.GET("/faucet/pow", handler.GetPowChallenge)
		v1.POST("/faucet/request", handler.RequestTokens)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
