package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/alimalikali/pup-vision-sub000/internal/config"
	"github.com/alimalikali/pup-vision-sub000/internal/db"
	apihttp "github.com/alimalikali/pup-vision-sub000/internal/http"
	"github.com/alimalikali/pup-vision-sub000/internal/repository"
	"github.com/alimalikali/pup-vision-sub000/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	profileRepo := repository.NewPgProfileRepository(pool)
	interactionRepo := repository.NewPgInteractionRepository(pool)
	matchRepo := repository.NewPgMatchRepository(pool)

	var limiter service.ActionRateLimiter
	if cfg.AdmireRateMax > 0 {
		window := time.Duration(cfg.AdmireRateWindowMinutes) * time.Minute
		limiter = service.NewActionRateLimiter(window, cfg.AdmireRateMax)
		if cfg.RedisAddr != "" {
			redisClient := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
			if err := redisClient.Ping(ctxPing).Err(); err != nil {
				logger.Warn("redis ping failed, using in-memory limiter", zap.Error(err))
			} else {
				limiter = service.NewRedisActionRateLimiter(redisClient, window, cfg.AdmireRateMax)
			}
			cancel()
		}
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	discoverySvc := service.NewDiscoveryService(logger, profileRepo, cfg.DiscoverExcludeDecided)
	interactionSvc := service.NewInteractionService(logger, profileRepo, interactionRepo, matchRepo, limiter)

	discoverHandler := apihttp.NewDiscoverHandler(logger, discoverySvc)
	interactionHandler := apihttp.NewInteractionHandler(logger, interactionSvc)
	profileHandler := apihttp.NewProfileHandler(logger, discoverySvc)
	router := apihttp.NewRouter(logger, jwtSvc, discoverHandler, interactionHandler, profileHandler, func(ctx context.Context) error {
		return db.Ping(ctx, pool)
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
