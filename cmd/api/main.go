package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github-task-bridge/config"
	_ "github-task-bridge/docs" // Swagger docs
	eventRedis "github-task-bridge/internal/event/redis"
	"github-task-bridge/internal/httpserver"
	"github-task-bridge/internal/identity"
	identityRepo "github-task-bridge/internal/identity/repository/postgre"
	"github-task-bridge/internal/translator"
	"github-task-bridge/internal/webhook"
	"github-task-bridge/internal/workitem"
	workitemRepo "github-task-bridge/internal/workitem/repository/postgre"
	"github-task-bridge/pkg/log"
)

// @title       GitHub Task Bridge API
// @description Translates GitHub webhook deliveries into internal work-item events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GitHub Task Bridge...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Tracker database (read-only)
	pool, err := pgxpool.New(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Error(ctx, "Failed to create Postgres pool: ", err)
		return
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error(ctx, "Failed to reach Postgres: ", err)
		return
	}
	logger.Info(ctx, "Connected to tracker database")

	// 4. Event bus
	redisClient := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error(ctx, "Failed to reach Redis: ", err)
		return
	}
	logger.Infof(ctx, "Connected to event bus, publishing on %q", cfg.Redis.Channel)

	sink := eventRedis.NewSink(redisClient, cfg.Redis.Channel, logger)

	// 5. Adapters
	workitems := workitem.New(workitemRepo.New(pool), logger)
	identities := identity.New(
		identityRepo.NewUserRepository(pool),
		identityRepo.NewProjectRoleRepository(pool),
		logger,
	)

	// 6. Translator
	translatorUC := translator.New(workitems, identities, sink, translator.Config{
		ProviderName:         cfg.Provider.Name,
		IssueTitleWithNumber: cfg.Provider.IssueTitleWithNumber,
	}, logger)

	// 7. Webhook delivery
	webhookHandler := webhook.NewHandler(translatorUC, webhook.SecurityConfig{
		Token:           cfg.Webhook.Token,
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
