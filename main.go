package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"campus-cafeteria/config"
	httpapi "campus-cafeteria/internal/api/http"
	"campus-cafeteria/internal/llm"
	"campus-cafeteria/internal/logger"
	"campus-cafeteria/internal/service"
	"campus-cafeteria/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.New("campus-cafeteria", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg)
	defer kafkaWriter.Close()

	kafkaReader := config.NewKafkaReader(cfg)
	defer kafkaReader.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	cache := storage.NewRedisCache(rdb, cfg.RatingCacheTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)

	var generator service.TextGenerator
	if cfg.LLMAPIURL != "" {
		generator = llm.NewClient(cfg.LLMAPIURL, cfg.LLMTimeout)
	} else {
		slog.Warn("LLM_API_URL is not set, chat answers from the local responder only")
	}

	notifications := service.NewNotificationService(repo)
	users := service.NewUserService(repo)
	orders := service.NewOrderService(repo, repo, repo, repo, notifications, publisher)

	handler := &httpapi.Handler{
		Tables:        service.NewTableService(repo, service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}),
		Menus:         service.NewMenuService(repo, repo, cache, cache),
		Users:         users,
		Carts:         service.NewCartService(repo, repo, repo),
		Orders:        orders,
		Payments:      service.NewPaymentService(repo, repo, orders, publisher),
		Ratings:       service.NewRatingService(repo, repo, publisher),
		Notifications: notifications,
		Chat:          service.NewChatService(repo, users, repo, generator),
	}

	consumer := service.NewConsumer(kafkaReader, cache, repo, cache)
	go consumer.Start(ctx)

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, httpapi.NewRouter(handler)); err != nil {
		slog.Error("http server failed", "error", err)
		os.Exit(1)
	}
}
