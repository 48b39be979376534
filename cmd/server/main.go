package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"mentionwatch/internal/api"
	"mentionwatch/internal/config"
	"mentionwatch/internal/importer"
	"mentionwatch/internal/metrics"
	"mentionwatch/internal/publisher"
	"mentionwatch/internal/scheduler"
	"mentionwatch/internal/service"
	"mentionwatch/internal/source/gdelt"
	"mentionwatch/internal/source/newsapi"
	"mentionwatch/internal/storage/postgres"
	"mentionwatch/internal/vcradar"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize RabbitMQ publisher
	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	// Initialize stores
	companyStore := postgres.NewCompanyStore(db)
	mentionStore := postgres.NewMentionStore(db)
	snapshotStore := postgres.NewSnapshotStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Initialize mention sources
	gdeltSource := gdelt.New(cfg.GDELT, logger)
	newsapiSource := newsapi.New(cfg.NewsAPI, logger)

	m := metrics.New(nil)

	// Initialize services
	rankingService := service.NewRankingService(
		companyStore,
		mentionStore,
		snapshotStore,
		rabbitMQ,
		m,
		logger,
	)
	collectorService := service.NewCollectorService(
		[]service.MentionSource{gdeltSource, newsapiSource},
		companyStore,
		mentionStore,
		txManager,
		rabbitMQ,
		m,
		logger,
	)
	importService := service.NewImportService(
		importer.NewParser(cfg.Spreadsheet),
		companyStore,
		txManager,
		logger,
	)
	competitorService := service.NewCompetitorService(
		importer.NewDirectory(cfg.Spreadsheet),
		companyStore,
		vcradar.New(cfg.FamousVCs),
		logger,
	)

	handlers := &api.Handlers{
		Ranking:     api.NewRankingHandler(rankingService, collectorService),
		Companies:   api.NewCompanyHandler(companyStore, importService),
		Competitors: api.NewCompetitorHandler(competitorService),
		Health:      api.NewHealthHandler(db, version),
	}
	server := api.NewServer(cfg.Server, handlers, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	var wg sync.WaitGroup

	if cfg.Schedule.Enabled {
		sched := scheduler.NewScheduler(cfg.Schedule.Cron, collectorService, rankingService, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
				cancel()
			}
		}()
	}

	logger.Info("starting mentionwatch",
		"addr", cfg.Server.Addr(),
		"schedule_enabled", cfg.Schedule.Enabled,
		"schedule", cfg.Schedule.Cron,
	)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		cancel()
		wg.Wait()
		os.Exit(1)
	}

	wg.Wait()
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
