package main

import (
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mailtriage/config"
	"mailtriage/internal/api"
	"mailtriage/internal/backend"
	"mailtriage/internal/httpserver"
	"mailtriage/internal/oracle"
	"mailtriage/internal/service"
	"mailtriage/pkg/db"
	"mailtriage/pkg/logger"
	"mailtriage/pkg/mq"
	redisclient "mailtriage/pkg/redis"
	"mailtriage/pkg/util"
)

func main() {
	// Load config
	cfg := config.Load()

	logger := logger.NewLogger()
	defer logger.Sync()

	logger.Info("Starting mail triage service...")

	// Init oracle client
	oracleClient := oracle.NewClient(cfg.Oracle)

	// Init Redis verdict cache (optional)
	var rdb *redis.Client
	var cache *util.CategoryCache
	if cfg.Redis.Addr != "" {
		rdb = redisclient.NewRedisClient(cfg.Redis)
		defer rdb.Close()
		cache = util.NewCategoryCache(rdb, time.Hour, logger)
		logger.Info("Verdict cache enabled", zap.String("redis_addr", cfg.Redis.Addr))
	}

	// Init RabbitMQ Publisher (optional; log backends otherwise)
	var publisher *mq.Publisher
	var messenger backend.Messenger = backend.NewLogMessenger(logger)
	var ticketing backend.Ticketing = backend.NewLogTicketing(logger)
	if cfg.MQ.URL != "" {
		p, err := mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
		messenger = backend.NewMQMessenger(publisher)
		ticketing = backend.NewMQTicketing(publisher)
		logger.Info("MQ backends enabled", zap.String("exchange", mq.ExchangeName))
	}

	// Init feedback log (Postgres when configured, MQ as fallback)
	var dbConn *pgxpool.Pool
	var feedback backend.FeedbackLog = backend.NewLogFeedback(logger)
	if cfg.DB.Host != "" {
		conn, err := db.NewConnection(cfg.DB, logger)
		if err != nil {
			logger.Fatal("DB initialization failed", zap.Error(err))
		}
		defer conn.Close()
		dbConn = conn
		feedback = backend.NewPGFeedback(dbConn)
	} else if publisher != nil {
		feedback = backend.NewMQFeedback(publisher)
	}

	// Init pipeline
	classifier := service.NewClassifier(oracleClient, cache, logger)
	dispatcher := service.NewDispatcher(messenger, ticketing, feedback, logger)
	pipeline := service.NewPipeline(classifier, dispatcher, logger)

	// Init Handlers
	processHandler := api.NewProcessHandler(pipeline, logger)

	// Router
	router := httpserver.NewRouter(processHandler, dbConn, publisher, rdb, cfg.JWT.Secret)

	// Start server
	logger.Info("Starting mail triage server", zap.String("port", cfg.Server.Port))
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}
