package main

// @title Place Search Service API
// @version 1.0.0
// @description Сервис поиска мест с историей. Ведет поисковые сессии с debounce-автодополнением через внешний places API, разрешает выбранных кандидатов в полные записи и хранит ограниченную дедуплицированную историю последних выбранных мест.

// @contact.name API Support
// @contact.email support@place-search-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	_ "github.com/place-search-service/docs"
	"github.com/place-search-service/internal/config"
	httpDelivery "github.com/place-search-service/internal/delivery/http"
	"github.com/place-search-service/internal/delivery/http/handler"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/infrastructure/geoip"
	"github.com/place-search-service/internal/infrastructure/places"
	"github.com/place-search-service/internal/pkg/logger"
	"github.com/place-search-service/internal/repository/cache"
	"github.com/place-search-service/internal/repository/postgres"
	redisRepo "github.com/place-search-service/internal/repository/redis"
	"github.com/place-search-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Place Search Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("history_backend", cfg.History.StorageBackend),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Pick history snapshot backend
	var snapshotRepo repository.KVRepository

	cacheKV := cache.NewKVRepository(redisClient)

	var pgDB *postgres.DB
	if cfg.History.StorageBackend == "postgres" {
		pgDB, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := pgDB.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		snapshotRepo = postgres.NewKVRepository(pgDB)
	} else {
		snapshotRepo = cacheKV
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	if pgDB != nil {
		if err := pgDB.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories and outbound clients
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	placesClient := places.NewPlacesClient(&cfg.Places, log)
	geoClient := geoip.NewGeoIPClient(&cfg.Geo, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	clock := clockwork.NewRealClock()

	historyUC := usecase.NewHistoryUseCase(
		ctx,
		snapshotRepo,
		cfg.History.Capacity,
		cfg.History.StorageKey,
		log,
	)

	// Map-коллаборатор получает событие при каждом выборе места
	historyUC.SubscribeSelection(usecase.NewSelectionPublisher(streamRepo, clock, log))

	searchUC := usecase.NewSearchUseCase(
		placesClient,
		geoClient,
		cacheKV,
		historyUC,
		clock,
		log,
		cfg.Search,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	searchHandler := handler.NewSearchHandler(searchUC, log)
	historyHandler := handler.NewHistoryHandler(historyUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		searchHandler,
		historyHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start session evictor and server
	evictorCtx, evictorCancel := context.WithCancel(context.Background())
	defer evictorCancel()
	go searchUC.RunEvictor(evictorCtx)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	evictorCancel()
	searchUC.CloseAll()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
