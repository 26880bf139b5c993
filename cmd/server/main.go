package main

import (
	"context"
	"time"

	"go-event-scheduler/config"
	"go-event-scheduler/internal/cache"
	"go-event-scheduler/internal/database"
	"go-event-scheduler/internal/handler"
	"go-event-scheduler/internal/repository"
	"go-event-scheduler/internal/service"
	"go-event-scheduler/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.WithComponent("main")

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn("Invalid LOG_LEVEL, keeping info", zap.String("level", cfg.App.LogLevel), zap.Error(err))
	}
	defer logger.L.Sync()

	var (
		eventRepo   repository.EventRepository
		profileRepo repository.ProfileRepository
	)

	switch cfg.App.StoreDriver {
	case config.StoreDriverMemory:
		log.Info("Using in-memory store")
		eventRepo = repository.NewMemoryEventRepository()
		profileRepo = repository.NewMemoryProfileRepository()
	case config.StoreDriverPostgres:
		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			log.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer pool.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = database.Migrate(ctx, pool)
		cancel()
		if err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}

		eventRepo = repository.NewEventRepository(pool)
		profileRepo = repository.NewProfileRepository(pool)
	default:
		log.Fatal("Unknown STORE_DRIVER", zap.String("driver", cfg.App.StoreDriver))
	}

	listCache := cache.NewNoopEventListCache()
	if cfg.Redis.Enabled {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		defer rdb.Close()
		listCache = cache.NewRedisEventListCache(rdb, cfg.Redis.CacheTTL)
	}

	opts := []service.Option{service.WithDefaultTimezone(cfg.App.DefaultTimezone)}
	eventService := service.NewEventService(eventRepo, profileRepo, listCache, opts...)
	profileService := service.NewProfileService(profileRepo, opts...)

	router := handler.NewRouter(eventService, profileService)

	log.Info("Server starting", zap.String("port", cfg.Server.Port), zap.String("store", cfg.App.StoreDriver))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
