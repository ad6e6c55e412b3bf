package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"naebak/content-service/internal/api"
	"naebak/content-service/internal/common"
	"naebak/content-service/internal/config"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(constants.ServiceName, cfg.AppEnv, cfg.LogLevel); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Content service starting up",
		"environment", cfg.AppEnv,
		"db_driver", cfg.DBDriver,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	orm, sqlDB, err := db.Connect(cfg)
	if err != nil {
		logging.Fatal("Failed to open database", "error", err.Error())
	}
	defer sqlDB.Close()

	cacheBackend := newCacheBackend(cfg)
	defer cacheBackend.Close()

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(orm, sqlDB, cacheBackend, metricsReg)
	if err != nil {
		logging.Fatal("Failed to initialize dependencies", "error", err.Error())
	}

	router := routes.RegisterRoutes(deps, cfg)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := fmt.Sprintf(":%d", cfg.Port)
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logging.Fatal("Server stopped", "error", err.Error())
	}
}

// newCacheBackend falls back to the in-memory cache when redis is unreachable.
func newCacheBackend(cfg *config.Config) common.CacheInterface {
	if cfg.CacheBackend == "redis" {
		redisCache, err := common.NewRedisCacheService(common.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		if err == nil {
			return redisCache
		}
		logging.Warn("Redis unavailable, using in-memory cache", "error", err.Error())
	}
	return common.NewCacheService(3600, 600)
}
