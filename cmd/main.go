package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/geocoding"
	v1 "github.com/shenikar/safemap/internal/handler/http/v1"
	"github.com/shenikar/safemap/internal/metrics"
	"github.com/shenikar/safemap/internal/repository"
	"github.com/shenikar/safemap/internal/service"
	"github.com/shenikar/safemap/internal/webhook"
	"github.com/shenikar/safemap/pkg/logger"
	"github.com/shenikar/safemap/pkg/postgres"
	redisclient "github.com/shenikar/safemap/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safemap/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title SafeMap API
// @version 1.0
// @description Missing person records, filters, statistics and danger zones.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Очередь оповещений о зонах риска и воркер доставки
	alertPublisher := webhook.NewRedisZoneAlertPublisher(redisClient, cfg.WebhookDedupTTL)
	alertWorker := webhook.NewWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	personRepo := repository.NewMissingPersonRepository(dbpool, redisClient, cfg.CacheTTL)

	// Фоновое геокодирование записей без координат
	if cfg.GeocoderAPIKey != "" {
		kakao := geocoding.NewKakaoGeocoder(cfg.GeocoderAddressURL, cfg.GeocoderKeywordURL, cfg.GeocoderAPIKey,
			&http.Client{Timeout: cfg.GeocoderTimeout}, cfg.GeocodeRateLimit)
		geocoder := geocoding.NewCachedGeocoder(kakao, redisClient, cfg.GeocodeCacheTTL, log)
		geocoding.NewWorker(personRepo, geocoder, log, cfg, clockwork.NewRealClock()).Start(ctx)
	} else {
		log.Warn("GEOCODER_API_KEY is not set, geocoding worker is disabled")
	}

	personService := service.NewMissingPersonService(personRepo, log, cfg, alertPublisher, clockwork.NewRealClock())
	handler := v1.NewHandler(personService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
