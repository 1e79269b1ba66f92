package main

import (
	"context"
	"flag"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/geocoding"
	"github.com/shenikar/safemap/internal/repository"
	"github.com/shenikar/safemap/pkg/logger"
	"github.com/shenikar/safemap/pkg/postgres"
	redisclient "github.com/shenikar/safemap/pkg/redis"
	"github.com/sirupsen/logrus"
)

// Однократно геокодирует все записи в статусе pending и завершается
func main() {
	timeout := flag.Duration("timeout", 30*time.Minute, "geocoding timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	if cfg.GeocoderAPIKey == "" {
		log.Fatal("GEOCODER_API_KEY is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	repo := repository.NewMissingPersonRepository(dbpool, redisClient, cfg.CacheTTL)
	kakao := geocoding.NewKakaoGeocoder(cfg.GeocoderAddressURL, cfg.GeocoderKeywordURL, cfg.GeocoderAPIKey,
		&http.Client{Timeout: cfg.GeocoderTimeout}, cfg.GeocodeRateLimit)
	geocoder := geocoding.NewCachedGeocoder(kakao, redisClient, cfg.GeocodeCacheTTL, log)

	result, err := geocoding.NewWorker(repo, geocoder, log, cfg, clockwork.NewRealClock()).Drain(ctx)
	if err != nil {
		log.Fatalf("Geocoding failed: %v", err)
	}
	log.WithFields(logrus.Fields{
		"ok":     result.OK,
		"failed": result.Failed,
		"retry":  result.Retry,
	}).Info("Geocoding finished")
}
