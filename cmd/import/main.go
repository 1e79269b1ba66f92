package main

import (
	"context"
	"flag"
	"io"
	"os"
	"time"

	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/repository"
	"github.com/shenikar/safemap/internal/service"
	"github.com/shenikar/safemap/pkg/logger"
	"github.com/shenikar/safemap/pkg/postgres"
	redisclient "github.com/shenikar/safemap/pkg/redis"
	"github.com/sirupsen/logrus"
)

// Загружает записи из JSON-файла (массив или конверт {total, items}) в базу
func main() {
	path := flag.String("file", "", "path to JSON file, \"-\" for stdin")
	timeout := flag.Duration("timeout", 5*time.Minute, "import timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel)

	if *path == "" {
		log.Fatal("Flag -file is required")
	}

	data, err := readInput(*path)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
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
	// Импорт не строит зоны, издатель оповещений не нужен
	svc := service.NewMissingPersonService(repo, log, cfg, nil, nil)

	imported, err := svc.Import(ctx, data)
	if err != nil {
		log.Fatalf("Import failed, no records were saved: %v", err)
	}
	log.WithField("count", imported).Info("Import finished")
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
