package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/safemap/internal/models"
	"github.com/shenikar/safemap/internal/zones"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`
	WebhookDedupTTL   time.Duration `env:"WEBHOOK_DEDUP_TTL" envDefault:"1h"`

	// Geocoding Config, пустой GEOCODER_API_KEY отключает воркер
	GeocoderAddressURL string        `env:"GEOCODER_ADDRESS_URL"`
	GeocoderKeywordURL string        `env:"GEOCODER_KEYWORD_URL"`
	GeocoderAPIKey     string        `env:"GEOCODER_API_KEY"`
	GeocoderTimeout    time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`
	GeocodeRateLimit   float64       `env:"GEOCODE_RATE_LIMIT" envDefault:"10"`
	GeocodeInterval    time.Duration `env:"GEOCODE_INTERVAL" envDefault:"1m"`
	GeocodeBatchSize   int           `env:"GEOCODE_BATCH_SIZE" envDefault:"50"`
	GeocodeCacheTTL    time.Duration `env:"GEOCODE_CACHE_TTL" envDefault:"720h"`

	// Query Config
	DefaultDays int `env:"DEFAULT_DAYS" envDefault:"30"`
	ListLimit   int `env:"LIST_LIMIT" envDefault:"100"`
	MapLimit    int `env:"MAP_LIMIT" envDefault:"500"`

	// Danger zone Config
	ZoneGridSize     float64           `env:"ZONE_GRID_SIZE" envDefault:"0.05"`
	ZoneMinIncidents int               `env:"ZONE_MIN_INCIDENTS" envDefault:"2"`
	ZoneRiskBands    []models.RiskBand `env:"ZONE_RISK_BANDS"`
	ZoneGeodesic     bool              `env:"ZONE_GEODESIC" envDefault:"false"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

const (
	// DefaultRiskBands - полосы риска по умолчанию
	DefaultRiskBands = "2:#FFC107:1500,5:#FF9800:2500,10:#FF3B30:4000"

	DefaultGeocoderAddressURL = "https://dapi.kakao.com/v2/local/search/address.json"
	DefaultGeocoderKeywordURL = "https://dapi.kakao.com/v2/local/search/keyword.json"
)

// ZoneOptions собирает параметры агрегатора зон риска
func (c *Config) ZoneOptions() zones.Options {
	return zones.Options{
		GridSizeDegrees:     c.ZoneGridSize,
		MinIncidentsPerZone: c.ZoneMinIncidents,
		RiskBands:           c.ZoneRiskBands,
		Geodesic:            c.ZoneGeodesic,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	bands, err := ParseRiskBands(getEnv("ZONE_RISK_BANDS", DefaultRiskBands))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		WebhookDedupTTL:   getEnvAsDuration("WEBHOOK_DEDUP_TTL", time.Hour),

		GeocoderAddressURL: getEnv("GEOCODER_ADDRESS_URL", DefaultGeocoderAddressURL),
		GeocoderKeywordURL: getEnv("GEOCODER_KEYWORD_URL", DefaultGeocoderKeywordURL),
		GeocoderAPIKey:     os.Getenv("GEOCODER_API_KEY"),
		GeocoderTimeout:    getEnvAsDuration("GEOCODER_TIMEOUT", 10*time.Second),
		GeocodeRateLimit:   getEnvAsFloat("GEOCODE_RATE_LIMIT", 10),
		GeocodeInterval:    getEnvAsDuration("GEOCODE_INTERVAL", time.Minute),
		GeocodeBatchSize:   getEnvAsInt("GEOCODE_BATCH_SIZE", 50),
		GeocodeCacheTTL:    getEnvAsDuration("GEOCODE_CACHE_TTL", 720*time.Hour),

		DefaultDays:       getEnvAsInt("DEFAULT_DAYS", 30),
		ListLimit:         getEnvAsInt("LIST_LIMIT", 100),
		MapLimit:          getEnvAsInt("MAP_LIMIT", 500),
		ZoneGridSize:      getEnvAsFloat("ZONE_GRID_SIZE", 0.05),
		ZoneMinIncidents:  getEnvAsInt("ZONE_MIN_INCIDENTS", 2),
		ZoneRiskBands:     bands,
		ZoneGeodesic:      getEnvAsBool("ZONE_GEODESIC", false),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Некорректные параметры зон проверяем при старте, а не на каждом запросе
	if err := cfg.ZoneOptions().Validate(); err != nil {
		return nil, fmt.Errorf("некорректная конфигурация зон риска: %w", err)
	}

	return cfg, nil
}

// ParseRiskBands разбирает полосы риска в формате "min:color:radius,..."
func ParseRiskBands(raw string) ([]models.RiskBand, error) {
	var bands []models.RiskBand
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("некорректная полоса риска %q: ожидается min:color:radius", part)
		}
		minCount, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("некорректный порог полосы риска %q: %w", part, err)
		}
		radius, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("некорректный радиус полосы риска %q: %w", part, err)
		}
		bands = append(bands, models.RiskBand{MinCount: minCount, Color: fields[1], RadiusMeters: radius})
	}
	return bands, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
