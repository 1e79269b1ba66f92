package geocoding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const geocodeCachePrefix = "geocode:"

// cachedResult - запись кеша. Found=false кеширует отрицательный ответ.
type cachedResult struct {
	Found       bool        `json:"found"`
	Coordinates Coordinates `json:"coordinates"`
}

// CachedGeocoder кеширует результаты другого Geocoder в Redis по нормализованному адресу.
// Временные ошибки не кешируются.
type CachedGeocoder struct {
	next        Geocoder
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

func NewCachedGeocoder(next Geocoder, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	key := cacheKey(address)
	log := c.logger.WithField("method", "CachedGeocoder.Geocode")

	val, err := c.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedResult
		if err := json.Unmarshal(val, &cached); err == nil {
			if !cached.Found {
				return Coordinates{}, ErrNotFound
			}
			return cached.Coordinates, nil
		}
		log.WithError(err).Warn("Failed to unmarshal geocode cache entry")
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("Failed to read geocode cache")
	}

	coords, err := c.next.Geocode(ctx, address)
	switch {
	case err == nil:
		c.store(ctx, key, cachedResult{Found: true, Coordinates: coords})
	case errors.Is(err, ErrNotFound):
		c.store(ctx, key, cachedResult{Found: false})
	}
	return coords, err
}

func (c *CachedGeocoder) store(ctx context.Context, key string, result cachedResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Failed to write geocode cache")
	}
}

// cacheKey нормализует адрес: пробелы по краям и повторные пробелы не влияют на ключ
func cacheKey(address string) string {
	normalized := strings.Join(strings.Fields(address), " ")
	sum := sha256.Sum256([]byte(normalized))
	return fmt.Sprintf("%s%s", geocodeCachePrefix, hex.EncodeToString(sum[:]))
}
