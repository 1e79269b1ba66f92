package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safemap/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	zoneAlertQueueKey = "zone_alert_events"
	// zoneAlertLastPrefix хранит отпечаток последнего опубликованного набора зон для запроса
	zoneAlertLastPrefix = "zone_alert_last:"
)

// ZoneAlert - событие о построенных зонах риска
type ZoneAlert struct {
	Query     url.Values          `json:"query"`
	Zones     []models.DangerZone `json:"zones"`
	Timestamp time.Time           `json:"timestamp"`
}

// ZoneAlertPublisher - интерфейс для публикации событий о зонах риска
type ZoneAlertPublisher interface {
	Publish(ctx context.Context, alert ZoneAlert) error
}

// RedisZoneAlertPublisher - реализация ZoneAlertPublisher, использующая Redis.
// Повторный набор зон для того же запроса в течение dedupTTL не публикуется.
type RedisZoneAlertPublisher struct {
	redisClient redis.Cmdable
	dedupTTL    time.Duration
}

// NewRedisZoneAlertPublisher создает новый RedisZoneAlertPublisher. dedupTTL <= 0 отключает дедупликацию.
func NewRedisZoneAlertPublisher(client *redis.Client, dedupTTL time.Duration) *RedisZoneAlertPublisher {
	return &RedisZoneAlertPublisher{
		redisClient: client,
		dedupTTL:    dedupTTL,
	}
}

// Publish публикует событие в очередь Redis, если набор зон для запроса изменился
func (p *RedisZoneAlertPublisher) Publish(ctx context.Context, alert ZoneAlert) error {
	if p.dedupTTL > 0 {
		fingerprint, err := alertFingerprint(alert)
		if err != nil {
			return err
		}
		// SET ... GET атомарно сохраняет новый отпечаток и возвращает прежний
		prev, err := p.redisClient.SetArgs(ctx, zoneAlertLastPrefix+queryKey(alert.Query), fingerprint,
			redis.SetArgs{TTL: p.dedupTTL, Get: true}).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to check zone alert fingerprint: %w", err)
		}
		if prev == fingerprint {
			return nil
		}
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal zone alert: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, zoneAlertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish zone alert to Redis: %w", err)
	}
	return nil
}

// queryKey - стабильный ключ запроса, url.Values.Encode сортирует параметры
func queryKey(query url.Values) string {
	sum := sha256.Sum256([]byte(query.Encode()))
	return hex.EncodeToString(sum[:])
}

// alertFingerprint зависит только от запроса и набора зон, но не от времени события
func alertFingerprint(alert ZoneAlert) (string, error) {
	zones, err := json.Marshal(alert.Zones)
	if err != nil {
		return "", fmt.Errorf("failed to marshal zones for fingerprint: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(alert.Query.Encode()))
	h.Write([]byte{0})
	h.Write(zones)
	return hex.EncodeToString(h.Sum(nil)), nil
}
