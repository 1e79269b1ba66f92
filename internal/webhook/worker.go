package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safemap/internal/config"
	"github.com/sirupsen/logrus"
)

// Worker - забирает события из очереди и доставляет их на webhook
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting zone alert worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping zone alert worker.")
				return
			default:
				// BRPOP блокирует до появления события, 0 - бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, zoneAlertQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop zone alert from Redis")
					time.Sleep(w.cfg.WebhookTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var alert ZoneAlert
				if err := json.Unmarshal([]byte(payload), &alert); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal zone alert from Redis")
					continue
				}

				w.deliver(ctx, alert, payload)
			}
		}
	}()
}

// deliver отправляет событие с экспоненциальной задержкой между попытками.
// Возвращает true при успешной доставке.
func (w *Worker) deliver(ctx context.Context, alert ZoneAlert, rawPayload string) bool {
	log := w.logger.WithField("zones", len(alert.Zones)).WithField("query", alert.Query.Encode())
	log.Debug("Processing zone alert...")

	if w.cfg.WebhookURL == "" {
		log.Warn("Webhook URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.WebhookMaxRetries
	delay := w.cfg.WebhookBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.WebhookURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		// HMAC подпись, если задан WEBHOOK_SECRET
		if w.cfg.WebhookSecret != "" {
			req.Header.Set("X-Webhook-Signature", generateHMACSHA256(rawPayload, w.cfg.WebhookSecret))
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send webhook. Retrying in %v. Retries left: %d", delay, maxRetries-1-i)
		} else {
			resp.Body.Close()
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				log.Info("Zone alert delivered successfully.")
				return true
			}
			log.Warnf("Webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, delay, maxRetries-1-i)
		}

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	log.Errorf("Failed to deliver zone alert after %d retries.", maxRetries)
	return false
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
