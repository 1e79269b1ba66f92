package geocoding

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/metrics"
	"github.com/shenikar/safemap/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=worker.go -destination=mocks/mock_worker.go -package=mocks

// Repository - хранилище, из которого воркер берет записи со статусом pending
type Repository interface {
	ListPendingGeocoding(ctx context.Context, limit int) ([]models.MissingPerson, error)
	UpdateGeocoding(ctx context.Context, id uuid.UUID, lat, lng *float64, status models.GeocodingStatus) error
	InvalidateListCache(ctx context.Context) error
}

// Result - итог одного прохода воркера
type Result struct {
	OK     int
	Failed int
	Retry  int
}

// Processed - число записей, вышедших из статуса pending
func (r Result) Processed() int {
	return r.OK + r.Failed
}

// Worker переводит записи из pending в ok или failed
type Worker struct {
	repo      Repository
	geocoder  Geocoder
	logger    *logrus.Logger
	clock     clockwork.Clock
	interval  time.Duration
	batchSize int
}

func NewWorker(repo Repository, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config, clock clockwork.Clock) *Worker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	batchSize := cfg.GeocodeBatchSize
	if batchSize <= 0 {
		batchSize = 50
	}
	return &Worker{
		repo:      repo,
		geocoder:  geocoder,
		logger:    logger,
		clock:     clock,
		interval:  cfg.GeocodeInterval,
		batchSize: batchSize,
	}
}

// Start запускает горутину, которая обрабатывает очередь сразу и затем каждые interval
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting geocoding worker...")
	go func() {
		ticker := w.clock.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			if _, err := w.Drain(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.WithError(err).Error("Geocoding pass failed")
			}
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping geocoding worker.")
				return
			case <-ticker.Chan():
			}
		}
	}()
}

// Drain повторяет RunOnce, пока пачки приходят полными и из них что-то обработано
func (w *Worker) Drain(ctx context.Context) (Result, error) {
	var total Result
	for {
		res, err := w.RunOnce(ctx)
		total.OK += res.OK
		total.Failed += res.Failed
		total.Retry += res.Retry
		if err != nil {
			return total, err
		}
		if res.Processed() == 0 || res.Processed()+res.Retry < w.batchSize {
			return total, nil
		}
	}
}

// RunOnce обрабатывает одну пачку записей. Временные ошибки геокодера оставляют запись в pending.
func (w *Worker) RunOnce(ctx context.Context) (Result, error) {
	var res Result
	log := w.logger.WithField("method", "geocoding.RunOnce")

	pending, err := w.repo.ListPendingGeocoding(ctx, w.batchSize)
	if err != nil {
		return res, fmt.Errorf("geocoding: could not list pending records: %w", err)
	}
	if len(pending) == 0 {
		return res, nil
	}

	for i := range pending {
		p := &pending[i]
		entry := log.WithField("id", p.ID)

		var coords Coordinates
		geoErr := ErrNotFound
		if strings.TrimSpace(p.LocationAddress) != "" {
			coords, geoErr = w.geocoder.Geocode(ctx, p.LocationAddress)
		}

		switch {
		case geoErr == nil:
			if err := w.repo.UpdateGeocoding(ctx, p.ID, &coords.Latitude, &coords.Longitude, models.GeocodingOK); err != nil {
				return res, fmt.Errorf("geocoding: could not store coordinates: %w", err)
			}
			res.OK++
			metrics.ObserveGeocoding("ok")
		case errors.Is(geoErr, ErrNotFound):
			if err := w.repo.UpdateGeocoding(ctx, p.ID, nil, nil, models.GeocodingFailed); err != nil {
				return res, fmt.Errorf("geocoding: could not mark record as failed: %w", err)
			}
			res.Failed++
			metrics.ObserveGeocoding("failed")
		case ctx.Err() != nil:
			return res, ctx.Err()
		default:
			entry.WithError(geoErr).Warn("Geocoder is unavailable, record stays pending")
			res.Retry++
			metrics.ObserveGeocoding("retry")
		}
	}

	if res.Processed() > 0 {
		if err := w.repo.InvalidateListCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate list cache")
		}
	}

	log.WithFields(logrus.Fields{"ok": res.OK, "failed": res.Failed, "retry": res.Retry}).Info("Geocoding pass finished")
	return res, nil
}
