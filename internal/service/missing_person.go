package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/filter"
	"github.com/shenikar/safemap/internal/metrics"
	"github.com/shenikar/safemap/internal/models"
	"github.com/shenikar/safemap/internal/records"
	"github.com/shenikar/safemap/internal/stats"
	"github.com/shenikar/safemap/internal/webhook"
	"github.com/shenikar/safemap/internal/zones"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=missing_person.go -destination=mocks/mock_missing_person.go -package=mocks

const (
	maxPageLimit = 1000
	// recentDays - окно, в котором запись считается недавно добавленной
	recentDays = 7
)

// MissingPersonRepository определяет контракт для работы с бд записей о пропавших
type MissingPersonRepository interface {
	List(ctx context.Context, spec models.QuerySpec, page models.Page, now time.Time) ([]models.MissingPerson, error)
	Count(ctx context.Context, spec models.QuerySpec, now time.Time) (int, error)
	UpsertBatch(ctx context.Context, items []models.MissingPerson) error
	Summary(ctx context.Context, recentSince time.Time) (*models.DatabaseSummary, error)
	GetCachedList(ctx context.Context, key string) (*records.Envelope, error)
	SetCachedList(ctx context.Context, key string, env *records.Envelope) error
	InvalidateListCache(ctx context.Context) error
}

// MissingPersonService определяет контракт бизнес-логики поиска записей и построения зон риска
type MissingPersonService interface {
	List(ctx context.Context, tab models.StatusTab, days int, criteria models.FilterCriteria, page models.Page) (*ListResult, error)
	DangerZones(ctx context.Context, tab models.StatusTab, days int, criteria models.FilterCriteria) ([]models.DangerZone, error)
	Stats(ctx context.Context, days int) (*models.Stats, error)
	Import(ctx context.Context, data []byte) (int, error)
	Summary(ctx context.Context) (*models.DatabaseSummary, error)
}

// ListResult - результат постраничного запроса
type ListResult struct {
	Total             int
	Items             []models.MissingPerson
	ActiveFilterCount int
}

type missingPersonService struct {
	repo      MissingPersonRepository
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.ZoneAlertPublisher
	clock     clockwork.Clock
}

func NewMissingPersonService(repo MissingPersonRepository, logger *logrus.Logger, cfg *config.Config,
	publisher webhook.ZoneAlertPublisher, clock clockwork.Clock) MissingPersonService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &missingPersonService{
		repo:      repo,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		clock:     clock,
	}
}

// List возвращает отфильтрованные записи, новые первыми
func (s *missingPersonService) List(ctx context.Context, tab models.StatusTab, days int,
	criteria models.FilterCriteria, page models.Page) (result *ListResult, err error) {
	start := s.clock.Now()
	defer func() { metrics.ObserveQuery("list", s.clock.Since(start), outcome(err)) }()

	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  "List",
		"tab":     tab,
	})

	spec, err := s.compile(tab, days, criteria)
	if err != nil {
		log.WithError(err).Warn("Rejected filter combination")
		return nil, fmt.Errorf("service: could not compile query: %w", err)
	}
	page = s.normalizePage(page, s.cfg.ListLimit)

	key := listCacheKey(spec, page)
	log = log.WithField("cache_key", key)

	cached, err := s.repo.GetCachedList(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Failed to read list cache")
	}
	metrics.ObserveCache(cached != nil)
	if cached != nil {
		log.Debug("List served from cache")
		return &ListResult{
			Total:             cached.Total,
			Items:             cached.Items,
			ActiveFilterCount: spec.ActiveFilterCount,
		}, nil
	}

	now := s.clock.Now()
	items, err := s.repo.List(ctx, spec, page, now)
	if err != nil {
		log.WithError(err).Error("Failed to list records from repository")
		return nil, fmt.Errorf("service: could not list records: %w", err)
	}
	total, err := s.repo.Count(ctx, spec, now)
	if err != nil {
		log.WithError(err).Error("Failed to count records in repository")
		return nil, fmt.Errorf("service: could not count records: %w", err)
	}
	items = records.SortByMissingDate(items)

	if err := s.repo.SetCachedList(ctx, key, &records.Envelope{Total: total, Items: items}); err != nil {
		log.WithError(err).Warn("Failed to write list cache")
	}

	log.WithField("count", len(items)).Info("Records listed successfully")
	return &ListResult{Total: total, Items: items, ActiveFilterCount: spec.ActiveFilterCount}, nil
}

// DangerZones строит зоны риска по записям, подходящим под фильтры
func (s *missingPersonService) DangerZones(ctx context.Context, tab models.StatusTab, days int,
	criteria models.FilterCriteria) (result []models.DangerZone, err error) {
	start := s.clock.Now()
	defer func() { metrics.ObserveQuery("zones", s.clock.Since(start), outcome(err)) }()

	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  "DangerZones",
		"tab":     tab,
	})

	spec, err := s.compile(tab, days, criteria)
	if err != nil {
		log.WithError(err).Warn("Rejected filter combination")
		return nil, fmt.Errorf("service: could not compile query: %w", err)
	}

	items, err := s.repo.List(ctx, spec, models.Page{Limit: s.cfg.MapLimit}, s.clock.Now())
	if err != nil {
		log.WithError(err).Error("Failed to list records from repository")
		return nil, fmt.Errorf("service: could not list records: %w", err)
	}

	result, err = zones.ComputeDangerZones(items, s.cfg.ZoneOptions())
	if err != nil {
		log.WithError(err).Error("Danger zone options are invalid")
		return nil, fmt.Errorf("service: could not compute danger zones: %w", err)
	}
	metrics.ObserveDangerZones(len(result))

	isDanger := len(result) > 0
	log.WithFields(logrus.Fields{"records": len(items), "zones": len(result)}).Info("Danger zones computed")

	if isDanger && s.publisher != nil {
		alert := webhook.ZoneAlert{
			Query:     spec.Params(),
			Zones:     result,
			Timestamp: s.clock.Now(),
		}
		if err := s.publisher.Publish(ctx, alert); err != nil {
			log.WithError(err).Warn("Failed to publish zone alert")
		}
	}
	return result, nil
}

// Stats возвращает сводную статистику за последние days дней
func (s *missingPersonService) Stats(ctx context.Context, days int) (result *models.Stats, err error) {
	start := s.clock.Now()
	defer func() { metrics.ObserveQuery("stats", s.clock.Since(start), outcome(err)) }()

	if days <= 0 {
		days = s.defaultDays()
	}
	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  "Stats",
		"days":    days,
	})

	spec, err := filter.CompileQuery(models.TabAll, days, models.FilterCriteria{})
	if err != nil {
		return nil, fmt.Errorf("service: could not compile query: %w", err)
	}

	now := s.clock.Now()
	items, err := s.repo.List(ctx, spec, models.Page{}, now)
	if err != nil {
		log.WithError(err).Error("Failed to list records from repository")
		return nil, fmt.Errorf("service: could not list records: %w", err)
	}

	summary := stats.Summarize(items, days, now)
	log.WithField("total", summary.TotalCount).Info("Statistics computed")
	return &summary, nil
}

// Import загружает записи из JSON (массив или конверт) и сохраняет их одной транзакцией.
// Невалидная запись отклоняет весь импорт до обращения к базе.
func (s *missingPersonService) Import(ctx context.Context, data []byte) (imported int, err error) {
	start := s.clock.Now()
	defer func() { metrics.ObserveQuery("import", s.clock.Since(start), outcome(err)) }()

	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  "Import",
	})
	log.Info("Importing records")

	items, err := records.Normalize(data)
	if err != nil {
		log.WithError(err).Warn("Failed to decode import payload")
		return 0, fmt.Errorf("service: could not decode records: %w", err)
	}

	for i := range items {
		records.Sanitize(&items[i])
		if err := records.Validate(&items[i]); err != nil {
			log.WithError(err).WithField("index", i).Warn("Rejected invalid record")
			return 0, fmt.Errorf("service: could not import record #%d: %w", i, err)
		}
	}

	if err := s.repo.UpsertBatch(ctx, items); err != nil {
		log.WithError(err).Error("Failed to upsert records")
		return 0, fmt.Errorf("service: could not upsert records: %w", err)
	}

	if len(items) > 0 {
		if err := s.repo.InvalidateListCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate list cache")
		}
	}

	log.WithField("count", len(items)).Info("Records imported successfully")
	return len(items), nil
}

// Summary возвращает сводку по всей базе: объем, ход геокодирования, диапазон дат
func (s *missingPersonService) Summary(ctx context.Context) (result *models.DatabaseSummary, err error) {
	start := s.clock.Now()
	defer func() { metrics.ObserveQuery("summary", s.clock.Since(start), outcome(err)) }()

	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  "Summary",
	})

	summary, err := s.repo.Summary(ctx, s.clock.Now().AddDate(0, 0, -recentDays))
	if err != nil {
		log.WithError(err).Error("Failed to summarize records in repository")
		return nil, fmt.Errorf("service: could not summarize records: %w", err)
	}
	summary.GeocodedPercentage = stats.Percentage(summary.GeocodedCount, summary.TotalCount)
	return summary, nil
}

func (s *missingPersonService) compile(tab models.StatusTab, days int, criteria models.FilterCriteria) (models.QuerySpec, error) {
	if days <= 0 {
		days = s.defaultDays()
	}
	return filter.CompileQuery(tab, days, criteria)
}

func (s *missingPersonService) defaultDays() int {
	if s.cfg.DefaultDays > 0 {
		return s.cfg.DefaultDays
	}
	return filter.DefaultDays
}

func (s *missingPersonService) normalizePage(page models.Page, defaultLimit int) models.Page {
	if page.Limit < 1 || page.Limit > maxPageLimit {
		page.Limit = defaultLimit
	}
	if page.Offset < 0 {
		page.Offset = 0
	}
	return page
}

func listCacheKey(spec models.QuerySpec, page models.Page) string {
	return fmt.Sprintf("%s&limit=%d&offset=%d", spec.Params().Encode(), page.Limit, page.Offset)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, filter.ErrInvalidFilterCombination), errors.Is(err, records.ErrInvalidPayload):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeError
	}
}
