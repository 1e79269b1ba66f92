package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/safemap/internal/config"
	"github.com/shenikar/safemap/internal/filter"
	"github.com/shenikar/safemap/internal/models"
	"github.com/shenikar/safemap/internal/records"
	"github.com/shenikar/safemap/internal/service"
	"github.com/shenikar/safemap/internal/service/mocks"
	"github.com/shenikar/safemap/internal/webhook"
	webhook_mocks "github.com/shenikar/safemap/internal/webhook/mocks"
	"github.com/shenikar/safemap/internal/zones"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

// newTestService — вспомогательная функция для создания инстанса сервиса с моками
func newTestService(t *testing.T) (service.MissingPersonService, *mocks.MockMissingPersonRepository, *webhook_mocks.MockZoneAlertPublisher, *config.Config) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockMissingPersonRepository(ctrl)
	publisherMock := webhook_mocks.NewMockZoneAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultDays:      30,
		ListLimit:        100,
		MapLimit:         500,
		ZoneGridSize:     0.05,
		ZoneMinIncidents: 2,
		ZoneRiskBands: []models.RiskBand{
			{MinCount: 2, Color: "#FFC107", RadiusMeters: 1500},
			{MinCount: 5, Color: "#FF3B30", RadiusMeters: 3000},
		},
	}

	svc := service.NewMissingPersonService(repoMock, logger, cfg, publisherMock, clockwork.NewFakeClockAt(testNow))
	return svc, repoMock, publisherMock, cfg
}

func located(status models.IncidentStatus, lat, lng float64, missing time.Time) models.MissingPerson {
	return models.MissingPerson{
		ID:              uuid.New(),
		Status:          status,
		MissingDate:     missing,
		Latitude:        &lat,
		Longitude:       &lng,
		GeocodingStatus: models.GeocodingOK,
	}
}

func TestList_FromRepository(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	older := located(models.StatusMissing, 37.5, 127.0, testNow.AddDate(0, 0, -5))
	newer := located(models.StatusMissing, 37.6, 127.1, testNow.AddDate(0, 0, -1))

	repoMock.EXPECT().GetCachedList(ctx, "days=30&status=missing&limit=100&offset=0").Return(nil, nil).Times(1)
	repoMock.EXPECT().
		List(ctx, gomock.Any(), models.Page{Limit: 100}, testNow).
		DoAndReturn(func(_ context.Context, spec models.QuerySpec, _ models.Page, _ time.Time) ([]models.MissingPerson, error) {
			assert.Equal(t, models.StatusMissing, *spec.Status)
			assert.Equal(t, 30, *spec.Days)
			return []models.MissingPerson{older, newer}, nil
		}).Times(1)
	repoMock.EXPECT().Count(ctx, gomock.Any(), testNow).Return(2, nil).Times(1)
	repoMock.EXPECT().
		SetCachedList(ctx, gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ string, env *records.Envelope) {
			assert.Equal(t, 2, env.Total)
		}).Return(nil).Times(1)

	result, err := svc.List(ctx, models.TabMissing, 0, models.FilterCriteria{}, models.Page{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.ActiveFilterCount)
	require.Len(t, result.Items, 2)
	assert.Equal(t, newer.ID, result.Items[0].ID)
	assert.Equal(t, older.ID, result.Items[1].ID)
}

func TestList_FromCache(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	gender := models.GenderMale
	cached := &records.Envelope{Total: 7, Items: []models.MissingPerson{{ID: uuid.New()}}}

	repoMock.EXPECT().GetCachedList(ctx, gomock.Any()).Return(cached, nil).Times(1)
	repoMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.List(ctx, models.TabAll, 7, models.FilterCriteria{Gender: &gender}, models.Page{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
	assert.Equal(t, 1, result.ActiveFilterCount)
	assert.Equal(t, cached.Items, result.Items)
}

func TestList_CacheErrorFallsThrough(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetCachedList(ctx, gomock.Any()).Return(nil, errors.New("redis down")).Times(1)
	repoMock.EXPECT().List(ctx, gomock.Any(), gomock.Any(), testNow).Return([]models.MissingPerson{}, nil).Times(1)
	repoMock.EXPECT().Count(ctx, gomock.Any(), testNow).Return(0, nil).Times(1)
	repoMock.EXPECT().SetCachedList(ctx, gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(1)

	result, err := svc.List(ctx, models.TabAll, 30, models.FilterCriteria{}, models.Page{})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestList_InvalidFilter(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	start := testNow

	repoMock.EXPECT().GetCachedList(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.List(context.Background(), models.TabAll, 30, models.FilterCriteria{
		ExplicitDateRange: &models.DateRange{Start: &start},
	}, models.Page{})

	require.Error(t, err)
	assert.ErrorIs(t, err, filter.ErrInvalidFilterCombination)
}

func TestList_RepositoryError(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	dbError := errors.New("connection refused")

	repoMock.EXPECT().GetCachedList(ctx, gomock.Any()).Return(nil, nil).Times(1)
	repoMock.EXPECT().List(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbError).Times(1)

	_, err := svc.List(ctx, models.TabAll, 30, models.FilterCriteria{}, models.Page{})

	require.Error(t, err)
	assert.ErrorIs(t, err, dbError)
	assert.ErrorContains(t, err, "could not list records")
}

func TestDangerZones_PublishesAlert(t *testing.T) {
	svc, repoMock, publisherMock, _ := newTestService(t)
	ctx := context.Background()
	items := []models.MissingPerson{
		located(models.StatusMissing, 37.501, 127.001, testNow),
		located(models.StatusMissing, 37.502, 127.002, testNow),
		located(models.StatusResolved, 37.503, 127.003, testNow),
	}

	repoMock.EXPECT().List(ctx, gomock.Any(), models.Page{Limit: 500}, testNow).Return(items, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, alert webhook.ZoneAlert) {
			require.Len(t, alert.Zones, 1)
			assert.Equal(t, 2, alert.Zones[0].IncidentCount)
			assert.Equal(t, "30", alert.Query.Get("days"))
			assert.Equal(t, testNow, alert.Timestamp)
		}).Return(nil).Times(1)

	result, err := svc.DangerZones(ctx, models.TabAll, 30, models.FilterCriteria{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "#FFC107", result[0].RiskColor)
}

func TestDangerZones_NoZonesNoAlert(t *testing.T) {
	svc, repoMock, publisherMock, _ := newTestService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.MissingPerson{}, nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	result, err := svc.DangerZones(ctx, models.TabMissing, 30, models.FilterCriteria{})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDangerZones_PublishErrorIsNotFatal(t *testing.T) {
	svc, repoMock, publisherMock, _ := newTestService(t)
	ctx := context.Background()
	items := []models.MissingPerson{
		located(models.StatusMissing, 10.01, 10.01, testNow),
		located(models.StatusMissing, 10.02, 10.02, testNow),
	}

	repoMock.EXPECT().List(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(items, nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue full")).Times(1)

	result, err := svc.DangerZones(ctx, models.TabAll, 30, models.FilterCriteria{})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestDangerZones_InvalidConfiguration(t *testing.T) {
	svc, repoMock, _, cfg := newTestService(t)
	cfg.ZoneRiskBands = nil

	repoMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.MissingPerson{}, nil).Times(1)

	_, err := svc.DangerZones(context.Background(), models.TabAll, 30, models.FilterCriteria{})

	assert.ErrorIs(t, err, zones.ErrInvalidConfiguration)
}

func TestStats_Success(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	items := []models.MissingPerson{
		located(models.StatusMissing, 37.5, 127.0, testNow.Add(-time.Hour)),
		located(models.StatusResolved, 37.5, 127.0, testNow.AddDate(0, 0, -2)),
	}

	repoMock.EXPECT().
		List(ctx, gomock.Any(), models.Page{}, testNow).
		DoAndReturn(func(_ context.Context, spec models.QuerySpec, _ models.Page, _ time.Time) ([]models.MissingPerson, error) {
			assert.Equal(t, 7, *spec.Days)
			assert.Nil(t, spec.Status)
			return items, nil
		}).Times(1)

	s, err := svc.Stats(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalCount)
	assert.Equal(t, 1, s.StatusStatistics[models.StatusResolved])
	assert.Len(t, s.DailyStatistics, 7)
}

func TestStats_DefaultDays(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	s, err := svc.Stats(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 30, s.PeriodDays)
}

func TestImport_Success(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	payload := []byte(`{"items": [
		{"external_id": "a", "status": "missing", "missing_date": "2024-01-01T00:00:00Z", "latitude": 37.5, "longitude": 127.0},
		{"external_id": "b", "status": "missing", "missing_date": "2024-02-01T00:00:00Z"}
	]}`)

	var saved []string
	repoMock.EXPECT().
		UpsertBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, items []models.MissingPerson) error {
			for _, p := range items {
				saved = append(saved, p.ExternalID)
				if p.HasCoordinates() {
					assert.Equal(t, models.GeocodingOK, p.GeocodingStatus)
				} else {
					assert.Equal(t, models.GeocodingPending, p.GeocodingStatus)
				}
			}
			return nil
		}).Times(1)
	repoMock.EXPECT().InvalidateListCache(ctx).Return(nil).Times(1)

	n, err := svc.Import(ctx, payload)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	// новые записи сохраняются первыми
	assert.Equal(t, []string{"b", "a"}, saved)
}

func TestImport_Empty(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()

	repoMock.EXPECT().UpsertBatch(ctx, gomock.Len(0)).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateListCache(gomock.Any()).Times(0)

	n, err := svc.Import(ctx, []byte(`{"total": 0, "items": []}`))

	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestImport_InvalidPayload(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Import(context.Background(), []byte(`42`))

	assert.ErrorContains(t, err, "could not decode records")
	assert.ErrorIs(t, err, records.ErrInvalidPayload)
}

func TestImport_InvalidRecordRejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"unknown enums", `[
			{"external_id": "a", "missing_date": "2024-01-01T00:00:00Z"},
			{"external_id": "b", "status": "lost", "gender": "X", "geocoding_status": "weird", "missing_date": "2024-01-02T00:00:00Z"}
		]`},
		{"missing external id", `[{"id": "6f1c7e0e-8f8a-4a53-9a43-6d1f0e9a1b11", "missing_date": "2024-01-01T00:00:00Z"}]`},
		{"missing date", `[{"external_id": "a"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repoMock, _, _ := newTestService(t)

			repoMock.EXPECT().UpsertBatch(gomock.Any(), gomock.Any()).Times(0)
			repoMock.EXPECT().InvalidateListCache(gomock.Any()).Times(0)

			n, err := svc.Import(context.Background(), []byte(tt.payload))

			assert.ErrorIs(t, err, records.ErrInvalidPayload)
			assert.Equal(t, 0, n)
		})
	}
}

func TestImport_UpsertErrorCommitsNothing(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		UpsertBatch(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, items []models.MissingPerson) error {
			// вся пачка уходит в репозиторий одним вызовом
			assert.Len(t, items, 2)
			return errors.New("constraint violation")
		}).Times(1)
	repoMock.EXPECT().InvalidateListCache(gomock.Any()).Times(0)

	n, err := svc.Import(ctx, []byte(`[
		{"external_id": "a", "missing_date": "2024-01-01T00:00:00Z"},
		{"external_id": "b", "missing_date": "2024-01-02T00:00:00Z"}
	]`))

	require.Error(t, err)
	assert.NotErrorIs(t, err, records.ErrInvalidPayload)
	assert.Equal(t, 0, n)
}

func TestSummary(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)
	ctx := context.Background()
	oldest := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	repoMock.EXPECT().
		Summary(ctx, testNow.AddDate(0, 0, -7)).
		Return(&models.DatabaseSummary{
			TotalCount:    3,
			GeocodedCount: 2,
			DateRange:     models.DateRangeSummary{Oldest: &oldest},
		}, nil).
		Times(1)

	s, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 66.7, s.GeocodedPercentage)
	assert.Equal(t, &oldest, s.DateRange.Oldest)
}

func TestSummary_RepositoryError(t *testing.T) {
	svc, repoMock, _, _ := newTestService(t)

	repoMock.EXPECT().Summary(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down")).Times(1)

	_, err := svc.Summary(context.Background())

	assert.ErrorContains(t, err, "could not summarize records")
}
