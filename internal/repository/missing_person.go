package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safemap/internal/geocoding"
	"github.com/shenikar/safemap/internal/models"
	"github.com/shenikar/safemap/internal/records"
	"github.com/shenikar/safemap/internal/service"
)

const listCachePrefix = "missing_persons:list:"

const selectColumns = `
	id,
	COALESCE(external_id, ''),
	status,
	missing_date,
	resolved_at,
	location_address,
	location_detail,
	latitude,
	longitude,
	gender,
	age,
	has_disability,
	geocoding_status`

var (
	_ service.MissingPersonRepository = (*MissingPersonRepository)(nil)
	_ geocoding.Repository           = (*MissingPersonRepository)(nil)
)

type MissingPersonRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewMissingPersonRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *MissingPersonRepository {
	return &MissingPersonRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// List возвращает записи, подходящие под спецификацию, новые первыми.
// Limit <= 0 означает выборку без ограничения.
func (r *MissingPersonRepository) List(ctx context.Context, spec models.QuerySpec, page models.Page, now time.Time) ([]models.MissingPerson, error) {
	where, args := buildWhere(spec, now)
	query := fmt.Sprintf("SELECT %s FROM missing_persons%s ORDER BY missing_date DESC, created_at ASC", selectColumns, where)
	if page.Limit > 0 {
		args = append(args, page.Limit, page.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list missing persons: %w", err)
	}
	defer rows.Close()

	items := make([]models.MissingPerson, 0)
	for rows.Next() {
		p, err := scanMissingPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan missing person row: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}

// Count возвращает количество записей, подходящих под спецификацию
func (r *MissingPersonRepository) Count(ctx context.Context, spec models.QuerySpec, now time.Time) (int, error) {
	where, args := buildWhere(spec, now)
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM missing_persons"+where, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count missing persons: %w", err)
	}
	return count, nil
}

const upsertQuery = `
	INSERT INTO missing_persons (
		id, external_id, status, missing_date, resolved_at, location_address, location_detail,
		latitude, longitude, gender, age, has_disability, geocoding_status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (external_id) DO UPDATE SET
		status = EXCLUDED.status,
		missing_date = EXCLUDED.missing_date,
		resolved_at = EXCLUDED.resolved_at,
		location_address = EXCLUDED.location_address,
		location_detail = EXCLUDED.location_detail,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		gender = EXCLUDED.gender,
		age = EXCLUDED.age,
		has_disability = EXCLUDED.has_disability,
		geocoding_status = EXCLUDED.geocoding_status,
		updated_at = NOW()
	RETURNING id;
`

// UpsertBatch сохраняет записи в одной транзакции по ключу external_id.
// При ошибке не сохраняется ни одна запись. Идентификатор всегда выдает база:
// новый для новой записи, прежний при обновлении.
func (r *MissingPersonRepository) UpsertBatch(ctx context.Context, items []models.MissingPerson) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i := range items {
		p := &items[i]
		if p.ExternalID == "" {
			return fmt.Errorf("failed to upsert missing person #%d: external_id is required", i)
		}
		if err := tx.QueryRow(ctx, upsertQuery, upsertArgs(p)...).Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to upsert missing person %q: %w", p.ExternalID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit upsert transaction: %w", err)
	}
	return nil
}

func upsertArgs(p *models.MissingPerson) []any {
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}
	return []any{
		uuid.New(),
		p.ExternalID,
		string(p.Status),
		p.MissingDate,
		p.ResolvedAt,
		p.LocationAddress,
		p.LocationDetail,
		p.Latitude,
		p.Longitude,
		gender,
		p.Age,
		p.HasDisability,
		string(p.GeocodingStatus),
	}
}

// ListPendingGeocoding возвращает записи, ожидающие геокодирования, новые первыми
func (r *MissingPersonRepository) ListPendingGeocoding(ctx context.Context, limit int) ([]models.MissingPerson, error) {
	query := fmt.Sprintf("SELECT %s FROM missing_persons WHERE geocoding_status = $1 ORDER BY missing_date DESC LIMIT $2", selectColumns)
	rows, err := r.db.Query(ctx, query, string(models.GeocodingPending), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending geocoding: %w", err)
	}
	defer rows.Close()

	items := make([]models.MissingPerson, 0)
	for rows.Next() {
		p, err := scanMissingPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan missing person row: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error pending iteration: %w", err)
	}
	return items, nil
}

// UpdateGeocoding записывает результат геокодирования. Для статуса failed координаты сбрасываются.
func (r *MissingPersonRepository) UpdateGeocoding(ctx context.Context, id uuid.UUID, lat, lng *float64, status models.GeocodingStatus) error {
	query := `
		UPDATE missing_persons
		SET latitude = $1, longitude = $2, geocoding_status = $3, updated_at = NOW()
		WHERE id = $4;
	`
	tag, err := r.db.Exec(ctx, query, lat, lng, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update geocoding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("missing person %s not found", id)
	}
	return nil
}

// Summary возвращает сводку по всей таблице. recentSince - граница для подсчета недавно добавленных.
func (r *MissingPersonRepository) Summary(ctx context.Context, recentSince time.Time) (*models.DatabaseSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE latitude IS NOT NULL AND longitude IS NOT NULL),
			COUNT(*) FILTER (WHERE geocoding_status = 'pending'),
			COUNT(*) FILTER (WHERE geocoding_status = 'failed'),
			COUNT(*) FILTER (WHERE created_at >= $1),
			MAX(updated_at),
			MIN(missing_date),
			MAX(missing_date)
		FROM missing_persons;
	`
	summary := &models.DatabaseSummary{}
	err := r.db.QueryRow(ctx, query, recentSince).Scan(
		&summary.TotalCount,
		&summary.GeocodedCount,
		&summary.PendingCount,
		&summary.FailedCount,
		&summary.RecentCount,
		&summary.LastUpdated,
		&summary.DateRange.Oldest,
		&summary.DateRange.Newest,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize missing persons: %w", err)
	}
	return summary, nil
}

// GetCachedList пытается получить страницу списка из Redis. Промах кеша - (nil, nil).
func (r *MissingPersonRepository) GetCachedList(ctx context.Context, key string) (*records.Envelope, error) {
	val, err := r.redisClient.Get(ctx, listCachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get list from cache: %w", err)
	}

	env := &records.Envelope{}
	if err := json.Unmarshal(val, env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list from cache: %w", err)
	}
	return env, nil
}

// SetCachedList сохраняет страницу списка в Redis
func (r *MissingPersonRepository) SetCachedList(ctx context.Context, key string, env *records.Envelope) error {
	val, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal list for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, listCachePrefix+key, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set list in cache: %w", err)
	}
	return nil
}

// InvalidateListCache удаляет все закешированные страницы списка
func (r *MissingPersonRepository) InvalidateListCache(ctx context.Context) error {
	iter := r.redisClient.Scan(ctx, 0, listCachePrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan list cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate list cache: %w", err)
	}
	return nil
}

// buildWhere строит условие WHERE по спецификации запроса.
// Окно в днях отсчитывается от now, явный диапазон включает конечную дату целиком.
func buildWhere(spec models.QuerySpec, now time.Time) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if spec.Status != nil {
		add("status = $%d", string(*spec.Status))
	}
	if spec.GeocodingStatus != nil {
		add("geocoding_status = $%d", string(*spec.GeocodingStatus))
	}
	if spec.StartDate != nil && spec.EndDate != nil {
		add("missing_date >= $%d", *spec.StartDate)
		add("missing_date < $%d", spec.EndDate.AddDate(0, 0, 1))
	} else if spec.Days != nil {
		add("missing_date >= $%d", now.AddDate(0, 0, -*spec.Days))
	}
	if spec.Gender != nil {
		add("gender = $%d", string(*spec.Gender))
	}
	if spec.AgeMin != nil {
		add("age >= $%d", *spec.AgeMin)
	}
	if spec.AgeMax != nil {
		add("age <= $%d", *spec.AgeMax)
	}
	if spec.HasDisability != nil {
		add("has_disability = $%d", *spec.HasDisability)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanMissingPerson(row pgx.Row) (models.MissingPerson, error) {
	var (
		p               models.MissingPerson
		status          string
		gender          *string
		geocodingStatus string
	)
	err := row.Scan(
		&p.ID,
		&p.ExternalID,
		&status,
		&p.MissingDate,
		&p.ResolvedAt,
		&p.LocationAddress,
		&p.LocationDetail,
		&p.Latitude,
		&p.Longitude,
		&gender,
		&p.Age,
		&p.HasDisability,
		&geocodingStatus,
	)
	if err != nil {
		return p, err
	}
	p.Status = models.IncidentStatus(status)
	p.GeocodingStatus = models.GeocodingStatus(geocodingStatus)
	if gender != nil {
		g := models.Gender(*gender)
		p.Gender = &g
	}
	return p, nil
}
