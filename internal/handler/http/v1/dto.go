package v1

import (
	"time"

	"github.com/google/uuid"
)

// FilterQuery DTO расширенных фильтров. Отсутствующий параметр оставляет поле nil.
// @Description DTO расширенных фильтров
type FilterQuery struct {
	Tab           string     `form:"tab" validate:"omitempty,oneof=all missing resolved location_unknown"`
	Days          int        `form:"days" validate:"gte=0"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02" time_utc:"1"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02" time_utc:"1"`
	Gender        *string    `form:"gender" validate:"omitnil,oneof=M F"`
	AgeMin        *int       `form:"age_min" validate:"omitnil,gte=0"`
	AgeMax        *int       `form:"age_max" validate:"omitnil,gte=0"`
	HasDisability *bool      `form:"has_disability"`
}

// ListQuery DTO параметров постраничного запроса
// @Description DTO параметров постраничного запроса
type ListQuery struct {
	FilterQuery
	Limit int `form:"limit" validate:"gte=0,lte=1000"`
	Skip  int `form:"skip" validate:"gte=0"`
}

// ZonesQuery DTO параметров запроса зон риска
// @Description DTO параметров запроса зон риска
type ZonesQuery struct {
	FilterQuery
}

// StatsQuery DTO параметров запроса статистики
// @Description DTO параметров запроса статистики
type StatsQuery struct {
	Days int `form:"days" validate:"gte=0,lte=365"`
}

// MissingPersonResponse DTO для ответа с информацией о записи
// @Description DTO для ответа с информацией о записи
type MissingPersonResponse struct {
	ID              uuid.UUID  `json:"id"`
	ExternalID      string     `json:"external_id,omitempty"`
	Status          string     `json:"status"`
	MissingDate     time.Time  `json:"missing_date"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	LocationAddress string     `json:"location_address,omitempty"`
	LocationDetail  string     `json:"location_detail,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Gender          string     `json:"gender,omitempty"`
	Age             *int       `json:"age,omitempty"`
	HasDisability   *bool      `json:"has_disability,omitempty"`
	GeocodingStatus string     `json:"geocoding_status"`
}

// ListResponse DTO для ответа со страницей записей
// @Description DTO для ответа со страницей записей
type ListResponse struct {
	Total             int                      `json:"total"`
	Items             []*MissingPersonResponse `json:"items"`
	ActiveFilterCount int                      `json:"active_filter_count"`
}

// DangerZoneResponse DTO зоны риска
// @Description DTO зоны риска
type DangerZoneResponse struct {
	CenterLat     float64 `json:"center_lat"`
	CenterLng     float64 `json:"center_lng"`
	RadiusMeters  float64 `json:"radius_meters"`
	RiskColor     string  `json:"risk_color"`
	IncidentCount int     `json:"incident_count"`
}

// ZonesResponse DTO для ответа со списком зон риска
// @Description DTO для ответа со списком зон риска
type ZonesResponse struct {
	Zones []*DangerZoneResponse `json:"zones"`
}

// ImportResponse DTO для ответа на импорт
// @Description DTO для ответа на импорт
type ImportResponse struct {
	Imported int `json:"imported"`
}
