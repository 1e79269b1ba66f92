package models

import "time"

// LocationCount - количество записей по адресу
type LocationCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

// DailyCount - количество записей за день
type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats - сводная статистика по записям за период
type Stats struct {
	PeriodDays        int                    `json:"period_days"`
	TotalCount        int                    `json:"total_count"`
	WithLocationCount int                    `json:"with_location_count"`
	StatusStatistics  map[IncidentStatus]int `json:"status_statistics"`
	GenderStatistics  map[Gender]int         `json:"gender_statistics"`
	TopLocations      []LocationCount        `json:"top_locations"`
	DailyStatistics   []DailyCount           `json:"daily_statistics"`
}

// DateRangeSummary - самая ранняя и самая поздняя дата пропажи
type DateRangeSummary struct {
	Oldest *time.Time `json:"oldest"`
	Newest *time.Time `json:"newest"`
}

// DatabaseSummary - сводка по всей базе записей, включая ход геокодирования
type DatabaseSummary struct {
	TotalCount         int              `json:"total_count"`
	GeocodedCount      int              `json:"geocoded_count"`
	GeocodedPercentage float64          `json:"geocoded_percentage"`
	PendingCount       int              `json:"pending_count"`
	FailedCount        int              `json:"failed_count"`
	RecentCount        int              `json:"recent_count"`
	LastUpdated        *time.Time       `json:"last_updated"`
	DateRange          DateRangeSummary `json:"date_range"`
}
