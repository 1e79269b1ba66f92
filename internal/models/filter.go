package models

import (
	"net/url"
	"strconv"
	"time"
)

// DateLayout - формат дат в параметрах запроса
const DateLayout = "2006-01-02"

// StatusTab - вкладка статуса, выбранная пользователем
type StatusTab string

const (
	TabAll             StatusTab = "all"
	TabMissing         StatusTab = "missing"
	TabResolved        StatusTab = "resolved"
	TabLocationUnknown StatusTab = "location_unknown"
)

// DateRange - явный диапазон дат. Считается заданным, только если заданы оба конца.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// FilterCriteria - расширенные фильтры. nil означает "не задано";
// нулевой возраст или false являются заданными значениями.
type FilterCriteria struct {
	ExplicitDateRange *DateRange
	Gender            *Gender
	AgeMin            *int
	AgeMax            *int
	HasDisability     *bool
}

// QuerySpec - каноническое описание запроса к источнику данных
type QuerySpec struct {
	Status          *IncidentStatus
	GeocodingStatus *GeocodingStatus
	Days            *int
	StartDate       *time.Time
	EndDate         *time.Time
	Gender          *Gender
	AgeMin          *int
	AgeMax          *int
	HasDisability   *bool

	ActiveFilterCount int
}

// Params переводит спецификацию в параметры транспортного уровня
func (q QuerySpec) Params() url.Values {
	v := url.Values{}
	if q.Status != nil {
		v.Set("status", string(*q.Status))
	}
	if q.GeocodingStatus != nil {
		v.Set("geocoding_status", string(*q.GeocodingStatus))
	}
	if q.Days != nil {
		v.Set("days", strconv.Itoa(*q.Days))
	}
	if q.StartDate != nil && q.EndDate != nil {
		v.Set("start_date", q.StartDate.Format(DateLayout))
		v.Set("end_date", q.EndDate.Format(DateLayout))
	}
	if q.Gender != nil {
		v.Set("gender", string(*q.Gender))
	}
	if q.AgeMin != nil {
		v.Set("age_min", strconv.Itoa(*q.AgeMin))
	}
	if q.AgeMax != nil {
		v.Set("age_max", strconv.Itoa(*q.AgeMax))
	}
	if q.HasDisability != nil {
		v.Set("has_disability", strconv.FormatBool(*q.HasDisability))
	}
	return v
}
