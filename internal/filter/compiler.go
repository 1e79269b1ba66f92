package filter

import (
	"errors"
	"fmt"

	"github.com/shenikar/safemap/internal/models"
)

// DefaultDays - окно по умолчанию в днях
const DefaultDays = 30

// ErrInvalidFilterCombination возвращается при противоречивых фильтрах
var ErrInvalidFilterCombination = errors.New("invalid filter combination")

// CompileQuery объединяет вкладку, окно в днях и расширенные фильтры
// в каноническую спецификацию запроса.
func CompileQuery(tab models.StatusTab, relativeDays int, advanced models.FilterCriteria) (models.QuerySpec, error) {
	var spec models.QuerySpec

	// 1. Статус. Вкладка "местоположение неизвестно" фильтрует только по геокодированию.
	switch tab {
	case models.TabAll, "":
	case models.TabMissing:
		spec.Status = ptr(models.StatusMissing)
	case models.TabResolved:
		spec.Status = ptr(models.StatusResolved)
	case models.TabLocationUnknown:
		spec.GeocodingStatus = ptr(models.GeocodingFailed)
	default:
		return models.QuerySpec{}, fmt.Errorf("%w: unknown status tab %q", ErrInvalidFilterCombination, tab)
	}

	// 2. Даты. Полный явный диапазон отменяет окно в днях.
	if r := advanced.ExplicitDateRange; r != nil && (r.Start != nil || r.End != nil) {
		if r.Start == nil || r.End == nil {
			return models.QuerySpec{}, fmt.Errorf("%w: date range requires both start and end", ErrInvalidFilterCombination)
		}
		start, end := *r.Start, *r.End
		spec.StartDate = &start
		spec.EndDate = &end
		spec.ActiveFilterCount++
	} else {
		if relativeDays <= 0 {
			relativeDays = DefaultDays
		}
		spec.Days = ptr(relativeDays)
	}

	// 3. Демографические фильтры
	if advanced.AgeMin != nil && advanced.AgeMax != nil && *advanced.AgeMin > *advanced.AgeMax {
		return models.QuerySpec{}, fmt.Errorf("%w: age_min %d is greater than age_max %d",
			ErrInvalidFilterCombination, *advanced.AgeMin, *advanced.AgeMax)
	}
	if advanced.Gender != nil {
		spec.Gender = ptr(*advanced.Gender)
		spec.ActiveFilterCount++
	}
	if advanced.AgeMin != nil {
		spec.AgeMin = ptr(*advanced.AgeMin)
		spec.ActiveFilterCount++
	}
	if advanced.AgeMax != nil {
		spec.AgeMax = ptr(*advanced.AgeMax)
		spec.ActiveFilterCount++
	}
	if advanced.HasDisability != nil {
		spec.HasDisability = ptr(*advanced.HasDisability)
		spec.ActiveFilterCount++
	}

	return spec, nil
}

func ptr[T any](v T) *T {
	return &v
}
