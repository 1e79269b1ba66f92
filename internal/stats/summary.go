package stats

import (
	"math"
	"sort"
	"time"

	"github.com/shenikar/safemap/internal/models"
)

const (
	topLocationsLimit = 5
	maxDailyBuckets   = 30
)

// Summarize строит сводную статистику по записям за последние days дней
// относительно now. Записи вне окна не учитываются.
func Summarize(records []models.MissingPerson, days int, now time.Time) models.Stats {
	since := now.AddDate(0, 0, -days)

	s := models.Stats{
		PeriodDays: days,
		StatusStatistics: map[models.IncidentStatus]int{
			models.StatusMissing:  0,
			models.StatusResolved: 0,
		},
		GenderStatistics: map[models.Gender]int{
			models.GenderMale:   0,
			models.GenderFemale: 0,
		},
		TopLocations:    []models.LocationCount{},
		DailyStatistics: []models.DailyCount{},
	}

	byLocation := make(map[string]int)
	byDay := make(map[string]int)
	for i := range records {
		r := &records[i]
		if r.MissingDate.Before(since) {
			continue
		}
		s.TotalCount++
		if _, ok := s.StatusStatistics[r.Status]; ok {
			s.StatusStatistics[r.Status]++
		}
		if r.Gender != nil {
			if _, ok := s.GenderStatistics[*r.Gender]; ok {
				s.GenderStatistics[*r.Gender]++
			}
		}
		if r.HasCoordinates() {
			s.WithLocationCount++
		}
		if r.LocationAddress != "" {
			byLocation[r.LocationAddress]++
		}
		byDay[r.MissingDate.In(now.Location()).Format(models.DateLayout)]++
	}

	for region, count := range byLocation {
		s.TopLocations = append(s.TopLocations, models.LocationCount{Region: region, Count: count})
	}
	sort.Slice(s.TopLocations, func(i, j int) bool {
		if s.TopLocations[i].Count != s.TopLocations[j].Count {
			return s.TopLocations[i].Count > s.TopLocations[j].Count
		}
		return s.TopLocations[i].Region < s.TopLocations[j].Region
	})
	if len(s.TopLocations) > topLocationsLimit {
		s.TopLocations = s.TopLocations[:topLocationsLimit]
	}

	buckets := min(days, maxDailyBuckets)
	for i := 0; i < buckets; i++ {
		day := now.AddDate(0, 0, -i).Format(models.DateLayout)
		s.DailyStatistics = append(s.DailyStatistics, models.DailyCount{Date: day, Count: byDay[day]})
	}
	return s
}

// Percentage возвращает долю part от total в процентах с одним знаком после запятой.
// При total == 0 возвращает 0.
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
