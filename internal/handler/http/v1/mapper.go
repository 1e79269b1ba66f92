package v1

import (
	"time"

	"github.com/shenikar/safemap/internal/models"
)

// QueryToFilter преобразует DTO фильтров во вкладку и критерии запроса.
// Пустая дата ("start_date=") считается отсутствующей.
func QueryToFilter(q FilterQuery) (models.StatusTab, models.FilterCriteria) {
	tab := models.StatusTab(q.Tab)
	if tab == "" {
		tab = models.TabAll
	}

	criteria := models.FilterCriteria{
		AgeMin:        q.AgeMin,
		AgeMax:        q.AgeMax,
		HasDisability: q.HasDisability,
	}
	start, end := nonZeroDate(q.StartDate), nonZeroDate(q.EndDate)
	if start != nil || end != nil {
		criteria.ExplicitDateRange = &models.DateRange{Start: start, End: end}
	}
	if q.Gender != nil {
		g := models.Gender(*q.Gender)
		criteria.Gender = &g
	}
	return tab, criteria
}

func nonZeroDate(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return t
}

// ModelToMissingPersonResponse преобразует доменную модель в DTO для ответа
func ModelToMissingPersonResponse(model *models.MissingPerson) *MissingPersonResponse {
	resp := &MissingPersonResponse{
		ID:              model.ID,
		ExternalID:      model.ExternalID,
		Status:          string(model.Status),
		MissingDate:     model.MissingDate,
		ResolvedAt:      model.ResolvedAt,
		LocationAddress: model.LocationAddress,
		LocationDetail:  model.LocationDetail,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Age:             model.Age,
		HasDisability:   model.HasDisability,
		GeocodingStatus: string(model.GeocodingStatus),
	}
	if model.Gender != nil {
		resp.Gender = string(*model.Gender)
	}
	return resp
}

// ModelsToMissingPersonResponses преобразует слайс моделей в слайс DTO
func ModelsToMissingPersonResponses(items []models.MissingPerson) []*MissingPersonResponse {
	responses := make([]*MissingPersonResponse, len(items))
	for i := range items {
		responses[i] = ModelToMissingPersonResponse(&items[i])
	}
	return responses
}

// ModelsToDangerZoneResponses преобразует зоны риска в DTO
func ModelsToDangerZoneResponses(zones []models.DangerZone) []*DangerZoneResponse {
	responses := make([]*DangerZoneResponse, len(zones))
	for i, z := range zones {
		responses[i] = &DangerZoneResponse{
			CenterLat:     z.CenterLat,
			CenterLng:     z.CenterLng,
			RadiusMeters:  z.RadiusMeters,
			RiskColor:     z.RiskColor,
			IncidentCount: z.IncidentCount,
		}
	}
	return responses
}
