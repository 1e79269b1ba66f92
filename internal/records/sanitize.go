package records

import "github.com/shenikar/safemap/internal/models"

// Sanitize приводит запись к инвариантам модели: координаты задаются парой,
// статус геокодирования "ok" только при наличии координат,
// дата решения только у решенных случаев
func Sanitize(p *models.MissingPerson) {
	if p.Latitude == nil || p.Longitude == nil {
		p.Latitude, p.Longitude = nil, nil
	}

	switch {
	case p.HasCoordinates():
		p.GeocodingStatus = models.GeocodingOK
	case p.GeocodingStatus == models.GeocodingOK || p.GeocodingStatus == "":
		p.GeocodingStatus = models.GeocodingPending
	}

	if p.Status == "" {
		p.Status = models.StatusMissing
	}
	if p.Status != models.StatusResolved {
		p.ResolvedAt = nil
	}
}
