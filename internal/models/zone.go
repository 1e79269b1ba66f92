package models

// RiskBand - порог плотности, задающий цвет и радиус зоны
type RiskBand struct {
	MinCount     int     `json:"min_count"`
	Color        string  `json:"color"`
	RadiusMeters float64 `json:"radius_meters"`
}

// DangerZone - зона риска, построенная по одной ячейке сетки
type DangerZone struct {
	CenterLat     float64 `json:"center_lat"`
	CenterLng     float64 `json:"center_lng"`
	RadiusMeters  float64 `json:"radius_meters"`
	RiskColor     string  `json:"risk_color"`
	IncidentCount int     `json:"incident_count"`
}
