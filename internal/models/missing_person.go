package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус записи о пропавшем человеке
type IncidentStatus string

const (
	StatusMissing  IncidentStatus = "missing"
	StatusResolved IncidentStatus = "resolved"
)

// Gender - пол пропавшего
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// GeocodingStatus - результат геокодирования адреса записи
type GeocodingStatus string

const (
	GeocodingOK      GeocodingStatus = "ok"
	GeocodingFailed  GeocodingStatus = "failed"
	GeocodingPending GeocodingStatus = "pending"
)

// MissingPerson представляет запись о пропавшем человеке.
// Координаты либо обе заданы, либо обе отсутствуют. Ключ импорта - ExternalID.
type MissingPerson struct {
	ID              uuid.UUID       `json:"id"`
	ExternalID      string          `json:"external_id,omitempty" validate:"required,max=255"`
	Status          IncidentStatus  `json:"status" validate:"oneof=missing resolved"`
	MissingDate     time.Time       `json:"missing_date" validate:"required"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	LocationAddress string          `json:"location_address,omitempty"`
	LocationDetail  string          `json:"location_detail,omitempty"`
	Latitude        *float64        `json:"latitude,omitempty" validate:"omitnil,latitude"`
	Longitude       *float64        `json:"longitude,omitempty" validate:"omitnil,longitude"`
	Gender          *Gender         `json:"gender,omitempty" validate:"omitnil,oneof=M F"`
	Age             *int            `json:"age,omitempty" validate:"omitnil,gte=0,lte=150"`
	HasDisability   *bool           `json:"has_disability,omitempty"`
	GeocodingStatus GeocodingStatus `json:"geocoding_status" validate:"oneof=ok failed pending"`
}

// HasCoordinates сообщает, есть ли у записи координаты
func (p *MissingPerson) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Page - параметры пагинации
type Page struct {
	Limit  int
	Offset int
}
