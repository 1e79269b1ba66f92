package zones

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/safemap/internal/models"
)

// ErrInvalidConfiguration возвращается при некорректных параметрах агрегатора
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Options - параметры построения зон риска
type Options struct {
	GridSizeDegrees     float64
	MinIncidentsPerZone int
	// RiskBands упорядочены по возрастанию MinCount
	RiskBands []models.RiskBand
	// Geodesic расширяет шаг по долготе в зависимости от широты,
	// чтобы ячейки были примерно квадратными на местности
	Geodesic bool
}

// CellKey - индекс ячейки сетки
type CellKey struct {
	Row int64
	Col int64
}

type cell struct {
	sumLat float64
	sumLng float64
	count  int
}

// Validate проверяет параметры агрегатора
func (o Options) Validate() error {
	if math.IsNaN(o.GridSizeDegrees) || math.IsInf(o.GridSizeDegrees, 0) || o.GridSizeDegrees <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %v", ErrInvalidConfiguration, o.GridSizeDegrees)
	}
	if o.MinIncidentsPerZone < 0 {
		return fmt.Errorf("%w: negative min incidents per zone %d", ErrInvalidConfiguration, o.MinIncidentsPerZone)
	}
	if len(o.RiskBands) == 0 {
		return fmt.Errorf("%w: risk bands are empty", ErrInvalidConfiguration)
	}
	for i := 1; i < len(o.RiskBands); i++ {
		if o.RiskBands[i].MinCount < o.RiskBands[i-1].MinCount {
			return fmt.Errorf("%w: risk bands must be sorted by min count", ErrInvalidConfiguration)
		}
	}
	return nil
}

// GridCellKey возвращает ключ ячейки для координат
func GridCellKey(lat, lng float64, opts Options) CellKey {
	row := int64(math.Floor(lat / opts.GridSizeDegrees))
	step := opts.GridSizeDegrees
	if opts.Geodesic {
		step = longitudeStep(row, opts.GridSizeDegrees)
	}
	return CellKey{Row: row, Col: int64(math.Floor(lng / step))}
}

// ComputeDangerZones группирует активные записи по ячейкам сетки и строит зоны риска.
// Порядок результата не определен.
func ComputeDangerZones(records []models.MissingPerson, opts Options) ([]models.DangerZone, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cells := make(map[CellKey]*cell)
	for i := range records {
		r := &records[i]
		// Решенные случаи и записи без координат на риск не влияют
		if r.Status != models.StatusMissing || !r.HasCoordinates() {
			continue
		}
		key := GridCellKey(*r.Latitude, *r.Longitude, opts)
		c, ok := cells[key]
		if !ok {
			c = &cell{}
			cells[key] = c
		}
		c.sumLat += *r.Latitude
		c.sumLng += *r.Longitude
		c.count++
	}

	zones := make([]models.DangerZone, 0, len(cells))
	for _, c := range cells {
		if c.count < opts.MinIncidentsPerZone {
			continue
		}
		band := selectBand(opts.RiskBands, c.count)
		zones = append(zones, models.DangerZone{
			CenterLat:     c.sumLat / float64(c.count),
			CenterLng:     c.sumLng / float64(c.count),
			RadiusMeters:  band.RadiusMeters,
			RiskColor:     band.Color,
			IncidentCount: c.count,
		})
	}
	return zones, nil
}

// selectBand выбирает старшую полосу с MinCount <= count.
// Если count ниже всех порогов, используется младшая полоса.
func selectBand(bands []models.RiskBand, count int) models.RiskBand {
	selected := bands[0]
	for _, b := range bands {
		if b.MinCount <= count {
			selected = b
		}
	}
	return selected
}
