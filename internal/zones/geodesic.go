package zones

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// minLngRatio ограничивает растяжение ячеек у полюсов
const minLngRatio = 0.01

// longitudeStep возвращает шаг по долготе для строки сетки так,
// чтобы ширина ячейки на местности совпадала с ее высотой
func longitudeStep(row int64, gridSize float64) float64 {
	midLat := (float64(row) + 0.5) * gridSize
	midLat = math.Max(-89.9, math.Min(89.9, midLat))

	// угловая длина одного градуса долготы на этой широте
	a := s2.LatLngFromDegrees(midLat, 0)
	b := s2.LatLngFromDegrees(midLat, 1)
	ratio := float64(a.Distance(b)) / float64(s1.Degree)
	if ratio < minLngRatio {
		ratio = minLngRatio
	}
	return math.Min(gridSize/ratio, 360)
}
