package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/shenikar/safemap/internal/models"
)

// Envelope - ответ источника в виде {"total": N, "items": [...]}
type Envelope struct {
	Total int                    `json:"total"`
	Items []models.MissingPerson `json:"items"`
}

// ErrInvalidPayload - входные данные не являются массивом записей или конвертом
var ErrInvalidPayload = errors.New("records: invalid payload")

// Decode принимает как голый массив, так и конверт с полем items,
// и всегда возвращает плоский срез
func Decode(data []byte) ([]models.MissingPerson, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []models.MissingPerson{}, nil
	}

	switch trimmed[0] {
	case '[':
		items := make([]models.MissingPerson, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: failed to decode array: %v", ErrInvalidPayload, err)
		}
		return items, nil
	case '{':
		var env Envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("%w: failed to decode envelope: %v", ErrInvalidPayload, err)
		}
		if env.Items == nil {
			return []models.MissingPerson{}, nil
		}
		return env.Items, nil
	default:
		return nil, fmt.Errorf("%w: neither an array nor an envelope", ErrInvalidPayload)
	}
}

// SortByMissingDate сортирует записи по дате пропажи, новые первыми.
// Сортировка стабильная: при равных датах сохраняется исходный порядок.
func SortByMissingDate(items []models.MissingPerson) []models.MissingPerson {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MissingDate.After(items[j].MissingDate)
	})
	return items
}

// Normalize декодирует ответ и упорядочивает записи
func Normalize(data []byte) ([]models.MissingPerson, error) {
	items, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return SortByMissingDate(items), nil
}
