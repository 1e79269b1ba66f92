package records

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/safemap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arrayPayload = `[
  {"id":"11111111-1111-1111-1111-111111111111","status":"missing","missing_date":"2024-01-01T10:00:00Z","geocoding_status":"failed"},
  {"id":"22222222-2222-2222-2222-222222222222","status":"resolved","missing_date":"2024-03-01T10:00:00Z","resolved_at":"2024-03-05T00:00:00Z","latitude":37.5,"longitude":127.0,"gender":"F","age":12,"has_disability":false,"geocoding_status":"ok"}
]`

const envelopePayload = `{"total": 2, "items": ` + arrayPayload + `}`

func TestDecode_BothShapesAreEquivalent(t *testing.T) {
	fromArray, err := Decode([]byte(arrayPayload))
	require.NoError(t, err)
	fromEnvelope, err := Decode([]byte("  \n" + envelopePayload))
	require.NoError(t, err)

	require.Len(t, fromArray, 2)
	assert.Equal(t, fromArray, fromEnvelope)

	resolved := fromArray[1]
	assert.Equal(t, models.StatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
	assert.True(t, resolved.HasCoordinates())
	assert.Equal(t, models.GenderFemale, *resolved.Gender)
	assert.Equal(t, 12, *resolved.Age)
	require.NotNil(t, resolved.HasDisability)
	assert.False(t, *resolved.HasDisability)
	assert.False(t, fromArray[0].HasCoordinates())
}

func TestDecode_EmptyInputs(t *testing.T) {
	for _, raw := range []string{"", "[]", `{"items": []}`, `{"total": 0}`} {
		items, err := Decode([]byte(raw))
		require.NoError(t, err, raw)
		assert.NotNil(t, items, raw)
		assert.Empty(t, items, raw)
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte(`"items"`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = Decode([]byte(`[{"id": 1`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestNormalize_SortsNewestFirst(t *testing.T) {
	items, err := Normalize([]byte(envelopePayload))

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", items[0].ID.String())
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", items[1].ID.String())
}

func TestSortByMissingDate_Stable(t *testing.T) {
	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var items []models.MissingPerson
	var order []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		order = append(order, id)
		items = append(items, models.MissingPerson{ID: id, MissingDate: same})
	}

	sorted := SortByMissingDate(items)

	require.Len(t, sorted, 5)
	for i, p := range sorted {
		assert.Equal(t, order[i], p.ID)
	}
}

func TestSortByMissingDate_TiesKeepSourceOrderAmongOthers(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	items := []models.MissingPerson{
		{ID: a, MissingDate: older},
		{ID: b, MissingDate: newer},
		{ID: c, MissingDate: older},
	}

	sorted := SortByMissingDate(items)

	assert.Equal(t, []uuid.UUID{b, a, c}, []uuid.UUID{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}
