package repository

import (
	"testing"
	"time"

	"github.com/shenikar/safemap/internal/filter"
	"github.com/shenikar/safemap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWhere_Empty(t *testing.T) {
	where, args := buildWhere(models.QuerySpec{}, time.Now())

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildWhere_DaysWindow(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)
	spec, err := filter.CompileQuery(models.TabMissing, 7, models.FilterCriteria{})
	require.NoError(t, err)

	where, args := buildWhere(spec, now)

	assert.Equal(t, " WHERE status = $1 AND missing_date >= $2", where)
	assert.Equal(t, []any{"missing", time.Date(2024, 6, 23, 12, 0, 0, 0, time.UTC)}, args)
}

func TestBuildWhere_LocationUnknownWithDemographics(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	female := models.GenderFemale
	minAge, maxAge := 0, 18
	disability := true

	spec, err := filter.CompileQuery(models.TabLocationUnknown, 30, models.FilterCriteria{
		ExplicitDateRange: &models.DateRange{Start: &start, End: &end},
		Gender:            &female,
		AgeMin:            &minAge,
		AgeMax:            &maxAge,
		HasDisability:     &disability,
	})
	require.NoError(t, err)

	where, args := buildWhere(spec, time.Now())

	assert.Equal(t, " WHERE geocoding_status = $1 AND missing_date >= $2 AND missing_date < $3"+
		" AND gender = $4 AND age >= $5 AND age <= $6 AND has_disability = $7", where)
	assert.Equal(t, []any{
		"failed",
		start,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		"F",
		0,
		18,
		true,
	}, args)
}
