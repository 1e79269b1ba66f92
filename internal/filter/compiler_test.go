package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/shenikar/safemap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, _ := time.Parse(models.DateLayout, s)
	return &t
}

func TestCompileQuery_MissingTabDefaults(t *testing.T) {
	spec, err := CompileQuery(models.TabMissing, 30, models.FilterCriteria{})

	require.NoError(t, err)
	require.NotNil(t, spec.Status)
	assert.Equal(t, models.StatusMissing, *spec.Status)
	require.NotNil(t, spec.Days)
	assert.Equal(t, 30, *spec.Days)
	assert.Nil(t, spec.GeocodingStatus)
	assert.Nil(t, spec.Gender)
	assert.Nil(t, spec.AgeMin)
	assert.Nil(t, spec.AgeMax)
	assert.Nil(t, spec.HasDisability)
	assert.Equal(t, 0, spec.ActiveFilterCount)
	assert.Equal(t, url.Values{"status": {"missing"}, "days": {"30"}}, spec.Params())
}

func TestCompileQuery_StatusResolution(t *testing.T) {
	spec, err := CompileQuery(models.TabAll, 7, models.FilterCriteria{})
	require.NoError(t, err)
	assert.Nil(t, spec.Status)
	assert.Nil(t, spec.GeocodingStatus)

	spec, err = CompileQuery(models.TabResolved, 7, models.FilterCriteria{})
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, *spec.Status)

	spec, err = CompileQuery(models.TabLocationUnknown, 7, models.FilterCriteria{})
	require.NoError(t, err)
	assert.Nil(t, spec.Status)
	require.NotNil(t, spec.GeocodingStatus)
	assert.Equal(t, models.GeocodingFailed, *spec.GeocodingStatus)
	assert.Equal(t, "failed", spec.Params().Get("geocoding_status"))
	assert.False(t, spec.Params().Has("status"))
}

func TestCompileQuery_UnknownTab(t *testing.T) {
	_, err := CompileQuery("archived", 30, models.FilterCriteria{})

	assert.ErrorIs(t, err, ErrInvalidFilterCombination)
}

func TestCompileQuery_ExplicitRangeOverridesDays(t *testing.T) {
	spec, err := CompileQuery(models.TabAll, 30, models.FilterCriteria{
		ExplicitDateRange: &models.DateRange{Start: date("2024-01-01"), End: date("2024-01-31")},
	})

	require.NoError(t, err)
	assert.Nil(t, spec.Days)
	assert.Equal(t, *date("2024-01-01"), *spec.StartDate)
	assert.Equal(t, *date("2024-01-31"), *spec.EndDate)
	assert.Equal(t, 1, spec.ActiveFilterCount)

	params := spec.Params()
	assert.False(t, params.Has("days"))
	assert.Equal(t, "2024-01-01", params.Get("start_date"))
	assert.Equal(t, "2024-01-31", params.Get("end_date"))
}

func TestCompileQuery_PartialRange(t *testing.T) {
	_, err := CompileQuery(models.TabAll, 30, models.FilterCriteria{
		ExplicitDateRange: &models.DateRange{Start: date("2024-01-01")},
	})
	assert.ErrorIs(t, err, ErrInvalidFilterCombination)

	_, err = CompileQuery(models.TabAll, 30, models.FilterCriteria{
		ExplicitDateRange: &models.DateRange{End: date("2024-01-31")},
	})
	assert.ErrorIs(t, err, ErrInvalidFilterCombination)
}

func TestCompileQuery_EmptyRangeUsesDays(t *testing.T) {
	spec, err := CompileQuery(models.TabAll, 90, models.FilterCriteria{ExplicitDateRange: &models.DateRange{}})

	require.NoError(t, err)
	assert.Equal(t, 90, *spec.Days)
	assert.Equal(t, 0, spec.ActiveFilterCount)
}

func TestCompileQuery_NonPositiveDaysFallsBackToDefault(t *testing.T) {
	spec, err := CompileQuery(models.TabAll, 0, models.FilterCriteria{})

	require.NoError(t, err)
	assert.Equal(t, DefaultDays, *spec.Days)
}

func TestCompileQuery_InvertedAges(t *testing.T) {
	_, err := CompileQuery(models.TabAll, 30, models.FilterCriteria{AgeMin: ptr(50), AgeMax: ptr(10)})

	assert.ErrorIs(t, err, ErrInvalidFilterCombination)
}

func TestCompileQuery_DemographicPassthrough(t *testing.T) {
	female := models.GenderFemale
	spec, err := CompileQuery(models.TabMissing, 30, models.FilterCriteria{
		Gender:        &female,
		AgeMin:        ptr(0),
		AgeMax:        ptr(0),
		HasDisability: ptr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, models.GenderFemale, *spec.Gender)
	assert.Equal(t, 0, *spec.AgeMin)
	assert.Equal(t, 0, *spec.AgeMax)
	assert.False(t, *spec.HasDisability)
	// нулевые значения считаются заданными
	assert.Equal(t, 4, spec.ActiveFilterCount)
	assert.Equal(t, url.Values{
		"status":         {"missing"},
		"days":           {"30"},
		"gender":         {"F"},
		"age_min":        {"0"},
		"age_max":        {"0"},
		"has_disability": {"false"},
	}, spec.Params())
}

func TestCompileQuery_DoesNotAliasInput(t *testing.T) {
	age := 20
	criteria := models.FilterCriteria{AgeMin: &age}

	spec, err := CompileQuery(models.TabAll, 30, criteria)
	require.NoError(t, err)
	age = 99

	assert.Equal(t, 20, *spec.AgeMin)
}

func TestCompileQuery_ActiveCountIgnoresTabAndDays(t *testing.T) {
	a, err := CompileQuery(models.TabAll, 7, models.FilterCriteria{})
	require.NoError(t, err)
	b, err := CompileQuery(models.TabLocationUnknown, 365, models.FilterCriteria{})
	require.NoError(t, err)

	assert.Equal(t, 0, a.ActiveFilterCount)
	assert.Equal(t, 0, b.ActiveFilterCount)
}
