package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Idempotent(t *testing.T) {
	reg := prometheus.NewRegistry()

	require.NoError(t, Register(reg))
	require.NoError(t, Register(reg))
}

func TestObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(queriesTotal.WithLabelValues("list", OutcomeInvalid))

	ObserveQuery("list", 10*time.Millisecond, OutcomeInvalid)

	assert.Equal(t, before+1, testutil.ToFloat64(queriesTotal.WithLabelValues("list", OutcomeInvalid)))
}

func TestObserveCache(t *testing.T) {
	hits := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("miss"))

	ObserveCache(true)
	ObserveCache(false)
	ObserveCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("miss")))
}

func TestObserveGeocoding(t *testing.T) {
	before := testutil.ToFloat64(geocodingResultsTotal.WithLabelValues("ok"))

	ObserveGeocoding("ok")

	assert.Equal(t, before+1, testutil.ToFloat64(geocodingResultsTotal.WithLabelValues("ok")))
}
