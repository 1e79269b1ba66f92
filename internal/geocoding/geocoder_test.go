package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newKakaoServer отдает фиксированные ответы для поиска по адресу и по ключевому слову
func newKakaoServer(t *testing.T, addressBody, keywordBody string, status int) (*httptest.Server, *[]string) {
	t.Helper()
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		queries = append(queries, r.URL.Path+"?"+r.URL.Query().Get("query"))
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/keyword" {
			_, _ = w.Write([]byte(keywordBody))
			return
		}
		_, _ = w.Write([]byte(addressBody))
	}))
	t.Cleanup(srv.Close)
	return srv, &queries
}

func newTestGeocoder(srv *httptest.Server) *KakaoGeocoder {
	return NewKakaoGeocoder(srv.URL+"/address", srv.URL+"/keyword", "test-key", srv.Client(), 0)
}

func TestKakaoGeocoder_PrefersRoadAddress(t *testing.T) {
	srv, queries := newKakaoServer(t, `{"documents":[{
		"x":"0","y":"0",
		"road_address":{"x":"126.9780","y":"37.5665"},
		"address":{"x":"127.0000","y":"37.0000"}}]}`, ``, http.StatusOK)

	coords, err := newTestGeocoder(srv).Geocode(context.Background(), "  Seoul City Hall ")

	require.NoError(t, err)
	assert.InDelta(t, 37.5665, coords.Latitude, 1e-9)
	assert.InDelta(t, 126.9780, coords.Longitude, 1e-9)
	assert.Equal(t, []string{"/address?Seoul City Hall"}, *queries)
}

func TestKakaoGeocoder_FallsBackToLotAddress(t *testing.T) {
	srv, _ := newKakaoServer(t, `{"documents":[{"address":{"x":"129.0756","y":"35.1796"}}]}`, ``, http.StatusOK)

	coords, err := newTestGeocoder(srv).Geocode(context.Background(), "Busan")

	require.NoError(t, err)
	assert.InDelta(t, 35.1796, coords.Latitude, 1e-9)
	assert.InDelta(t, 129.0756, coords.Longitude, 1e-9)
}

func TestKakaoGeocoder_KeywordSearch(t *testing.T) {
	srv, queries := newKakaoServer(t, `{"documents":[]}`, `{"documents":[{"x":"126.7052","y":"37.4563"}]}`, http.StatusOK)

	coords, err := newTestGeocoder(srv).Geocode(context.Background(), "Incheon station")

	require.NoError(t, err)
	assert.InDelta(t, 37.4563, coords.Latitude, 1e-9)
	assert.Equal(t, []string{"/address?Incheon station", "/keyword?Incheon station"}, *queries)
}

func TestKakaoGeocoder_NotFound(t *testing.T) {
	srv, _ := newKakaoServer(t, `{"documents":[]}`, `{"documents":[]}`, http.StatusOK)

	_, err := newTestGeocoder(srv).Geocode(context.Background(), "nowhere")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKakaoGeocoder_EmptyAddress(t *testing.T) {
	srv, queries := newKakaoServer(t, ``, ``, http.StatusOK)

	_, err := newTestGeocoder(srv).Geocode(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, *queries)
}

func TestKakaoGeocoder_HTTPErrorIsTransient(t *testing.T) {
	srv, _ := newKakaoServer(t, ``, ``, http.StatusTooManyRequests)

	_, err := newTestGeocoder(srv).Geocode(context.Background(), "Seoul")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCacheKey_Normalizes(t *testing.T) {
	assert.Equal(t, cacheKey("Seoul  Jung-gu"), cacheKey(" Seoul Jung-gu "))
	assert.NotEqual(t, cacheKey("Seoul"), cacheKey("Busan"))
}
