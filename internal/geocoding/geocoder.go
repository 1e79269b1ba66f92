package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

//go:generate mockgen -source=geocoder.go -destination=mocks/mock_geocoder.go -package=mocks

// ErrNotFound - адрес не удалось сопоставить с координатами
var ErrNotFound = errors.New("geocoding: address not found")

// Coordinates - координаты, найденные для адреса
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Geocoder переводит адрес в координаты
type Geocoder interface {
	Geocode(ctx context.Context, address string) (Coordinates, error)
}

// KakaoGeocoder - клиент Kakao Local API: сначала поиск по адресу, затем по ключевому слову
type KakaoGeocoder struct {
	addressURL string
	keywordURL string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewKakaoGeocoder создает клиент с ограничением частоты запросов ratePerSecond
func NewKakaoGeocoder(addressURL, keywordURL, apiKey string, httpClient *http.Client, ratePerSecond float64) *KakaoGeocoder {
	limit := rate.Inf
	burst := 1
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
		burst = max(1, int(ratePerSecond))
	}
	return &KakaoGeocoder{
		addressURL: addressURL,
		keywordURL: keywordURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

type kakaoPoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type kakaoDocument struct {
	kakaoPoint
	RoadAddress *kakaoPoint `json:"road_address"`
	Address     *kakaoPoint `json:"address"`
}

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

// Geocode возвращает координаты первого найденного результата.
// Дорожный адрес приоритетнее адреса участка.
func (g *KakaoGeocoder) Geocode(ctx context.Context, address string) (Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Coordinates{}, ErrNotFound
	}

	docs, err := g.search(ctx, g.addressURL, address)
	if err != nil {
		return Coordinates{}, err
	}
	if len(docs) > 0 {
		first := docs[0]
		switch {
		case first.RoadAddress != nil:
			return first.RoadAddress.coordinates()
		case first.Address != nil:
			return first.Address.coordinates()
		default:
			return Coordinates{}, ErrNotFound
		}
	}

	if g.keywordURL == "" {
		return Coordinates{}, ErrNotFound
	}
	docs, err = g.search(ctx, g.keywordURL, address)
	if err != nil {
		return Coordinates{}, err
	}
	if len(docs) == 0 {
		return Coordinates{}, ErrNotFound
	}
	return docs[0].kakaoPoint.coordinates()
}

func (g *KakaoGeocoder) search(ctx context.Context, endpoint, query string) ([]kakaoDocument, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocoding: rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+url.Values{"query": {query}}.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding: unexpected status code %d", resp.StatusCode)
	}

	var body kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocoding: failed to decode response: %w", err)
	}
	return body.Documents, nil
}

func (p kakaoPoint) coordinates() (Coordinates, error) {
	lng, err := strconv.ParseFloat(p.X, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad longitude %q", ErrNotFound, p.X)
	}
	lat, err := strconv.ParseFloat(p.Y, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: bad latitude %q", ErrNotFound, p.Y)
	}
	return Coordinates{Latitude: lat, Longitude: lng}, nil
}
