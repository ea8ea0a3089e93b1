package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weather-app/internal/domain/model"
	pkghttp "weather-app/pkg/http"
)

const londonBody = `{
  "location": {"name": "London", "country": "United Kingdom", "lat": 51.52, "lon": -0.11},
  "forecast": {"forecastday": [
    {"date": "2024-05-01", "day": {"avgtemp_c": 12.4, "condition": {"text": "Partly cloudy", "icon": "//cdn.weatherapi.com/weather/64x64/day/116.png"}}},
    {"date": "2024-05-02", "day": {"avgtemp_c": 14.1, "condition": {"text": "Sunny", "icon": "//cdn.weatherapi.com/weather/64x64/day/113.png"}}},
    {"date": "2024-05-03", "day": {"avgtemp_c": 9.8, "condition": {"text": "Light rain", "icon": "//cdn.weatherapi.com/weather/64x64/day/296.png"}}}
  ]}
}`

func newTestGateway(t *testing.T, handler http.HandlerFunc) WeatherGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewWeatherGateway(server.URL, "test-key", pkghttp.ClientOptions{})
}

func TestGetForecastSuccess(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("key") != "test-key" {
			t.Errorf("expected key=test-key, got %s", query.Get("key"))
		}
		if query.Get("q") != "London" {
			t.Errorf("expected q=London, got %s", query.Get("q"))
		}
		if query.Get("days") != "3" {
			t.Errorf("expected days=3, got %s", query.Get("days"))
		}
		if accept := r.Header.Get("Accept"); accept != "application/json" {
			t.Errorf("expected Accept application/json, got %q", accept)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(londonBody))
	})

	result, err := gateway.GetForecast(context.Background(), "London", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LocationName != "London" || len(result.Days) != 3 {
		t.Errorf("unexpected result %+v", result)
	}
	if result.Days[2].ConditionText != "Light rain" {
		t.Errorf("expected days in API order, got %+v", result.Days)
	}
}

func TestGetForecastLatin1Body(t *testing.T) {
	// "Zürich" with ü as the single ISO-8859-1 byte 0xFC
	body := []byte(`{"location": {"name": "Z` + "\xfc" + `rich", "country": "Switzerland", "lat": 47.37, "lon": 8.55},
  "forecast": {"forecastday": [
    {"date": "2024-05-01", "day": {"avgtemp_c": 11.0, "condition": {"text": "Overcast", "icon": "//cdn.weatherapi.com/weather/64x64/day/122.png"}}}
  ]}}`)

	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=ISO-8859-1")
		_, _ = w.Write(body)
	})

	result, err := gateway.GetForecast(context.Background(), "Zurich", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LocationName != "Zürich" {
		t.Errorf("expected the name transcoded to UTF-8, got %q", result.LocationName)
	}
}

func TestGetForecastAPIError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	})

	_, err := gateway.GetForecast(context.Background(), "Atlantis", 3)

	var responseErr *ResponseError
	if !errors.As(err, &responseErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if responseErr.StatusCode != http.StatusBadRequest || responseErr.Message != "No matching location found." {
		t.Errorf("unexpected error %+v", responseErr)
	}
}

func TestGetForecastAPIErrorWithoutMessage(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<html>forbidden</html>`))
	})

	_, err := gateway.GetForecast(context.Background(), "London", 3)

	var responseErr *ResponseError
	if !errors.As(err, &responseErr) {
		t.Fatalf("expected ResponseError, got %v", err)
	}
	if responseErr.Message != "" {
		t.Errorf("expected empty message, got %q", responseErr.Message)
	}
}

func TestGetForecastMalformedBody(t *testing.T) {
	bodies := []string{
		`{"location":`,
		`{"location": {"name": "London"}}`,
	}
	for _, body := range bodies {
		body := body
		gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})

		_, err := gateway.GetForecast(context.Background(), "London", 3)

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("expected ParseError for %s, got %v", body, err)
		}
	}
}

func TestGetForecastTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	gateway := NewWeatherGateway(baseURL, "test-key", pkghttp.ClientOptions{})
	_, err := gateway.GetForecast(context.Background(), "London", 3)
	if err == nil {
		t.Fatal("expected a transport error")
	}

	var responseErr *ResponseError
	var parseErr *ParseError
	if errors.As(err, &responseErr) || errors.As(err, &parseErr) {
		t.Errorf("transport failure must not be classified as an API error: %v", err)
	}
}

func TestHealth(t *testing.T) {
	if got := NewWeatherGateway("https://api.weatherapi.com", "", pkghttp.ClientOptions{}).Health(); got.Status != model.StatusDown {
		t.Errorf("expected DOWN without api key, got %s", got.Status)
	}
	got := NewWeatherGateway("https://api.weatherapi.com/", "k", pkghttp.ClientOptions{}).Health()
	if got.Status != model.StatusUp || got.Details["base_url"] != "https://api.weatherapi.com" {
		t.Errorf("unexpected health %+v", got)
	}
}
