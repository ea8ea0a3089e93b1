package resource

import (
	"testing"
	"time"
)

func TestEmbeddedDefaults(t *testing.T) {
	if err := Load([]byte("weather:\n  forecast:\n    days: 3\n    debounce: 500ms\nmap:\n  tiles:\n    url: https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := GetInt("weather.forecast.days"); got != 3 {
		t.Errorf("expected 3 forecast days, got %d", got)
	}
	if got := GetDuration("weather.forecast.debounce"); got != 500*time.Millisecond {
		t.Errorf("expected 500ms debounce, got %v", got)
	}
	if got := GetString("map.tiles.url"); got != "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png" {
		t.Errorf("tile url should not be treated as a placeholder, got %q", got)
	}
}

func TestPlaceholderResolution(t *testing.T) {
	t.Setenv("WEATHER_TEST_BASE_URL", "http://localhost:9999")

	if err := Load([]byte("a:\n  set: ${WEATHER_TEST_BASE_URL:http://fallback}\n  unset: ${WEATHER_TEST_MISSING:fallback}\n  empty: ${WEATHER_TEST_MISSING:}\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]string{
		"a.set":   "http://localhost:9999",
		"a.unset": "fallback",
		"a.empty": "",
	}
	for key, expected := range tests {
		if got := GetString(key); got != expected {
			t.Errorf("%s: expected %q, got %q", key, expected, got)
		}
	}
}
