package forecast

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
)

const testWindow = 20 * time.Millisecond

type fakeResponse struct {
	result *entity.ForecastResult
	err    error
	// block, when set, holds the call until it is closed or the context is cancelled
	block chan struct{}
}

type fakeGateway struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []string
	started   chan string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{responses: map[string]fakeResponse{}, started: make(chan string, 10)}
}

func (g *fakeGateway) on(location string, response fakeResponse) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[location] = response
}

func (g *fakeGateway) GetForecast(ctx context.Context, location string, days int) (*entity.ForecastResult, error) {
	g.mu.Lock()
	g.calls = append(g.calls, location)
	response, ok := g.responses[location]
	g.mu.Unlock()
	g.started <- location

	if !ok {
		return nil, &api.ResponseError{StatusCode: 400}
	}
	if response.block != nil {
		select {
		case <-response.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return response.result, response.err
}

func (g *fakeGateway) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func forecastFor(name string, days int) *entity.ForecastResult {
	result := &entity.ForecastResult{LocationName: name, CountryName: "United Kingdom", Latitude: 51.52, Longitude: -0.11}
	for i := 0; i < days; i++ {
		result.Days = append(result.Days, entity.ForecastDay{Date: time.Date(2024, 5, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02")})
	}
	return result
}

func newTestUseCase(t *testing.T, gateway api.WeatherGateway) (UseCase, <-chan model.UIState) {
	t.Helper()
	uc := NewForecastUseCase(gateway, Options{DebounceWindow: testWindow, ForecastDays: 3})
	t.Cleanup(uc.Close)

	updates := make(chan model.UIState, 32)
	uc.Subscribe(func(state model.UIState) { updates <- state })
	return uc, updates
}

// waitForSettled returns the first notified state that is no longer loading
func waitForSettled(t *testing.T, updates <-chan model.UIState) model.UIState {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case state := <-updates:
			if !state.IsLoading {
				return state
			}
		case <-timeout:
			t.Fatal("state never settled")
		}
	}
}

func TestSubmitSetsLoadingBeforeFetch(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, _ := newTestUseCase(t, gateway)

	state, err := uc.Submit("London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.IsLoading {
		t.Error("expected loading to be set synchronously")
	}
	if state.Query != "London" {
		t.Errorf("expected query London, got %q", state.Query)
	}
	if gateway.callCount() != 0 {
		t.Error("fetch must wait for the debounce window")
	}
}

func TestSubmitEmptyLocation(t *testing.T) {
	for _, location := range []string{"", "   ", "\t\n"} {
		gateway := newFakeGateway()
		uc, _ := newTestUseCase(t, gateway)

		state, err := uc.Submit(location)
		if !errors.Is(err, ErrEmptyLocation) {
			t.Errorf("expected ErrEmptyLocation for %q, got %v", location, err)
		}
		if message, ok := state.Outcome.ErrorMessage(); !ok || message != "Please enter a valid country or city." {
			t.Errorf("unexpected outcome for %q: %+v", location, state.Outcome)
		}
		if state.IsLoading {
			t.Error("validation failure must not start loading")
		}

		time.Sleep(3 * testWindow)
		if gateway.callCount() != 0 {
			t.Errorf("no network call expected for %q", location)
		}
	}
}

func TestSubmitEmptyLocationReplacesLoadedForecast(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, updates := newTestUseCase(t, gateway)

	if _, err := uc.Submit("London"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForSettled(t, updates)

	state, err := uc.Submit("  ")
	if !errors.Is(err, ErrEmptyLocation) {
		t.Fatalf("expected ErrEmptyLocation, got %v", err)
	}
	if _, ok := state.Outcome.Forecast(); ok {
		t.Error("the validation message replaces the shown forecast")
	}
	if state.Query != "London" {
		t.Errorf("expected the last valid query to be kept, got %q", state.Query)
	}
}

func TestSubmitLoadsForecastInOrder(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, updates := newTestUseCase(t, gateway)

	if _, err := uc.Submit("London"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state := waitForSettled(t, updates)

	forecast, ok := state.Outcome.Forecast()
	if !ok {
		t.Fatalf("expected a loaded outcome, got %+v", state.Outcome)
	}
	if len(forecast.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(forecast.Days))
	}
	for i, date := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		if forecast.Days[i].Date != date {
			t.Errorf("day %d: expected %s, got %s", i, date, forecast.Days[i].Date)
		}
	}
	if _, failed := state.Outcome.ErrorMessage(); failed {
		t.Error("error must be cleared on success")
	}
}

func TestSubmitAPIErrorClearsForecast(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	gateway.on("Atlantis", fakeResponse{err: &api.ResponseError{StatusCode: 400, Message: "No matching location found."}})
	uc, updates := newTestUseCase(t, gateway)

	_, _ = uc.Submit("London")
	waitForSettled(t, updates)

	_, _ = uc.Submit("Atlantis")
	state := waitForSettled(t, updates)

	if message, ok := state.Outcome.ErrorMessage(); !ok || message != "No matching location found." {
		t.Errorf("expected the API message, got %+v", state.Outcome)
	}
	if _, loaded := state.Outcome.Forecast(); loaded {
		t.Error("forecast must be cleared on API error")
	}
}

func TestSubmitFallbackMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"api error without message", &api.ResponseError{StatusCode: 403}, "Invalid location or no data available."},
		{"malformed body", &api.ParseError{Err: errors.New("missing location")}, "Invalid location or no data available."},
		{"transport failure", errors.New("dial tcp: connection refused"), "Error fetching data."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newFakeGateway()
			gateway.on("London", fakeResponse{err: tt.err})
			uc, updates := newTestUseCase(t, gateway)

			_, _ = uc.Submit("London")
			state := waitForSettled(t, updates)

			if message, ok := state.Outcome.ErrorMessage(); !ok || message != tt.expected {
				t.Errorf("expected %q, got %+v", tt.expected, state.Outcome)
			}
			if state.IsLoading {
				t.Error("loading must be cleared")
			}
		})
	}
}

func TestDebounceCollapsesSubmissions(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("Lon", fakeResponse{result: forecastFor("Lon", 3)})
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, updates := newTestUseCase(t, gateway)

	_, _ = uc.Submit("Lon")
	_, _ = uc.Submit("London")

	state := waitForSettled(t, updates)
	forecast, ok := state.Outcome.Forecast()
	if !ok || forecast.LocationName != "London" {
		t.Fatalf("expected the London forecast, got %+v", state.Outcome)
	}

	time.Sleep(5 * testWindow)
	if gateway.callCount() != 1 {
		t.Errorf("expected a single network call, got %d", gateway.callCount())
	}

	completed := 0
	for len(updates) > 0 {
		if s := <-updates; !s.IsLoading {
			completed++
		}
	}
	if completed != 0 {
		t.Errorf("expected exactly one completed update, got %d more", completed)
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	gateway := newFakeGateway()
	gateway.on("Slow", fakeResponse{result: forecastFor("Slow", 3), block: release})
	gateway.on("Fast", fakeResponse{result: forecastFor("Fast", 3)})
	uc, updates := newTestUseCase(t, gateway)

	_, _ = uc.Submit("Slow")
	select {
	case <-gateway.started:
	case <-time.After(time.Second):
		t.Fatal("slow fetch never started")
	}

	_, _ = uc.Submit("Fast")
	state := waitForSettled(t, updates)
	close(release)

	forecast, ok := state.Outcome.Forecast()
	if !ok || forecast.LocationName != "Fast" {
		t.Fatalf("expected the Fast forecast, got %+v", state.Outcome)
	}

	time.Sleep(5 * testWindow)
	final := uc.State()
	if forecast, _ := final.Outcome.Forecast(); forecast == nil || forecast.LocationName != "Fast" {
		t.Errorf("stale Slow response overwrote the state: %+v", final.Outcome)
	}
}

func TestToggleThemeKeepsData(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, updates := newTestUseCase(t, gateway)

	_, _ = uc.Submit("London")
	waitForSettled(t, updates)

	before := uc.State()
	after := uc.ToggleTheme(true)

	if after.Theme != model.ThemeDark {
		t.Errorf("expected dark theme, got %s", after.Theme)
	}
	if after.Query != before.Query || after.IsLoading != before.IsLoading || after.Generation != before.Generation {
		t.Errorf("theme toggle changed data fields: before %+v after %+v", before, after)
	}
	beforeForecast, _ := before.Outcome.Forecast()
	afterForecast, _ := after.Outcome.Forecast()
	if beforeForecast != afterForecast || before.Outcome.Kind() != after.Outcome.Kind() {
		t.Error("theme toggle changed the outcome")
	}

	if uc.ToggleTheme(false).Theme != model.ThemeLight {
		t.Error("expected light theme")
	}
}

func TestToggleThemeWhileLoading(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc, _ := newTestUseCase(t, gateway)

	_, _ = uc.Submit("London")
	state := uc.ToggleTheme(true)
	if !state.IsLoading || state.Query != "London" {
		t.Errorf("theme toggle must not touch loading or query: %+v", state)
	}
}

func TestCloseDropsPendingFetch(t *testing.T) {
	gateway := newFakeGateway()
	gateway.on("London", fakeResponse{result: forecastFor("London", 3)})
	uc := NewForecastUseCase(gateway, Options{DebounceWindow: testWindow})

	_, _ = uc.Submit("London")
	uc.Close()

	time.Sleep(3 * testWindow)
	if gateway.callCount() != 0 {
		t.Error("closed use case must not fetch")
	}

	state, err := uc.Submit("Paris")
	if err != nil || state.Query != "London" {
		t.Errorf("submissions after Close are ignored, got %+v, %v", state, err)
	}
}

func TestUnsubscribe(t *testing.T) {
	uc := NewForecastUseCase(newFakeGateway(), Options{DebounceWindow: testWindow})
	defer uc.Close()

	count := 0
	unsubscribe := uc.Subscribe(func(model.UIState) { count++ })
	uc.ToggleTheme(true)
	unsubscribe()
	uc.ToggleTheme(false)

	if count != 1 {
		t.Errorf("expected one notification before unsubscribing, got %d", count)
	}
}
