// Package session keeps one controller, map and websocket hub per browser session.
package session

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"weather-app/internal/application/presenter"
	"weather-app/internal/application/realtime"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/mapview"
	"weather-app/pkg/log"
)

// Session wires a forecast controller to its map display and its open tabs.
type Session struct {
	ID string

	forecast    forecast.UseCase
	display     *mapview.Display
	hub         *realtime.Hub
	unsubscribe func()
	clock       func() time.Time

	mu       sync.Mutex
	page     model.PageView
	lastSeen time.Time
}

func newSession(id string, useCase forecast.UseCase, display *mapview.Display, clock func() time.Time) *Session {
	s := &Session{
		ID:       id,
		forecast: useCase,
		display:  display,
		hub:      realtime.NewHub(),
		clock:    clock,
		lastSeen: clock(),
	}
	s.render(useCase.State())
	s.unsubscribe = useCase.Subscribe(s.onState)
	return s
}

// Submit forwards to the controller and returns the page after the submission.
func (s *Session) Submit(location string) (model.PageView, error) {
	_, err := s.forecast.Submit(location)
	return s.Page(), err
}

func (s *Session) ToggleTheme(isDark bool) model.PageView {
	s.forecast.ToggleTheme(isDark)
	return s.Page()
}

// Page returns the last rendered page.
func (s *Session) Page() model.PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Attach streams pages to a websocket until it closes. The idle clock restarts
// when the socket goes away, an open tab is never idle.
func (s *Session) Attach(w http.ResponseWriter, r *http.Request) error {
	initial, err := json.Marshal(s.Page())
	if err != nil {
		return err
	}
	defer func() { s.touch(s.clock()) }()
	return s.hub.Attach(w, r, initial)
}

func (s *Session) onState(state model.UIState) {
	page := s.render(state)

	payload, err := json.Marshal(page)
	if err != nil {
		log.Errorf("Failed to encode page for session %s: %v", s.ID, err)
		return
	}
	s.hub.Broadcast(payload)
}

// render moves the map along with the forecast and stores the resulting page
func (s *Session) render(state model.UIState) model.PageView {
	var mapView *model.MapView
	if result, ok := state.Outcome.Forecast(); ok {
		view, _ := s.display.Show(result.Latitude, result.Longitude)
		mapView = &view
	} else {
		s.display.Unmount()
	}

	page := presenter.Render(state, mapView)

	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
	return page
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleFor(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// close tears the session down: pending fetches, subscribers and sockets.
func (s *Session) close() {
	s.unsubscribe()
	s.forecast.Close()
	s.hub.Close()
}
