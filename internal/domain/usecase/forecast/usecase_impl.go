package forecast

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/pkg/debounce"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/observability"
)

// Options configures a forecast use case.
type Options struct {
	DebounceWindow time.Duration
	ForecastDays   int
	// SessionID is only used to tag log entries
	SessionID string
}

type forecastUseCase struct {
	gateway   api.WeatherGateway
	debouncer *debounce.Debouncer
	days      int
	sessionID string

	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	state          model.UIState
	closed         bool
	inflightCancel context.CancelFunc
	listeners      map[int]func(model.UIState)
	nextListener   int
	version        uint64

	// notifyMu orders deliveries, a snapshot older than the last delivered one is dropped
	notifyMu     sync.Mutex
	lastNotified uint64
}

func NewForecastUseCase(gateway api.WeatherGateway, opts Options) UseCase {
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = 500 * time.Millisecond
	}
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = 3
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &forecastUseCase{
		gateway:   gateway,
		debouncer: debounce.New(opts.DebounceWindow),
		days:      opts.ForecastDays,
		sessionID: opts.SessionID,
		ctx:       ctx,
		cancel:    cancel,
		state:     model.NewUIState(),
		listeners: make(map[int]func(model.UIState)),
	}
}

// Submit validates the location and schedules a debounced fetch
func (uc *forecastUseCase) Submit(location string) (model.UIState, error) {
	location = strings.TrimSpace(location)

	uc.mu.Lock()
	if uc.closed {
		state := uc.state
		uc.mu.Unlock()
		return state, nil
	}
	uc.logPhase(model.PhaseIdle, model.PhaseValidating)

	if location == "" {
		uc.state.Outcome = model.FailedOutcome(msg.GetMessage("weather.error.empty-location"))
		uc.logPhase(model.PhaseValidating, model.PhaseInvalid)
		version, state, listeners := uc.snapshotLocked()
		uc.mu.Unlock()

		observability.ObserveSubmission(false)
		log.Info(msg.GetMessage("forecast.log.rejected"), zap.String("session_id", uc.sessionID))
		uc.notify(version, state, listeners)
		return state, ErrEmptyLocation
	}

	uc.state.Query = location
	uc.state.IsLoading = true
	if uc.state.Outcome.Kind() == model.OutcomeFailed {
		uc.state.Outcome = model.EmptyOutcome()
	}
	uc.state.Generation++
	generation := uc.state.Generation
	uc.logPhase(model.PhaseValidating, model.PhaseLoading)
	version, state, listeners := uc.snapshotLocked()

	uc.debouncer.Call(func() { uc.fetch(generation, location) })
	uc.mu.Unlock()

	observability.ObserveSubmission(true)
	log.Info(msg.GetMessage("forecast.log.submitted"),
		zap.String("session_id", uc.sessionID),
		zap.String("query", location),
		zap.Uint64("generation", generation))
	uc.notify(version, state, listeners)
	return state, nil
}

// fetch runs once the debounce window has passed
func (uc *forecastUseCase) fetch(generation uint64, location string) {
	uc.mu.Lock()
	if uc.closed || generation != uc.state.Generation {
		uc.mu.Unlock()
		return
	}
	if uc.inflightCancel != nil {
		uc.inflightCancel()
	}
	ctx, cancel := context.WithCancel(uc.ctx)
	uc.inflightCancel = cancel
	uc.mu.Unlock()
	defer cancel()

	log.Debug(msg.GetMessage("forecast.log.fired"),
		zap.String("session_id", uc.sessionID),
		zap.String("query", location),
		zap.Uint64("generation", generation))

	start := time.Now()
	result, err := uc.gateway.GetForecast(ctx, location, uc.days)
	elapsed := time.Since(start)

	uc.mu.Lock()
	if uc.closed || generation != uc.state.Generation {
		uc.mu.Unlock()
		observability.ObserveFetch(observability.FetchStale, elapsed)
		log.Debug(msg.GetMessage("forecast.log.stale"),
			zap.String("session_id", uc.sessionID),
			zap.Uint64("generation", generation))
		return
	}

	uc.inflightCancel = nil
	uc.state.IsLoading = false
	outcome := uc.apply(result, err)
	version, state, listeners := uc.snapshotLocked()
	uc.mu.Unlock()

	observability.ObserveFetch(outcome, elapsed)
	if err != nil {
		log.Warn(msg.GetMessage("forecast.log.failed"),
			zap.String("session_id", uc.sessionID),
			zap.String("query", location),
			zap.String("outcome", outcome),
			zap.Error(err))
	} else {
		log.Info(msg.GetMessage("forecast.log.loaded"),
			zap.String("session_id", uc.sessionID),
			zap.String("query", location),
			zap.Int("days", len(result.Days)),
			zap.Duration("latency", elapsed))
	}
	uc.notify(version, state, listeners)
}

// apply stores the fetch result and returns the metrics outcome label. Caller holds mu.
func (uc *forecastUseCase) apply(result *entity.ForecastResult, err error) string {
	if err == nil {
		uc.state.Outcome = model.LoadedOutcome(result)
		uc.logPhase(model.PhaseLoading, model.PhaseSuccess)
		return observability.FetchSuccess
	}

	uc.logPhase(model.PhaseLoading, model.PhaseFailure)

	var responseErr *api.ResponseError
	var parseErr *api.ParseError
	switch {
	case errors.As(err, &responseErr):
		message := responseErr.Message
		if message == "" {
			message = msg.GetMessage("weather.error.invalid-location")
		}
		uc.state.Outcome = model.FailedOutcome(message)
		return observability.FetchAPIError
	case errors.As(err, &parseErr):
		uc.state.Outcome = model.FailedOutcome(msg.GetMessage("weather.error.invalid-location"))
		return observability.FetchMalformed
	default:
		uc.state.Outcome = model.FailedOutcome(msg.GetMessage("weather.error.fetch-failed"))
		return observability.FetchTransport
	}
}

// ToggleTheme only touches the theme
func (uc *forecastUseCase) ToggleTheme(isDark bool) model.UIState {
	uc.mu.Lock()
	uc.state.Theme = model.ThemeFor(isDark)
	version, state, listeners := uc.snapshotLocked()
	uc.mu.Unlock()

	log.Debug(msg.GetMessage("forecast.log.theme"),
		zap.String("session_id", uc.sessionID),
		zap.String("theme", string(state.Theme)))
	uc.notify(version, state, listeners)
	return state
}

func (uc *forecastUseCase) State() model.UIState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

func (uc *forecastUseCase) Subscribe(fn func(model.UIState)) func() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.nextListener
	uc.nextListener++
	uc.listeners[id] = fn

	return func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		delete(uc.listeners, id)
	}
}

func (uc *forecastUseCase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	uc.listeners = make(map[int]func(model.UIState))
	uc.mu.Unlock()

	uc.debouncer.Cancel()
	uc.cancel()
	log.Debug(msg.GetMessage("forecast.log.closed"), zap.String("session_id", uc.sessionID))
}

// snapshotLocked copies the state and listeners in subscription order. Caller holds mu.
func (uc *forecastUseCase) snapshotLocked() (uint64, model.UIState, []func(model.UIState)) {
	uc.version++
	listeners := make([]func(model.UIState), 0, len(uc.listeners))
	for id := 0; id < uc.nextListener; id++ {
		if fn, ok := uc.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	return uc.version, uc.state, listeners
}

// notify must not be reached from a listener, listeners may read State but not submit
func (uc *forecastUseCase) notify(version uint64, state model.UIState, listeners []func(model.UIState)) {
	uc.notifyMu.Lock()
	defer uc.notifyMu.Unlock()

	if version <= uc.lastNotified {
		return
	}
	uc.lastNotified = version
	for _, fn := range listeners {
		fn(state)
	}
}

func (uc *forecastUseCase) logPhase(from, to model.Phase) {
	log.Debug("query lifecycle",
		zap.String("session_id", uc.sessionID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
}
