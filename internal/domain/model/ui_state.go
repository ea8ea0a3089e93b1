package model

import (
	"encoding/json"

	"weather-app/internal/domain/entity"
)

// Theme is the presentation theme, it never affects fetching.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeFor maps the toggle position to a Theme.
func ThemeFor(isDark bool) Theme {
	if isDark {
		return ThemeDark
	}
	return ThemeLight
}

// Phase names the steps of one query lifecycle:
// idle -> validating -> (invalid -> idle) | (loading -> (success | failure) -> idle).
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseInvalid    Phase = "invalid"
	PhaseLoading    Phase = "loading"
	PhaseSuccess    Phase = "success"
	PhaseFailure    Phase = "failure"
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind string

const (
	OutcomeEmpty  OutcomeKind = "empty"
	OutcomeLoaded OutcomeKind = "loaded"
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome holds either nothing, a forecast or an error message, never both.
type Outcome struct {
	kind     OutcomeKind
	forecast *entity.ForecastResult
	message  string
}

func EmptyOutcome() Outcome {
	return Outcome{kind: OutcomeEmpty}
}

func LoadedOutcome(forecast *entity.ForecastResult) Outcome {
	if forecast == nil {
		return EmptyOutcome()
	}
	return Outcome{kind: OutcomeLoaded, forecast: forecast}
}

func FailedOutcome(message string) Outcome {
	return Outcome{kind: OutcomeFailed, message: message}
}

// Kind returns the variant, the zero Outcome is empty.
func (o Outcome) Kind() OutcomeKind {
	if o.kind == "" {
		return OutcomeEmpty
	}
	return o.kind
}

func (o Outcome) Forecast() (*entity.ForecastResult, bool) {
	return o.forecast, o.Kind() == OutcomeLoaded
}

func (o Outcome) ErrorMessage() (string, bool) {
	return o.message, o.Kind() == OutcomeFailed
}

type outcomeJSON struct {
	Kind     OutcomeKind            `json:"kind"`
	Forecast *entity.ForecastResult `json:"forecast,omitempty"`
	Message  string                 `json:"message,omitempty"`
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{Kind: o.Kind(), Forecast: o.forecast, Message: o.message})
}

// UIState is one session's controller state. Generation identifies the latest accepted submission.
type UIState struct {
	Query      string  `json:"query"`
	Outcome    Outcome `json:"outcome"`
	IsLoading  bool    `json:"isLoading"`
	Theme      Theme   `json:"theme"`
	Generation uint64  `json:"generation"`
}

// NewUIState returns the state a session starts with.
func NewUIState() UIState {
	return UIState{Outcome: EmptyOutcome(), Theme: ThemeLight}
}
