package forecast

import (
	"errors"

	"weather-app/internal/domain/model"
)

// ErrEmptyLocation is returned by Submit for an empty or blank location.
var ErrEmptyLocation = errors.New("location is required")

type UseCase interface {
	// Submit validates the location, marks the state as loading and schedules a debounced fetch.
	// The returned state already reflects the submission.
	Submit(location string) (model.UIState, error)

	// ToggleTheme switches between light and dark, nothing else changes
	ToggleTheme(isDark bool) model.UIState

	// State returns a snapshot of the current state
	State() model.UIState

	// Subscribe registers fn to receive every new state, the returned func removes it
	Subscribe(fn func(model.UIState)) (unsubscribe func())

	// Close drops the pending fetch, cancels the in-flight one and ignores later submissions
	Close()
}
