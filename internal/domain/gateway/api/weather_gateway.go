package api

import (
	"context"
	"fmt"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// WeatherGateway defines the calls made to the external weather API
type WeatherGateway interface {
	// GetForecast fetches a forecast for a free-text location.
	// days: forecast horizon in days
	// Errors are *ResponseError (non-2xx), *ParseError (2xx with an unusable body)
	// or a transport error from the HTTP client.
	GetForecast(ctx context.Context, location string, days int) (*entity.ForecastResult, error)

	// Health reports the gateway configuration without calling the API
	Health() model.ComponentHealthStatus
}

// ResponseError is a non-2xx answer. Message is the API's error.message, possibly empty.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("weather api returned status %d: %s", e.StatusCode, e.Message)
}

// ParseError is a 2xx answer whose body failed decoding or schema validation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed weather api response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
