package api

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/model/external"
	"weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/observability"
)

const forecastPath = "/v1/forecast.json"

// weatherGatewayImpl implements WeatherGateway against WeatherAPI
type weatherGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
}

// NewWeatherGateway creates a WeatherGateway backed by the pkg/http client
func NewWeatherGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherGateway {
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.NewZapLogger("key")
	}
	if clientOptions.DefaultHeaders == nil {
		clientOptions.DefaultHeaders = map[string]string{"Accept": "application/json"}
	}
	if apiKey == "" {
		log.Warn(msg.GetMessage("weather.log.missing-key"))
	}

	return &weatherGatewayImpl{
		apiKey:     apiKey,
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
	}
}

// GetForecast calls forecast.json. A missing api key is sent as is, the API rejects it.
func (w *weatherGatewayImpl) GetForecast(ctx context.Context, location string, days int) (*entity.ForecastResult, error) {
	ctx, span := observability.Tracer("weather-gateway").Start(ctx, "GET-FORECAST")
	defer span.End()
	span.SetAttributes(attribute.String("weather.query", location), attribute.Int("weather.days", days))

	log.Debug(msg.GetMessage("weather.log.request"), zap.String("query", location), zap.Int("days", days))

	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"key":  w.apiKey,
			"q":    location,
			"days": strconv.Itoa(days),
		}).
		WithSuccessResp(&json.RawMessage{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	span.SetAttributes(attribute.Int("http.status_code", status))

	if err == nil {
		result, parseErr := external.ParseForecast(*successResp.(*json.RawMessage))
		if parseErr != nil {
			return nil, w.fail(span, &ParseError{Err: parseErr})
		}
		return result, nil
	}

	var decodeErr *http.DecodeError
	if errors.As(err, &decodeErr) {
		return nil, w.fail(span, &ParseError{Err: decodeErr.Err})
	}

	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		responseErr := &ResponseError{StatusCode: statusErr.StatusCode}
		if errResp != nil {
			responseErr.Message = errResp.(*external.APIErrorResponse).Message()
		}
		return nil, w.fail(span, responseErr)
	}

	return nil, w.fail(span, err)
}

func (w *weatherGatewayImpl) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Health reports UP when an api key is configured
func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	status := model.StatusUp
	if w.apiKey == "" {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"base_url":           w.httpClient.BaseURL(),
			"api_key_configured": strconv.FormatBool(w.apiKey != ""),
		},
	}
}
