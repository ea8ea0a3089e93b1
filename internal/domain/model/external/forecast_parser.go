package external

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"weather-app/internal/domain/entity"
)

//go:embed forecast_schema.json
var forecastSchemaJSON string

var forecastSchema = jsonschema.MustCompileString("forecast_schema.json", forecastSchemaJSON)

// ParseForecast validates a forecast.json body against the schema and maps it to a ForecastResult.
func ParseForecast(body []byte) (*entity.ForecastResult, error) {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode forecast body: %w", err)
	}

	if err := forecastSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("forecast body does not match schema: %w", err)
	}

	var response ForecastResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("unmarshal forecast body: %w", err)
	}

	return toForecastResult(response), nil
}

func toForecastResult(response ForecastResponse) *entity.ForecastResult {
	days := make([]entity.ForecastDay, 0, len(response.Forecast.ForecastDay))
	for _, day := range response.Forecast.ForecastDay {
		days = append(days, entity.ForecastDay{
			Date:             day.Date,
			AverageTempC:     day.Day.AvgTempC,
			ConditionText:    day.Day.Condition.Text,
			ConditionIconURL: normalizeIconURL(day.Day.Condition.Icon),
		})
	}

	return &entity.ForecastResult{
		LocationName: response.Location.Name,
		CountryName:  response.Location.Country,
		Latitude:     response.Location.Lat,
		Longitude:    response.Location.Lon,
		Days:         days,
	}
}

// normalizeIconURL turns the protocol-relative icon paths WeatherAPI returns into https URLs
func normalizeIconURL(icon string) string {
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}
