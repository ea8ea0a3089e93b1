package external

// ForecastResponse is the subset of the WeatherAPI forecast.json body the app reads
type ForecastResponse struct {
	Location LocationDTO `json:"location"`
	Forecast struct {
		ForecastDay []ForecastDayDTO `json:"forecastday"`
	} `json:"forecast"`
}

type LocationDTO struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type ForecastDayDTO struct {
	Date string `json:"date"`
	Day  struct {
		AvgTempC  float64      `json:"avgtemp_c"`
		Condition ConditionDTO `json:"condition"`
	} `json:"day"`
}

type ConditionDTO struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// APIErrorResponse is the error body, every field is optional
type APIErrorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Message returns error.message or an empty string.
func (r *APIErrorResponse) Message() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return r.Error.Message
}
