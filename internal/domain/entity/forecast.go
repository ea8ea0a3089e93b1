package entity

// ForecastResult is one parsed forecast response. A new query replaces it as a whole.
type ForecastResult struct {
	LocationName string        `json:"locationName"`
	CountryName  string        `json:"countryName"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Days         []ForecastDay `json:"days"`
}

// ForecastDay keeps the order returned by the API.
type ForecastDay struct {
	Date             string  `json:"date"`
	AverageTempC     float64 `json:"averageTempC"`
	ConditionText    string  `json:"conditionText"`
	ConditionIconURL string  `json:"conditionIconUrl"`
}
