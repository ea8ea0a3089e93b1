package health

import (
	"strconv"

	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
)

// SessionCounter reports how many browser sessions are alive
type SessionCounter interface {
	Count() int
}

type healthUseCase struct {
	weatherGateway api.WeatherGateway
	sessions       SessionCounter
}

func NewHealthUseCase(weatherGateway api.WeatherGateway, sessions SessionCounter) UseCase {
	return &healthUseCase{
		weatherGateway: weatherGateway,
		sessions:       sessions,
	}
}

// CheckHealth is DOWN when the weather api cannot be used; sessions never take the app down
func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	weatherHealth := useCase.weatherGateway.Health()

	overallStatus := model.StatusUp
	if weatherHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:     overallStatus,
		WeatherAPI: weatherHealth,
		Sessions: model.ComponentHealthStatus{
			Status:  model.StatusUp,
			Details: map[string]string{"active": strconv.Itoa(useCase.sessions.Count())},
		},
	}
}
