package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/health"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.CheckHealth())
}

// CheckHealth godoc
// @Summary Health check
// @Description Reports whether the weather API is usable and how many sessions are alive
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthResponse "Application is up"
// @Failure 503 {object} model.HealthResponse "Weather API is not usable"
// @Router /health [get]
func (controller *HealthController) CheckHealth() echo.HandlerFunc {
	return func(c echo.Context) error {
		healthResponse := controller.useCase.CheckHealth()

		if healthResponse.Status != model.StatusUp {
			return c.JSON(http.StatusServiceUnavailable, healthResponse)
		}
		return c.JSON(http.StatusOK, healthResponse)
	}
}
