package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/domain/usecase/forecast"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

type ForecastController struct {
	api      *echo.Group
	sessions SessionResolver
}

func NewForecastController(api *echo.Group, sessions SessionResolver) *ForecastController {
	return &ForecastController{api: api, sessions: sessions}
}

// SearchRequest is the body of a forecast search
type SearchRequest struct {
	Location string `json:"location" example:"London"`
}

// ThemeRequest is the body of a theme switch
type ThemeRequest struct {
	Dark bool `json:"dark" example:"true"`
}

// InitForecastRoutes initializes forecast routes
func (controller *ForecastController) InitForecastRoutes() {
	controller.api.GET("/api/state", controller.GetState)
	controller.api.POST("/api/search", controller.Search)
	controller.api.PUT("/api/theme", controller.ToggleTheme)
	controller.api.GET("/api/ws", controller.Stream)
}

// GetState godoc
// @Summary Get the current page
// @Description Returns the page of the caller's session, creating the session when needed
// @Tags forecast
// @Produce json
// @Success 200 {object} model.PageView "Current page"
// @Router /api/state [get]
func (controller *ForecastController) GetState(c echo.Context) error {
	s := resolveSession(c, controller.sessions)
	return c.JSON(http.StatusOK, s.Page())
}

// Search godoc
// @Summary Search a forecast
// @Description Submits a location. The fetch runs after the debounce window and its result is pushed on the websocket
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Location to search"
// @Success 202 {object} model.PageView "Page in loading state"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 422 {object} model.PageView "Page with the validation alert"
// @Router /api/search [post]
func (controller *ForecastController) Search(c echo.Context) error {
	var request SearchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("api.error.invalid-body")})
	}

	s := resolveSession(c, controller.sessions)
	page, err := s.Submit(request.Location)
	if errors.Is(err, forecast.ErrEmptyLocation) {
		return c.JSON(http.StatusUnprocessableEntity, page)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusAccepted, page)
}

// ToggleTheme godoc
// @Summary Switch the theme
// @Description Switches between light and dark mode, the forecast is left untouched
// @Tags forecast
// @Accept json
// @Produce json
// @Param request body ThemeRequest true "Theme to apply"
// @Success 200 {object} model.PageView "Page with the new theme"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /api/theme [put]
func (controller *ForecastController) ToggleTheme(c echo.Context) error {
	var request ThemeRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("api.error.invalid-body")})
	}

	s := resolveSession(c, controller.sessions)
	return c.JSON(http.StatusOK, s.ToggleTheme(request.Dark))
}

// Stream godoc
// @Summary Stream page updates
// @Description Upgrades to a websocket that receives the page as JSON on every state change
// @Tags forecast
// @Success 101 {object} model.PageView "Switching protocols"
// @Router /api/ws [get]
func (controller *ForecastController) Stream(c echo.Context) error {
	s := resolveSession(c, controller.sessions)

	if err := s.Attach(c.Response(), c.Request()); err != nil {
		log.Warn(msg.GetMessage("api.log.socket-closed", s.ID, err))
	}
	return nil
}
