package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"weather-app/configs"
	"weather-app/docs"
	"weather-app/internal/application/controller"
	"weather-app/internal/application/middleware"
	"weather-app/internal/application/schedule"
	"weather-app/internal/application/session"
	"weather-app/internal/domain/gateway/api"
	"weather-app/internal/domain/model"
	"weather-app/internal/domain/usecase/forecast"
	"weather-app/internal/domain/usecase/health"
	"weather-app/internal/domain/usecase/mapview"
	httpclient "weather-app/pkg/http"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/observability"
	"weather-app/pkg/resource"
	"weather-app/web"
)

// @title Weather App API
// @version 1.0
// @description Forecast lookup with a map of the searched location. Page updates are pushed on the websocket.
// @BasePath /weather
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	// Init tracing
	zipkinEndpoint := resource.GetString("tracing.zipkin-endpoint")
	shutdownTracing, err := observability.SetupTracing(configs.Env.ApplicationName, zipkinEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	if zipkinEndpoint == "" {
		log.Info(msg.GetMessage("tracing.disabled"))
	} else {
		log.Info(msg.GetMessage("tracing.enabled", zipkinEndpoint))
	}

	// Init WeatherGateway
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("weather.api.base-url"),
		weatherAPIKey(),
		httpclient.ClientOptions{
			ConnectionTimeout: resource.GetDuration("weather.api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("weather.api.read-timeout"),
		},
	)

	// Init sessions
	forecastOptions := forecast.Options{
		DebounceWindow: resource.GetDuration("weather.forecast.debounce"),
		ForecastDays:   resource.GetInt("weather.forecast.days"),
	}
	registry := session.NewRegistry(func(sessionID string) forecast.UseCase {
		opts := forecastOptions
		opts.SessionID = sessionID
		return forecast.NewForecastUseCase(weatherGateway, opts)
	}, mapOptions(), resource.GetDuration("app.session.idle-ttl"))

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(weatherGateway, registry)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath
	group := e.Group(contextPath)

	// Init Controller
	pageController := controller.NewPageController(group, web.Static())
	forecastController := controller.NewForecastController(group, registry)
	healthController := controller.NewHealthController(group, healthUseCase)

	// Init Routes
	pageController.InitPageRoutes()
	forecastController.InitForecastRoutes()
	healthController.InitHealthRoutes()
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, contextPath+"/")
	})
	e.GET("/metrics", echo.WrapHandler(observability.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	sessionScheduler := schedule.NewSessionScheduler(registry)
	if err := sessionScheduler.InitSessionScheduleTasks(); err != nil {
		log.Fatalf("Failed to start session reaper: %v", err)
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped unexpectedly: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sessionScheduler.Stop()
	registry.CloseAll()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down server: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Errorf("Failed to flush spans: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// weatherAPIKey prefers the environment (and .env) over the properties file
func weatherAPIKey() string {
	if configs.Env.WeatherAPIKey != "" {
		return configs.Env.WeatherAPIKey
	}
	return resource.GetString("weather.api.key")
}

func mapOptions() mapview.Options {
	return mapview.Options{
		Zoom:            resource.GetInt("map.zoom"),
		ScrollWheelZoom: resource.GetBool("map.scroll-wheel-zoom"),
		Tiles: model.TileLayer{
			URL:         resource.GetString("map.tiles.url"),
			Attribution: resource.GetString("map.tiles.attribution"),
		},
		Icons: model.MarkerIcons{
			IconURL:       resource.GetString("map.marker.icon-url"),
			IconRetinaURL: resource.GetString("map.marker.icon-retina-url"),
			ShadowURL:     resource.GetString("map.marker.shadow-url"),
		},
	}
}
