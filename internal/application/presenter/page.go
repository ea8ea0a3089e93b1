// Package presenter turns controller state into the PageView the browser draws.
package presenter

import (
	"weather-app/internal/domain/model"
	"weather-app/pkg/msg"
)

const themeAttribute = "data-theme"

// Render builds the page for state. The map is only shown next to a loaded forecast.
func Render(state model.UIState, mapView *model.MapView) model.PageView {
	page := model.PageView{
		Title:  msg.GetMessage("app.title"),
		Theme:  renderTheme(state.Theme),
		Footer: msg.GetMessage("app.footer"),
		Form: model.FormView{
			Label:       msg.GetMessage("form.label"),
			Placeholder: msg.GetMessage("form.placeholder"),
			Submit:      msg.GetMessage("form.submit"),
			Query:       state.Query,
		},
	}

	if message, ok := state.Outcome.ErrorMessage(); ok && message != "" {
		page.Alert = &model.AlertView{Type: "error", Message: message}
	}

	if state.IsLoading {
		page.Spinner = &model.SpinnerView{Tip: msg.GetMessage("forecast.loading")}
	}

	if forecast, ok := state.Outcome.Forecast(); ok {
		card := &model.ForecastCard{
			Heading: msg.GetMessage("forecast.heading", forecast.LocationName, forecast.CountryName),
			Days:    make([]model.DayView, 0, len(forecast.Days)),
		}
		for _, day := range forecast.Days {
			card.Days = append(card.Days, model.DayView{
				Date:        day.Date,
				Temperature: msg.GetMessage("forecast.temperature", day.AverageTempC),
				Condition:   day.ConditionText,
				IconURL:     day.ConditionIconURL,
				IconAlt:     msg.GetMessage("forecast.icon-alt"),
			})
		}
		page.Forecast = card
		page.Map = mapView
	}

	return page
}

func renderTheme(theme model.Theme) model.ThemeView {
	view := model.ThemeView{
		Name:      theme,
		Dark:      theme == model.ThemeDark,
		Attribute: themeAttribute,
		SwitchOn:  msg.GetMessage("theme.switch-on"),
		SwitchOff: msg.GetMessage("theme.switch-off"),
	}
	if view.Dark {
		view.Label = msg.GetMessage("theme.dark-label")
		view.TitleColor = "#fff"
		view.LabelColor = "#fff"
	} else {
		view.Label = msg.GetMessage("theme.light-label")
		view.TitleColor = "#1890ff"
		view.LabelColor = "#000"
	}
	return view
}
