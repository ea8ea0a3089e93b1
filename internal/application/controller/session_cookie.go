package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weather-app/internal/application/session"
	"weather-app/pkg/resource"
)

// SessionResolver finds or creates the session of a browser
type SessionResolver interface {
	Resolve(id string) (*session.Session, bool)
}

// resolveSession reads the session cookie and hands out a new one when a session was created
func resolveSession(c echo.Context, sessions SessionResolver) *session.Session {
	name := resource.GetString("app.session.cookie")

	var id string
	if cookie, err := c.Cookie(name); err == nil {
		id = cookie.Value
	}

	s, created := sessions.Resolve(id)
	if created {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    s.ID,
			Path:     resource.GetString("app.server.context-path"),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s
}
