package controller

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageController serves the page shell; the browser renders the page it gets from the api
type PageController struct {
	api    *echo.Group
	assets fs.FS
}

func NewPageController(api *echo.Group, assets fs.FS) *PageController {
	return &PageController{api: api, assets: assets}
}

// InitPageRoutes initializes the shell and static asset routes
func (controller *PageController) InitPageRoutes() {
	controller.api.GET("", controller.RedirectToIndex)
	controller.api.GET("/", controller.Index)
	controller.api.StaticFS("/static", controller.assets)
}

func (controller *PageController) Index(c echo.Context) error {
	index, err := fs.ReadFile(controller.assets, "index.html")
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return c.HTMLBlob(http.StatusOK, index)
}

// RedirectToIndex adds the trailing slash so relative asset paths resolve under the context path
func (controller *PageController) RedirectToIndex(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, c.Request().URL.Path+"/")
}
