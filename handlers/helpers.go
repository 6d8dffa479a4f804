package handlers

import (
	"builtbydesign_go/config"
	"builtbydesign_go/models"
	"builtbydesign_go/services"
	"builtbydesign_go/templates/pages"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render writes a templ component as the response body
func render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// getConfig returns the config placed on the context by the server middleware
func getConfig(c echo.Context) *config.Config {
	cfg, ok := c.Get("config").(*config.Config)
	if !ok {
		// Tests that skip the config middleware fall back to defaults
		return config.Load()
	}
	return cfg
}

// buildShellData assembles the page shell inputs from the request: SEO
// metadata, the GTM container, and the visitor's consent state.
func buildShellData(c echo.Context, seo *models.SEO, showBanner bool) pages.ShellData {
	cfg := getConfig(c)
	consent, decided := services.ReadConsent(c)
	return pages.ShellData{
		SEO:            seo,
		GTMID:          cfg.GTMID,
		Consent:        consent,
		ConsentDecided: decided,
		ShowBanner:     showBanner,
	}
}

// requestURL reconstructs the externally visible URL of the current request
func requestURL(c echo.Context) string {
	return getConfig(c).AppURL + c.Request().RequestURI
}
