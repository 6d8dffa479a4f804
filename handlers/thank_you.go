package handlers

import (
	"net/http"

	"builtbydesign_go/db"
	"builtbydesign_go/services"
	"builtbydesign_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// ThankYouHandler renders the confirmation page and fires the one-shot
// conversion event. The guard is a session cookie set before emission, so a
// re-render or back-navigation within the same browser session cannot fire a
// second conversion; a new session after expiry legitimately can.
func ThankYouHandler(c echo.Context) error {
	attribution := services.StoredAttribution(c)
	consent, _ := services.ReadConsent(c)

	fireConversion := false
	if _, err := c.Cookie(services.ConversionFiredCookie); err != nil {
		fireConversion = true
		// Session-scoped on purpose: no Max-Age or Expires
		c.SetCookie(&http.Cookie{
			Name:     services.ConversionFiredCookie,
			Value:    "1",
			Path:     "/",
			HttpOnly: false,
			SameSite: http.SameSiteLaxMode,
		})

		if err := services.RecordConversion(
			db.DB,
			consent,
			attribution,
			c.Request().URL.Path,
			requestURL(c),
			c.RealIP(),
			c.Request().UserAgent(),
		); err != nil {
			// Recording is best-effort; the page always renders
			c.Logger().Errorf("Failed to record conversion: %v", err)
		}
	}

	shellData := buildShellData(c, pageSEO["thank-you"], true)
	return render(c, pages.ThankYou(shellData, attribution, fireConversion))
}
