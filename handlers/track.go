package handlers

import (
	"net/http"

	"builtbydesign_go/db"
	"builtbydesign_go/models"
	"builtbydesign_go/services"

	"github.com/labstack/echo/v4"
)

type trackRequest struct {
	Event        string `json:"event"`
	Placement    string `json:"placement"`
	Source       string `json:"source"`
	PagePath     string `json:"page_path"`
	PageLocation string `json:"page_location"`
}

// TrackEventHandler ingests fire-and-forget click events from the pages.
// Events from visitors without analytics consent are dropped silently; the
// caller gets 204 either way.
func TrackEventHandler(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event")
	}

	if !models.IsValidEventName(req.Event) || req.Event == models.EventLeadSubmitted {
		// lead_submitted is emitted only by the thank-you page server-side
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown event")
	}

	consent, _ := services.ReadConsent(c)
	event := models.AnalyticsEvent{
		Event:        req.Event,
		Placement:    req.Placement,
		Source:       req.Source,
		PagePath:     req.PagePath,
		PageLocation: req.PageLocation,
		ClientIP:     c.RealIP(),
		UserAgent:    c.Request().UserAgent(),
	}

	if err := services.RecordEvent(db.DB, consent, &event); err != nil {
		c.Logger().Errorf("Failed to record event: %v", err)
	}

	return c.NoContent(http.StatusNoContent)
}
