package handlers

import (
	"net/http"

	"builtbydesign_go/db"
	"builtbydesign_go/services"

	"github.com/labstack/echo/v4"
)

// SubmitLeadHandler handles lead form submissions. The outcome is always a
// 200 with {success, message}; throttling, validation, and upstream failures
// are distinguished only by the message, never by leaked detail.
func SubmitLeadHandler(c echo.Context) error {
	cfg := getConfig(c)

	sub := &services.LeadSubmission{
		FullName:       c.FormValue("fullName"),
		Email:          c.FormValue("email"),
		Phone:          c.FormValue("phone"),
		ProjectType:    c.FormValue("projectType"),
		ZipCode:        c.FormValue("zipCode"),
		Gclid:          c.FormValue("gclid"),
		Wbraid:         c.FormValue("wbraid"),
		Gbraid:         c.FormValue("gbraid"),
		UTMSource:      c.FormValue("utm_source"),
		UTMMedium:      c.FormValue("utm_medium"),
		UTMCampaign:    c.FormValue("utm_campaign"),
		UTMTerm:        c.FormValue("utm_term"),
		UTMContent:     c.FormValue("utm_content"),
		LandingPageURL: c.FormValue("landingPageUrl"),
		Website:        c.FormValue("website"),
	}

	clientID := services.DeriveClientID(
		c.Request().Header.Get("X-Forwarded-For"),
		c.Request().Header.Get("X-Real-IP"),
	)

	result := services.SubmitLead(
		c.Request().Context(),
		cfg,
		db.DB,
		sub,
		clientID,
		clientID,
		c.Request().UserAgent(),
	)

	return c.JSON(http.StatusOK, result)
}
