package handlers

import (
	"net/http"

	"builtbydesign_go/db"
	"builtbydesign_go/models"
	"builtbydesign_go/services"

	"github.com/labstack/echo/v4"
)

type consentRequest struct {
	Action     string `json:"action"`
	Analytics  bool   `json:"analytics"`
	Ads        bool   `json:"ads"`
	Functional bool   `json:"functional"`
}

type consentResponse struct {
	Decided bool                `json:"decided"`
	State   models.ConsentState `json:"state"`
}

// GetConsentHandler returns the visitor's current consent state. An unknown
// decision reports the deny-all default.
func GetConsentHandler(c echo.Context) error {
	state, decided := services.ReadConsent(c)
	return c.JSON(http.StatusOK, consentResponse{Decided: decided, State: state})
}

// UpdateConsentHandler records a consent decision: accept all, reject
// non-essential, or a customized per-category save. The new state is
// persisted in the consent cookie, appended to the consent log, and returned
// so the page can push the matching consent update to the data layer.
func UpdateConsentHandler(c echo.Context) error {
	var req consentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid consent request")
	}

	var state models.ConsentState
	var action models.ConsentAction

	switch req.Action {
	case "accept_all":
		state = models.GrantedConsent()
		action = models.ConsentActionAcceptAll
	case "reject_all":
		state = models.DeniedConsent()
		action = models.ConsentActionRejectAll
	case "save":
		state = models.CustomConsent(req.Analytics, req.Ads, req.Functional)
		action = models.ConsentActionSave
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown consent action")
	}

	services.WriteConsent(c, state)

	// The decision is applied even when logging fails; storage trouble must
	// never block the visitor's choice.
	if err := services.LogConsent(db.DB, action, state, c.RealIP(), c.Request().UserAgent()); err != nil {
		c.Logger().Errorf("Failed to log consent: %v", err)
	}

	return c.JSON(http.StatusOK, consentResponse{Decided: true, State: state})
}
