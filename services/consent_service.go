package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"builtbydesign_go/models"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CurrentCookiePolicyVersion is the version of the cookie policy in force.
// Update this when the policy changes.
const CurrentCookiePolicyVersion = "1.0.0"

// consentCookieMaxAge keeps the decision for one year
const consentCookieMaxAge = 365 * 24 * time.Hour

// ParseStoredConsent interprets a persisted consent blob. A structurally
// valid JSON object produces a Decided state with every field normalized
// fail-closed: anything not exactly "granted" is denied, and security is
// always granted regardless of the stored value. Anything else (bad JSON,
// non-object, empty) means the decision is Unknown.
func ParseStoredConsent(raw []byte) (models.ConsentState, bool) {
	var stored map[string]any
	if err := json.Unmarshal(raw, &stored); err != nil || stored == nil {
		return models.DeniedConsent(), false
	}

	grantedIf := func(key string) string {
		if v, ok := stored[key].(string); ok && v == models.ConsentGranted {
			return models.ConsentGranted
		}
		return models.ConsentDenied
	}

	return models.ConsentState{
		AdStorage:              grantedIf("ad_storage"),
		AnalyticsStorage:       grantedIf("analytics_storage"),
		AdUserData:             grantedIf("ad_user_data"),
		AdPersonalization:      grantedIf("ad_personalization"),
		FunctionalityStorage:   grantedIf("functionality_storage"),
		PersonalizationStorage: grantedIf("personalization_storage"),
		SecurityStorage:        models.ConsentGranted,
	}, true
}

// ReadConsent resolves the visitor's consent from the request cookie.
// decided=false means no usable decision exists and the banner must show;
// the returned state is then the deny-all default.
func ReadConsent(c echo.Context) (models.ConsentState, bool) {
	cookie, err := c.Cookie(models.ConsentCookieName)
	if err != nil || cookie.Value == "" {
		return models.DeniedConsent(), false
	}
	// Cookie values cannot carry raw JSON, so the blob is stored URL-escaped
	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return models.DeniedConsent(), false
	}
	return ParseStoredConsent([]byte(raw))
}

// WriteConsent persists the decision as a long-lived cookie
func WriteConsent(c echo.Context, state models.ConsentState) {
	c.SetCookie(&http.Cookie{
		Name:     models.ConsentCookieName,
		Value:    url.QueryEscape(state.JSON()),
		Path:     "/",
		MaxAge:   int(consentCookieMaxAge.Seconds()),
		HttpOnly: false, // the tag layer reads it client-side too
		SameSite: http.SameSiteLaxMode,
	})
}

// LogConsent appends the decision to the immutable consent log
func LogConsent(gdb *gorm.DB, action models.ConsentAction, state models.ConsentState, ipAddress, userAgent string) error {
	entry := models.ConsentLog{
		Action:        action,
		State:         state.JSON(),
		PolicyVersion: CurrentCookiePolicyVersion,
		IPAddress:     ipAddress,
		UserAgent:     userAgent,
	}

	if err := gdb.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to log consent: %w", err)
	}
	return nil
}
