package services

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// AttributionKeys are the ad click identifiers and UTM campaign tags carried
// on the landing URL and persisted across the funnel.
var AttributionKeys = []string{
	"gclid",
	"wbraid",
	"gbraid",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
}

const (
	attributionCookiePrefix = "bbd_attribution_"
	attributionCookieMaxAge = 365 * 24 * time.Hour
)

// ConversionFiredCookie is the session-scoped one-shot guard for the
// thank-you conversion event. It carries no Max-Age on purpose: a genuinely
// new browser session may refire the conversion.
const ConversionFiredCookie = "bbd_conversion_fired"

// AttributionCookieName returns the per-key storage slot name
func AttributionCookieName(key string) string {
	return attributionCookiePrefix + key
}

// CaptureAttribution resolves each attribution key on a landing-page request.
// A URL query value wins and overwrites the stored slot; otherwise the
// previously stored value is reused; otherwise the key resolves empty.
func CaptureAttribution(c echo.Context) map[string]string {
	resolved := make(map[string]string, len(AttributionKeys))

	for _, key := range AttributionKeys {
		incoming := c.QueryParam(key)
		if incoming != "" {
			c.SetCookie(&http.Cookie{
				Name:     AttributionCookieName(key),
				Value:    url.QueryEscape(incoming),
				Path:     "/",
				MaxAge:   int(attributionCookieMaxAge.Seconds()),
				HttpOnly: false,
				SameSite: http.SameSiteLaxMode,
			})
			resolved[key] = incoming
			continue
		}
		resolved[key] = readAttributionCookie(c, key)
	}

	return resolved
}

// StoredAttribution reads the persisted attribution slots without consulting
// the URL. Used on the thank-you page, where the visitor has navigated away
// from the tagged landing URL.
func StoredAttribution(c echo.Context) map[string]string {
	stored := make(map[string]string, len(AttributionKeys))
	for _, key := range AttributionKeys {
		stored[key] = readAttributionCookie(c, key)
	}
	return stored
}

func readAttributionCookie(c echo.Context, key string) string {
	cookie, err := c.Cookie(AttributionCookieName(key))
	if err != nil || cookie.Value == "" {
		return ""
	}
	value, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		// Unreadable slot degrades to empty, never an error
		return ""
	}
	return value
}
