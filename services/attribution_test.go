package services

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptureAttribution(t *testing.T) {
	t.Run("QueryValuesWinAndPersist", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/?gclid=abc123&utm_source=google&utm_campaign=spring", nil)

		resolved := CaptureAttribution(c)

		assert.Equal(t, "abc123", resolved["gclid"])
		assert.Equal(t, "google", resolved["utm_source"])
		assert.Equal(t, "spring", resolved["utm_campaign"])
		assert.Equal(t, "", resolved["wbraid"])
		assert.Equal(t, "", resolved["utm_medium"])

		// Only the keys present on the URL get a cookie
		byName := map[string]*http.Cookie{}
		for _, cookie := range rec.Result().Cookies() {
			byName[cookie.Name] = cookie
		}
		assert.Contains(t, byName, AttributionCookieName("gclid"))
		assert.Contains(t, byName, AttributionCookieName("utm_source"))
		assert.NotContains(t, byName, AttributionCookieName("wbraid"))

		gclid := byName[AttributionCookieName("gclid")]
		assert.Equal(t, "abc123", gclid.Value)
		assert.Greater(t, gclid.MaxAge, 0)
	})

	t.Run("StoredValueUsedWhenURLUntagged", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/", nil)
		c.Request().AddCookie(&http.Cookie{
			Name:  AttributionCookieName("gclid"),
			Value: "abc123",
		})

		resolved := CaptureAttribution(c)
		assert.Equal(t, "abc123", resolved["gclid"])
	})

	t.Run("FreshQueryValueOverwritesStored", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/?gclid=xyz789", nil)
		c.Request().AddCookie(&http.Cookie{
			Name:  AttributionCookieName("gclid"),
			Value: "abc123",
		})

		resolved := CaptureAttribution(c)
		assert.Equal(t, "xyz789", resolved["gclid"])

		var stored string
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == AttributionCookieName("gclid") {
				stored = cookie.Value
			}
		}
		assert.Equal(t, "xyz789", stored)
	})

	t.Run("NoTagsNoCookiesResolvesEmpty", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)

		resolved := CaptureAttribution(c)
		for _, key := range AttributionKeys {
			assert.Equal(t, "", resolved[key])
		}
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("ValuesWithReservedCharactersRoundTrip", func(t *testing.T) {
		raw := "summer sale/2026"
		_, c, rec := setupEcho(http.MethodGet, "/?utm_campaign="+url.QueryEscape(raw), nil)

		resolved := CaptureAttribution(c)
		assert.Equal(t, raw, resolved["utm_campaign"])

		// Reading the cookie back yields the original value
		_, c2, _ := setupEcho(http.MethodGet, "/thank-you", nil)
		for _, cookie := range rec.Result().Cookies() {
			c2.Request().AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
		assert.Equal(t, raw, StoredAttribution(c2)["utm_campaign"])
	})
}

func TestStoredAttribution(t *testing.T) {
	t.Run("ReadsOnlyCookies", func(t *testing.T) {
		// A tagged URL on the thank-you page must not leak into attribution
		_, c, _ := setupEcho(http.MethodGet, "/thank-you?gclid=fresh", nil)
		c.Request().AddCookie(&http.Cookie{
			Name:  AttributionCookieName("utm_source"),
			Value: "google",
		})

		stored := StoredAttribution(c)
		assert.Equal(t, "", stored["gclid"])
		assert.Equal(t, "google", stored["utm_source"])
	})

	t.Run("UnreadableSlotDegradesToEmpty", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/thank-you", nil)
		c.Request().AddCookie(&http.Cookie{
			Name:  AttributionCookieName("gclid"),
			Value: "%zz",
		})

		assert.Equal(t, "", StoredAttribution(c)["gclid"])
	})
}
