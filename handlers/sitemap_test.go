package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	assert.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, body, "<loc>http://localhost:8080/</loc>")
	assert.Contains(t, body, "<loc>http://localhost:8080/privacy-policy</loc>")
	assert.Contains(t, body, "<loc>http://localhost:8080/terms-of-service</loc>")
	assert.Contains(t, body, "<loc>http://localhost:8080/cookie-policy</loc>")

	// Internal-only pages stay out of the sitemap
	assert.NotContains(t, body, "/thank-you")
	assert.NotContains(t, body, "/admin")
}
