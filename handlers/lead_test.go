package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"builtbydesign_go/config"
	"builtbydesign_go/models"
	"builtbydesign_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func leadForm() url.Values {
	form := url.Values{}
	form.Set("fullName", "Jane Homeowner")
	form.Set("email", "jane@example.com")
	form.Set("phone", "(913) 555-0142")
	form.Set("projectType", models.ProjectTypeKitchen)
	form.Set("zipCode", "66213")
	form.Set("gclid", "abc123")
	form.Set("utm_source", "google")
	form.Set("landingPageUrl", "https://builtbydesignkc.com/?gclid=abc123")
	return form
}

func postLead(t *testing.T, cfg *config.Config, form url.Values, headers map[string]string) (*httptest.ResponseRecorder, services.LeadResult) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/leads", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)

	assert.NoError(t, SubmitLeadHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result services.LeadResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return rec, result
}

func TestSubmitLeadHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		testDB := setupTestDB(t)
		freshLeadLimiter(t, 5)

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		cfg := testConfig()
		cfg.FormEndpoint = upstream.URL

		_, result := postLead(t, cfg, leadForm(), map[string]string{"X-Forwarded-For": "203.0.113.7"})

		assert.True(t, result.Success)
		assert.Equal(t, services.MsgSuccess, result.Message)

		var lead models.Lead
		assert.NoError(t, testDB.First(&lead).Error)
		assert.Equal(t, "Jane Homeowner", lead.FullName)
		assert.Equal(t, "203.0.113.7", lead.ClientIP)
	})

	t.Run("ValidationFailureIsStill200", func(t *testing.T) {
		setupTestDB(t)
		freshLeadLimiter(t, 5)

		form := leadForm()
		form.Set("zipCode", "not-a-zip")

		rec, result := postLead(t, testConfig(), form, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "Please enter a valid 5-digit zip code.", result.Message)
	})

	t.Run("HoneypotLooksLikeSuccess", func(t *testing.T) {
		testDB := setupTestDB(t)
		freshLeadLimiter(t, 5)

		upstreamCalled := false
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			upstreamCalled = true
		}))
		defer upstream.Close()

		cfg := testConfig()
		cfg.FormEndpoint = upstream.URL

		form := leadForm()
		form.Set("website", "https://spam.example.com")

		_, result := postLead(t, cfg, form, nil)

		assert.True(t, result.Success)
		assert.False(t, upstreamCalled)

		var count int64
		assert.NoError(t, testDB.Model(&models.Lead{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("RateLimitKeyedByForwardedFor", func(t *testing.T) {
		setupTestDB(t)
		freshLeadLimiter(t, 1)

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		cfg := testConfig()
		cfg.FormEndpoint = upstream.URL

		headers := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}

		_, first := postLead(t, cfg, leadForm(), headers)
		assert.True(t, first.Success)

		_, second := postLead(t, cfg, leadForm(), headers)
		assert.False(t, second.Success)
		assert.Equal(t, services.MsgRateLimited, second.Message)

		// Same first hop via a different proxy chain is still the same client
		_, third := postLead(t, cfg, leadForm(), map[string]string{"X-Forwarded-For": "203.0.113.7, 10.9.9.9"})
		assert.False(t, third.Success)
		assert.Equal(t, services.MsgRateLimited, third.Message)

		// A different client is unaffected
		_, fourth := postLead(t, cfg, leadForm(), map[string]string{"X-Forwarded-For": "198.51.100.9"})
		assert.True(t, fourth.Success)
	})

	t.Run("HeaderlessClientsShareTheUnknownBucket", func(t *testing.T) {
		setupTestDB(t)
		freshLeadLimiter(t, 1)

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		cfg := testConfig()
		cfg.FormEndpoint = upstream.URL

		_, first := postLead(t, cfg, leadForm(), nil)
		assert.True(t, first.Success)

		_, second := postLead(t, cfg, leadForm(), nil)
		assert.False(t, second.Success)
		assert.Equal(t, services.MsgRateLimited, second.Message)
	})

	t.Run("UpstreamFailureMessageIsGeneric", func(t *testing.T) {
		setupTestDB(t)
		freshLeadLimiter(t, 5)

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer upstream.Close()

		cfg := testConfig()
		cfg.FormEndpoint = upstream.URL

		rec, result := postLead(t, cfg, leadForm(), nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, result.Success)
		assert.Equal(t, services.MsgUpstreamFailure, result.Message)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}
