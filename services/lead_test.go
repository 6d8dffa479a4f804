package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"builtbydesign_go/config"
	"builtbydesign_go/models"

	"github.com/stretchr/testify/assert"
)

func validSubmission() *LeadSubmission {
	return &LeadSubmission{
		FullName:       "Jane Homeowner",
		Email:          "jane@example.com",
		Phone:          "(913) 555-0142",
		ProjectType:    models.ProjectTypeKitchen,
		ZipCode:        "66213",
		Gclid:          "abc123",
		UTMSource:      "google",
		UTMCampaign:    "spring",
		LandingPageURL: "https://builtbydesignkc.com/?gclid=abc123",
	}
}

func TestLeadSubmissionValidate(t *testing.T) {
	t.Run("ValidSubmission", func(t *testing.T) {
		msg, ok := validSubmission().Validate()
		assert.True(t, ok)
		assert.Empty(t, msg)
	})

	t.Run("NameLengthCountsRawCharacters", func(t *testing.T) {
		// Whitespace counts toward the minimum, matching the form contract
		sub := validSubmission()
		sub.FullName = " J "
		_, ok := sub.Validate()
		assert.True(t, ok)
	})

	tests := []struct {
		name    string
		mutate  func(*LeadSubmission)
		message string
	}{
		{"NameTooShort", func(s *LeadSubmission) { s.FullName = "J" }, "Please enter your full name."},
		{"EmailWithoutAt", func(s *LeadSubmission) { s.Email = "jane.example.com" }, "Please enter a valid email address."},
		{"EmailWithoutDot", func(s *LeadSubmission) { s.Email = "jane@example" }, "Please enter a valid email address."},
		{"PhoneTooShort", func(s *LeadSubmission) { s.Phone = "555-0142" }, "Please enter a valid phone number."},
		{"PhoneWithLetters", func(s *LeadSubmission) { s.Phone = "913555CALL" }, "Please enter a valid phone number."},
		{"UnknownProjectType", func(s *LeadSubmission) { s.ProjectType = "Roofing" }, "Please select a project type."},
		{"ZipTooShort", func(s *LeadSubmission) { s.ZipCode = "6621" }, "Please enter a valid 5-digit zip code."},
		{"ZipWithLetters", func(s *LeadSubmission) { s.ZipCode = "6621a" }, "Please enter a valid 5-digit zip code."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(sub)
			msg, ok := sub.Validate()
			assert.False(t, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func testLeadConfig(endpoint string) *config.Config {
	return &config.Config{
		FormEndpoint:  endpoint,
		EmailTestMode: true,
		LeadNotifyTo:  "owner@example.com",
		AppURL:        "http://localhost:8080",
	}
}

// swapLimiter installs a fresh limiter for the test and restores the old one
func swapLimiter(t *testing.T, l *SubmissionLimiter) {
	old := LeadLimiter
	LeadLimiter = l
	t.Cleanup(func() { LeadLimiter = old })
}

func TestSubmitLead(t *testing.T) {
	t.Run("ForwardsPersistsAndSucceeds", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		var forwarded leadPayload
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &forwarded))
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		result := SubmitLead(context.Background(), testLeadConfig(upstream.URL), testDB, validSubmission(), "1.2.3.4", "1.2.3.4", "test-agent")

		assert.True(t, result.Success)
		assert.Equal(t, MsgSuccess, result.Message)

		assert.Equal(t, "Jane Homeowner", forwarded.Name)
		assert.Equal(t, "abc123", forwarded.Gclid)
		assert.Equal(t, "google", forwarded.UTMSource)
		assert.Equal(t, "1.2.3.4", forwarded.ClientIP)
		assert.NotEmpty(t, forwarded.SubmittedAtIso)

		var lead models.Lead
		assert.NoError(t, testDB.First(&lead).Error)
		assert.Equal(t, "Jane Homeowner", lead.FullName)
		assert.Equal(t, "abc123", lead.Gclid)
		assert.Equal(t, "spring", lead.UTMCampaign)
	})

	t.Run("HoneypotSkipsForwardAndPersist", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		upstreamCalled := false
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			upstreamCalled = true
		}))
		defer upstream.Close()

		sub := validSubmission()
		sub.Website = "https://spam.example.com"

		result := SubmitLead(context.Background(), testLeadConfig(upstream.URL), testDB, sub, "1.2.3.4", "1.2.3.4", "bot-agent")

		// The bot sees a success it cannot tell apart from a real one
		assert.True(t, result.Success)
		assert.Equal(t, MsgReceived, result.Message)
		assert.False(t, upstreamCalled)

		var count int64
		assert.NoError(t, testDB.Model(&models.Lead{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("UpstreamFailureReturnsGenericMessage", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"upstream detail that must not leak"}`, http.StatusBadGateway)
		}))
		defer upstream.Close()

		result := SubmitLead(context.Background(), testLeadConfig(upstream.URL), testDB, validSubmission(), "1.2.3.4", "1.2.3.4", "test-agent")

		assert.False(t, result.Success)
		assert.Equal(t, MsgUpstreamFailure, result.Message)
		assert.NotContains(t, result.Message, "upstream detail")

		// Nothing is persisted when the forward fails
		var count int64
		assert.NoError(t, testDB.Model(&models.Lead{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})

	t.Run("UnreachableUpstreamReturnsGenericMessage", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		result := SubmitLead(context.Background(), testLeadConfig("http://127.0.0.1:1"), testDB, validSubmission(), "1.2.3.4", "1.2.3.4", "test-agent")

		assert.False(t, result.Success)
		assert.Equal(t, MsgUpstreamFailure, result.Message)
	})

	t.Run("RateLimitedBeforeValidation", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 1))

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		cfg := testLeadConfig(upstream.URL)
		first := SubmitLead(context.Background(), cfg, testDB, validSubmission(), "1.2.3.4", "1.2.3.4", "test-agent")
		assert.True(t, first.Success)

		second := SubmitLead(context.Background(), cfg, testDB, validSubmission(), "1.2.3.4", "1.2.3.4", "test-agent")
		assert.False(t, second.Success)
		assert.Equal(t, MsgRateLimited, second.Message)
		assert.NotEqual(t, MsgGenericInvalid, second.Message)

		// A different client is unaffected
		third := SubmitLead(context.Background(), cfg, testDB, validSubmission(), "5.6.7.8", "5.6.7.8", "test-agent")
		assert.True(t, third.Success)
	})

	t.Run("InvalidSubmissionNotForwarded", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		upstreamCalled := false
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			upstreamCalled = true
		}))
		defer upstream.Close()

		sub := validSubmission()
		sub.ZipCode = "abcde"

		result := SubmitLead(context.Background(), testLeadConfig(upstream.URL), testDB, sub, "1.2.3.4", "1.2.3.4", "test-agent")

		assert.False(t, result.Success)
		assert.Equal(t, "Please enter a valid 5-digit zip code.", result.Message)
		assert.False(t, upstreamCalled)
	})

	t.Run("MarkupStrippedBeforePersist", func(t *testing.T) {
		testDB := setupTestDB(t)
		swapLimiter(t, NewSubmissionLimiter(time.Minute, 5))

		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer upstream.Close()

		sub := validSubmission()
		sub.FullName = `Jane <script>alert(1)</script>Homeowner`

		result := SubmitLead(context.Background(), testLeadConfig(upstream.URL), testDB, sub, "1.2.3.4", "1.2.3.4", "test-agent")
		assert.True(t, result.Success)

		var lead models.Lead
		assert.NoError(t, testDB.First(&lead).Error)
		assert.NotContains(t, lead.FullName, "<script>")
	})
}
