package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"builtbydesign_go/config"
	"builtbydesign_go/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// User-facing lead messages. The throttling message must stay distinguishable
// from validation failures.
const (
	MsgRateLimited     = "Too many requests. Please wait a few minutes and try again."
	MsgGenericInvalid  = "Please review your entries."
	MsgUpstreamFailure = "Unable to send your request right now. Please try again."
	MsgReceived        = "Request received."
	MsgSuccess         = "Request received. A designer will contact you shortly."
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9()+\-\s.]+$`)
	zipRegex   = regexp.MustCompile(`^\d{5}$`)

	// Strips any markup from free-text inputs before they are persisted
	leadSanitizer = bluemonday.StrictPolicy()
)

// LeadSubmission carries one lead-form submission attempt.
type LeadSubmission struct {
	FullName    string
	Email       string
	Phone       string
	ProjectType string
	ZipCode     string

	Gclid       string
	Wbraid      string
	Gbraid      string
	UTMSource   string
	UTMMedium   string
	UTMCampaign string
	UTMTerm     string
	UTMContent  string

	LandingPageURL string
	// Honeypot field, invisible to humans. Non-empty means bot.
	Website string
}

// LeadResult is the outcome reported back to the visitor.
type LeadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Validate checks the submission against the lead schema and returns the
// first failing field's message.
func (s *LeadSubmission) Validate() (string, bool) {
	if len(s.FullName) < 2 {
		return "Please enter your full name.", false
	}
	if !emailRegex.MatchString(s.Email) {
		return "Please enter a valid email address.", false
	}
	if len(s.Phone) < 10 || !phoneRegex.MatchString(s.Phone) {
		return "Please enter a valid phone number.", false
	}
	if !models.IsValidProjectType(s.ProjectType) {
		return "Please select a project type.", false
	}
	if !zipRegex.MatchString(s.ZipCode) {
		return "Please enter a valid 5-digit zip code.", false
	}
	return "", true
}

// leadPayload is the JSON body forwarded to the form-processing endpoint.
type leadPayload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ProjectType    string `json:"projectType"`
	ZipCode        string `json:"zipCode"`
	Gclid          string `json:"gclid"`
	Wbraid         string `json:"wbraid"`
	Gbraid         string `json:"gbraid"`
	UTMSource      string `json:"utm_source"`
	UTMMedium      string `json:"utm_medium"`
	UTMCampaign    string `json:"utm_campaign"`
	UTMTerm        string `json:"utm_term"`
	UTMContent     string `json:"utm_content"`
	LandingPageURL string `json:"landingPageUrl"`
	SubmittedAtIso string `json:"submittedAtIso"`
	ClientIP       string `json:"clientIp"`
	UserAgent      string `json:"userAgent"`
}

// forwardClient posts leads to the external form processor.
var forwardClient = &http.Client{Timeout: 15 * time.Second}

// SubmitLead runs the submission pipeline: rate limit, validate, honeypot,
// forward, persist, notify. Every failure path resolves to a local
// user-facing message; upstream error detail never leaks to the visitor.
func SubmitLead(ctx context.Context, cfg *config.Config, gdb *gorm.DB, sub *LeadSubmission, clientID, clientIP, userAgent string) LeadResult {
	if !LeadLimiter.CheckAndRecord(clientID) {
		return LeadResult{Success: false, Message: MsgRateLimited}
	}

	if msg, ok := sub.Validate(); !ok {
		if msg == "" {
			msg = MsgGenericInvalid
		}
		return LeadResult{Success: false, Message: msg}
	}

	// Honeypot: report success without forwarding or persisting anything,
	// indistinguishable from a real success to the caller.
	if strings.TrimSpace(sub.Website) != "" {
		return LeadResult{Success: true, Message: MsgReceived}
	}

	submittedAt := time.Now().UTC()
	payload := leadPayload{
		Name:           sub.FullName,
		Email:          sub.Email,
		Phone:          sub.Phone,
		ProjectType:    sub.ProjectType,
		ZipCode:        sub.ZipCode,
		Gclid:          sub.Gclid,
		Wbraid:         sub.Wbraid,
		Gbraid:         sub.Gbraid,
		UTMSource:      sub.UTMSource,
		UTMMedium:      sub.UTMMedium,
		UTMCampaign:    sub.UTMCampaign,
		UTMTerm:        sub.UTMTerm,
		UTMContent:     sub.UTMContent,
		LandingPageURL: sub.LandingPageURL,
		SubmittedAtIso: submittedAt.Format(time.RFC3339),
		ClientIP:       clientIP,
		UserAgent:      userAgent,
	}

	if err := forwardLead(ctx, cfg.FormEndpoint, payload); err != nil {
		log.Printf("Lead forward failed: %v", err)
		return LeadResult{Success: false, Message: MsgUpstreamFailure}
	}

	lead := models.Lead{
		FullName:       leadSanitizer.Sanitize(sub.FullName),
		Email:          leadSanitizer.Sanitize(sub.Email),
		Phone:          leadSanitizer.Sanitize(sub.Phone),
		ProjectType:    sub.ProjectType,
		ZipCode:        sub.ZipCode,
		Gclid:          sub.Gclid,
		Wbraid:         sub.Wbraid,
		Gbraid:         sub.Gbraid,
		UTMSource:      sub.UTMSource,
		UTMMedium:      sub.UTMMedium,
		UTMCampaign:    sub.UTMCampaign,
		UTMTerm:        sub.UTMTerm,
		UTMContent:     sub.UTMContent,
		LandingPageURL: sub.LandingPageURL,
		SubmittedAt:    submittedAt,
		ClientIP:       clientIP,
		UserAgent:      userAgent,
	}
	if err := gdb.Create(&lead).Error; err != nil {
		// The lead already reached the form processor; losing the local copy
		// is logged, not surfaced.
		log.Printf("Failed to persist lead: %v", err)
	} else {
		go func() {
			if err := SendLeadNotification(cfg, &lead); err != nil {
				log.Printf("Failed to send lead notification: %v", err)
			}
		}()
	}

	return LeadResult{Success: true, Message: MsgSuccess}
}

// forwardLead posts the payload to the configured form processor and treats
// any non-2xx response as failure.
func forwardLead(ctx context.Context, endpoint string, payload leadPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode lead payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build forward request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := forwardClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach form processor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("form processor returned status %d", resp.StatusCode)
	}
	return nil
}
