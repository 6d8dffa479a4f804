package services

import (
	"encoding/json"
	"fmt"

	"builtbydesign_go/models"

	"gorm.io/gorm"
)

// RecordEvent stores a click-tracking event, gated on the visitor's analytics
// consent: without a granted analytics_storage signal the event is dropped
// silently. Recording failures are returned for logging but never surfaced to
// the visitor.
func RecordEvent(gdb *gorm.DB, consent models.ConsentState, event *models.AnalyticsEvent) error {
	if !consent.AnalyticsAllowed() {
		return nil
	}

	if !models.IsValidEventName(event.Event) {
		return fmt.Errorf("unknown event name: %s", event.Event)
	}

	if err := gdb.Create(event).Error; err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// RecordConversion stores the one-shot thank-you conversion with its
// attribution snapshot. The one-shot guard lives with the caller; this only
// persists the event.
func RecordConversion(gdb *gorm.DB, consent models.ConsentState, attribution map[string]string, pagePath, pageLocation, clientIP, userAgent string) error {
	attrJSON, err := json.Marshal(attribution)
	if err != nil {
		return fmt.Errorf("failed to encode attribution: %w", err)
	}

	event := models.AnalyticsEvent{
		Event:        models.EventLeadSubmitted,
		LeadType:     "google_ads_landing_form",
		PagePath:     pagePath,
		PageLocation: pageLocation,
		Attribution:  string(attrJSON),
		ClientIP:     clientIP,
		UserAgent:    userAgent,
	}
	return RecordEvent(gdb, consent, &event)
}
