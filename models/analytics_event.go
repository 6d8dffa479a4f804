package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event names recorded from interactive elements on the site
const (
	EventClickToCall   = "click_to_call"
	EventClickToEmail  = "click_to_email"
	EventCTAClick      = "cta_click"
	EventScrollToForm  = "scroll_to_form"
	EventLeadSubmitted = "lead_submitted"
)

// IsValidEventName checks the event against the tracked-event allowlist
func IsValidEventName(name string) bool {
	validNames := []string{
		EventClickToCall,
		EventClickToEmail,
		EventCTAClick,
		EventScrollToForm,
		EventLeadSubmitted,
	}
	for _, n := range validNames {
		if n == name {
			return true
		}
	}
	return false
}

// AnalyticsEvent is a server-side record of a data-layer event: click
// interactions fired from the pages and the one-shot thank-you conversion.
type AnalyticsEvent struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_event_created_at" json:"created_at"`

	Event     string `gorm:"not null;index:idx_event_name" json:"event"`
	Placement string `json:"placement,omitempty"`
	Source    string `json:"source,omitempty"`
	LeadType  string `json:"lead_type,omitempty"`

	PagePath     string `json:"page_path"`
	PageLocation string `gorm:"type:text" json:"page_location"`

	// Attribution snapshot as JSON, set for conversion events only
	Attribution string `gorm:"type:text" json:"attribution,omitempty"`

	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
}

// BeforeCreate hook to generate UUID
func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for AnalyticsEvent model
func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
