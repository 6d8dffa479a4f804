package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsentAction identifies which control produced a consent decision
type ConsentAction string

const (
	ConsentActionAcceptAll ConsentAction = "ACCEPT_ALL"
	ConsentActionRejectAll ConsentAction = "REJECT_NON_ESSENTIAL"
	ConsentActionSave      ConsentAction = "SAVE_PREFERENCES"
)

// ConsentLog is an immutable record of a visitor's cookie-consent decision.
// Each decision appends a new row; rows are never updated or deleted.
type ConsentLog struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_consent_created_at" json:"created_at"`

	Action ConsentAction `gorm:"not null;index:idx_consent_action" json:"action"`
	// Snapshot of the six-signal state as applied, for evidence
	State         string `gorm:"type:text;not null" json:"state"`
	PolicyVersion string `gorm:"not null" json:"policy_version"`

	// Request metadata
	IPAddress string `gorm:"not null" json:"ip_address"`
	UserAgent string `gorm:"type:text" json:"user_agent"`
}

// BeforeCreate generates UUID
func (c *ConsentLog) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// BeforeUpdate prevents modification of consent logs (immutability)
func (c *ConsentLog) BeforeUpdate(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any updates
}

// BeforeDelete prevents deletion of consent logs (immutability)
func (c *ConsentLog) BeforeDelete(tx *gorm.DB) error {
	return gorm.ErrRecordNotFound // Prevent any deletes
}

// TableName specifies the table name
func (ConsentLog) TableName() string {
	return "consent_logs"
}
