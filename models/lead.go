package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project types offered on the landing page
const (
	ProjectTypeKitchen  = "Kitchen"
	ProjectTypeBath     = "Bath"
	ProjectTypeBasement = "Basement"
	ProjectTypeAddition = "Addition"
)

// Lead is the persisted copy of a consultation request after it has been
// forwarded to the form processor.
type Lead struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Requester information
	FullName    string `gorm:"not null" json:"full_name"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	ProjectType string `gorm:"not null;index" json:"project_type"`
	ZipCode     string `gorm:"not null" json:"zip_code"`

	// Attribution (empty string when the visitor arrived untagged)
	Gclid       string `json:"gclid"`
	Wbraid      string `json:"wbraid"`
	Gbraid      string `json:"gbraid"`
	UTMSource   string `gorm:"column:utm_source" json:"utm_source"`
	UTMMedium   string `gorm:"column:utm_medium" json:"utm_medium"`
	UTMCampaign string `gorm:"column:utm_campaign" json:"utm_campaign"`
	UTMTerm     string `gorm:"column:utm_term" json:"utm_term"`
	UTMContent  string `gorm:"column:utm_content" json:"utm_content"`

	LandingPageURL string `gorm:"type:text" json:"landing_page_url"`

	// Audit fields
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
	ClientIP    string    `json:"client_ip"`
	UserAgent   string    `gorm:"type:text" json:"user_agent"`
}

// BeforeCreate hook to generate UUID
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Lead model
func (Lead) TableName() string {
	return "leads"
}

// IsValidProjectType checks if the project type is valid
func IsValidProjectType(projectType string) bool {
	validTypes := []string{
		ProjectTypeKitchen,
		ProjectTypeBath,
		ProjectTypeBasement,
		ProjectTypeAddition,
	}
	for _, t := range validTypes {
		if t == projectType {
			return true
		}
	}
	return false
}
