package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"

	"builtbydesign_go/config"
	"builtbydesign_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

var leadNotificationHTML = template.Must(template.New("lead_notification").Parse(`
<h2>New consultation request</h2>
<p>A new lead came in through the landing page.</p>
<table cellpadding="4">
  <tr><td><strong>Name</strong></td><td>{{.FullName}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
  <tr><td><strong>Project</strong></td><td>{{.ProjectType}}</td></tr>
  <tr><td><strong>Zip code</strong></td><td>{{.ZipCode}}</td></tr>
  <tr><td><strong>Submitted</strong></td><td>{{.SubmittedAt.Format "Jan 2, 2006 3:04 PM MST"}}</td></tr>
  <tr><td><strong>Campaign</strong></td><td>{{if .UTMCampaign}}{{.UTMCampaign}}{{else}}&mdash;{{end}}</td></tr>
  <tr><td><strong>Source</strong></td><td>{{if .UTMSource}}{{.UTMSource}}{{else}}&mdash;{{end}}</td></tr>
</table>
`))

// BuildLeadNotification composes the internal notification for a new lead
func BuildLeadNotification(cfg *config.Config, lead *models.Lead) (*Email, error) {
	var html bytes.Buffer
	if err := leadNotificationHTML.Execute(&html, lead); err != nil {
		return nil, fmt.Errorf("failed to render lead notification: %w", err)
	}

	text := fmt.Sprintf(
		"New consultation request\n\nName: %s\nEmail: %s\nPhone: %s\nProject: %s\nZip code: %s\nCampaign: %s\nSource: %s\n",
		lead.FullName, lead.Email, lead.Phone, lead.ProjectType, lead.ZipCode, lead.UTMCampaign, lead.UTMSource,
	)

	return &Email{
		To:       []string{cfg.LeadNotifyTo},
		Subject:  fmt.Sprintf("New %s lead: %s", lead.ProjectType, lead.FullName),
		HTMLBody: html.String(),
		TextBody: text,
	}, nil
}

// SendLeadNotification notifies the business inbox about a new lead
func SendLeadNotification(cfg *config.Config, lead *models.Lead) error {
	email, err := BuildLeadNotification(cfg, lead)
	if err != nil {
		return err
	}
	return SendEmail(cfg, email)
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	// Validate configuration
	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}

	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent via Resend (id=%s) to %s", sent.Id, strings.Join(email.To, ", "))
	return nil
}

func logEmailToConsole(email *Email) {
	log.Printf("---- EMAIL (test mode, not sent) ----")
	log.Printf("To: %s", strings.Join(email.To, ", "))
	log.Printf("Subject: %s", email.Subject)
	if email.TextBody != "" {
		log.Printf("Body:\n%s", email.TextBody)
	}
	log.Printf("-------------------------------------")
}
