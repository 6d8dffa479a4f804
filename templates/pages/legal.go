package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func legalPage(shellData ShellData, heading string, sections []legalSection) templ.Component {
	body := component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `
<main class="legal-page">
  <p class="brand"><a href="/">Built By Design KC</a></p>
  <h1>%s</h1>
`, esc(heading)); err != nil {
			return err
		}

		for _, section := range sections {
			if _, err := fmt.Fprintf(w, "  <h2>%s</h2>\n  <p>%s</p>\n", esc(section.Title), esc(section.Body)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</main>\n"); err != nil {
			return err
		}
		return renderInline(w, siteFooter())
	})

	return shell(shellData, body)
}

type legalSection struct {
	Title string
	Body  string
}

// PrivacyPolicy renders the privacy policy page
func PrivacyPolicy(shellData ShellData) templ.Component {
	return legalPage(shellData, "Privacy Policy", []legalSection{
		{
			Title: "Information We Collect",
			Body: "When you request a consultation we collect your name, email address, phone number, project type, " +
				"and zip code, together with technical details such as your IP address, browser user agent, and the " +
				"advertising identifiers present on the page you arrived from.",
		},
		{
			Title: "How We Use Your Information",
			Body: "We use your contact details to respond to your consultation request. Advertising and campaign " +
				"identifiers are used, with your consent, to credit the campaign that brought you to us.",
		},
		{
			Title: "Sharing",
			Body: "Consultation requests are processed by a third-party form-processing service on our behalf. " +
				"We do not sell your personal information.",
		},
		{
			Title: "Contact",
			Body:  "Questions about this policy can be sent to builtbydesign@builtbydesignkc.com.",
		},
	})
}

// TermsOfService renders the terms of service page
func TermsOfService(shellData ShellData) templ.Component {
	return legalPage(shellData, "Terms of Service", []legalSection{
		{
			Title: "Consultation Requests",
			Body: "Submitting the consultation form does not create a contract for remodeling services. " +
				"A designer will contact you to discuss scope, schedule, and pricing before any engagement begins.",
		},
		{
			Title: "Acceptable Use",
			Body: "You agree not to submit automated, fraudulent, or abusive requests through this site. " +
				"We may decline requests that appear automated.",
		},
		{
			Title: "Limitation of Liability",
			Body: "This site and its content are provided as-is. Project descriptions and photos are illustrative " +
				"of past work and do not guarantee identical results.",
		},
	})
}

// CookiePolicy renders the cookie policy page
func CookiePolicy(shellData ShellData) templ.Component {
	return legalPage(shellData, "Cookie Policy", []legalSection{
		{
			Title: "Strictly Necessary Cookies",
			Body: "These keep the site secure and remember your cookie preferences. They are always active and " +
				"cannot be disabled.",
		},
		{
			Title: "Analytics Cookies",
			Body: "With your permission, analytics cookies help us measure how visitors use this site and which " +
				"campaigns perform well.",
		},
		{
			Title: "Advertising Cookies",
			Body: "With your permission, advertising cookies allow ad platforms to credit a consultation request " +
				"to the ad you clicked, and to personalize future ads.",
		},
		{
			Title: "Managing Preferences",
			Body: "You can change your choices at any time using the Cookie Settings control in the page footer. " +
				"Your decision is stored for one year.",
		},
	})
}
