package pages

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ThankYou renders the confirmation page. When fireConversion is set this
// mount emits the one-shot lead_submitted event with the stored attribution;
// repeat mounts within the same session render without the script.
func ThankYou(shellData ShellData, attribution map[string]string, fireConversion bool) templ.Component {
	body := component(func(w io.Writer) error {
		if fireConversion {
			payload := map[string]string{
				"event":     "lead_submitted",
				"lead_type": "google_ads_landing_form",
			}
			for key, value := range attribution {
				payload[key] = value
			}
			encoded, err := json.Marshal(payload)
			if err != nil {
				// Attribution values are plain strings; if encoding somehow
				// fails the conversion script is skipped, never the page.
				encoded = nil
			}
			if encoded != nil {
				if _, err := fmt.Fprintf(w, `<script id="thank-you-lead-event">
(function () {
  window.dataLayer = window.dataLayer || [];
  var payload = %s;
  payload.page_path = window.location.pathname;
  payload.page_location = window.location.href;
  window.dataLayer.push(payload);
})();
</script>
`, encoded); err != nil {
					return err
				}
			}
		}

		if _, err := io.WriteString(w, `
<main class="thank-you">
  <p class="brand">Built By Design KC</p>
  <h1>Thank You</h1>
  <p>Your request has been received. A designer will contact you shortly.</p>
  <a href="/" class="btn-primary">&lt;- Back to Landing Page</a>
</main>
`); err != nil {
			return err
		}

		return renderInline(w, siteFooter())
	})

	return shell(shellData, body)
}
