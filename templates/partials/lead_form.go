package partials

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// LeadForm renders the consultation request form. Attribution values resolved
// by the server are injected as hidden fields; the "website" input is the
// honeypot and stays invisible to humans.
func LeadForm(attribution map[string]string, landingPageURL string) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `
<form id="lead-form" method="post" action="/leads" class="lead-form">
  <h2>Start Your Dream Project Today</h2>
  <p class="lead-form-legal">By submitting, you agree to our <a href="/terms-of-service">Terms of Service</a> and <a href="/privacy-policy">Privacy Policy</a>.</p>
  <div id="lead-form-error" class="form-error hidden"></div>
  <input type="text" name="fullName" placeholder="First and Last Name" autocomplete="name">
  <input type="email" name="email" placeholder="Email" autocomplete="email">
  <input type="tel" name="phone" placeholder="Phone Number" autocomplete="tel">
  <select name="projectType">
    <option value="">Project Type</option>
    <option value="Kitchen">Kitchen</option>
    <option value="Bath">Bath</option>
    <option value="Basement">Basement</option>
    <option value="Addition">Addition</option>
  </select>
  <input type="text" name="zipCode" placeholder="Zip Code" inputmode="numeric" maxlength="5">
  <div class="hp-field" aria-hidden="true">
    <label for="website">Website</label>
    <input type="text" id="website" name="website" tabindex="-1" autocomplete="off">
  </div>
`); err != nil {
			return err
		}

		for _, key := range []string{"gclid", "wbraid", "gbraid", "utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content"} {
			if _, err := fmt.Fprintf(w, "  <input type=\"hidden\" name=%q value=\"%s\">\n", key, esc(attribution[key])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "  <input type=\"hidden\" name=\"landingPageUrl\" value=\"%s\">\n", esc(landingPageURL)); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `
  <button type="submit" id="lead-submit" class="btn-primary">Request Free Consultation -&gt;</button>
</form>
<script>
(function () {
  var form = document.getElementById("lead-form");
  var button = document.getElementById("lead-submit");
  var errorBox = document.getElementById("lead-form-error");
  var pending = false;

  form.addEventListener("submit", function (event) {
    event.preventDefault();
    if (pending) return;
    pending = true;
    button.disabled = true;
    button.textContent = "Submitting...";
    errorBox.classList.add("hidden");

    fetch("/leads", { method: "POST", body: new FormData(form) })
      .then(function (res) { return res.json(); })
      .then(function (data) {
        if (data.success) {
          window.location.href = "/thank-you";
          return;
        }
        errorBox.textContent = data.message || %q;
        errorBox.classList.remove("hidden");
      })
      .catch(function () {
        errorBox.textContent = %q;
        errorBox.classList.remove("hidden");
      })
      .finally(function () {
        pending = false;
        button.disabled = false;
        button.textContent = "Request Free Consultation ->";
      });
  });
})();
</script>
`, "Please review your entries.", "Unable to send your request right now. Please try again.")
		return err
	})
}
