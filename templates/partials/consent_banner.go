package partials

import (
	"fmt"
	"io"

	"builtbydesign_go/models"

	"github.com/a-h/templ"
)

// ConsentBanner renders the cookie-consent banner plus the script that drives
// it. When the visitor already has a decided state the banner starts hidden
// and only reappears through the "open cookie settings" signal, preloaded in
// customization mode with the saved toggles.
func ConsentBanner(state models.ConsentState, decided bool) templ.Component {
	return component(func(w io.Writer) error {
		hiddenClass := ""
		if decided {
			hiddenClass = " hidden"
		}

		checked := func(on bool) string {
			if on {
				return " checked"
			}
			return ""
		}

		if _, err := fmt.Fprintf(w, `
<div id="consent-banner" class="consent-banner%s">
  <div class="consent-inner">
    <p class="consent-title">Cookie Preferences</p>
    <p class="consent-copy">We use cookies to keep this site secure and, with your permission, to measure ad and analytics performance. <a href="/cookie-policy">View Cookie Policy</a>.</p>
    <div id="consent-custom" class="consent-custom hidden">
      <label><input type="checkbox" checked disabled> <strong>Strictly Necessary</strong> &mdash; Required for core site operation.</label>
      <label><input type="checkbox" id="consent-analytics"%s> <strong>Analytics</strong> &mdash; Helps us measure site and campaign performance.</label>
      <label><input type="checkbox" id="consent-ads"%s> <strong>Advertising</strong> &mdash; Enables ad attribution and personalization signals.</label>
      <label><input type="checkbox" id="consent-functional"%s> <strong>Functional Personalization</strong> &mdash; Remembers your on-site preferences.</label>
    </div>
    <div class="consent-actions">
      <button type="button" id="consent-reject" class="btn-secondary">Reject Non-Essential</button>
      <button type="button" id="consent-accept" class="btn-primary">Accept All</button>
      <button type="button" id="consent-customize" class="btn-secondary">Customize</button>
    </div>
  </div>
</div>
`,
			hiddenClass,
			checked(state.AnalyticsAllowed()),
			checked(state.AdsAllowed()),
			checked(state.FunctionalAllowed()),
		); err != nil {
			return err
		}

		_, err := io.WriteString(w, `
<script>
(function () {
  var banner = document.getElementById("consent-banner");
  var customPanel = document.getElementById("consent-custom");
  var customizeBtn = document.getElementById("consent-customize");

  function postConsent(body) {
    return fetch("/api/consent", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify(body)
    }).then(function (res) { return res.json(); });
  }

  function applyAndClose(data) {
    if (data && data.state && window.gtag) {
      gtag("consent", "update", data.state);
    }
    banner.classList.add("hidden");
    customPanel.classList.add("hidden");
    customizeBtn.textContent = "Customize";
  }

  document.getElementById("consent-reject").addEventListener("click", function () {
    postConsent({ action: "reject_all" }).then(applyAndClose);
  });

  document.getElementById("consent-accept").addEventListener("click", function () {
    postConsent({ action: "accept_all" }).then(applyAndClose);
  });

  customizeBtn.addEventListener("click", function () {
    if (customPanel.classList.contains("hidden")) {
      customPanel.classList.remove("hidden");
      customizeBtn.textContent = "Save Preferences";
      return;
    }
    postConsent({
      action: "save",
      analytics: document.getElementById("consent-analytics").checked,
      ads: document.getElementById("consent-ads").checked,
      functional: document.getElementById("consent-functional").checked
    }).then(applyAndClose);
  });

  // Footer "Cookie Settings" control re-opens the banner in customization
  // mode without resetting the saved decision.
  window.addEventListener("open-cookie-consent", function () {
    customPanel.classList.remove("hidden");
    customizeBtn.textContent = "Save Preferences";
    banner.classList.remove("hidden");
  });
})();
</script>
`)
		return err
	})
}
