package partials

import (
	"io"

	"github.com/a-h/templ"
)

// TrackingScript wires click tracking for elements carrying data-track-event
// attributes (optionally data-placement / data-source). Each click pushes a
// data-layer event and mirrors it to the server, fire-and-forget. CTA buttons
// additionally scroll to the lead form and emit scroll_to_form.
func TrackingScript() templ.Component {
	return component(func(w io.Writer) error {
		_, err := io.WriteString(w, `
<script>
(function () {
  function push(payload) {
    window.dataLayer = window.dataLayer || [];
    window.dataLayer.push(payload);
    var body = JSON.stringify({
      event: payload.event,
      placement: payload.placement || "",
      source: payload.source || "",
      page_path: window.location.pathname,
      page_location: window.location.href
    });
    if (navigator.sendBeacon) {
      navigator.sendBeacon("/api/events", new Blob([body], { type: "application/json" }));
    } else {
      fetch("/api/events", { method: "POST", headers: { "Content-Type": "application/json" }, body: body, keepalive: true });
    }
  }

  document.querySelectorAll("[data-track-event]").forEach(function (el) {
    el.addEventListener("click", function () {
      var name = el.getAttribute("data-track-event");
      push({
        event: name,
        placement: el.getAttribute("data-placement") || "",
        source: el.getAttribute("data-source") || "",
        page_path: window.location.pathname,
        page_location: window.location.href
      });

      if (name === "cta_click") {
        push({
          event: "scroll_to_form",
          source: el.getAttribute("data-source") || "",
          page_path: window.location.pathname,
          page_location: window.location.href
        });
        var target = document.getElementById("lead-form");
        if (target) {
          target.scrollIntoView({ behavior: "smooth", block: "start" });
        }
      }
    });
  });

  var openSettings = document.getElementById("open-cookie-settings");
  if (openSettings) {
    openSettings.addEventListener("click", function () {
      window.dispatchEvent(new Event("open-cookie-consent"));
    });
  }
})();
</script>
`)
		return err
	})
}
