package pages

import (
	"context"
	"fmt"
	"io"

	"builtbydesign_go/models"
	"builtbydesign_go/templates/partials"

	"github.com/a-h/templ"
)

// ShellData carries everything the page shell needs: SEO metadata, the GTM
// container, and the visitor's consent so the head scripts can be emitted in
// the required order.
type ShellData struct {
	SEO            *models.SEO
	GTMID          string
	Consent        models.ConsentState
	ConsentDecided bool
	// ShowBanner includes the consent banner markup (public pages only)
	ShowBanner bool
}

// shell renders the document frame. Ordering in <head> is a hard requirement:
// the deny-all consent default must reach the data layer before the GTM
// snippet executes, and a previously decided state is re-applied right after
// the default so the tag layer matches the stored decision on every load.
func shell(data ShellData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		seo := data.SEO
		if seo == nil {
			seo = models.DefaultSEO("Built By Design KC", "")
		}

		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
`, esc(seo.Title)); err != nil {
			return err
		}

		if seo.Description != "" {
			if _, err := fmt.Fprintf(w, "<meta name=\"description\" content=\"%s\">\n", esc(seo.Description)); err != nil {
				return err
			}
		}
		if seo.Keywords != "" {
			if _, err := fmt.Fprintf(w, "<meta name=\"keywords\" content=\"%s\">\n", esc(seo.Keywords)); err != nil {
				return err
			}
		}
		if seo.Canonical != "" {
			if _, err := fmt.Fprintf(w, "<link rel=\"canonical\" href=\"%s\">\n", esc(seo.Canonical)); err != nil {
				return err
			}
		}
		if seo.NoIndex {
			if _, err := io.WriteString(w, "<meta name=\"robots\" content=\"noindex, nofollow\">\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<meta property="og:title" content="%s">
<meta property="og:type" content="%s">
`, esc(seo.Title), esc(seo.OGType)); err != nil {
			return err
		}
		if seo.OGImage != "" {
			if _, err := fmt.Fprintf(w, "<meta property=\"og:image\" content=\"%s\">\n", esc(seo.OGImage)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<meta name="twitter:card" content="%s">
<link rel="stylesheet" href="/static/css/site.css">
`, esc(seo.TwitterCard)); err != nil {
			return err
		}

		// Consent-mode defaults: deny everything configurable before any tag
		// script can run.
		if _, err := fmt.Fprintf(w, `<script id="consent-mode-defaults">
window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
window.gtag = window.gtag || gtag;
gtag('consent', 'default', %s);
</script>
`, models.DeniedConsent().JSON()); err != nil {
			return err
		}

		if data.ConsentDecided {
			if _, err := fmt.Fprintf(w, `<script id="consent-mode-reapply">
gtag('consent', 'update', %s);
</script>
`, data.Consent.JSON()); err != nil {
				return err
			}
		}

		if data.GTMID != "" {
			if _, err := fmt.Fprintf(w, `<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','%s');</script>
`, esc(data.GTMID)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		if data.ShowBanner {
			if err := partials.ConsentBanner(data.Consent, data.ConsentDecided).Render(ctx, w); err != nil {
				return err
			}
		}

		if err := partials.TrackingScript().Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// siteFooter is shared by the public pages
func siteFooter() templ.Component {
	return component(func(w io.Writer) error {
		_, err := io.WriteString(w, `
<footer class="site-footer">
  <p class="footer-brand">Built By Design KC</p>
  <p>
    <a href="tel:+19137826311" data-track-event="click_to_call" data-placement="footer">(913) 782-6311</a>
    &middot;
    <a href="mailto:builtbydesign@builtbydesignkc.com" data-track-event="click_to_email" data-placement="footer">builtbydesign@builtbydesignkc.com</a>
  </p>
  <p class="footer-links">
    <a href="/privacy-policy">Privacy Policy</a>
    <a href="/terms-of-service">Terms of Service</a>
    <a href="/cookie-policy">Cookie Policy</a>
    <button type="button" id="open-cookie-settings" class="link-button">Cookie Settings</button>
  </p>
</footer>
`)
		return err
	})
}
