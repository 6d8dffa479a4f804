package handlers

import (
	"builtbydesign_go/services"
	"builtbydesign_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the landing page. Attribution parameters on the URL
// are captured into their persistent slots before the lead form is rendered,
// so the form's hidden fields always carry the resolved values.
func LandingHandler(c echo.Context) error {
	attribution := services.CaptureAttribution(c)
	shellData := buildShellData(c, pageSEO["landing"], true)
	return render(c, pages.Landing(shellData, attribution, requestURL(c)))
}

// PrivacyPolicyHandler renders the privacy policy page
func PrivacyPolicyHandler(c echo.Context) error {
	return render(c, pages.PrivacyPolicy(buildShellData(c, pageSEO["privacy"], true)))
}

// TermsOfServiceHandler renders the terms of service page
func TermsOfServiceHandler(c echo.Context) error {
	return render(c, pages.TermsOfService(buildShellData(c, pageSEO["terms"], true)))
}

// CookiePolicyHandler renders the cookie policy page
func CookiePolicyHandler(c echo.Context) error {
	return render(c, pages.CookiePolicy(buildShellData(c, pageSEO["cookies"], true)))
}
