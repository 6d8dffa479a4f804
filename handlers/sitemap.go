package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler generates the XML sitemap for the public pages
func GetSitemapHandler(c echo.Context) error {
	appURL := getConfig(c).AppURL

	urls := []SitemapURL{
		{Loc: appURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: appURL + "/privacy-policy", ChangeFreq: "yearly", Priority: 0.5},
		{Loc: appURL + "/terms-of-service", ChangeFreq: "yearly", Priority: 0.5},
		{Loc: appURL + "/cookie-policy", ChangeFreq: "yearly", Priority: 0.5},
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(urlSet)
}
