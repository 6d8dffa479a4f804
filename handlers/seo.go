package handlers

import "builtbydesign_go/models"

const (
	baseURL        = "https://builtbydesignkc.com"
	defaultOGImage = "https://builtbydesignkc.com/static/photos/Hero.webp"
)

// SEO configurations for public pages
var pageSEO = map[string]*models.SEO{
	"landing": {
		Title:       "Built By Design KC | Free Remodeling Consultation",
		Description: "Award-winning custom kitchen, bath, and basement remodeling for Johnson County homeowners.",
		Keywords:    "kitchen remodel, bathroom remodel, basement finish, home remodeling, Johnson County",
		Canonical:   baseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"thank-you": {
		Title:       "Thank You | Built By Design KC",
		Description: "Thanks for your consultation request. A designer will contact you shortly.",
		Canonical:   baseURL + "/thank-you",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		NoIndex:     true,
	},
	"privacy": {
		Title:       "Privacy Policy | Built By Design KC",
		Description: "How Built By Design KC collects, uses, and protects your personal information.",
		Canonical:   baseURL + "/privacy-policy",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"terms": {
		Title:       "Terms of Service | Built By Design KC",
		Description: "Terms governing the use of the Built By Design KC website and consultation requests.",
		Canonical:   baseURL + "/terms-of-service",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"cookies": {
		Title:       "Cookie Policy | Built By Design KC",
		Description: "The cookies this site uses and how to manage your preferences.",
		Canonical:   baseURL + "/cookie-policy",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"admin": {
		Title:   "Admin | Built By Design KC",
		NoIndex: true,
	},
}
