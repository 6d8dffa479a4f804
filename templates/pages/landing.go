package pages

import (
	"fmt"
	"io"

	"builtbydesign_go/templates/partials"

	"github.com/a-h/templ"
)

type testimonial struct {
	Name  string
	City  string
	Quote string
}

var testimonialCards = []testimonial{
	{
		Name: "Emily R.",
		City: "Overland Park",
		Quote: "Built By Design transformed our outdated kitchen into the space we always wanted. " +
			"The design process was clear, communication was consistent, and the crew respected our home every single day.",
	},
	{
		Name: "James and Alicia T.",
		City: "Leawood",
		Quote: "Our primary bathroom remodel turned out better than we imagined. The finishes are beautiful, " +
			"and the team stayed on schedule while keeping us informed through each phase.",
	},
	{
		Name: "Mark D.",
		City: "Olathe",
		Quote: "We hired Built By Design for a basement finish and they delivered exactly what they promised. " +
			"Their craftsmanship and attention to detail were excellent.",
	},
	{
		Name: "Karen L.",
		City: "Lenexa",
		Quote: "From design to final walkthrough, the experience was smooth and organized. " +
			"We appreciated the daily updates and how clean the team kept the job site.",
	},
}

type processStep struct {
	Title       string
	Description string
}

var processSteps = []processStep{
	{Title: "Consultation", Description: "We listen to your goals, assess your space, and discuss your budget."},
	{Title: "Custom Design", Description: "We create detailed 3D plans and help you select premium materials."},
	{Title: "Construction", Description: "Our professional crew builds your space with minimal disruption and daily communication."},
	{Title: "The Reveal", Description: "Step into your newly remodeled, flawlessly finished space."},
}

var galleryImages = []struct {
	Src string
	Alt string
}{
	{Src: "/static/gallery/kitchen-white-wood-island.webp", Alt: "Bright white kitchen remodel with natural wood island and bar seating"},
	{Src: "/static/gallery/basement-pool-table-hero.webp", Alt: "Modern basement remodel with pool table and open concept kitchen area"},
	{Src: "/static/gallery/basement-wine-room.webp", Alt: "Custom wine room with glass enclosure and dark cabinetry"},
	{Src: "/static/gallery/kitchen-green-island.webp", Alt: "Designer kitchen featuring sage green island with white perimeter cabinets"},
}

// Landing renders the landing page with the lead form prefilled with resolved
// attribution values.
func Landing(shellData ShellData, attribution map[string]string, landingPageURL string) templ.Component {
	body := component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `
<header class="site-header">
  <p class="brand">Built By Design KC</p>
  <a href="tel:+19137826311" class="header-call" data-track-event="click_to_call" data-placement="header-desktop">(913) 782-6311</a>
</header>

<section class="hero">
  <h1>Award-Winning Kitchen, Bath &amp; Basement Remodeling</h1>
  <p class="hero-sub">Custom remodeling for Johnson County homeowners, from first sketch to final reveal.</p>
  <ul class="trust-badges">
    <li>5-Star Houzz Rated</li>
    <li>REMY Award Winners</li>
    <li>Fully Licensed and Insured</li>
  </ul>
  <button type="button" class="btn-primary" data-track-event="cta_click" data-source="hero">Request Free Consultation</button>
</section>

<section class="process">
  <h2>Our Process</h2>
  <ol class="process-steps">
`); err != nil {
			return err
		}

		for _, step := range processSteps {
			if _, err := fmt.Fprintf(w, "    <li><h3>%s</h3><p>%s</p></li>\n", esc(step.Title), esc(step.Description)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `  </ol>
</section>

<section class="testimonials">
  <h2>What Homeowners Say</h2>
  <div class="testimonial-track">
`); err != nil {
			return err
		}

		for _, card := range testimonialCards {
			if _, err := fmt.Fprintf(w, `    <blockquote class="testimonial-card">
      <p>%s</p>
      <footer>%s &mdash; %s</footer>
    </blockquote>
`, esc(card.Quote), esc(card.Name), esc(card.City)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `  </div>
</section>

<section class="gallery">
  <h2>Recent Projects</h2>
  <div class="gallery-strip">
`); err != nil {
			return err
		}

		for _, img := range galleryImages {
			if _, err := fmt.Fprintf(w, "    <img src=\"%s\" alt=\"%s\" loading=\"lazy\">\n", esc(img.Src), esc(img.Alt)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `  </div>
</section>

<section class="lead-section">
`); err != nil {
			return err
		}

		if err := renderInline(w, partials.LeadForm(attribution, landingPageURL)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, "</section>\n"); err != nil {
			return err
		}

		return renderInline(w, siteFooter())
	})

	return shell(shellData, body)
}
