package pages

import (
	"fmt"
	"io"

	"builtbydesign_go/models"

	"github.com/a-h/templ"
)

// AdminLogin renders the admin login form
func AdminLogin(shellData ShellData, errorMessage string) templ.Component {
	body := component(func(w io.Writer) error {
		if _, err := io.WriteString(w, `
<main class="admin-login">
  <h1>Admin Login</h1>
`); err != nil {
			return err
		}

		if errorMessage != "" {
			if _, err := fmt.Fprintf(w, "  <div class=\"form-error\">%s</div>\n", esc(errorMessage)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `  <form method="post" action="/admin/login">
    <input type="email" name="email" placeholder="Email" autocomplete="username">
    <input type="password" name="password" placeholder="Password" autocomplete="current-password">
    <button type="submit" class="btn-primary">Sign In</button>
  </form>
</main>
`)
		return err
	})

	return shell(shellData, body)
}

// AdminLeads renders the leads dashboard
func AdminLeads(shellData ShellData, user *models.User, leads []models.Lead, page int, totalPages int64) templ.Component {
	body := component(func(w io.Writer) error {
		userName := ""
		if user != nil {
			userName = user.Name
		}

		if _, err := fmt.Fprintf(w, `
<main class="admin-leads">
  <header class="admin-header">
    <h1>Leads</h1>
    <div>
      <span>%s</span>
      <a href="/admin/leads/export" class="btn-secondary">Export .xlsx</a>
      <form method="post" action="/admin/logout" class="inline-form"><button type="submit" class="link-button">Log out</button></form>
    </div>
  </header>
  <table class="leads-table">
    <thead>
      <tr><th>Submitted</th><th>Name</th><th>Email</th><th>Phone</th><th>Project</th><th>Zip</th><th>Campaign</th></tr>
    </thead>
    <tbody>
`, esc(userName)); err != nil {
			return err
		}

		if len(leads) == 0 {
			if _, err := io.WriteString(w, "      <tr><td colspan=\"7\" class=\"empty\">No leads yet.</td></tr>\n"); err != nil {
				return err
			}
		}

		for _, lead := range leads {
			if _, err := fmt.Fprintf(w, "      <tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				esc(lead.SubmittedAt.Format("Jan 2, 2006 3:04 PM")),
				esc(lead.FullName),
				esc(lead.Email),
				esc(lead.Phone),
				esc(lead.ProjectType),
				esc(lead.ZipCode),
				esc(lead.UTMCampaign),
			); err != nil {
				return err
			}
		}

		_, err := fmt.Fprintf(w, `    </tbody>
  </table>
  <nav class="pagination">Page %d of %d</nav>
</main>
`, page, totalPages)
		return err
	})

	return shell(shellData, body)
}
