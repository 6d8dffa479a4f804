package handlers

import (
	"net/http"
	"strings"
	"time"

	"builtbydesign_go/db"
	"builtbydesign_go/middleware"
	"builtbydesign_go/models"
	"builtbydesign_go/services"
	"builtbydesign_go/templates/pages"

	"github.com/labstack/echo/v4"
)

const loginFailedMessage = "Invalid email or password."

// AdminLoginHandler renders the admin login form
func AdminLoginHandler(c echo.Context) error {
	shellData := buildShellData(c, pageSEO["admin"], false)
	return render(c, pages.AdminLogin(shellData, ""))
}

// AdminLoginPostHandler verifies credentials and opens a session. The error
// message is identical for unknown email and wrong password.
func AdminLoginPostHandler(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	shellData := buildShellData(c, pageSEO["admin"], false)

	var user models.User
	if err := db.DB.Where("email = ? AND is_active = ?", email, true).First(&user).Error; err != nil {
		return render(c, pages.AdminLogin(shellData, loginFailedMessage))
	}

	if !services.CheckPassword(password, user.Password) {
		return render(c, pages.AdminLogin(shellData, loginFailedMessage))
	}

	session, err := services.CreateSession(db.DB, user.ID, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		c.Logger().Errorf("Failed to create session: %v", err)
		return render(c, pages.AdminLogin(shellData, "Something went wrong. Please try again."))
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := db.DB.Model(&user).Update("last_login_at", now).Error; err != nil {
		c.Logger().Errorf("Failed to update last login: %v", err)
	}

	middleware.SetSessionCookie(c, session)
	return c.Redirect(http.StatusSeeOther, "/admin/leads")
}

// AdminLogoutHandler ends the session and clears the cookie
func AdminLogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		if err := services.DeleteSession(db.DB, cookie.Value); err != nil {
			c.Logger().Errorf("Failed to delete session: %v", err)
		}
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
