package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"builtbydesign_go/db"
	"builtbydesign_go/middleware"
	"builtbydesign_go/models"
	"builtbydesign_go/services"
	"builtbydesign_go/templates/pages"

	"github.com/labstack/echo/v4"
)

const leadsPerPage = 20

// AdminLeadsHandler lists submitted leads, newest first
func AdminLeadsHandler(c echo.Context) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return c.Redirect(http.StatusSeeOther, "/admin/login")
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	var total int64
	if err := db.DB.Model(&models.Lead{}).Count(&total).Error; err != nil {
		c.Logger().Errorf("Failed to count leads: %v", err)
		return c.String(http.StatusInternalServerError, "Something went wrong")
	}

	totalPages := (total + leadsPerPage - 1) / leadsPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	if int64(page) > totalPages {
		page = int(totalPages)
	}

	var leads []models.Lead
	if err := db.DB.Order("submitted_at DESC").
		Limit(leadsPerPage).
		Offset((page - 1) * leadsPerPage).
		Find(&leads).Error; err != nil {
		c.Logger().Errorf("Failed to load leads: %v", err)
		return c.String(http.StatusInternalServerError, "Something went wrong")
	}

	shellData := buildShellData(c, pageSEO["admin"], false)
	return render(c, pages.AdminLeads(shellData, user, leads, page, totalPages))
}

// AdminLeadsExportHandler streams all leads as an xlsx workbook
func AdminLeadsExportHandler(c echo.Context) error {
	f, err := services.ExportLeadsXLSX(db.DB)
	if err != nil {
		c.Logger().Errorf("Failed to build leads export: %v", err)
		return c.String(http.StatusInternalServerError, "Something went wrong")
	}
	defer f.Close()

	filename := fmt.Sprintf("leads_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().WriteHeader(http.StatusOK)

	if err := f.Write(c.Response()); err != nil {
		c.Logger().Errorf("Failed to write leads export: %v", err)
	}
	return nil
}
