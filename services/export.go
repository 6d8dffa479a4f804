package services

import (
	"fmt"

	"builtbydesign_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var leadExportColumns = []string{
	"Submitted At",
	"Name",
	"Email",
	"Phone",
	"Project Type",
	"Zip Code",
	"GCLID",
	"WBRAID",
	"GBRAID",
	"UTM Source",
	"UTM Medium",
	"UTM Campaign",
	"UTM Term",
	"UTM Content",
	"Landing Page URL",
	"Client IP",
}

// ExportLeadsXLSX builds an Excel workbook with every persisted lead, newest
// first. The caller owns closing the returned file.
func ExportLeadsXLSX(gdb *gorm.DB) (*excelize.File, error) {
	var leads []models.Lead
	if err := gdb.Order("submitted_at DESC").Find(&leads).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leads for export: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Leads"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	for i, col := range leadExportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, lead := range leads {
		values := []interface{}{
			lead.SubmittedAt.Format("2006-01-02 15:04:05"),
			lead.FullName,
			lead.Email,
			lead.Phone,
			lead.ProjectType,
			lead.ZipCode,
			lead.Gclid,
			lead.Wbraid,
			lead.Gbraid,
			lead.UTMSource,
			lead.UTMMedium,
			lead.UTMCampaign,
			lead.UTMTerm,
			lead.UTMContent,
			lead.LandingPageURL,
			lead.ClientIP,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	return f, nil
}
