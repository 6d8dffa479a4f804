package services

import (
	"testing"
	"time"

	"builtbydesign_go/models"

	"github.com/stretchr/testify/assert"
)

func TestExportLeadsXLSX(t *testing.T) {
	testDB := setupTestDB(t)

	older := models.Lead{
		FullName:    "First Lead",
		Email:       "first@example.com",
		Phone:       "9135550100",
		ProjectType: models.ProjectTypeBath,
		ZipCode:     "66213",
		SubmittedAt: time.Now().Add(-time.Hour),
	}
	newer := models.Lead{
		FullName:    "Second Lead",
		Email:       "second@example.com",
		Phone:       "9135550101",
		ProjectType: models.ProjectTypeKitchen,
		ZipCode:     "64106",
		Gclid:       "abc123",
		UTMCampaign: "spring",
		SubmittedAt: time.Now(),
	}
	assert.NoError(t, testDB.Create(&older).Error)
	assert.NoError(t, testDB.Create(&newer).Error)

	f, err := ExportLeadsXLSX(testDB)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, leadExportColumns, rows[0])

	// Newest first
	assert.Equal(t, "Second Lead", rows[1][1])
	assert.Equal(t, "abc123", rows[1][6])
	assert.Equal(t, "spring", rows[1][11])
	assert.Equal(t, "First Lead", rows[2][1])
}

func TestExportLeadsXLSXEmpty(t *testing.T) {
	testDB := setupTestDB(t)

	f, err := ExportLeadsXLSX(testDB)
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Leads")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
}
