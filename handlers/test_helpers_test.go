package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"builtbydesign_go/config"
	"builtbydesign_go/db"
	"builtbydesign_go/models"
	"builtbydesign_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.Exec("PRAGMA journal_mode=WAL;").Error
	assert.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Lead{},
		&models.ConsentLog{},
		&models.AnalyticsEvent{},
		&models.User{},
		&models.Session{},
	)
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AppURL:        "http://localhost:8080",
		GTMID:         "GTM-TEST123",
		EmailTestMode: true,
		LeadNotifyTo:  "owner@example.com",
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// freshLeadLimiter isolates each test from the package-level limiter state
func freshLeadLimiter(t *testing.T, max int) {
	old := services.LeadLimiter
	services.LeadLimiter = services.NewSubmissionLimiter(time.Minute, max)
	t.Cleanup(func() { services.LeadLimiter = old })
}
