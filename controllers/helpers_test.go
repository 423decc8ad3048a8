package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cardly-app/cardly-backend/config"
	"github.com/cardly-app/cardly-backend/models"
	"github.com/cardly-app/cardly-backend/routes"
)

// setupRouter builds the real router against a fresh in-memory sqlite DB.
// The DB is named after the test so the pool's connections share one store
// without leaking state between tests.
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	r := gin.New()
	return routes.SetupRouter(r, db), db
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Name:       "Test User",
		Email:      uuid.NewString()[:8] + "@example.com",
		Password:   "not-a-real-hash",
		IsVerified: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestRecord(t *testing.T, db *gorm.DB, userID uuid.UUID) models.Record {
	t.Helper()
	record := models.Record{
		UserID:   userID,
		Category: "Math",
		Status:   models.StatusPublic,
	}
	require.NoError(t, db.Create(&record).Error)
	return record
}

func createTestCover(t *testing.T, db *gorm.DB, recordID uuid.UUID, title string) models.Cover {
	t.Helper()
	desc := "practice set"
	cover := models.Cover{
		RecordID:    recordID,
		Title:       title,
		Description: &desc,
	}
	require.NoError(t, db.Create(&cover).Error)
	return cover
}
