package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardly-app/cardly-backend/models"
)

func TestCoverCreate(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)

	w := performRequest(router, "POST", "/cover", map[string]interface{}{
		"record_id": record.ID,
		"title":     "Basic Addition",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// description was omitted and stays null
	var cover models.Cover
	require.NoError(t, db.Where("record_id = ?", record.ID).First(&cover).Error)
	assert.Nil(t, cover.Description)

	w = performRequest(router, "POST", "/cover", map[string]interface{}{
		"record_id": record.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoverFilterAndSearch(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	first := createTestRecord(t, db, user.ID)
	second := createTestRecord(t, db, user.ID)
	createTestCover(t, db, first.ID, "Basic Addition")
	createTestCover(t, db, second.ID, "Advanced Subtraction")

	w := performRequest(router, "GET", "/cover?record_id="+first.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	covers := body["data"].([]interface{})
	require.Len(t, covers, 1)
	assert.Equal(t, "Basic Addition", covers[0].(map[string]interface{})["title"])

	// Case-insensitive substring on the title.
	w = performRequest(router, "GET", "/cover?query=subTRACT", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	covers = body["data"].([]interface{})
	require.Len(t, covers, 1)
	assert.Equal(t, "Advanced Subtraction", covers[0].(map[string]interface{})["title"])

	w = performRequest(router, "GET", "/cover", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["data"].([]interface{}), 2)
}

func TestCoverUpdateOverwrites(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	createTestCover(t, db, record.ID, "Old Title")

	// Overwrite semantics: omitting description nulls it out.
	w := performRequest(router, "PUT", "/cover/"+record.ID.String(), map[string]interface{}{
		"title": "New Title",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cover models.Cover
	require.NoError(t, db.Where("record_id = ?", record.ID).First(&cover).Error)
	assert.Equal(t, "New Title", cover.Title)
	assert.Nil(t, cover.Description)
}

func TestCoverUpdateNotFound(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)

	w := performRequest(router, "PUT", "/cover/"+record.ID.String(), map[string]interface{}{
		"title": "No cover here",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCoverDelete(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	createTestCover(t, db, record.ID, "Short-lived")

	w := performRequest(router, "DELETE", "/cover/"+record.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Cover{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
