package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardly-app/cardly-backend/models"
)

func TestBookmarkCreateAndDuplicate(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	cover := createTestCover(t, db, record.ID, "Basic Addition")

	payload := map[string]interface{}{
		"user_id":  user.ID,
		"cover_id": cover.ID,
	}

	w := performRequest(router, "POST", "/bookmarks", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, "POST", "/bookmarks", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Bookmark{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBookmarkListJoinsCover(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	cover := createTestCover(t, db, record.ID, "Basic Addition")
	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, CoverID: cover.ID}).Error)

	w := performRequest(router, "GET", "/bookmarks/"+user.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	bookmarks, ok := body["bookmarks"].([]interface{})
	require.True(t, ok)
	require.Len(t, bookmarks, 1)

	entry := bookmarks[0].(map[string]interface{})
	coverBody, ok := entry["cover"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Basic Addition", coverBody["title"])
	assert.Equal(t, record.ID.String(), coverBody["record_id"])
}

func TestDeleteBookmarkNotFound(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	cover := createTestCover(t, db, record.ID, "Kept")
	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, CoverID: cover.ID}).Error)

	other := createTestUser(t, db)
	w := performRequest(router, "DELETE", "/bookmarks", map[string]interface{}{
		"user_id":  other.ID,
		"cover_id": cover.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing was touched.
	var count int64
	require.NoError(t, db.Model(&models.Bookmark{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteBookmark(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	cover := createTestCover(t, db, record.ID, "Removed")
	require.NoError(t, db.Create(&models.Bookmark{UserID: user.ID, CoverID: cover.ID}).Error)

	w := performRequest(router, "DELETE", "/bookmarks", map[string]interface{}{
		"user_id":  user.ID,
		"cover_id": cover.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Bookmark{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
