package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardly-app/cardly-backend/models"
)

func TestFlashcardSequentialNumbering(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)

	const n = 5
	for i := 0; i < n; i++ {
		w := performRequest(router, "POST", "/flashcards", map[string]interface{}{
			"record_id": record.ID,
			"question":  fmt.Sprintf("question %d", i),
			"answer":    fmt.Sprintf("answer %d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Serial creates yield numbers 1..N with no duplicates.
	var nums []int
	require.NoError(t, db.Model(&models.Flashcard{}).
		Where("record_id = ?", record.ID).
		Order("flashcard_num ASC").
		Pluck("flashcard_num", &nums).Error)
	require.Len(t, nums, n)
	for i, num := range nums {
		assert.Equal(t, i+1, num)
	}
}

func TestFlashcardNumberingIsPerRecord(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	first := createTestRecord(t, db, user.ID)
	second := createTestRecord(t, db, user.ID)

	for _, record := range []models.Record{first, second} {
		w := performRequest(router, "POST", "/flashcards", map[string]interface{}{
			"record_id": record.ID,
			"question":  "q",
			"answer":    "a",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var card models.Flashcard
	require.NoError(t, db.Where("record_id = ?", second.ID).First(&card).Error)
	assert.Equal(t, 1, card.FlashcardNum)
}

func TestFlashcardCreateMissingFields(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)

	w := performRequest(router, "POST", "/flashcards", map[string]interface{}{
		"record_id": record.ID,
		"question":  "no answer supplied",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlashcardSearch(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	other := createTestRecord(t, db, user.ID)

	hint := "think of Paris"
	require.NoError(t, db.Create(&models.Flashcard{
		RecordID: record.ID, FlashcardNum: 1,
		Question: "Capital of France?", Answer: "Paris", Hint: &hint,
	}).Error)
	require.NoError(t, db.Create(&models.Flashcard{
		RecordID: record.ID, FlashcardNum: 2,
		Question: "Capital of Spain?", Answer: "Madrid",
	}).Error)
	require.NoError(t, db.Create(&models.Flashcard{
		RecordID: other.ID, FlashcardNum: 1,
		Question: "2+2", Answer: "4",
	}).Error)

	// Case-insensitive substring across question/answer/hint.
	w := performRequest(router, "GET", "/flashcards?query=pArIs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	cards := body["flashcards"].([]interface{})
	assert.Len(t, cards, 1)

	// Filter by record.
	w = performRequest(router, "GET", "/flashcards?record_id="+record.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	cards = body["flashcards"].([]interface{})
	assert.Len(t, cards, 2)
}

func TestFlashcardPatch(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	require.NoError(t, db.Create(&models.Flashcard{
		RecordID: record.ID, FlashcardNum: 1, Question: "q", Answer: "a",
	}).Error)

	// No updatable field present.
	w := performRequest(router, "PATCH", "/flashcards/1", map[string]interface{}{
		"record_id": record.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, "PATCH", "/flashcards/1", map[string]interface{}{
		"record_id": record.ID,
		"hint":      "new hint",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var card models.Flashcard
	require.NoError(t, db.Where("record_id = ? AND flashcard_num = ?", record.ID, 1).First(&card).Error)
	require.NotNil(t, card.Hint)
	assert.Equal(t, "new hint", *card.Hint)
	assert.Equal(t, "q", card.Question)

	w = performRequest(router, "PATCH", "/flashcards/99", map[string]interface{}{
		"record_id": record.ID,
		"answer":    "b",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlashcardDelete(t *testing.T) {
	router, db := setupRouter(t)
	user := createTestUser(t, db)
	record := createTestRecord(t, db, user.ID)
	require.NoError(t, db.Create(&models.Flashcard{
		RecordID: record.ID, FlashcardNum: 1, Question: "q", Answer: "a",
	}).Error)

	w := performRequest(router, "DELETE", "/flashcards/1?record_id="+record.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "DELETE", "/flashcards/1?record_id="+record.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, "DELETE", "/flashcards/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
