package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/models"
)

type CreateFlashcardInput struct {
	RecordID uuid.UUID `json:"record_id" binding:"required"`
	Question string    `json:"question" binding:"required"`
	Answer   string    `json:"answer" binding:"required"`
	Hint     *string   `json:"hint"`
}

type PatchFlashcardInput struct {
	RecordID uuid.UUID `json:"record_id" binding:"required"`
	Question *string   `json:"question"`
	Answer   *string   `json:"answer"`
	Hint     *string   `json:"hint"`
}

// GetFlashcards godoc
// @Summary      List flashcards
// @Description  Optional record filter and case-insensitive search across question, answer and hint
// @Tags         Flashcards
// @Produce      json
// @Param        record_id  query  string  false  "Owning record"
// @Param        query      query  string  false  "Search substring"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /flashcards [get]
func GetFlashcards(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	q := db.Model(&models.Flashcard{})
	if recordID := c.Query("record_id"); recordID != "" {
		q = q.Where("record_id = ?", recordID)
	}
	if query := c.Query("query"); query != "" {
		pattern := "%" + query + "%"
		q = q.Where(
			"LOWER(question) LIKE LOWER(?) OR LOWER(answer) LIKE LOWER(?) OR LOWER(hint) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var flashcards []models.Flashcard
	if err := q.Order("flashcard_num ASC").Find(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"flashcards": flashcards})
}

// CreateFlashcard godoc
// @Summary      Create a flashcard
// @Description  The card gets the next free number in its record, computed inside the insert transaction
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        input  body  CreateFlashcardInput  true  "Flashcard payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /flashcards [post]
func CreateFlashcard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateFlashcardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record_id, question, and answer are required"})
		return
	}

	var card models.Flashcard
	err := db.Transaction(func(tx *gorm.DB) error {
		// Numbering stays contiguous under serial creates; the unique index
		// on (record_id, flashcard_num) turns a racing duplicate into an
		// insert error instead of a silent overwrite.
		var maxNum int
		if err := tx.Model(&models.Flashcard{}).
			Where("record_id = ?", input.RecordID).
			Select("COALESCE(MAX(flashcard_num), 0)").
			Scan(&maxNum).Error; err != nil {
			return err
		}

		card = models.Flashcard{
			RecordID:     input.RecordID,
			FlashcardNum: maxNum + 1,
			Question:     input.Question,
			Answer:       input.Answer,
			Hint:         input.Hint,
		}
		return tx.Create(&card).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Flashcard created successfully", "data": card})
}

// PatchFlashcard godoc
// @Summary      Patch a flashcard
// @Description  Partial update addressed by record_id and flashcard_num; at least one field must be present
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        flashcard_num  path  int                  true  "Card number within the record"
// @Param        input          body  PatchFlashcardInput  true  "Fields to change"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /flashcards/{flashcard_num} [patch]
func PatchFlashcard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	flashcardNum, err := strconv.Atoi(c.Param("flashcard_num"))
	if err != nil || flashcardNum < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flashcard_num"})
		return
	}

	var input PatchFlashcardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record_id is required"})
		return
	}

	updates := map[string]interface{}{}
	if input.Question != nil {
		updates["question"] = *input.Question
	}
	if input.Answer != nil {
		updates["answer"] = *input.Answer
	}
	if input.Hint != nil {
		updates["hint"] = *input.Hint
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of question, answer, or hint is required"})
		return
	}

	res := db.Model(&models.Flashcard{}).
		Where("record_id = ? AND flashcard_num = ?", input.RecordID, flashcardNum).
		Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flashcard not found"})
		return
	}

	var card models.Flashcard
	if err := db.Where("record_id = ? AND flashcard_num = ?", input.RecordID, flashcardNum).First(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flashcard updated", "data": card})
}

// DeleteFlashcard godoc
// @Summary      Delete a flashcard
// @Tags         Flashcards
// @Produce      json
// @Param        flashcard_num  path   int     true  "Card number within the record"
// @Param        record_id      query  string  true  "Owning record"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /flashcards/{flashcard_num} [delete]
func DeleteFlashcard(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	flashcardNum, err := strconv.Atoi(c.Param("flashcard_num"))
	if err != nil || flashcardNum < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flashcard_num"})
		return
	}

	recordID, err := uuid.Parse(c.Query("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record_id query parameter is required"})
		return
	}

	res := db.Where("record_id = ? AND flashcard_num = ?", recordID, flashcardNum).
		Delete(&models.Flashcard{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flashcard not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Flashcard deleted"})
}
