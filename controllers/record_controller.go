package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/models"
)

// ====== INPUT STRUCTS ======

type CreateRecordInput struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	Category string    `json:"category" binding:"required"`
	Status   string    `json:"status" binding:"required,oneof=Private Public"`
}

type QuestionInput struct {
	Question string  `json:"question" binding:"required"`
	Answer   string  `json:"answer" binding:"required"`
	Hint     *string `json:"hint"`
}

type CreateFullRecordInput struct {
	Status      string          `json:"status" binding:"required,oneof=Private Public"`
	Category    string          `json:"category" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Questions   []QuestionInput `json:"questions" binding:"required,min=1,dive"`
}

type QuestionPatchInput struct {
	FlashcardNum int     `json:"flashcard_num" binding:"required,min=1"`
	Question     *string `json:"question"`
	Answer       *string `json:"answer"`
	Hint         *string `json:"hint"`
}

type UpdateFullRecordInput struct {
	Status      *string              `json:"status" binding:"omitempty,oneof=Private Public"`
	Category    *string              `json:"category"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Questions   []QuestionPatchInput `json:"questions" binding:"omitempty,dive"`
}

// ====== HANDLERS ======

// CreateRecord godoc
// @Summary      Create a record
// @Tags         Record
// @Accept       json
// @Produce      json
// @Param        input  body  CreateRecordInput  true  "Record payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /records [post]
func CreateRecord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, category, and status are required and status must be \"Private\" or \"Public\""})
		return
	}

	record := models.Record{
		UserID:   input.UserID,
		Category: input.Category,
		Status:   models.RecordStatus(input.Status),
	}

	if err := db.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Record created successfully", "data": record})
}

// GetRecords godoc
// @Summary      List a user's records
// @Tags         Record
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /records/{user_id} [get]
func GetRecords(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}

	var records []models.Record
	if err := db.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// CreateFullRecord godoc
// @Summary      Create a record with cover and flashcards
// @Description  Inserts the record, its cover and its numbered flashcards in one transaction; nothing is kept on failure
// @Tags         Record
// @Accept       json
// @Produce      json
// @Param        user_id  path  string                 true  "User ID"
// @Param        input    body  CreateFullRecordInput  true  "Composite payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /records/full/{user_id} [post]
func CreateFullRecord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}

	var input CreateFullRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status, category, title, description, and questions array are required"})
		return
	}

	var record models.Record
	var cover models.Cover
	var flashcards []models.Flashcard

	err = db.Transaction(func(tx *gorm.DB) error {
		record = models.Record{
			UserID:   userID,
			Category: input.Category,
			Status:   models.RecordStatus(input.Status),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		cover = models.Cover{
			RecordID:    record.ID,
			Title:       input.Title,
			Description: &input.Description,
		}
		if err := tx.Create(&cover).Error; err != nil {
			return err
		}

		flashcards = make([]models.Flashcard, 0, len(input.Questions))
		for i, q := range input.Questions {
			flashcards = append(flashcards, models.Flashcard{
				RecordID:     record.ID,
				FlashcardNum: i + 1,
				Question:     q.Question,
				Answer:       q.Answer,
				Hint:         q.Hint,
			})
		}
		return tx.Create(&flashcards).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Record, Cover, and Flashcards created successfully",
		"record":     record,
		"cover":      cover,
		"flashcards": flashcards,
	})
}

// UpdateFullRecord godoc
// @Summary      Patch a record, its cover and individual flashcards
// @Description  Only supplied fields change; flashcards are addressed by flashcard_num; all updates share one transaction
// @Tags         Record
// @Accept       json
// @Produce      json
// @Param        record_id  path  string                 true  "Record ID"
// @Param        input      body  UpdateFullRecordInput  true  "Partial payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /records/full/{record_id} [patch]
func UpdateFullRecord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
		return
	}

	var input UpdateFullRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be either \"Private\" or \"Public\""})
		return
	}

	if input.Status == nil && input.Category == nil && input.Title == nil &&
		input.Description == nil && len(input.Questions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field is required for update"})
		return
	}

	var updatedFlashcards []models.Flashcard
	status := http.StatusInternalServerError

	err = db.Transaction(func(tx *gorm.DB) error {
		recordUpdates := map[string]interface{}{}
		if input.Status != nil {
			recordUpdates["status"] = *input.Status
		}
		if input.Category != nil {
			recordUpdates["category"] = *input.Category
		}
		if len(recordUpdates) > 0 {
			if err := tx.Model(&models.Record{}).Where("id = ?", recordID).Updates(recordUpdates).Error; err != nil {
				return err
			}
		}

		coverUpdates := map[string]interface{}{}
		if input.Title != nil {
			coverUpdates["title"] = *input.Title
		}
		if input.Description != nil {
			coverUpdates["description"] = *input.Description
		}
		if len(coverUpdates) > 0 {
			if err := tx.Model(&models.Cover{}).Where("record_id = ?", recordID).Updates(coverUpdates).Error; err != nil {
				return err
			}
		}

		updatedFlashcards = []models.Flashcard{}
		for _, q := range input.Questions {
			cardUpdates := map[string]interface{}{}
			if q.Question != nil {
				cardUpdates["question"] = *q.Question
			}
			if q.Answer != nil {
				cardUpdates["answer"] = *q.Answer
			}
			if q.Hint != nil {
				cardUpdates["hint"] = *q.Hint
			}
			if len(cardUpdates) == 0 {
				continue
			}

			res := tx.Model(&models.Flashcard{}).
				Where("record_id = ? AND flashcard_num = ?", recordID, q.FlashcardNum).
				Updates(cardUpdates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				status = http.StatusNotFound
				return gorm.ErrRecordNotFound
			}

			var card models.Flashcard
			if err := tx.Where("record_id = ? AND flashcard_num = ?", recordID, q.FlashcardNum).First(&card).Error; err != nil {
				return err
			}
			updatedFlashcards = append(updatedFlashcards, card)
		}
		return nil
	})
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Record, Cover, and Flashcards updated successfully",
		"updatedFlashcards": updatedFlashcards,
	})
}

// DeleteRecord godoc
// @Summary      Delete a record and everything it owns
// @Tags         Record
// @Produce      json
// @Param        record_id  path  string  true  "Record ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /records/{record_id} [delete]
func DeleteRecord(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
		return
	}

	// Children are removed explicitly; the store is not trusted to cascade.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ?", recordID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("record_id = ?", recordID).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		var cover models.Cover
		if err := tx.Where("record_id = ?", recordID).First(&cover).Error; err == nil {
			if err := tx.Where("cover_id = ?", cover.ID).Delete(&models.Bookmark{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("record_id = ?", recordID).Delete(&models.Cover{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", recordID).Delete(&models.Record{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
