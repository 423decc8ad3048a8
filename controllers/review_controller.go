package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/models"
)

// GetReview godoc
// @Summary      Fetch a record's cards for study
// @Description  Flashcards in number order plus the record's average rating
// @Tags         Review
// @Produce      json
// @Param        record_id  path  string  true  "Record ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /review/{record_id} [get]
func GetReview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
		return
	}

	var flashcards []models.Flashcard
	if err := db.Where("record_id = ?", recordID).
		Order("flashcard_num ASC").
		Find(&flashcards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var values []int
	if err := db.Model(&models.Rating{}).Where("record_id = ?", recordID).Pluck("value", &values).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record_id":      recordID,
		"flashcards":     flashcards,
		"average_rating": formatAverage(values),
		"count":          len(flashcards),
	})
}
