package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cardly-app/cardly-backend/models"
)

type RatingInput struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	RecordID uuid.UUID `json:"record_id" binding:"required"`
	Value    int       `json:"value" binding:"required,min=1,max=5"`
}

type DeleteRatingInput struct {
	UserID   uuid.UUID `json:"user_id" binding:"required"`
	RecordID uuid.UUID `json:"record_id" binding:"required"`
}

// UpsertRating godoc
// @Summary      Submit or change a rating
// @Description  One rating per (user, record); a second submission replaces the value via an atomic ON CONFLICT upsert
// @Tags         Ratings
// @Accept       json
// @Produce      json
// @Param        input  body  RatingInput  true  "Rating payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /ratings [post]
func UpsertRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, record_id, and value are required and value must be between 1 and 5"})
		return
	}

	rating := models.Rating{
		UserID:   input.UserID,
		RecordID: input.RecordID,
		Value:    input.Value,
	}

	// The store resolves the insert-or-update against the (user_id, record_id)
	// unique index; no lookup-then-branch in the handler.
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var saved models.Rating
	if err := db.Where("user_id = ? AND record_id = ?", input.UserID, input.RecordID).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully", "data": saved})
}

// GetAverageRating godoc
// @Summary      Average rating of a record
// @Description  Returns the literal string "No ratings yet" instead of a number when the record is unrated
// @Tags         Ratings
// @Produce      json
// @Param        record_id  path  string  true  "Record ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /ratings/average/{record_id} [get]
func GetAverageRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	recordID := c.Param("record_id")

	var values []int
	if err := db.Model(&models.Rating{}).Where("record_id = ?", recordID).Pluck("value", &values).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record_id":      recordID,
		"average_rating": formatAverage(values),
		"count":          len(values),
	})
}

// DeleteRating godoc
// @Summary      Remove a rating
// @Tags         Ratings
// @Accept       json
// @Produce      json
// @Param        input  body  DeleteRatingInput  true  "Rating to remove"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /ratings [delete]
func DeleteRating(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input DeleteRatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and record_id are required"})
		return
	}

	res := db.Where("user_id = ? AND record_id = ?", input.UserID, input.RecordID).
		Delete(&models.Rating{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating removed"})
}

// formatAverage renders the arithmetic mean with two decimals, or the sentinel
// callers special-case when the record has no ratings.
func formatAverage(values []int) string {
	if len(values) == 0 {
		return "No ratings yet"
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(len(values)))
}
