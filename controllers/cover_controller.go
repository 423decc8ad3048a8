package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/models"
)

type CreateCoverInput struct {
	RecordID    uuid.UUID `json:"record_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
}

type UpdateCoverInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// GetCovers godoc
// @Summary      List covers
// @Description  Optional exact filter by record_id and case-insensitive title search
// @Tags         Cover
// @Produce      json
// @Param        record_id  query  string  false  "Owning record"
// @Param        query      query  string  false  "Title substring"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /cover [get]
func GetCovers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	q := db.Model(&models.Cover{})
	if recordID := c.Query("record_id"); recordID != "" {
		q = q.Where("record_id = ?", recordID)
	}
	if query := c.Query("query"); query != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on Postgres
		// and the sqlite test database.
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+query+"%")
	}

	var covers []models.Cover
	if err := q.Find(&covers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": covers})
}

// CreateCover godoc
// @Summary      Create a cover
// @Tags         Cover
// @Accept       json
// @Produce      json
// @Param        input  body  CreateCoverInput  true  "Cover payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /cover [post]
func CreateCover(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input CreateCoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "record_id and title are required"})
		return
	}

	cover := models.Cover{
		RecordID:    input.RecordID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := db.Create(&cover).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cover created successfully", "data": cover})
}

// UpdateCover godoc
// @Summary      Overwrite a cover
// @Description  Full-field overwrite: fields absent from the payload become null
// @Tags         Cover
// @Accept       json
// @Produce      json
// @Param        record_id  path  string            true  "Owning record"
// @Param        input      body  UpdateCoverInput  true  "Replacement fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /cover/{record_id} [put]
func UpdateCover(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
		return
	}

	var input UpdateCoverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Overwrite semantics, unlike the flashcard patch route.
	res := db.Model(&models.Cover{}).Where("record_id = ?", recordID).Updates(map[string]interface{}{
		"title":       input.Title,
		"description": input.Description,
	})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cover not found"})
		return
	}

	var cover models.Cover
	if err := db.Where("record_id = ?", recordID).First(&cover).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cover updated successfully", "data": cover})
}

// DeleteCover godoc
// @Summary      Delete a cover
// @Tags         Cover
// @Produce      json
// @Param        record_id  path  string  true  "Owning record"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /cover/{record_id} [delete]
func DeleteCover(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid record_id"})
		return
	}

	if err := db.Where("record_id = ?", recordID).Delete(&models.Cover{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cover deleted successfully"})
}
