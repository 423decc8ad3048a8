package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/models"
)

type BookmarkInput struct {
	UserID  uuid.UUID `json:"user_id" binding:"required"`
	CoverID uuid.UUID `json:"cover_id" binding:"required"`
}

// CreateBookmark godoc
// @Summary      Bookmark a cover
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        input  body  BookmarkInput  true  "Bookmark payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /bookmarks [post]
func CreateBookmark(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input BookmarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and cover_id are required"})
		return
	}

	var existing models.Bookmark
	if err := db.Where("user_id = ? AND cover_id = ?", input.UserID, input.CoverID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Already bookmarked"})
		return
	}

	bookmark := models.Bookmark{
		UserID:  input.UserID,
		CoverID: input.CoverID,
	}

	if err := db.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cover bookmarked", "data": bookmark})
}

// GetBookmarks godoc
// @Summary      List a user's bookmarks
// @Description  Each entry carries the bookmarked cover's display fields
// @Tags         Bookmarks
// @Produce      json
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /bookmarks/{user_id} [get]
func GetBookmarks(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
		return
	}

	var bookmarks []models.Bookmark
	if err := db.Preload("Cover").Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarks": bookmarks})
}

// DeleteBookmark godoc
// @Summary      Remove a bookmark
// @Description  Match-and-delete; 404 when nothing matched
// @Tags         Bookmarks
// @Accept       json
// @Produce      json
// @Param        input  body  BookmarkInput  true  "Bookmark to remove"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /bookmarks [delete]
func DeleteBookmark(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input BookmarkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and cover_id are required"})
		return
	}

	res := db.Where("user_id = ? AND cover_id = ?", input.UserID, input.CoverID).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
