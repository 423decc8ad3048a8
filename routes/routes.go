package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/cardly-app/cardly-backend/controllers"
	"github.com/cardly-app/cardly-backend/middleware"
)

// SetupRouter registers every resource group. All groups share the injected DB
// handle; there is no auth middleware — callers resubmit user_id per request.
func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.Use(middleware.DBMiddleware(db))
		auth.POST("/register", controllers.Register)
		auth.GET("/verify-email", controllers.VerifyEmail)
		auth.POST("/login", controllers.Login)
	}

	records := r.Group("/records")
	{
		records.Use(middleware.DBMiddleware(db))
		records.POST("", controllers.CreateRecord)
		records.POST("/full/:user_id", controllers.CreateFullRecord)
		records.PATCH("/full/:record_id", controllers.UpdateFullRecord)
		records.GET("/:user_id", controllers.GetRecords)
		records.DELETE("/:record_id", controllers.DeleteRecord)
	}

	cover := r.Group("/cover")
	{
		cover.Use(middleware.DBMiddleware(db))
		cover.GET("", controllers.GetCovers)
		cover.POST("", controllers.CreateCover)
		cover.PUT("/:record_id", controllers.UpdateCover)
		cover.DELETE("/:record_id", controllers.DeleteCover)
	}

	flashcards := r.Group("/flashcards")
	{
		flashcards.Use(middleware.DBMiddleware(db))
		flashcards.GET("", controllers.GetFlashcards)
		flashcards.POST("", controllers.CreateFlashcard)
		flashcards.PATCH("/:flashcard_num", controllers.PatchFlashcard)
		flashcards.DELETE("/:flashcard_num", controllers.DeleteFlashcard)
	}

	bookmarks := r.Group("/bookmarks")
	{
		bookmarks.Use(middleware.DBMiddleware(db))
		bookmarks.POST("", controllers.CreateBookmark)
		bookmarks.GET("/:user_id", controllers.GetBookmarks)
		bookmarks.DELETE("", controllers.DeleteBookmark)
	}

	ratings := r.Group("/ratings")
	{
		ratings.Use(middleware.DBMiddleware(db))
		ratings.POST("", controllers.UpsertRating)
		ratings.GET("/average/:record_id", controllers.GetAverageRating)
		ratings.DELETE("", controllers.DeleteRating)
	}

	review := r.Group("/review")
	{
		review.Use(middleware.DBMiddleware(db))
		review.GET("/:record_id", controllers.GetReview)
	}

	return r
}
