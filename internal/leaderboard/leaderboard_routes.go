package leaderboard

import (
	"github.com/octofit-app/octofit-api/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterLeaderboardRoutes wires the leaderboard endpoints onto the API group.
func RegisterLeaderboardRoutes(router *gin.RouterGroup, db *mongo.Database, appConfig *config.Config) {
	repo := NewLeaderboardRepository(db)
	controller := NewLeaderboardController(repo, appConfig)

	entries := router.Group("/leaderboard")
	{
		entries.GET("", controller.GetLeaderboard)
		entries.POST("", controller.CreateEntry)
		entries.GET("/top", controller.GetTop)
		entries.GET("/by-team", controller.GetByTeam)
		entries.POST("/rebuild", controller.RebuildLeaderboard)
		entries.GET("/:entry_id", controller.GetEntryByID)
		entries.PUT("/:entry_id", controller.UpdateEntry)
		entries.PATCH("/:entry_id", controller.UpdateEntry)
		entries.DELETE("/:entry_id", controller.DeleteEntry)
	}
}
