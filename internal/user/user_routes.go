package user

import (
	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/activity"
	"github.com/octofit-app/octofit-api/internal/leaderboard"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterUserRoutes wires the user endpoints onto the API group.
func RegisterUserRoutes(router *gin.RouterGroup, db *mongo.Database, appConfig *config.Config) {
	repo := NewUserRepository(db)
	activityRepo := activity.NewActivityRepository(db)
	statsRepo := leaderboard.NewLeaderboardRepository(db)
	controller := NewUserController(repo, activityRepo, statsRepo, appConfig)

	users := router.Group("/users")
	{
		users.GET("", controller.GetAllUsers)
		users.POST("", controller.CreateUser)
		users.GET("/:user_id", controller.GetUserByID)
		users.PUT("/:user_id", controller.UpdateUser)
		users.PATCH("/:user_id", controller.UpdateUser)
		users.DELETE("/:user_id", controller.DeleteUser)
		users.GET("/:user_id/activities", controller.GetUserActivities)
		users.GET("/:user_id/stats", controller.GetUserStats)
	}
}
