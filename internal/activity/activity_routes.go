package activity

import (
	"github.com/octofit-app/octofit-api/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterActivityRoutes wires the activity endpoints onto the API group.
func RegisterActivityRoutes(router *gin.RouterGroup, db *mongo.Database, appConfig *config.Config) {
	repo := NewActivityRepository(db)
	controller := NewActivityController(repo, appConfig)

	activities := router.Group("/activities")
	{
		activities.GET("", controller.GetAllActivities)
		activities.POST("", controller.CreateActivity)
		activities.GET("/by-user", controller.GetByUser)
		activities.GET("/by-type", controller.GetByType)
		activities.GET("/:activity_id", controller.GetActivityByID)
		activities.PUT("/:activity_id", controller.UpdateActivity)
		activities.PATCH("/:activity_id", controller.UpdateActivity)
		activities.DELETE("/:activity_id", controller.DeleteActivity)
	}
}
