package workout

import (
	"github.com/octofit-app/octofit-api/config"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterWorkoutRoutes wires the workout endpoints onto the API group.
func RegisterWorkoutRoutes(router *gin.RouterGroup, db *mongo.Database, appConfig *config.Config) {
	repo := NewWorkoutRepository(db)
	controller := NewWorkoutController(repo, appConfig)

	workouts := router.Group("/workouts")
	{
		workouts.GET("", controller.GetAllWorkouts)
		workouts.POST("", controller.CreateWorkout)
		workouts.GET("/by-difficulty", controller.GetByDifficulty)
		workouts.GET("/:workout_id", controller.GetWorkoutByID)
		workouts.PUT("/:workout_id", controller.UpdateWorkout)
		workouts.PATCH("/:workout_id", controller.UpdateWorkout)
		workouts.DELETE("/:workout_id", controller.DeleteWorkout)
	}
}
