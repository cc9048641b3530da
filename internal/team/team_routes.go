package team

import (
	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/internal/user"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterTeamRoutes wires the team endpoints onto the API group.
func RegisterTeamRoutes(router *gin.RouterGroup, db *mongo.Database, appConfig *config.Config) {
	repo := NewTeamRepository(db)
	userRepo := user.NewUserRepository(db)
	lbRepo := leaderboard.NewLeaderboardRepository(db)
	controller := NewTeamController(repo, userRepo, lbRepo, appConfig)

	teams := router.Group("/teams")
	{
		teams.GET("", controller.GetAllTeams)
		teams.POST("", controller.CreateTeam)
		teams.GET("/:team_id", controller.GetTeamByID)
		teams.PUT("/:team_id", controller.UpdateTeam)
		teams.PATCH("/:team_id", controller.UpdateTeam)
		teams.DELETE("/:team_id", controller.DeleteTeam)
		teams.GET("/:team_id/members", controller.GetTeamMembers)
		teams.GET("/:team_id/leaderboard", controller.GetTeamLeaderboard)
	}
}
