package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/octofit-app/octofit-api/config"
	"github.com/octofit-app/octofit-api/internal/activity"
	"github.com/octofit-app/octofit-api/internal/leaderboard"
	"github.com/octofit-app/octofit-api/internal/middleware"
	"github.com/octofit-app/octofit-api/internal/team"
	"github.com/octofit-app/octofit-api/internal/user"
	"github.com/octofit-app/octofit-api/internal/workout"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT
	r.Use(middleware.Metrics())

	cfg := config.GetConfig()
	db := config.DB

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "OctoFit Tracker API",
			"docs":    "/swagger/index.html",
		})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api")
	user.RegisterUserRoutes(api, db, cfg)
	team.RegisterTeamRoutes(api, db, cfg)
	activity.RegisterActivityRoutes(api, db, cfg)
	workout.RegisterWorkoutRoutes(api, db, cfg)
	leaderboard.RegisterLeaderboardRoutes(api, db, cfg)

	return r
}
