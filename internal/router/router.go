package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/withyourgoal-dev/withyourgoal/internal/handlers"
	"github.com/withyourgoal-dev/withyourgoal/internal/middleware"
	"github.com/withyourgoal-dev/withyourgoal/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		protected := api.Group("", middleware.AuthMiddleware())
		{
			protected.GET("/category", handlers.ListCategories)
			protected.POST("/category", handlers.CreateCategory)
			protected.DELETE("/category/:id", handlers.DeleteCategory)

			protected.GET("/goals", handlers.ListGoals)
			protected.POST("/goal", handlers.CreateGoal)
			protected.PUT("/goal/:id", handlers.UpdateGoal)
			protected.DELETE("/goal/:id", handlers.DeleteGoal)

			protected.POST("/rule", handlers.CreateRule)
			protected.DELETE("/rule/:goal_id/:index", handlers.DeleteRule)

			protected.POST("/process", handlers.CreateProcess)
			protected.GET("/process/stats", handlers.ProcessStats)
			protected.PUT("/process/:id", handlers.UpdateProcess)
			protected.DELETE("/process/:id", handlers.DeleteProcess)

			protected.GET("/profile", handlers.GetProfile)
			protected.PUT("/profile", handlers.UpdateProfile)
		}
	}

	return r
}
