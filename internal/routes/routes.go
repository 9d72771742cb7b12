package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	taskHandler *handlers.TaskHandler,
	reportHandler *handlers.ReportHandler,
	jwtSecret []byte,
) *gin.Engine {

	// ---- public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	// TASKS (time accounting only; general CRUD lives elsewhere)
	tasks := r.Group("/tasks")
	{
		tasks.PUT("/:id/time", taskHandler.LogTaskTime)
		tasks.GET("/:id/time", taskHandler.GetTaskTime)
	}
	subtasks := r.Group("/subtasks")
	{
		subtasks.PUT("/:id/time", taskHandler.LogSubtaskTime)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/:scope/:id", reportHandler.Generate)
	}

	return r
}
