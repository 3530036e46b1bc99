package routes

import (
	"todo-planner-api/internal/handlers"
	"todo-planner-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	ginRouter := gin.Default()

	// CORS middleware (for frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo planner API is running",
		})
	})

	// Public routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		api.POST("/signup", handlers.SignUp)
		api.POST("/login", handlers.Login)
	}

	// Protected routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		protectedRoutes.GET("/me", handlers.Me)

		// View projections
		protectedRoutes.GET("/views/projects", handlers.ProjectView)
		protectedRoutes.GET("/views/tasks", handlers.TaskView)
		protectedRoutes.GET("/views/week", handlers.WeekView)
		protectedRoutes.GET("/archive", handlers.ArchiveView)
		protectedRoutes.POST("/banner/dismiss", handlers.DismissBanner)

		// Project endpoints
		protectedRoutes.POST("/projects", handlers.CreateProject)
		protectedRoutes.PATCH("/projects/:id", handlers.UpdateProject)
		protectedRoutes.POST("/projects/:id/archive", handlers.ArchiveProject)
		protectedRoutes.POST("/projects/:id/restore", handlers.RestoreProject)
		protectedRoutes.DELETE("/projects/:id", handlers.PurgeProject)

		// Task endpoints
		protectedRoutes.POST("/tasks", handlers.CreateTask)
		protectedRoutes.PATCH("/tasks/:id", handlers.UpdateTask)
		protectedRoutes.POST("/tasks/:id/toggle", handlers.ToggleTask)
		protectedRoutes.POST("/tasks/:id/archive", handlers.ArchiveTask)
		protectedRoutes.POST("/tasks/:id/restore", handlers.RestoreTask)
		protectedRoutes.DELETE("/tasks/:id", handlers.PurgeTask)

		// Week assignment endpoints
		protectedRoutes.POST("/week/assignments", handlers.AssignTask)
		protectedRoutes.DELETE("/week/assignments/:id", handlers.RemoveAssignment)
		protectedRoutes.POST("/week/tasks", handlers.CreateTaskOnDay)
		protectedRoutes.POST("/week/clear", handlers.ClearWeek)

		// Drag gesture endpoints
		protectedRoutes.POST("/drag/start", handlers.DragStart)
		protectedRoutes.POST("/drag/hover", handlers.DragHover)
		protectedRoutes.POST("/drag/drop", handlers.DragDrop)
		protectedRoutes.POST("/drag/cancel", handlers.DragCancel)

		// Realtime change events
		protectedRoutes.GET("/ws", handlers.WebSocketHandler)
	}

	return ginRouter
}
