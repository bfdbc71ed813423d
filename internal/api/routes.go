package api

import (
	"net/http"

	"github.com/mentab/exercise-tracker/internal/service"
	"github.com/mentab/exercise-tracker/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the middleware chain and the five endpoints.
func SetupRoutes(router *gin.Engine, trackerService service.TrackerService) {
	router.Use(RequestID())
	router.Use(cors.Default())
	router.Use(ErrorHandler())

	trackerHandler := NewTrackerHandler(trackerService)

	// Landing page
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.Index)
	})

	exerciseGroup := router.Group("/api/exercise")
	{
		exerciseGroup.POST("/new-user", trackerHandler.CreateUser)
		exerciseGroup.GET("/users", trackerHandler.ListUsers)
		exerciseGroup.POST("/add", trackerHandler.AddExercise)
		exerciseGroup.GET("/log", trackerHandler.GetLog)
	}

	// Unmatched paths are hard failures; the ErrorHandler middleware
	// renders them as plain text with a real status code.
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(&HTTPError{Status: http.StatusNotFound, Message: "not found"})
	})
}
