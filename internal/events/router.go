package events

import (
	"github.com/gin-gonic/gin"
)

// SetupEventRoutes configures the public event browse routes
func SetupEventRoutes(rg *gin.RouterGroup, controller *Controller) {
	events := rg.Group("/events")
	{
		events.GET("", controller.ListUpcoming) // GET /api/v1/events
		events.GET("/:id", controller.GetEvent) // GET /api/v1/events/:id
	}
}
