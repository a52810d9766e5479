package seats

import (
	"cricverse/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSeatRoutes configures seat inventory and availability routes
func SetupSeatRoutes(rg *gin.RouterGroup, controller *Controller) {
	seatGroup := rg.Group("/seats")
	{
		seatGroup.GET("/:id", controller.GetSeat)

		admin := seatGroup.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("", controller.CreateSeats)
			admin.PATCH("/:id", controller.UpdateSeat)
		}
	}

	// availability rides under the events browse surface
	rg.GET("/events/:id/availability", controller.GetEventAvailability)
}
