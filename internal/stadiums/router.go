package stadiums

import (
	"github.com/gin-gonic/gin"
)

// SetupStadiumRoutes configures the public stadium browse routes
func SetupStadiumRoutes(rg *gin.RouterGroup, controller *Controller) {
	stadiumGroup := rg.Group("/stadiums")
	{
		stadiumGroup.GET("", controller.ListStadiums)
		stadiumGroup.GET("/:id", controller.GetStadium)
	}
}
