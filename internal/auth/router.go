package auth

import (
	"cricverse/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers registration, login and token routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", controller.Register)
		authGroup.POST("/login", controller.Login)
		authGroup.POST("/refresh", controller.RefreshToken)

		protected := authGroup.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.PUT("/change-password", controller.ChangePassword)
		}
	}
}
