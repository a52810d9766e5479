package bookings

import (
	"cricverse/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the booking routes. Everything here
// requires an authenticated customer.
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookingGroup := rg.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuth())
	{
		bookingGroup.POST("/seat", controller.BookSeat)
		bookingGroup.POST("/orders", controller.CreatePaymentOrder)
		bookingGroup.POST("/capture", controller.CapturePayment)
		bookingGroup.GET("", controller.GetMyBookings)
		bookingGroup.GET("/:id", controller.GetBooking)
	}
}
