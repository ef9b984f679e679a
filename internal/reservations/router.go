package reservations

import (
	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/book", controller.Book) // POST /api/v1/book - Book seats for a showtime

	booking := router.Group("/booking")
	{
		booking.POST("/confirm", controller.Confirm) // POST /api/v1/booking/confirm - Confirm with summary
		booking.POST("/cancel", controller.Cancel)   // POST /api/v1/booking/cancel - Cancel and release
	}
}
