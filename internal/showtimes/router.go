package showtimes

import (
	"github.com/gin-gonic/gin"
)

func SetupShowtimeRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/showtimings", controller.GetShowtimings) // GET /api/v1/showtimings?movieId= - Shows for a movie
	router.GET("/seats", controller.GetSeatMap)           // GET /api/v1/seats?showId= - Seat grid with booked flags
}
