package showtimes

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	GetShowtimings(c *gin.Context)
	GetSeatMap(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetShowtimings(c *gin.Context) {
	movieIDStr := c.Query("movieId")
	if movieIDStr == "" {
		response.Error(c, http.StatusBadRequest, "movieId query parameter is required")
		return
	}

	movieID, err := uuid.Parse(movieIDStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid movieId")
		return
	}

	showTimings, err := ctrl.service.GetShowtimings(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load show timings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"showTimings": showTimings})
}

func (ctrl *controller) GetSeatMap(c *gin.Context) {
	showIDStr := c.Query("showId")
	if showIDStr == "" {
		response.Error(c, http.StatusBadRequest, "showId query parameter is required")
		return
	}

	showID, err := uuid.Parse(showIDStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid showId")
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), showID)
	if err != nil {
		if errors.Is(err, ErrShowtimeNotFound) {
			response.Error(c, http.StatusNotFound, "showtime not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "failed to load seat map")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"showId":      seatMap.ShowID,
		"screenNo":    seatMap.ScreenNo,
		"rows":        seatMap.Rows,
		"seatsPerRow": seatMap.SeatsPerRow,
		"seats":       seatMap.Seats,
	})
}
