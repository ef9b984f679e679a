package reservations

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	Book(c *gin.Context)
	Confirm(c *gin.Context)
	Cancel(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ticket, err := ctrl.service.Book(c.Request.Context(), req)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ticket": ticket})
}

func (ctrl *controller) Confirm(c *gin.Context) {
	var req ReservationRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ticket, err := ctrl.service.Confirm(c.Request.Context(), req.ReservationID)
	if err != nil {
		respondReservationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ticket": ticket})
}

func (ctrl *controller) Cancel(c *gin.Context) {
	var req ReservationRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := ctrl.service.Cancel(c.Request.Context(), req.ReservationID); err != nil {
		respondReservationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "reservation cancelled successfully"})
}

func respondReservationError(c *gin.Context, err error) {
	var capErr *CapacityExhaustedError
	switch {
	case errors.As(err, &capErr):
		response.Error(c, http.StatusConflict, capErr.Error())
	case errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "reservation not found")
	case errors.Is(err, ErrShowtimeNotFound):
		response.Error(c, http.StatusNotFound, "showtime not found")
	case errors.Is(err, ErrMovieMismatch), errors.Is(err, ErrTooManySeats), errors.Is(err, ErrInvalidID):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "booking operation failed")
	}
}
