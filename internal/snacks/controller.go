package snacks

import (
	"errors"
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	GetMenu(c *gin.Context)
	OrderSnacks(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetMenu(c *gin.Context) {
	menu, err := ctrl.service.GetMenu(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load snacks")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"snacks": menu})
}

func (ctrl *controller) OrderSnacks(c *gin.Context) {
	var req OrderSnacksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	orders, err := ctrl.service.Order(c.Request.Context(), req)
	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			response.Error(c, http.StatusConflict, stockErr.Error())
		case errors.Is(err, ErrReservationNotFound):
			response.Error(c, http.StatusNotFound, "reservation not found")
		case errors.Is(err, ErrSnackNotFound):
			response.Error(c, http.StatusNotFound, "snack item not found")
		case errors.Is(err, ErrInvalidID):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNoEmployees):
			response.Error(c, http.StatusInternalServerError, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "failed to place snack order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}
