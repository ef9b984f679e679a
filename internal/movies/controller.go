package movies

import (
	"net/http"

	"cinebook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	GetAllMovies(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllMovies(c *gin.Context) {
	catalog, err := ctrl.service.ListMovies(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load movies")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"movies": catalog})
}
