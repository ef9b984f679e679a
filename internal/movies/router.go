package movies

import (
	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/movies", controller.GetAllMovies) // GET /api/v1/movies - Browse the catalog
}
