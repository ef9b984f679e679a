package snacks

import (
	"github.com/gin-gonic/gin"
)

func SetupSnackRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/snacks", controller.GetMenu)            // GET /api/v1/snacks - Menu with stock flags
	router.POST("/snacks/order", controller.OrderSnacks) // POST /api/v1/snacks/order - Order a batch
}
