package customers

import (
	"github.com/gin-gonic/gin"
)

func SetupCustomerRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/signup", controller.Signup) // POST /api/v1/signup - Create an account
	router.POST("/login", controller.Login)   // POST /api/v1/login - Verify credentials
}
