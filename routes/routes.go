package routes

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MediFlow API is running...")
	})

	//public
	controllers.Auth(r)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.AuthPrivate(r)
	controllers.Dashboard(r)
	controllers.Patient(r)
	controllers.Staff(r)
	controllers.Appointment(r)
	controllers.Billing(r)
	controllers.Inventory(r)
	controllers.Insurance(r)
}
