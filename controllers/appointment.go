package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Appointment(router *gin.Engine) {
	appointment := router.Group("/api/appointments")
	{
		appointment.GET("", authorization.Authorize("appointments", "view"), FetchAllAppointments)
		appointment.GET("/:id", authorization.Authorize("appointments", "view"), FetchAppointmentByID)
		appointment.POST("", authorization.Authorize("appointments", "create"), CreateAppointment)
		appointment.PUT("/:id", authorization.Authorize("appointments", "update"), UpdateAppointmentByID)
		appointment.PUT("/:id/remind", authorization.Authorize("appointments", "update"), SendReminder)
		appointment.PUT("/:id/complete", authorization.Authorize("appointments", "update"), CompleteVisit)
	}
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func FetchAppointmentByID(c *gin.Context) {
	appointment, err := services.FetchAppointmentByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func CreateAppointment(c *gin.Context) {
	var appt models.Appointment
	if err := c.BindJSON(&appt); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreateAppointment(c, appt)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

func UpdateAppointmentByID(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	updated, err := services.UpdateAppointmentByID(c, c.Param("id"), data)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func SendReminder(c *gin.Context) {
	appointment, err := services.SendReminder(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, appointment)
}

func CompleteVisit(c *gin.Context) {
	var input services.CompleteVisitInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	result, err := services.CompleteVisit(c, c.Param("id"), input)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, result)
}
