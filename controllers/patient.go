package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Patient(router *gin.Engine) {
	patient := router.Group("/api/patients")
	{
		patient.GET("", authorization.Authorize("patients", "view"), FetchAllPatients)
		patient.GET("/:id", authorization.Authorize("patients", "view"), FetchPatientByID)
		patient.POST("", authorization.Authorize("patients", "create"), CreatePatient)
		patient.PUT("/:id", authorization.Authorize("patients", "update"), UpdatePatientByID)
		patient.DELETE("/:id", authorization.Authorize("patients", "delete"), DeletePatientByID)
	}
}

func FetchAllPatients(c *gin.Context) {
	patients, err := services.FetchAllPatients(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, patients)
}

func FetchPatientByID(c *gin.Context) {
	patient, err := services.FetchPatientByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, patient)
}

func CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.BindJSON(&patient); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreatePatient(c, patient)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

func UpdatePatientByID(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	updated, err := services.UpdatePatientByID(c, c.Param("id"), data)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeletePatientByID(c *gin.Context) {
	msg, err := services.DeletePatientByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(msg))
}
