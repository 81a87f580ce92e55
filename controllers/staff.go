package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Staff(router *gin.Engine) {
	staff := router.Group("/api/staff")
	{
		staff.GET("", authorization.Authorize("staff", "view"), FetchAllStaff)
		staff.GET("/:id", authorization.Authorize("staff", "view"), FetchStaffByID)
		staff.POST("", authorization.Authorize("staff", "create"), CreateStaff)
		staff.PUT("/:id", authorization.Authorize("staff", "update"), UpdateStaffByID)
	}
}

func FetchAllStaff(c *gin.Context) {
	staff, err := services.FetchAllStaff(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, staff)
}

func FetchStaffByID(c *gin.Context) {
	member, err := services.FetchStaffByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, member)
}

func CreateStaff(c *gin.Context) {
	var member models.Staff
	if err := c.BindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreateStaff(c, member)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

func UpdateStaffByID(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	updated, err := services.UpdateStaffByID(c, c.Param("id"), data)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}
