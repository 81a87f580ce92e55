package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Insurance(router *gin.Engine) {
	insurance := router.Group("/api/insurance")
	{
		insurance.GET("", authorization.Authorize("insurance", "view"), FetchAllClaims)
		insurance.POST("", authorization.Authorize("insurance", "create"), CreateClaim)
	}
}

func FetchAllClaims(c *gin.Context) {
	claims, err := services.FetchAllClaims(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, claims)
}

func CreateClaim(c *gin.Context) {
	var claim models.Claim
	if err := c.BindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreateClaim(c, claim)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}
