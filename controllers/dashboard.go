package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Dashboard(router *gin.Engine) {
	router.GET("/api/dashboard/stats", authorization.Authorize("dashboard", "view"), FetchDashboardStats)
}

func FetchDashboardStats(c *gin.Context) {
	stats, err := services.FetchDashboardStats(c, c.GetString("role"), c.GetString("userId"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
