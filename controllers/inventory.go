package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Inventory(router *gin.Engine) {
	inventory := router.Group("/api/inventory")
	{
		inventory.GET("", authorization.Authorize("inventory", "view"), FetchAllItems)
		inventory.GET("/:id", authorization.Authorize("inventory", "view"), FetchItemByID)
		inventory.POST("", authorization.Authorize("inventory", "create"), CreateItem)
		inventory.PUT("/:id", authorization.Authorize("inventory", "update"), UpdateItemByID)
		inventory.DELETE("/:id", authorization.Authorize("inventory", "delete"), DeleteItemByID)
	}
}

func FetchAllItems(c *gin.Context) {
	items, err := services.FetchAllItems(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

func FetchItemByID(c *gin.Context) {
	item, err := services.FetchItemByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

func CreateItem(c *gin.Context) {
	var item models.InventoryItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreateItem(c, item)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

func UpdateItemByID(c *gin.Context) {
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	updated, err := services.UpdateItemByID(c, c.Param("id"), data)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func DeleteItemByID(c *gin.Context) {
	msg, err := services.DeleteItemByID(c, c.Param("id"))
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(msg))
}
