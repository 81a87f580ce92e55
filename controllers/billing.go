package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/models"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Billing(router *gin.Engine) {
	billing := router.Group("/api/billing")
	{
		billing.GET("", authorization.Authorize("billing", "view"), FetchAllInvoices)
		billing.POST("", authorization.Authorize("billing", "create"), CreateInvoice)
		billing.PUT("/:id/pay", authorization.Authorize("billing", "update"), PayInvoice)
	}
}

func FetchAllInvoices(c *gin.Context) {
	invoices, err := services.FetchAllInvoices(c)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func CreateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if err := c.BindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(util.ValidationError(err.Error())))
		return
	}
	created, err := services.CreateInvoice(c, invoice)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

func PayInvoice(c *gin.Context) {
	body := struct {
		PaymentMethod string `json:"paymentMethod"`
	}{}
	// an empty body defaults the method to Cash
	_ = c.ShouldBindJSON(&body)
	invoice, err := services.PayInvoice(c, c.Param("id"), body.PaymentMethod)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, invoice)
}
