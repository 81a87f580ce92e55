package controllers

import (
	"net/http"

	"mediflow/config/authorization"
	"mediflow/services"
	"mediflow/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	router.POST("/api/auth/register", Register)
	router.POST("/api/auth/login", Login)
}

// AuthPrivate registers the auth routes that sit behind JWTAuth.
func AuthPrivate(router *gin.Engine) {
	router.PUT("/api/auth/password", UpdatePassword)
	router.GET("/api/auth/policy", FetchPolicy)
}

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.Register(c, input)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.Login(c, input)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func UpdatePassword(c *gin.Context) {
	var input services.PasswordInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdatePassword(c, input)
	if err != nil {
		c.JSON(util.HTTPStatus(err), util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.MessageResponse(msg))
}

// FetchPolicy serves the capability table so the client gates its views with
// the same rules the server enforces.
func FetchPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, authorization.Policy)
}
