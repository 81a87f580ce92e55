package services

import (
	"errors"
	"net/http/httptest"
	"testing"

	"mediflow/models"
	"mediflow/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CreateStaff(c, models.Staff{
		Name:  "A. Verma",
		Role:  "Janitor",
		Email: "a.verma@mediflow.local",
		Phone: "9990001111",
	})
	assert.True(t, errors.Is(err, util.ErrValidation))
	assert.Equal(t, util.INVALID_STAFF_ROLE, err.Error())
}
