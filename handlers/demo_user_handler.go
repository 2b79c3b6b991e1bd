package handlers

import (
	"net/http"

	"h3llo-cms/helper"
	"h3llo-cms/models"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

type DemoUserHandler struct {
	demoUserService services.DemoUserService
	httpHelper      *helper.HTTPHelper
}

func NewDemoUserHandler(demoUserService services.DemoUserService, httpHelper *helper.HTTPHelper) *DemoUserHandler {
	return &DemoUserHandler{demoUserService: demoUserService, httpHelper: httpHelper}
}

func (h *DemoUserHandler) RegisterDemoUser(c *gin.Context) {
	var req models.RegisterDemoUserRequest
	if err := h.httpHelper.BindJSON(c, &req); err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	if _, err := h.demoUserService.Register(c.Request.Context(), req); err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "User registration successful."})
}
