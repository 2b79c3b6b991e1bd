package handlers

import (
	"net/http"

	"h3llo-cms/helper"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	signupService services.SignupService
	httpHelper    *helper.HTTPHelper
}

func NewSignupHandler(signupService services.SignupService, httpHelper *helper.HTTPHelper) *SignupHandler {
	return &SignupHandler{signupService: signupService, httpHelper: httpHelper}
}

func (h *SignupHandler) GetSheetCount(c *gin.Context) {
	count, err := h.signupService.Count(c.Request.Context())
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
