package handlers

import (
	"net/http"

	"h3llo-cms/helper"
	"h3llo-cms/models"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	httpHelper  *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, httpHelper *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, httpHelper: httpHelper}
}

func (h *PostHandler) GeneratePost(c *gin.Context) {
	var req models.GeneratePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.httpHelper.SendError(c, models.ErrorValidation{Message: "Invalid request body. Expecting JSON."})
		return
	}

	text, err := h.postService.GeneratePost(c.Request.Context(), req.UserMessage)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": text})
}
