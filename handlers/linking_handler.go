package handlers

import (
	"net/http"
	"strconv"

	"h3llo-cms/helper"
	"h3llo-cms/models"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

type LinkingHandler struct {
	linkingService services.LinkingService
	httpHelper     *helper.HTTPHelper
}

func NewLinkingHandler(linkingService services.LinkingService, httpHelper *helper.HTTPHelper) *LinkingHandler {
	return &LinkingHandler{linkingService: linkingService, httpHelper: httpHelper}
}

func (h *LinkingHandler) GetLinkingCandidates(c *gin.Context) {
	var query models.LinkingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.httpHelper.SendError(c, models.ErrorValidation{Message: "Invalid query parameters", Details: err.Error()})
		return
	}

	if raw := c.Query("limit"); raw != "" {
		// A non-numeric limit is rejected by the service's range check
		limit, err := strconv.Atoi(raw)
		if err != nil {
			limit = 0
		}
		query.Limit = &limit
	}

	candidates, err := h.linkingService.FindLinkingCandidates(c.Request.Context(), query)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, candidates)
}
