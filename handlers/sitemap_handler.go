package handlers

import (
	"net/http"

	"h3llo-cms/helper"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

const sitemapCacheControl = "public, s-maxage=43200, stale-while-revalidate=86400"

type SitemapHandler struct {
	sitemapService services.SitemapService
	httpHelper     *helper.HTTPHelper
}

func NewSitemapHandler(sitemapService services.SitemapService, httpHelper *helper.HTTPHelper) *SitemapHandler {
	return &SitemapHandler{sitemapService: sitemapService, httpHelper: httpHelper}
}

func (h *SitemapHandler) GetSitemap(c *gin.Context) {
	body, err := h.sitemapService.Generate(c.Request.Context())
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.Header("Cache-Control", sitemapCacheControl)
	c.Data(http.StatusOK, "application/xml", body)
}
