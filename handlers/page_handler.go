package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"h3llo-cms/helper"
	"h3llo-cms/models"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

const (
	pageCacheControl = "public, s-maxage=300, stale-while-revalidate=600"
	htmlContentType  = "text/html; charset=utf-8"
)

const notFoundPage = `<!DOCTYPE html><html lang="da"><head><meta charset="UTF-8"><title>404 - Siden blev ikke fundet</title><link rel="stylesheet" href="/style.css"></head><body><main role="main" style="text-align:center; padding: 50px 20px;"><h1>404 - Artiklen blev ikke fundet</h1><p>Beklager, vi kunne ikke finde den artikel, du ledte efter.</p><a href="/articles.html" class="btn btn-primary">Se alle artikler</a></main><footer class="site-footer" role="contentinfo"><p>© %d H3LLO ApS. Alle rettigheder forbeholdes.</p></footer></body></html>`

const serverErrorPage = `<!DOCTYPE html><html lang="da"><head><meta charset="UTF-8"><title>500 - Intern Server Fejl</title><link rel="stylesheet" href="/style.css"></head><body><main role="main" style="text-align:center; padding: 50px 20px;"><h1>500 - Intern Server Fejl</h1><p>Der opstod en teknisk fejl på serveren. Prøv venligst igen senere.</p></main><footer class="site-footer" role="contentinfo"><p>© %d H3LLO ApS. Alle rettigheder forbeholdes.</p></footer></body></html>`

type PageHandler struct {
	pageService services.PageService
	httpHelper  *helper.HTTPHelper
}

func NewPageHandler(pageService services.PageService, httpHelper *helper.HTTPHelper) *PageHandler {
	return &PageHandler{pageService: pageService, httpHelper: httpHelper}
}

func (h *PageHandler) SaveArticleHTML(c *gin.Context) {
	var req models.SaveArticleHTMLRequest
	if err := h.httpHelper.BindJSON(c, &req); err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	key, err := h.pageService.SavePage(c.Request.Context(), req)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "HTML content saved successfully.", "kvKey": key})
}

func (h *PageHandler) ServeArticleHTML(c *gin.Context) {
	html, err := h.pageService.GetPage(c.Request.Context(), c.Param("slug"))

	var (
		notFoundErr   models.ErrorNotFound
		validationErr models.ErrorValidation
	)
	switch {
	case err == nil:
		c.Header("Cache-Control", pageCacheControl)
		c.Data(http.StatusOK, htmlContentType, []byte(html))
	case errors.As(err, &validationErr):
		h.httpHelper.SendError(c, err)
	case errors.As(err, &notFoundErr):
		c.Data(http.StatusNotFound, htmlContentType, []byte(fmt.Sprintf(notFoundPage, time.Now().Year())))
	default:
		h.httpHelper.Logger.Error("serve article html", "slug", c.Param("slug"), "error", err)
		c.Data(http.StatusInternalServerError, htmlContentType, []byte(fmt.Sprintf(serverErrorPage, time.Now().Year())))
	}
}
