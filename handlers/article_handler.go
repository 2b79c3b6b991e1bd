package handlers

import (
	"net/http"

	"h3llo-cms/helper"
	"h3llo-cms/models"
	"h3llo-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	httpHelper     *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, httpHelper *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, httpHelper: httpHelper}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := h.httpHelper.BindJSON(c, &req); err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	message := "Article submitted successfully."
	switch article.Status {
	case models.StatusPublished:
		message = "Article submitted and published successfully."
	case models.StatusScheduled:
		message = "Article submitted and scheduled for publication."
	}

	c.JSON(http.StatusCreated, models.ArticleCreatedResponse{
		Message:   message,
		ArticleID: article.ArticleID,
		Status:    article.Status,
		URL:       articlePath(article.Slug),
	})
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := h.httpHelper.BindJSON(c, &req); err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	article, err := h.articleService.UpdateArticle(c.Request.Context(), c.Param("articleId"), req)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	res := models.ArticleUpdatedResponse{
		Message:   "Article updated successfully.",
		ArticleID: article.ArticleID,
		Status:    article.Status,
	}
	switch article.Status {
	case models.StatusPublished:
		res.Message = "Article updated and published successfully."
		res.URL = articlePath(article.Slug)
	case models.StatusScheduled:
		res.Message = "Article updated and scheduled for publication."
		if article.PublicationDate != nil {
			res.PublicationDate = article.PublicationDate.Format(timeLayout)
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.httpHelper.SendError(c, models.ErrorValidation{Message: "Invalid pagination parameters"})
		return
	}

	articles, total, err := h.articleService.GetPublishedArticles(c.Request.Context(), params)
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleListResponse{
		Data:       articles,
		Pagination: h.httpHelper.GeneratePagination(params.Page, params.Limit, total),
	})
}

func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticlesByTag(c *gin.Context) {
	articles, err := h.articleService.GetArticlesByTag(c.Request.Context(), c.Param("tagName"))
	if err != nil {
		h.httpHelper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, articles)
}

func articlePath(slug string) string {
	return "/articles/" + slug
}
