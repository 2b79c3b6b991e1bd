package handlers

import (
	"log/slog"
	"time"

	"h3llo-cms/middleware"

	"github.com/gin-gonic/gin"
)

const timeLayout = time.RFC3339

// Handlers groups everything SetupRouter mounts.
type Handlers struct {
	Article  *ArticleHandler
	Linking  *LinkingHandler
	Sitemap  *SitemapHandler
	Page     *PageHandler
	DemoUser *DemoUserHandler
	Post     *PostHandler
	Signup   *SignupHandler
	Health   *HealthHandler
}

func SetupRouter(h Handlers, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger))

	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", h.Article.GetArticles)
			articles.POST("", h.Article.CreateArticle)
			articles.PUT("/:articleId", h.Article.UpdateArticle)
			articles.GET("/slug/:slug", h.Article.GetArticleBySlug)
			articles.GET("/tag/:tagName", h.Article.GetArticlesByTag)
		}

		api.GET("/linking-candidates", h.Linking.GetLinkingCandidates)
		api.GET("/sitemap", h.Sitemap.GetSitemap)

		api.POST("/save-article-html", h.Page.SaveArticleHTML)
		api.GET("/artikler/:slug", h.Page.ServeArticleHTML)

		api.POST("/register-demo-user", h.DemoUser.RegisterDemoUser)
		api.POST("/generate-post", h.Post.GeneratePost)
		api.GET("/get-sheet-count", h.Signup.GetSheetCount)
	}

	return router
}
