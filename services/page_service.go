package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
	"h3llo-cms/store"
)

// PageService stores and serves fully rendered article pages.
type PageService interface {
	SavePage(ctx context.Context, req models.SaveArticleHTMLRequest) (string, error)
	GetPage(ctx context.Context, slug string) (string, error)
}

type pageService struct {
	pageRepo repositories.PageRepository
	logger   *slog.Logger
}

func NewPageService(pageRepo repositories.PageRepository, logger *slog.Logger) PageService {
	return &pageService{pageRepo: pageRepo, logger: logger}
}

// SavePage returns the store key the page was written under.
func (s *pageService) SavePage(ctx context.Context, req models.SaveArticleHTMLRequest) (string, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return "", models.ErrorValidation{Message: `Missing or invalid "slug" in request body.`}
	}
	if req.HTMLContent == "" {
		return "", models.ErrorValidation{Message: `Missing or invalid "htmlContent" in request body.`}
	}

	key, err := s.pageRepo.Save(ctx, slug, req.HTMLContent)
	if err != nil {
		return "", storageError("Internal Server Error while saving HTML content.", err)
	}

	s.logger.Info("article html saved", "slug", slug, "key", key, "bytes", len(req.HTMLContent))
	return key, nil
}

func (s *pageService) GetPage(ctx context.Context, slug string) (string, error) {
	if strings.TrimSpace(slug) == "" {
		return "", models.ErrorValidation{Message: "Slug parameter is required and must be a non-empty string."}
	}

	html, err := s.pageRepo.Get(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return "", models.ErrorNotFound{Message: "Article page not found"}
	}
	if err != nil {
		return "", internalError(err)
	}
	return html, nil
}
