package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
	"h3llo-cms/store"

	"github.com/google/uuid"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error)
	UpdateArticle(ctx context.Context, articleID string, req models.UpdateArticleRequest) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetArticlesByTag(ctx context.Context, tag string) ([]models.Article, error)
	GetPublishedArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error)
}

type articleService struct {
	articleRepo      repositories.ArticleRepository
	tagRepo          repositories.TagRepository
	publicationIndex repositories.PublicationIndex
	publication      *PublicationIndexMaintainer
	maxPageSize      int
	logger           *slog.Logger
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	publicationIndex repositories.PublicationIndex,
	maxPageSize int,
	logger *slog.Logger,
) ArticleService {
	return &articleService{
		articleRepo:      articleRepo,
		tagRepo:          tagRepo,
		publicationIndex: publicationIndex,
		publication:      NewPublicationIndexMaintainer(publicationIndex),
		maxPageSize:      maxPageSize,
		logger:           logger,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req models.CreateArticleRequest) (*models.Article, error) {
	articleID := req.ArticleID
	if articleID == "" {
		articleID = uuid.NewString()
	}

	article, err := newArticle(articleID, req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// Claim the id and store the record in one step
	claimed, err := s.articleRepo.Claim(ctx, article)
	if err != nil {
		return nil, storageError("Failed to store article", err)
	}
	if !claimed {
		return nil, models.ErrorConflict{
			Message: "Article ID already exists",
			Details: fmt.Sprintf("Article with ID '%s' already exists. Use PUT to update.", articleID),
		}
	}

	undo := newCompensation(s.logger)
	undo.push("delete article", func(ctx context.Context) error {
		return s.articleRepo.Delete(ctx, articleID)
	})

	owner, err := s.articleRepo.ClaimSlug(ctx, article.Slug, articleID)
	if err != nil {
		undo.rollback(ctx)
		return nil, storageError("Failed to store article", err)
	}
	if owner != articleID {
		undo.rollback(ctx)
		return nil, models.ErrorConflict{
			Message: "Slug already exists",
			Details: fmt.Sprintf("Slug '%s' is already in use by article ID '%s'.", article.Slug, owner),
		}
	}
	undo.push("release slug", func(ctx context.Context) error {
		return s.articleRepo.ReleaseSlug(ctx, article.Slug, articleID)
	})

	for _, tag := range article.Tags {
		if err := s.tagRepo.AddArticle(ctx, tag, articleID); err != nil {
			undo.rollback(ctx)
			return nil, storageError("Failed to store article", err)
		}
		tag := tag
		undo.push("untag "+tag, func(ctx context.Context) error {
			return s.tagRepo.RemoveArticle(ctx, tag, articleID)
		})
	}

	if err := s.publication.Sync(ctx, nil, article); err != nil {
		undo.rollback(ctx)
		return nil, storageError("Failed to store article", err)
	}

	s.logger.Info("article created", "article_id", articleID, "slug", article.Slug, "status", article.Status)
	return article, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, articleID string, req models.UpdateArticleRequest) (*models.Article, error) {
	if req.ArticleID != nil && *req.ArticleID != articleID {
		return nil, models.ErrorValidation{
			Message: "Article ID mismatch",
			Details: fmt.Sprintf("The articleId in the request body ('%s') does not match the articleId in the URL path ('%s').", *req.ArticleID, articleID),
		}
	}

	existing, err := s.articleRepo.GetByID(ctx, articleID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, models.ErrorNotFound{
			Message: "Not Found",
			Details: fmt.Sprintf("Article with ID '%s' not found.", articleID),
		}
	}
	if err != nil {
		return nil, storageError("Failed to load article", err)
	}

	updated, err := mergeArticle(existing, req)
	if err != nil {
		return nil, err
	}

	// Index writes made before the record is saved are undone if saving
	// fails; after that the record is authoritative.
	undo := newCompensation(s.logger)

	slugChanged := updated.Slug != existing.Slug
	if slugChanged {
		owner, err := s.articleRepo.ClaimSlug(ctx, updated.Slug, articleID)
		if err != nil {
			return nil, storageError("Failed to update article", err)
		}
		if owner != articleID {
			return nil, models.ErrorConflict{
				Message: "Conflict",
				Details: fmt.Sprintf("Slug '%s' is already in use.", updated.Slug),
			}
		}
		undo.push("release new slug", func(ctx context.Context) error {
			return s.articleRepo.ReleaseSlug(ctx, updated.Slug, articleID)
		})
	}

	if req.Tags != nil {
		tagsToRemove, tagsToAdd := diffTags(existing.Tags, updated.Tags)
		for _, tag := range tagsToRemove {
			if err := s.tagRepo.RemoveArticle(ctx, tag, articleID); err != nil {
				undo.rollback(ctx)
				return nil, storageError("Failed to update article", err)
			}
			tag := tag
			undo.push("retag "+tag, func(ctx context.Context) error {
				return s.tagRepo.AddArticle(ctx, tag, articleID)
			})
		}
		for _, tag := range tagsToAdd {
			if err := s.tagRepo.AddArticle(ctx, tag, articleID); err != nil {
				undo.rollback(ctx)
				return nil, storageError("Failed to update article", err)
			}
			tag := tag
			undo.push("untag "+tag, func(ctx context.Context) error {
				return s.tagRepo.RemoveArticle(ctx, tag, articleID)
			})
		}
	}

	updated.LastUpdatedDate = time.Now().UTC()
	if err := s.articleRepo.Save(ctx, updated); err != nil {
		undo.rollback(ctx)
		return nil, storageError("Failed to update article", err)
	}

	if slugChanged && existing.Slug != "" {
		if err := s.articleRepo.ReleaseSlug(ctx, existing.Slug, articleID); err != nil {
			return nil, storageError("Failed to update article", err)
		}
	}

	if err := s.publication.Sync(ctx, existing, updated); err != nil {
		return nil, storageError("Failed to update publication index", err)
	}

	s.logger.Info("article updated", "article_id", articleID, "status", updated.Status)
	return updated, nil
}

func (s *articleService) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	articleID, err := s.articleRepo.ResolveSlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil, models.ErrorNotFound{Message: "Article not found for this slug"}
	}
	if err != nil {
		return nil, internalError(err)
	}

	article, err := s.articleRepo.GetByID(ctx, articleID)
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Warn("slug points at missing article", "slug", slug, "article_id", articleID)
		return nil, models.ErrorNotFound{Message: "Article data not found"}
	}
	if err != nil {
		return nil, internalError(err)
	}

	if article.Slug != slug {
		s.logger.Warn("slug index disagrees with article", "slug", slug, "article_id", articleID, "article_slug", article.Slug)
		return nil, models.ErrorNotFound{Message: "Article not found for this slug"}
	}

	if !article.IsPublished() {
		return nil, models.ErrorNotFound{Message: "Article not published"}
	}

	return article, nil
}

func (s *articleService) GetArticlesByTag(ctx context.Context, tag string) ([]models.Article, error) {
	articleIDs, err := s.tagRepo.GetArticleIDs(ctx, tag)
	if err != nil {
		return nil, internalError(err)
	}

	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, internalError(err)
	}

	published := filterPublished(articles)

	// Missing publication dates sort as the oldest
	sort.SliceStable(published, func(i, j int) bool {
		a, b := published[i].PublicationDate, published[j].PublicationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	return published, nil
}

func (s *articleService) GetPublishedArticles(ctx context.Context, params models.ArticleListParams) ([]models.Article, int64, error) {
	if params.Page < 1 || params.Limit < 1 || params.Limit > s.maxPageSize {
		return nil, 0, models.ErrorValidation{
			Message: "Invalid pagination parameters",
			Details: fmt.Sprintf("page and limit must be positive integers and limit must not exceed %d.", s.maxPageSize),
		}
	}

	if int64(params.Page-1) > (math.MaxInt64-int64(params.Limit))/int64(params.Limit) {
		return nil, 0, models.ErrorValidation{
			Message: "Invalid pagination parameters",
			Details: "page is out of range.",
		}
	}

	start := int64(params.Page-1) * int64(params.Limit)
	stop := start + int64(params.Limit) - 1

	articleIDs, err := s.publicationIndex.Range(ctx, start, stop)
	if err != nil {
		return nil, 0, internalError(err)
	}

	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, 0, internalError(err)
	}

	total, err := s.publicationIndex.Count(ctx)
	if err != nil {
		return nil, 0, internalError(err)
	}

	return filterPublished(articles), total, nil
}

// filterPublished drops missing records and anything not published.
func filterPublished(articles []*models.Article) []models.Article {
	published := make([]models.Article, 0, len(articles))
	for _, a := range articles {
		if a != nil && a.IsPublished() {
			published = append(published, *a)
		}
	}
	return published
}

func storageError(message string, err error) error {
	return models.ErrorStorage{Message: message, Err: err}
}

func internalError(err error) error {
	return models.ErrorInternalServer{Message: "Internal Server Error", Err: err}
}
