package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"h3llo-cms/models"
	"h3llo-cms/store"
)

const (
	articleKeyPrefix = "article:"
	slugKeyPrefix    = "slug:"
)

// ArticleRepository owns the article records and the slug index.
type ArticleRepository interface {
	// Claim stores a new article only if its id is unused.
	Claim(ctx context.Context, article *models.Article) (bool, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// GetByIDs returns one entry per id, nil where the record is missing
	// or cannot be decoded.
	GetByIDs(ctx context.Context, ids []string) ([]*models.Article, error)
	Save(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, id string) error

	// ClaimSlug maps slug to id unless another article owns it, and
	// returns the owner after the attempt.
	ClaimSlug(ctx context.Context, slug, id string) (string, error)
	ResolveSlug(ctx context.Context, slug string) (string, error)
	// ReleaseSlug removes the mapping if id still owns it.
	ReleaseSlug(ctx context.Context, slug, id string) error
}

type articleRepository struct {
	kv     store.Store
	logger *slog.Logger
}

func NewArticleRepository(kv store.Store, logger *slog.Logger) ArticleRepository {
	return &articleRepository{kv: kv, logger: logger}
}

func articleKey(id string) string { return articleKeyPrefix + id }

func slugKey(slug string) string { return slugKeyPrefix + slug }

func (r *articleRepository) Claim(ctx context.Context, article *models.Article) (bool, error) {
	data, err := json.Marshal(article)
	if err != nil {
		return false, fmt.Errorf("encode article %s: %w", article.ArticleID, err)
	}
	return r.kv.SetNX(ctx, articleKey(article.ArticleID), data)
}

func (r *articleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	data, err := r.kv.Get(ctx, articleKey(id))
	if err != nil {
		return nil, err
	}
	return decodeArticle(id, data)
}

func (r *articleRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.Article, error) {
	if len(ids) == 0 {
		return []*models.Article{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = articleKey(id)
	}

	values, err := r.kv.MGet(ctx, keys...)
	if err != nil {
		return nil, err
	}

	articles := make([]*models.Article, len(values))
	for i, data := range values {
		if data == nil {
			continue
		}
		article, err := decodeArticle(ids[i], data)
		if err != nil {
			r.logger.Warn("skipping undecodable article", "article_id", ids[i], "error", err)
			continue
		}
		articles[i] = article
	}
	return articles, nil
}

func (r *articleRepository) Save(ctx context.Context, article *models.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("encode article %s: %w", article.ArticleID, err)
	}
	return r.kv.Set(ctx, articleKey(article.ArticleID), data)
}

func (r *articleRepository) Delete(ctx context.Context, id string) error {
	return r.kv.Delete(ctx, articleKey(id))
}

func (r *articleRepository) ClaimSlug(ctx context.Context, slug, id string) (string, error) {
	ok, err := r.kv.SetNX(ctx, slugKey(slug), []byte(id))
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	owner, err := r.ResolveSlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		// released between the two calls; the slug is free again
		return r.ClaimSlug(ctx, slug, id)
	}
	return owner, err
}

func (r *articleRepository) ResolveSlug(ctx context.Context, slug string) (string, error) {
	data, err := r.kv.Get(ctx, slugKey(slug))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *articleRepository) ReleaseSlug(ctx context.Context, slug, id string) error {
	owner, err := r.ResolveSlug(ctx, slug)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if owner != id {
		return nil
	}
	return r.kv.Delete(ctx, slugKey(slug))
}

func decodeArticle(id string, data []byte) (*models.Article, error) {
	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, fmt.Errorf("decode article %s: %w", id, err)
	}
	return &article, nil
}
