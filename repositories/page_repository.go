package repositories

import (
	"context"

	"h3llo-cms/store"
)

const htmlKeyPrefix = "html:"

// PageRepository stores fully rendered article pages keyed by slug.
type PageRepository interface {
	Save(ctx context.Context, slug, html string) (string, error)
	Get(ctx context.Context, slug string) (string, error)
}

type pageRepository struct {
	kv store.Store
}

func NewPageRepository(kv store.Store) PageRepository {
	return &pageRepository{kv: kv}
}

// Save returns the key the page was written to.
func (r *pageRepository) Save(ctx context.Context, slug, html string) (string, error) {
	key := htmlKeyPrefix + slug
	if err := r.kv.Set(ctx, key, []byte(html)); err != nil {
		return "", err
	}
	return key, nil
}

func (r *pageRepository) Get(ctx context.Context, slug string) (string, error) {
	data, err := r.kv.Get(ctx, htmlKeyPrefix+slug)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
