package repositories

import (
	"context"

	"h3llo-cms/store"
)

const tagKeyPrefix = "tag:"

// TagRepository maintains tag:{name} sets of article ids.
type TagRepository interface {
	AddArticle(ctx context.Context, tag, articleID string) error
	RemoveArticle(ctx context.Context, tag, articleID string) error
	GetArticleIDs(ctx context.Context, tag string) ([]string, error)
}

type tagRepository struct {
	kv store.Store
}

func NewTagRepository(kv store.Store) TagRepository {
	return &tagRepository{kv: kv}
}

func (r *tagRepository) AddArticle(ctx context.Context, tag, articleID string) error {
	return r.kv.SAdd(ctx, tagKeyPrefix+tag, articleID)
}

func (r *tagRepository) RemoveArticle(ctx context.Context, tag, articleID string) error {
	return r.kv.SRem(ctx, tagKeyPrefix+tag, articleID)
}

func (r *tagRepository) GetArticleIDs(ctx context.Context, tag string) ([]string, error) {
	return r.kv.SMembers(ctx, tagKeyPrefix+tag)
}
