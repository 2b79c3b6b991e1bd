package repositories

import (
	"context"
	"time"

	"h3llo-cms/store"
)

// PublicationIndexKey is the sorted set of listed article ids scored by
// publication date in epoch milliseconds.
const PublicationIndexKey = "articles_published_by_date"

type PublicationIndex interface {
	Upsert(ctx context.Context, articleID string, publicationDate time.Time) error
	Remove(ctx context.Context, articleID string) error
	// Range returns ids newest first; start and stop are inclusive.
	Range(ctx context.Context, start, stop int64) ([]string, error)
	All(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type publicationIndex struct {
	kv store.Store
}

func NewPublicationIndex(kv store.Store) PublicationIndex {
	return &publicationIndex{kv: kv}
}

// PublicationScore is the sorted-set score for a publication date.
func PublicationScore(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (p *publicationIndex) Upsert(ctx context.Context, articleID string, publicationDate time.Time) error {
	return p.kv.ZAdd(ctx, PublicationIndexKey, articleID, PublicationScore(publicationDate))
}

func (p *publicationIndex) Remove(ctx context.Context, articleID string) error {
	return p.kv.ZRem(ctx, PublicationIndexKey, articleID)
}

func (p *publicationIndex) Range(ctx context.Context, start, stop int64) ([]string, error) {
	return p.kv.ZRevRange(ctx, PublicationIndexKey, start, stop)
}

func (p *publicationIndex) All(ctx context.Context) ([]string, error) {
	return p.kv.ZRevRange(ctx, PublicationIndexKey, 0, -1)
}

func (p *publicationIndex) Count(ctx context.Context) (int64, error) {
	return p.kv.ZCard(ctx, PublicationIndexKey)
}
