package services

import (
	"context"
	"time"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

// listing is an article's position with respect to the publication index.
// The zero value is Unlisted.
type listing struct {
	listed bool
	status models.ArticleStatus
	date   time.Time
}

func listingOf(article *models.Article) listing {
	if article == nil || !article.Status.IsListable() || article.PublicationDate == nil {
		return listing{}
	}
	return listing{listed: true, status: article.Status, date: *article.PublicationDate}
}

func (l listing) same(other listing) bool {
	if l.listed != other.listed {
		return false
	}
	if !l.listed {
		return true
	}
	return l.status == other.status && l.date.Equal(other.date)
}

// PublicationIndexMaintainer keeps the publication index in step with an
// article's status and publication date.
type PublicationIndexMaintainer struct {
	index repositories.PublicationIndex
}

func NewPublicationIndexMaintainer(index repositories.PublicationIndex) *PublicationIndexMaintainer {
	return &PublicationIndexMaintainer{index: index}
}

// Sync applies the transition from before to after. before is nil for a
// newly created article.
func (m *PublicationIndexMaintainer) Sync(ctx context.Context, before, after *models.Article) error {
	from, to := listingOf(before), listingOf(after)
	if from.same(to) {
		return nil
	}
	if !to.listed {
		return m.index.Remove(ctx, after.ArticleID)
	}
	// ZADD replaces the score, so Listed -> Listed needs no explicit removal
	return m.index.Upsert(ctx, after.ArticleID, to.date)
}
