package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

func TestPublicationIndexMaintainerTransitions(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	article := func(status models.ArticleStatus, date *time.Time) *models.Article {
		return &models.Article{ArticleID: "a1", Status: status, PublicationDate: date}
	}

	cases := []struct {
		name      string
		before    *models.Article
		after     *models.Article
		wantScore *time.Time
	}{
		{"new unlisted", nil, article(models.StatusPendingReview, nil), nil},
		{"new published", nil, article(models.StatusPublished, &d1), &d1},
		{"unlisted to listed", article(models.StatusPendingReview, &d1), article(models.StatusScheduled, &d1), &d1},
		{"listed to unlisted", article(models.StatusPublished, &d1), article(models.StatusPendingReview, &d1), nil},
		{"date cleared", article(models.StatusPublished, &d1), article(models.StatusPublished, nil), nil},
		{"date changed", article(models.StatusPublished, &d1), article(models.StatusPublished, &d2), &d2},
		{"status changed within listed", article(models.StatusScheduled, &d1), article(models.StatusPublished, &d1), &d1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv, mr := newTestStore(t)
			index := repositories.NewPublicationIndex(kv)
			ctx := context.Background()
			if tc.before != nil && tc.before.PublicationDate != nil && tc.before.Status.IsListable() {
				require.NoError(t, index.Upsert(ctx, "a1", *tc.before.PublicationDate))
			}

			require.NoError(t, NewPublicationIndexMaintainer(index).Sync(ctx, tc.before, tc.after))

			score, err := mr.ZScore(repositories.PublicationIndexKey, "a1")
			if tc.wantScore == nil {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, repositories.PublicationScore(*tc.wantScore), score)
		})
	}
}

func TestPublicationIndexMaintainerNoOpSkipsWrites(t *testing.T) {
	kv, mr := newTestStore(t)
	index := repositories.NewPublicationIndex(kv)
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	listed := &models.Article{ArticleID: "a1", Status: models.StatusPublished, PublicationDate: &d}

	// the index was never written, so a no-op must leave it empty
	require.NoError(t, NewPublicationIndexMaintainer(index).Sync(context.Background(), listed, listed))
	assert.False(t, mr.Exists(repositories.PublicationIndexKey))
}
