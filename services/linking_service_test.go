package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/logging"
	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

type linkingFixture struct {
	service     LinkingService
	articleRepo repositories.ArticleRepository
	index       repositories.PublicationIndex
}

func newLinkingFixture(t *testing.T) linkingFixture {
	t.Helper()
	kv, _ := newTestStore(t)
	articleRepo := repositories.NewArticleRepository(kv, logging.Discard())
	index := repositories.NewPublicationIndex(kv)
	return linkingFixture{
		service:     NewLinkingService(articleRepo, index, 30, 100, logging.Discard()),
		articleRepo: articleRepo,
		index:       index,
	}
}

func (f linkingFixture) add(t *testing.T, article models.Article) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.articleRepo.Save(ctx, &article))
	if article.PublicationDate != nil {
		require.NoError(t, f.index.Upsert(ctx, article.ArticleID, *article.PublicationDate))
	}
}

func candidate(id, typ, challenge, geo string, date time.Time) models.Article {
	return models.Article{
		ArticleID:       id,
		Title:           "Title " + id,
		Slug:            id,
		Status:          models.StatusPublished,
		PublicationDate: &date,
		Type:            typ,
		Challenge:       challenge,
		Geo:             geo,
	}
}

func day(month, d int) time.Time {
	return time.Date(2024, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func query(limit *int) models.LinkingQuery {
	return models.LinkingQuery{
		CurrentType:      "guide",
		CurrentChallenge: "growth",
		CurrentGeo:       "dk",
		ExcludeSlug:      "current",
		Limit:            limit,
	}
}

func slugs(candidates []models.CandidateSummary) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Slug
	}
	return out
}

func TestLinkingCandidatesTieBrokenByDate(t *testing.T) {
	f := newLinkingFixture(t)
	// both score 3: type only vs challenge+geo
	f.add(t, candidate("b", "news", "growth", "dk", day(1, 1)))
	f.add(t, candidate("a", "guide", "other", "se", day(2, 1)))

	got, err := f.service.FindLinkingCandidates(context.Background(), query(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, slugs(got))
}

func TestLinkingCandidatesRankAndProject(t *testing.T) {
	f := newLinkingFixture(t)
	f.add(t, candidate("none", "news", "other", "se", day(6, 1)))
	f.add(t, candidate("full", "guide", "growth", "dk", day(1, 1)))
	f.add(t, candidate("type-geo", "guide", "other", "dk", day(3, 1)))
	f.add(t, candidate("challenge", "news", "growth", "se", day(4, 1)))
	f.add(t, candidate("current", "guide", "growth", "dk", day(5, 1)))

	got, err := f.service.FindLinkingCandidates(context.Background(), query(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"/full", "/type-geo", "/challenge", "/none"}, slugs(got))

	assert.Equal(t, models.CandidateSummary{
		Title:     "Title full",
		Slug:      "/full",
		Type:      "guide",
		Challenge: "growth",
		Geo:       "dk",
	}, got[0])
}

func TestLinkingCandidatesSkipIncompleteAndUnpublished(t *testing.T) {
	f := newLinkingFixture(t)
	f.add(t, candidate("ok", "guide", "growth", "dk", day(1, 1)))

	noGeo := candidate("no-geo", "guide", "growth", "", day(2, 1))
	f.add(t, noGeo)

	scheduled := candidate("scheduled", "guide", "growth", "dk", day(3, 1))
	scheduled.Status = models.StatusScheduled
	f.add(t, scheduled)

	noTitle := candidate("no-title", "guide", "growth", "dk", day(4, 1))
	noTitle.Title = ""
	f.add(t, noTitle)

	// indexed id whose body is gone
	require.NoError(t, f.index.Upsert(context.Background(), "ghost", day(5, 1)))

	got, err := f.service.FindLinkingCandidates(context.Background(), query(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"/ok"}, slugs(got))
}

func TestLinkingCandidatesTruncateToLimit(t *testing.T) {
	f := newLinkingFixture(t)
	for i := 1; i <= 5; i++ {
		f.add(t, candidate(string(rune('a'+i)), "guide", "growth", "dk", day(1, i)))
	}

	limit := 2
	got, err := f.service.FindLinkingCandidates(context.Background(), query(&limit))
	require.NoError(t, err)
	assert.Equal(t, []string{"/f", "/e"}, slugs(got))
}

func TestLinkingCandidatesEmptyIndex(t *testing.T) {
	f := newLinkingFixture(t)

	got, err := f.service.FindLinkingCandidates(context.Background(), query(nil))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLinkingCandidatesValidation(t *testing.T) {
	f := newLinkingFixture(t)
	zero, tooBig, atCap := 0, 101, 100

	cases := []struct {
		name    string
		mutate  func(q *models.LinkingQuery)
		message string
	}{
		{"missing type", func(q *models.LinkingQuery) { q.CurrentType = "" }, "Missing current_type parameter"},
		{"missing challenge", func(q *models.LinkingQuery) { q.CurrentChallenge = "" }, "Missing current_challenge parameter"},
		{"missing geo", func(q *models.LinkingQuery) { q.CurrentGeo = "" }, "Missing current_geo parameter"},
		{"missing exclude", func(q *models.LinkingQuery) { q.ExcludeSlug = "" }, "Missing exclude_slug parameter"},
		{"zero limit", func(q *models.LinkingQuery) { q.Limit = &zero }, "Invalid limit parameter. Must be a positive integer <= 100"},
		{"limit over cap", func(q *models.LinkingQuery) { q.Limit = &tooBig }, "Invalid limit parameter. Must be a positive integer <= 100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := query(nil)
			tc.mutate(&q)
			_, err := f.service.FindLinkingCandidates(context.Background(), q)
			require.Error(t, err)
			assert.Equal(t, models.ErrorValidation{Message: tc.message}, err)
		})
	}

	_, err := f.service.FindLinkingCandidates(context.Background(), query(&atCap))
	assert.NoError(t, err)
}
