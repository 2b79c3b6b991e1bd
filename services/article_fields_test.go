package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/models"
)

func TestParsePublicationDate(t *testing.T) {
	got, err := parsePublicationDate("2024-01-01T02:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *got)
	assert.Equal(t, time.UTC, got.Location())

	got, err = parsePublicationDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parsePublicationDate("2024-01-01")
	assert.IsType(t, models.ErrorValidation{}, err)
}

func TestDiffTags(t *testing.T) {
	remove, add := diffTags([]string{"a", "b", "c"}, []string{"c", "d", "a"})
	assert.Equal(t, []string{"b"}, remove)
	assert.Equal(t, []string{"d"}, add)

	remove, add = diffTags(nil, nil)
	assert.Empty(t, remove)
	assert.Empty(t, add)
}

func TestValidateSourceURL(t *testing.T) {
	assert.NoError(t, validateSourceURL(""))
	assert.NoError(t, validateSourceURL("https://example.dk/a?b=c"))
	assert.IsType(t, models.ErrorUnprocessable{}, validateSourceURL("example.dk"))
	assert.IsType(t, models.ErrorUnprocessable{}, validateSourceURL("::"))
}

func TestMergeArticleRejectsEmptyRequiredFields(t *testing.T) {
	existing := &models.Article{ArticleID: "a1", Title: "A", RawContent: "B", Slug: "a"}
	empty := ""

	_, err := mergeArticle(existing, models.UpdateArticleRequest{Title: &empty})
	assert.IsType(t, models.ErrorValidation{}, err)
	assert.Equal(t, "A", existing.Title)
}
