package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h3llo-cms/logging"
	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

func TestPageSaveAndGet(t *testing.T) {
	kv, mr := newTestStore(t)
	svc := NewPageService(repositories.NewPageRepository(kv), logging.Discard())
	ctx := context.Background()

	key, err := svc.SavePage(ctx, models.SaveArticleHTMLRequest{Slug: "hej", HTMLContent: "<h1>Hej</h1>"})
	require.NoError(t, err)
	assert.Equal(t, "html:hej", key)

	raw, err := mr.Get("html:hej")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hej</h1>", raw)

	html, err := svc.GetPage(ctx, "hej")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hej</h1>", html)

	_, err = svc.GetPage(ctx, "nope")
	assert.IsType(t, models.ErrorNotFound{}, err)

	_, err = svc.SavePage(ctx, models.SaveArticleHTMLRequest{Slug: "  ", HTMLContent: "x"})
	assert.IsType(t, models.ErrorValidation{}, err)
}
