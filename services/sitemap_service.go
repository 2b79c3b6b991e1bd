package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"h3llo-cms/config"
	"h3llo-cms/repositories"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	lastModLayout    = "2006-01-02"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type SitemapService interface {
	// Generate renders the sitemap XML document including its header.
	Generate(ctx context.Context) ([]byte, error)
}

type sitemapService struct {
	articleRepo      repositories.ArticleRepository
	publicationIndex repositories.PublicationIndex
	cfg              config.SitemapConfig
	now              func() time.Time
}

func NewSitemapService(
	articleRepo repositories.ArticleRepository,
	publicationIndex repositories.PublicationIndex,
	cfg config.SitemapConfig,
) SitemapService {
	return &sitemapService{
		articleRepo:      articleRepo,
		publicationIndex: publicationIndex,
		cfg:              cfg,
		now:              time.Now,
	}
}

func (s *sitemapService) Generate(ctx context.Context) ([]byte, error) {
	base := strings.TrimRight(s.cfg.BaseURL, "/")
	today := s.now().UTC().Format(lastModLayout)

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:        base + "/",
		LastMod:    today,
		ChangeFreq: "daily",
		Priority:   "1.0",
	})
	for _, page := range s.cfg.StaticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/" + strings.TrimLeft(page.Path, "/"),
			LastMod:    today,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	articleIDs, err := s.publicationIndex.All(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, internalError(err)
	}

	for _, article := range articles {
		if article == nil || article.Slug == "" || !article.IsPublished() {
			continue
		}
		lastMod := today
		if article.PublicationDate != nil {
			lastMod = article.PublicationDate.UTC().Format(lastModLayout)
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/artikler/%s", base, article.Slug),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, internalError(fmt.Errorf("encode sitemap: %w", err))
	}
	return append([]byte(xml.Header), body...), nil
}
