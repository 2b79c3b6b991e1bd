package models

import (
	"time"
)

type ArticleStatus string

// Callers may use other status values; only published and scheduled place an
// article in the publication index.
const (
	StatusPendingReview ArticleStatus = "pending_review"
	StatusPublished     ArticleStatus = "published"
	StatusScheduled     ArticleStatus = "scheduled"
)

// Article is the canonical record stored at article:{articleId}.
type Article struct {
	ArticleID       string        `json:"articleId"`
	Title           string        `json:"title"`
	RawContent      string        `json:"rawContent"`
	Slug            string        `json:"slug"`
	Status          ArticleStatus `json:"status"`
	PublicationDate *time.Time    `json:"publicationDate"`
	Tags            []string      `json:"tags"`

	// Classification used for internal-linking candidates
	Type      string `json:"type,omitempty"`
	Challenge string `json:"challenge,omitempty"`
	Geo       string `json:"geo,omitempty"`

	FinalHTMLContent     string   `json:"finalHtmlContent,omitempty"`
	SEOTitle             string   `json:"seoTitle,omitempty"`
	MetaDescription      string   `json:"metaDescription,omitempty"`
	MetaKeywords         []string `json:"metaKeywords"`
	FeaturedImageURL     string   `json:"featuredImageUrl,omitempty"`
	FeaturedImageAltText string   `json:"featuredImageAltText,omitempty"`
	CanonicalURL         string   `json:"canonicalUrl,omitempty"`
	AuthorName           string   `json:"authorName,omitempty"`
	AuthorID             string   `json:"authorId,omitempty"`
	CategoryID           string   `json:"categoryId,omitempty"`
	SourceURL            string   `json:"sourceUrl,omitempty"`
	SubmissionPlatform   string   `json:"submissionPlatform,omitempty"`

	InitialSubmissionDate time.Time `json:"initialSubmissionDate"`
	LastUpdatedDate       time.Time `json:"lastUpdatedDate"`
}

// IsListable reports whether the status places an article in the
// publication index, given it has a publication date.
func (s ArticleStatus) IsListable() bool {
	return s == StatusPublished || s == StatusScheduled
}

func (a *Article) IsPublished() bool {
	return a.Status == StatusPublished
}
