package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"h3llo-cms/models"
)

// parsePublicationDate accepts an RFC 3339 timestamp. An empty value means
// no date.
func parsePublicationDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, models.ErrorValidation{
			Message: "Invalid data format for publicationDate",
			Details: "Field 'publicationDate' must be a valid ISO 8601 date-time string (e.g., '2023-10-26T10:00:00Z').",
		}
	}
	t = t.UTC()
	return &t, nil
}

func validateSourceURL(value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return models.ErrorUnprocessable{
			Message: "Unprocessable content",
			Details: "Field 'sourceUrl' must be a valid URL.",
		}
	}
	return nil
}

// uniqueStrings drops duplicates, keeping first occurrences in order.
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// diffTags returns the tags in before but not after, and the tags in after
// but not before.
func diffTags(before, after []string) (toRemove, toAdd []string) {
	inAfter := make(map[string]struct{}, len(after))
	for _, t := range after {
		inAfter[t] = struct{}{}
	}
	inBefore := make(map[string]struct{}, len(before))
	for _, t := range before {
		inBefore[t] = struct{}{}
		if _, ok := inAfter[t]; !ok {
			toRemove = append(toRemove, t)
		}
	}
	for _, t := range after {
		if _, ok := inBefore[t]; !ok {
			toAdd = append(toAdd, t)
		}
	}
	return toRemove, toAdd
}

func newArticle(id string, req models.CreateArticleRequest, now time.Time) (*models.Article, error) {
	status := req.Status
	if status == "" {
		status = req.InitialStatus
	}
	if status == "" {
		status = string(models.StatusPendingReview)
	}

	publicationDate, err := parsePublicationDate(req.PublicationDate)
	if err != nil {
		return nil, err
	}
	if models.ArticleStatus(status).IsListable() && publicationDate == nil {
		return nil, models.ErrorValidation{
			Message: "Missing publicationDate",
			Details: "publicationDate is required when status is 'published' or 'scheduled'.",
		}
	}
	if err := validateSourceURL(req.SourceURL); err != nil {
		return nil, err
	}

	metaKeywords := req.MetaKeywords
	if metaKeywords == nil {
		metaKeywords = []string{}
	}

	return &models.Article{
		ArticleID:             id,
		Title:                 req.Title,
		RawContent:            req.RawContent,
		Slug:                  req.Slug,
		Status:                models.ArticleStatus(status),
		PublicationDate:       publicationDate,
		Tags:                  uniqueStrings(req.Tags),
		Type:                  req.Type,
		Challenge:             req.Challenge,
		Geo:                   req.Geo,
		FinalHTMLContent:      req.FinalHTMLContent,
		SEOTitle:              req.SEOTitle,
		MetaDescription:       req.MetaDescription,
		MetaKeywords:          metaKeywords,
		FeaturedImageURL:      req.FeaturedImageURL,
		FeaturedImageAltText:  req.FeaturedImageAltText,
		CanonicalURL:          req.CanonicalURL,
		AuthorName:            req.AuthorName,
		AuthorID:              req.AuthorID,
		CategoryID:            req.CategoryID,
		SourceURL:             req.SourceURL,
		SubmissionPlatform:    req.SubmissionPlatform,
		InitialSubmissionDate: now,
		LastUpdatedDate:       now,
	}, nil
}

// mergeArticle applies a patch over a copy of existing. Only the fields
// listed here are patchable; articleId and the submission/update dates are
// owned by the repository.
func mergeArticle(existing *models.Article, req models.UpdateArticleRequest) (*models.Article, error) {
	merged := *existing
	merged.Tags = append([]string{}, existing.Tags...)
	merged.MetaKeywords = append([]string{}, existing.MetaKeywords...)

	required := []struct {
		name  string
		value *string
		dst   *string
	}{
		{"title", req.Title, &merged.Title},
		{"rawContent", req.RawContent, &merged.RawContent},
		{"slug", req.Slug, &merged.Slug},
	}
	for _, f := range required {
		if f.value == nil {
			continue
		}
		if strings.TrimSpace(*f.value) == "" {
			return nil, models.ErrorValidation{
				Message: "Invalid data format",
				Details: fmt.Sprintf("Field '%s' must not be empty.", f.name),
			}
		}
		*f.dst = *f.value
	}

	if req.Status != nil {
		if *req.Status == "" {
			return nil, models.ErrorValidation{
				Message: "Invalid data format",
				Details: "Field 'status' must not be empty.",
			}
		}
		merged.Status = models.ArticleStatus(*req.Status)
	}

	if req.PublicationDate != nil {
		date, err := parsePublicationDate(*req.PublicationDate)
		if err != nil {
			return nil, err
		}
		merged.PublicationDate = date
	}

	if req.Tags != nil {
		merged.Tags = uniqueStrings(req.Tags)
	}
	if req.MetaKeywords != nil {
		merged.MetaKeywords = req.MetaKeywords
	}

	if req.SourceURL != nil {
		if err := validateSourceURL(*req.SourceURL); err != nil {
			return nil, err
		}
	}

	optional := []struct {
		value *string
		dst   *string
	}{
		{req.Type, &merged.Type},
		{req.Challenge, &merged.Challenge},
		{req.Geo, &merged.Geo},
		{req.FinalHTMLContent, &merged.FinalHTMLContent},
		{req.SEOTitle, &merged.SEOTitle},
		{req.MetaDescription, &merged.MetaDescription},
		{req.FeaturedImageURL, &merged.FeaturedImageURL},
		{req.FeaturedImageAltText, &merged.FeaturedImageAltText},
		{req.CanonicalURL, &merged.CanonicalURL},
		{req.AuthorName, &merged.AuthorName},
		{req.AuthorID, &merged.AuthorID},
		{req.CategoryID, &merged.CategoryID},
		{req.SourceURL, &merged.SourceURL},
		{req.SubmissionPlatform, &merged.SubmissionPlatform},
	}
	for _, f := range optional {
		if f.value != nil {
			*f.dst = *f.value
		}
	}

	if merged.Status == models.StatusScheduled && merged.PublicationDate == nil {
		return nil, models.ErrorValidation{
			Message: "Missing publicationDate for scheduled status",
			Details: "Field 'publicationDate' is required when status is 'scheduled'.",
		}
	}

	return &merged, nil
}
