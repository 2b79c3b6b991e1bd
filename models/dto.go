package models

type CreateArticleRequest struct {
	ArticleID       string   `json:"articleId"`
	Title           string   `json:"title" validate:"required"`
	RawContent      string   `json:"rawContent" validate:"required"`
	Slug            string   `json:"slug" validate:"required"`
	Status          string   `json:"status"`
	InitialStatus   string   `json:"initialStatus"`
	PublicationDate string   `json:"publicationDate"`
	Tags            []string `json:"tags"`

	Type      string `json:"type"`
	Challenge string `json:"challenge"`
	Geo       string `json:"geo"`

	FinalHTMLContent     string   `json:"finalHtmlContent"`
	SEOTitle             string   `json:"seoTitle"`
	MetaDescription      string   `json:"metaDescription"`
	MetaKeywords         []string `json:"metaKeywords"`
	FeaturedImageURL     string   `json:"featuredImageUrl"`
	FeaturedImageAltText string   `json:"featuredImageAltText"`
	CanonicalURL         string   `json:"canonicalUrl"`
	AuthorName           string   `json:"authorName"`
	AuthorID             string   `json:"authorId"`
	CategoryID           string   `json:"categoryId"`
	SourceURL            string   `json:"sourceUrl"`
	SubmissionPlatform   string   `json:"submissionPlatform"`
}

// UpdateArticleRequest is a patch: nil fields keep their stored value.
// An empty publicationDate clears the date.
type UpdateArticleRequest struct {
	ArticleID       *string  `json:"articleId"`
	Title           *string  `json:"title"`
	RawContent      *string  `json:"rawContent"`
	Slug            *string  `json:"slug"`
	Status          *string  `json:"status"`
	PublicationDate *string  `json:"publicationDate"`
	Tags            []string `json:"tags"`

	Type      *string `json:"type"`
	Challenge *string `json:"challenge"`
	Geo       *string `json:"geo"`

	FinalHTMLContent     *string  `json:"finalHtmlContent"`
	SEOTitle             *string  `json:"seoTitle"`
	MetaDescription      *string  `json:"metaDescription"`
	MetaKeywords         []string `json:"metaKeywords"`
	FeaturedImageURL     *string  `json:"featuredImageUrl"`
	FeaturedImageAltText *string  `json:"featuredImageAltText"`
	CanonicalURL         *string  `json:"canonicalUrl"`
	AuthorName           *string  `json:"authorName"`
	AuthorID             *string  `json:"authorId"`
	CategoryID           *string  `json:"categoryId"`
	SourceURL            *string  `json:"sourceUrl"`
	SubmissionPlatform   *string  `json:"submissionPlatform"`
}

type ArticleCreatedResponse struct {
	Message   string        `json:"message"`
	ArticleID string        `json:"articleId"`
	Status    ArticleStatus `json:"status"`
	URL       string        `json:"url"`
}

type ArticleUpdatedResponse struct {
	Message         string        `json:"message"`
	ArticleID       string        `json:"articleId"`
	Status          ArticleStatus `json:"status"`
	URL             string        `json:"url,omitempty"`
	PublicationDate string        `json:"publicationDate,omitempty"`
}

type ArticleListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

type ArticleListResponse struct {
	Data       []Article  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// LinkingQuery describes the article links are being picked for. A nil
// Limit means the default.
type LinkingQuery struct {
	CurrentType      string `form:"current_type"`
	CurrentChallenge string `form:"current_challenge"`
	CurrentGeo       string `form:"current_geo"`
	ExcludeSlug      string `form:"exclude_slug"`
	Limit            *int   `form:"-"`
}

type CandidateSummary struct {
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
	Geo       string `json:"geo"`
}

type SaveArticleHTMLRequest struct {
	Slug        string `json:"slug" validate:"required"`
	HTMLContent string `json:"htmlContent" validate:"required"`
}

type RegisterDemoUserRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	CompanyName  string `json:"companyName"`
	ConsentGiven *bool  `json:"consentGiven"`
}

type GeneratePostRequest struct {
	UserMessage string `json:"userMessage"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
