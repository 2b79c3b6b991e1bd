package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"h3llo-cms/models"
	"h3llo-cms/repositories"
)

const (
	typeWeight      = 3
	challengeWeight = 2
	geoWeight       = 1
)

type LinkingService interface {
	FindLinkingCandidates(ctx context.Context, query models.LinkingQuery) ([]models.CandidateSummary, error)
}

type linkingService struct {
	articleRepo      repositories.ArticleRepository
	publicationIndex repositories.PublicationIndex
	defaultLimit     int
	maxLimit         int
	logger           *slog.Logger
}

func NewLinkingService(
	articleRepo repositories.ArticleRepository,
	publicationIndex repositories.PublicationIndex,
	defaultLimit, maxLimit int,
	logger *slog.Logger,
) LinkingService {
	return &linkingService{
		articleRepo:      articleRepo,
		publicationIndex: publicationIndex,
		defaultLimit:     defaultLimit,
		maxLimit:         maxLimit,
		logger:           logger,
	}
}

type scoredCandidate struct {
	article *models.Article
	score   int
}

func (s *linkingService) FindLinkingCandidates(ctx context.Context, query models.LinkingQuery) ([]models.CandidateSummary, error) {
	limit, err := s.validate(query)
	if err != nil {
		return nil, err
	}

	articleIDs, err := s.publicationIndex.All(ctx)
	if err != nil {
		return nil, internalError(err)
	}
	if len(articleIDs) == 0 {
		return []models.CandidateSummary{}, nil
	}

	articles, err := s.articleRepo.GetByIDs(ctx, articleIDs)
	if err != nil {
		return nil, internalError(err)
	}

	candidates := make([]scoredCandidate, 0, len(articles))
	for i, article := range articles {
		if article == nil {
			s.logger.Warn("publication index entry without article", "article_id", articleIDs[i])
			continue
		}
		if !isCandidate(article, query.ExcludeSlug) {
			continue
		}
		candidates = append(candidates, scoredCandidate{
			article: article,
			score:   scoreCandidate(article, query),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].article.PublicationDate.After(*candidates[j].article.PublicationDate)
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]models.CandidateSummary, len(candidates))
	for i, c := range candidates {
		result[i] = models.CandidateSummary{
			Title:     c.article.Title,
			Slug:      "/" + c.article.Slug,
			Type:      c.article.Type,
			Challenge: c.article.Challenge,
			Geo:       c.article.Geo,
		}
	}
	return result, nil
}

func (s *linkingService) validate(query models.LinkingQuery) (int, error) {
	required := []struct {
		name  string
		value string
	}{
		{"current_type", query.CurrentType},
		{"current_challenge", query.CurrentChallenge},
		{"current_geo", query.CurrentGeo},
		{"exclude_slug", query.ExcludeSlug},
	}
	for _, p := range required {
		if p.value == "" {
			return 0, models.ErrorValidation{Message: fmt.Sprintf("Missing %s parameter", p.name)}
		}
	}

	if query.Limit == nil {
		return s.defaultLimit, nil
	}
	if *query.Limit < 1 || *query.Limit > s.maxLimit {
		return 0, models.ErrorValidation{
			Message: fmt.Sprintf("Invalid limit parameter. Must be a positive integer <= %d", s.maxLimit),
		}
	}
	return *query.Limit, nil
}

// isCandidate requires a published article carrying every field the
// summary and the ranking read.
func isCandidate(article *models.Article, excludeSlug string) bool {
	return article.IsPublished() &&
		article.Slug != excludeSlug &&
		article.Title != "" &&
		article.Slug != "" &&
		article.Type != "" &&
		article.Challenge != "" &&
		article.Geo != "" &&
		article.PublicationDate != nil
}

func scoreCandidate(article *models.Article, query models.LinkingQuery) int {
	score := 0
	if article.Type == query.CurrentType {
		score += typeWeight
	}
	if article.Challenge == query.CurrentChallenge {
		score += challengeWeight
	}
	if article.Geo == query.CurrentGeo {
		score += geoWeight
	}
	return score
}
