package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"h3llo-cms/models"
)

const (
	postSystemPrompt = "Du er en hjælpsom assistent, der skriver SoMe-opslag for lokale butikker."
	postPromptFormat = `Lav et kort, fængende og professionelt opslag til sociale medier (Facebook/Instagram) for en lokal butik baseret på følgende besked fra butikken. Inkluder relevante emojis og 2-4 relevante danske hashtags. Svar kun med selve opslagsteksten, uden ekstra formatering eller introduktion.

Besked fra butik: "%s"`
)

// TextCompleter produces a single chat completion.
type TextCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type PostService interface {
	GeneratePost(ctx context.Context, userMessage string) (string, error)
}

type postService struct {
	completer TextCompleter
	logger    *slog.Logger
}

// NewPostService accepts a nil completer when no API key is configured;
// every call then fails with a configuration error.
func NewPostService(completer TextCompleter, logger *slog.Logger) PostService {
	return &postService{completer: completer, logger: logger}
}

func (s *postService) GeneratePost(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", models.ErrorValidation{Message: "Missing or invalid userMessage in request body."}
	}
	if s.completer == nil {
		return "", models.ErrorInternalServer{
			Message: "Server configuration error.",
			Err:     errors.New("no text completer configured"),
		}
	}

	text, err := s.completer.Complete(ctx, postSystemPrompt, fmt.Sprintf(postPromptFormat, userMessage))
	if err != nil {
		return "", models.ErrorInternalServer{
			Message: "Failed to generate post due to an internal error.",
			Err:     err,
		}
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", models.ErrorInternalServer{
			Message: "Failed to generate post due to an internal error.",
			Err:     errors.New("completion returned no text"),
		}
	}
	return text, nil
}
