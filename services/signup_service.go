package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"h3llo-cms/models"
)

// ColumnReader returns the first cell of every row in a sheet range.
type ColumnReader interface {
	ReadColumn(ctx context.Context) ([]string, error)
}

type SignupService interface {
	// Count reports signups taken, offset by the base count and capped at
	// capacity.
	Count(ctx context.Context) (int, error)
}

type signupService struct {
	reader    ColumnReader
	baseCount int
	capacity  int
	logger    *slog.Logger
}

func NewSignupService(reader ColumnReader, baseCount, capacity int, logger *slog.Logger) SignupService {
	return &signupService{reader: reader, baseCount: baseCount, capacity: capacity, logger: logger}
}

func (s *signupService) Count(ctx context.Context) (int, error) {
	if s.reader == nil {
		return 0, fetchSheetError(errors.New("no sheet reader configured"))
	}

	cells, err := s.reader.ReadColumn(ctx)
	if err != nil {
		return 0, fetchSheetError(err)
	}

	taken := 0
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			taken++
		}
	}
	return min(s.baseCount+taken, s.capacity), nil
}

func fetchSheetError(err error) error {
	return models.ErrorInternalServer{Message: "Failed to fetch sheet data", Err: err}
}
