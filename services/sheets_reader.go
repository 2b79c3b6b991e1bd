package services

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsColumnReader reads a single-column range through the Sheets API
// with a service account.
type SheetsColumnReader struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

func NewSheetsColumnReader(ctx context.Context, credentialsJSON, spreadsheetID, readRange string) (*SheetsColumnReader, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &SheetsColumnReader{service: service, spreadsheetID: spreadsheetID, readRange: readRange}, nil
}

func (r *SheetsColumnReader) ReadColumn(ctx context.Context) ([]string, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", r.readRange, err)
	}

	cells := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			cells = append(cells, "")
			continue
		}
		cells = append(cells, fmt.Sprint(row[0]))
	}
	return cells, nil
}
