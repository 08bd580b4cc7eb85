package parser

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const DefaultRange = "A:F"

// Sheet columns, left to right.
const (
	colName = iota
	colDescription
	colPrice
	colCategory
	colImageURL
	colIsAvailable
)

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenu reads menu items from the spreadsheet. It returns the valid items
// and the number of rows that were skipped as invalid.
func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.MenuItem, int, error) {
	if readRange == "" {
		readRange = DefaultRange
	}

	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, 0, fmt.Errorf("no data found in spreadsheet")
	}

	items, skipped := ParseMenuRows(resp.Values)

	return items, skipped, nil
}

// ParseMenuRows converts sheet rows into menu items. The first row is a header.
// Blank rows are ignored; rows without a name or category, or with a missing,
// negative or non-finite price, are counted as skipped.
func ParseMenuRows(rows [][]interface{}) ([]domain.MenuItem, int) {
	items := []domain.MenuItem{}
	skipped := 0

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		item, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}

		items = append(items, item)
	}

	return items, skipped
}

func parseRow(row []interface{}) (domain.MenuItem, bool) {
	item := domain.MenuItem{
		Name:        cell(row, colName),
		Category:    cell(row, colCategory),
		IsAvailable: true,
	}

	if item.Name == "" || item.Category == "" {
		return domain.MenuItem{}, false
	}

	price, err := strconv.ParseFloat(cell(row, colPrice), 64)
	if err != nil || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return domain.MenuItem{}, false
	}
	item.Price = price

	if description := cell(row, colDescription); description != "" {
		item.Description = &description
	}
	if imageURL := cell(row, colImageURL); imageURL != "" {
		item.ImageURL = &imageURL
	}
	if available := cell(row, colIsAvailable); available != "" {
		item.IsAvailable = strings.ToUpper(available) != "FALSE"
	}

	return item, true
}

func cell(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%v", row[idx]))
}

func isBlank(row []interface{}) bool {
	for i := range row {
		if cell(row, i) != "" {
			return false
		}
	}
	return true
}
