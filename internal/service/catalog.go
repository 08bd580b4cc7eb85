package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Beka01247/restaurant-api/internal/domain"
	"github.com/Beka01247/restaurant-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrImportNotConfigured = errors.New("menu import is not configured")
	ErrMenuSource          = errors.New("failed to read menu source")
)

// MenuSource reads menu items from an external spreadsheet.
type MenuSource interface {
	ParseMenu(ctx context.Context, spreadsheetID, readRange string) ([]domain.MenuItem, int, error)
}

type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

type CatalogService struct {
	menuRepo   repo.MenuRepository
	menuSource MenuSource
	logger     *zap.SugaredLogger
}

func NewCatalogService(
	menuRepo repo.MenuRepository,
	menuSource MenuSource,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		menuRepo:   menuRepo,
		menuSource: menuSource,
		logger:     logger,
	}
}

func (s *CatalogService) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}

	return items, nil
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (primitive.ObjectID, error) {
	if err := s.menuRepo.Create(ctx, item); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Infow("menu item created", "menu_item_id", item.ID.Hex(), "category", item.Category)

	return item.ID, nil
}

// SeedMenu inserts the sample menu when the collection is empty and returns
// the number of inserted items. The emptiness check and the insert are not
// atomic; concurrent seeds against an empty collection may both insert.
func (s *CatalogService) SeedMenu(ctx context.Context) (int, error) {
	existing, err := s.menuRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check menu: %w", err)
	}

	if existing > 0 {
		s.logger.Infow("menu seed skipped", "existing", existing)
		return 0, nil
	}

	inserted, err := s.menuRepo.CreateMany(ctx, domain.SampleMenu())
	if err != nil {
		s.logger.Errorw("menu seed failed", "inserted", inserted, "error", err)
		return inserted, fmt.Errorf("failed to seed menu: %w", err)
	}

	s.logger.Infow("menu seeded", "inserted", inserted)

	return inserted, nil
}

func (s *CatalogService) ImportMenu(ctx context.Context, spreadsheetID, readRange string) (ImportResult, error) {
	if s.menuSource == nil {
		return ImportResult{}, ErrImportNotConfigured
	}

	items, skipped, err := s.menuSource.ParseMenu(ctx, spreadsheetID, readRange)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrMenuSource, err)
	}

	inserted, err := s.menuRepo.CreateMany(ctx, items)
	if err != nil {
		return ImportResult{Inserted: inserted, Skipped: skipped}, fmt.Errorf("failed to import menu: %w", err)
	}

	s.logger.Infow("menu imported", "spreadsheet_id", spreadsheetID, "inserted", inserted, "skipped", skipped)

	return ImportResult{Inserted: inserted, Skipped: skipped}, nil
}
