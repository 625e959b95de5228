package services

import (
	"context"
	"fmt"

	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/ports"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	defaultPage          = 1
	defaultLimit         = 20
	defaultAuditLimit    = 50
	maxListLimit         = 100
	searchWorkingSetSize = 100
)

// clampPagination applies the store-wide defaults for absent or nonsensical
// pagination parameters.
func clampPagination(page, limit, fallbackLimit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = fallbackLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return page, limit
}

type InventoryService struct {
	repo   ports.InventoryRepository
	logger *logrus.Logger
}

func NewInventoryService(repo ports.InventoryRepository, logger *logrus.Logger) ports.InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

func (s *InventoryService) ListItems(ctx context.Context, page, limit int, category string) ([]*inventory.Item, *common.Pagination, error) {
	page, limit = clampPagination(page, limit, defaultLimit)

	items, total, err := s.repo.List(ctx, page, limit, category)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewPagination(page, limit, total), nil
}

func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InventoryService) CreateItem(ctx context.Context, req *inventory.CreateItemRequest) (*inventory.Item, error) {
	if err := validateQuantities(req.Quantity, req.MinQuantity, req.MaxQuantity); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", common.ErrValidation)
	}

	item := &inventory.Item{
		Name:        req.Name,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
		Location:    req.Location,
		MinQuantity: req.MinQuantity,
		MaxQuantity: req.MaxQuantity,
		Supplier:    req.Supplier,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"item_id": item.ID, "sku": item.SKU}).Info("inventory item created")
	}
	return item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *inventory.UpdateItemRequest) (*inventory.Item, error) {
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be non-negative", common.ErrValidation)
	}
	if req.MinQuantity != nil && *req.MinQuantity < 0 {
		return nil, fmt.Errorf("%w: minQuantity must be non-negative", common.ErrValidation)
	}
	if req.MaxQuantity != nil && *req.MaxQuantity < 0 {
		return nil, fmt.Errorf("%w: maxQuantity must be non-negative", common.ErrValidation)
	}

	item, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"item_id": item.ID}).Info("inventory item updated")
	}
	return item, nil
}

func validateQuantities(quantity, minQuantity, maxQuantity int) error {
	if quantity < 0 || minQuantity < 0 || maxQuantity < 0 {
		return fmt.Errorf("%w: quantities must be non-negative", common.ErrValidation)
	}
	return nil
}
