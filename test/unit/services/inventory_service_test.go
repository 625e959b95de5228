package services_test

import (
	"context"
	"errors"
	"testing"

	impl "github.com/centralmgmt/portal/internal/application/services"
	"github.com/centralmgmt/portal/internal/core/domain/common"
	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/test/mocks"
	"github.com/google/uuid"
)

func TestListItems_AppliesPaginationDefaults(t *testing.T) {
	var gotPage, gotLimit int
	repo := &mocks.InventoryRepositoryMock{
		ListFn: func(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
			gotPage, gotLimit = page, limit
			return []*inventory.Item{}, 0, nil
		},
	}
	svc := impl.NewInventoryService(repo, nil)

	_, _, err := svc.ListItems(context.Background(), 0, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPage != 1 || gotLimit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got page=%d limit=%d", gotPage, gotLimit)
	}
}

func TestListItems_ClampsLimit(t *testing.T) {
	var gotLimit int
	repo := &mocks.InventoryRepositoryMock{
		ListFn: func(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
			gotLimit = limit
			return []*inventory.Item{}, 0, nil
		},
	}
	svc := impl.NewInventoryService(repo, nil)

	_, _, _ = svc.ListItems(context.Background(), 1, 500, "")
	if gotLimit != 100 {
		t.Fatalf("expected limit clamped to 100, got %d", gotLimit)
	}
}

func TestListItems_ComputesPagination(t *testing.T) {
	repo := &mocks.InventoryRepositoryMock{
		ListFn: func(ctx context.Context, page, limit int, category string) ([]*inventory.Item, int, error) {
			return []*inventory.Item{}, 45, nil
		},
	}
	svc := impl.NewInventoryService(repo, nil)

	_, p, err := svc.ListItems(context.Background(), 2, 20, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &common.Pagination{Page: 2, Limit: 20, Total: 45, TotalPages: 3}
	if *p != *want {
		t.Fatalf("unexpected pagination %+v", p)
	}
}

func TestCreateItem_RejectsNegativeQuantities(t *testing.T) {
	svc := impl.NewInventoryService(&mocks.InventoryRepositoryMock{}, nil)

	_, err := svc.CreateItem(context.Background(), &inventory.CreateItemRequest{Name: "x", Quantity: -1})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateItem_RequiresName(t *testing.T) {
	svc := impl.NewInventoryService(&mocks.InventoryRepositoryMock{}, nil)

	_, err := svc.CreateItem(context.Background(), &inventory.CreateItemRequest{Quantity: 1})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateItem_PassesThroughToStore(t *testing.T) {
	var created *inventory.Item
	repo := &mocks.InventoryRepositoryMock{
		CreateFn: func(ctx context.Context, item *inventory.Item) error {
			created = item
			return nil
		},
	}
	svc := impl.NewInventoryService(repo, nil)

	item, err := svc.CreateItem(context.Background(), &inventory.CreateItemRequest{Name: "Beakers", SKU: "BK-1", Quantity: 3, Unit: "pcs"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.Name != "Beakers" || item.SKU != "BK-1" {
		t.Fatal("expected request fields copied onto the stored item")
	}
}

func TestUpdateItem_RejectsNegativePointerFields(t *testing.T) {
	svc := impl.NewInventoryService(&mocks.InventoryRepositoryMock{}, nil)

	neg := -5
	_, err := svc.UpdateItem(context.Background(), uuid.New(), &inventory.UpdateItemRequest{Quantity: &neg})
	if !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
