package repositories

import (
	"context"
	"testing"

	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/google/uuid"
)

func seedItems(n int, category string) []*inventory.Item {
	items := make([]*inventory.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, &inventory.Item{ID: uuid.New(), Name: "Item", Category: category})
	}
	return items
}

func TestInventoryRepository_ListPaging(t *testing.T) {
	repo := NewInventoryRepository(seedItems(5, "Consumables")...)
	ctx := context.Background()

	items, total, err := repo.List(ctx, 1, 2, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page, got %d", len(items))
	}

	items, _, _ = repo.List(ctx, 3, 2, "")
	if len(items) != 1 {
		t.Fatalf("expected 1 item on last page, got %d", len(items))
	}
}

func TestInventoryRepository_ListPastRangeReturnsEmpty(t *testing.T) {
	repo := NewInventoryRepository(seedItems(3, "")...)

	items, total, err := repo.List(context.Background(), 10, 20, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page past range, got %d items", len(items))
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
}

func TestInventoryRepository_ListCategoryFilter(t *testing.T) {
	seed := append(seedItems(2, "Safety"), seedItems(3, "Consumables")...)
	repo := NewInventoryRepository(seed...)

	items, total, err := repo.List(context.Background(), 1, 20, "Safety")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 safety items, got total=%d len=%d", total, len(items))
	}
	for _, it := range items {
		if it.Category != "Safety" {
			t.Fatalf("unexpected category %q", it.Category)
		}
	}
}

func TestInventoryRepository_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewInventoryRepository()
	item := &inventory.Item{Name: "Beakers", SKU: "BK-1"}

	if err := repo.Create(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if item.LastUpdated.IsZero() {
		t.Fatal("expected LastUpdated to be set")
	}

	got, err := repo.GetByID(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Beakers" {
		t.Fatalf("unexpected name %q", got.Name)
	}
}

func TestInventoryRepository_UpdateMergesOnlySetFields(t *testing.T) {
	repo := NewInventoryRepository()
	item := &inventory.Item{Name: "Gloves", SKU: "GL-1", Quantity: 100, Location: "Shelf 2"}
	_ = repo.Create(context.Background(), item)

	qty := 40
	updated, err := repo.Update(context.Background(), item.ID, &inventory.UpdateItemRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 40 {
		t.Fatalf("expected quantity 40, got %d", updated.Quantity)
	}
	if updated.Name != "Gloves" || updated.SKU != "GL-1" || updated.Location != "Shelf 2" {
		t.Fatal("expected unset fields to be preserved")
	}
}

func TestInventoryRepository_UpdateUnknownID(t *testing.T) {
	repo := NewInventoryRepository()
	_, err := repo.Update(context.Background(), uuid.New(), &inventory.UpdateItemRequest{})
	if err != inventory.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInventoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewInventoryRepository()
	item := &inventory.Item{Name: "Tips"}
	_ = repo.Create(context.Background(), item)

	got, _ := repo.GetByID(context.Background(), item.ID)
	got.Name = "Mutated"

	again, _ := repo.GetByID(context.Background(), item.ID)
	if again.Name != "Tips" {
		t.Fatal("expected store to be isolated from caller mutation")
	}
}
