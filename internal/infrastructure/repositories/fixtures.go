package repositories

import (
	"time"

	"github.com/centralmgmt/portal/internal/core/domain/inventory"
	"github.com/centralmgmt/portal/internal/core/domain/order"
	"github.com/centralmgmt/portal/internal/core/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Demo data standing in for the upstream Quartzy integration until the real
// API is wired up.

func DemoInventoryItems() []*inventory.Item {
	now := time.Now().UTC()
	return []*inventory.Item{
		{
			ID:          uuid.New(),
			Name:        "Pipette Tips 200µL",
			SKU:         "PT-200",
			Quantity:    5000,
			Unit:        "tips",
			Category:    "Consumables",
			Location:    "Lab A - Shelf 1",
			MinQuantity: 1000,
			MaxQuantity: 10000,
			LastUpdated: now,
			Supplier:    "Fisher Scientific",
		},
		{
			ID:          uuid.New(),
			Name:        "Nitrile Gloves (M)",
			SKU:         "NG-M",
			Quantity:    200,
			Unit:        "pairs",
			Category:    "Safety",
			Location:    "Supply Room",
			MinQuantity: 50,
			MaxQuantity: 500,
			LastUpdated: now,
			Supplier:    "VWR",
		},
		{
			ID:          uuid.New(),
			Name:        "PCR Tubes 0.2mL",
			SKU:         "PCR-02",
			Quantity:    3000,
			Unit:        "tubes",
			Category:    "Consumables",
			Location:    "Lab B - Freezer",
			MinQuantity: 500,
			MaxQuantity: 5000,
			LastUpdated: now,
			Supplier:    "Thermo Fisher",
		},
	}
}

// DemoOrderRequest builds a pending order referencing the given inventory
// item.
func DemoOrderRequest(item *inventory.Item) *order.CreateOrderRequest {
	return &order.CreateOrderRequest{
		Items: []order.Item{
			{
				ID:              uuid.New(),
				InventoryItemID: item.ID,
				Name:            item.Name,
				Quantity:        10,
				UnitPrice:       25,
				TotalPrice:      250,
			},
		},
		TotalAmount: 250,
		RequestedBy: "John Doe",
		Vendor:      "Fisher Scientific",
		Notes:       "Urgent - running low on stock",
	}
}

// DemoUsers returns the built-in portal accounts. All share the password
// "password".
func DemoUsers() []*user.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	return []*user.User{
		{ID: uuid.New(), Email: "admin@example.com", PasswordHash: string(hash), Name: "Admin User", Role: user.RoleAdmin},
		{ID: uuid.New(), Email: "manager@example.com", PasswordHash: string(hash), Name: "Lab Manager", Role: user.RoleManager},
		{ID: uuid.New(), Email: "user@example.com", PasswordHash: string(hash), Name: "Regular User", Role: user.RoleUser},
	}
}
