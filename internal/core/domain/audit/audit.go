package audit

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntries bounds the in-memory audit trail; the oldest entries are
// evicted once the cap is exceeded.
const MaxEntries = 1000

type Log struct {
	ID         uuid.UUID      `json:"id"`
	Action     Action         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	UserID     uuid.UUID      `json:"userId"`
	UserName   string         `json:"userName"`
	Timestamp  time.Time      `json:"timestamp"`
	Details    map[string]any `json:"details"`
}

type Action string

const (
	ActionUserLogin         Action = "USER_LOGIN"
	ActionUserLogout        Action = "USER_LOGOUT"
	ActionInventoryCreate   Action = "INVENTORY_CREATE"
	ActionInventoryUpdate   Action = "INVENTORY_UPDATE"
	ActionOrderCreate       Action = "ORDER_CREATE"
	ActionOrderStatusUpdate Action = "ORDER_STATUS_UPDATE"
)

const (
	EntityUser      = "user"
	EntityInventory = "inventory"
	EntityOrder     = "order"
)

// Entry represents the request to record an audit log entry; id and
// timestamp are assigned by the service.
type Entry struct {
	Action     Action         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	UserID     uuid.UUID      `json:"userId"`
	UserName   string         `json:"userName"`
	Details    map[string]any `json:"details,omitempty"`
}

// Filter represents filters for querying audit logs
type Filter struct {
	EntityType string `query:"entityType"`
	UserID     string `query:"userId"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}
