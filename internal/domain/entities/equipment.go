package entities

import "time"

type EquipmentStatus string

const (
	EquipmentStatusActive         EquipmentStatus = "active"
	EquipmentStatusInMaintenance  EquipmentStatus = "in_maintenance"
	EquipmentStatusDecommissioned EquipmentStatus = "decommissioned"
)

// Equipment is a physical unit installed at a client.
//
// Storage model (DynamoDB):
//   - PK: id (string, uuid)
//   - GSI1 (client_id-index): client_id
//
// InventoryItemID and QuoteID trace the unit back to the catalog item and the quote that provisioned it;
// both are nil for equipment registered before it was sold through a quote.
type Equipment struct {
	ID              string          `json:"id"`
	ClientID        int64           `json:"client_id"`
	InventoryItemID *int64          `json:"inventory_item_id,omitempty"`
	QuoteID         *int64          `json:"quote_id,omitempty"`
	Serial          string          `json:"serial"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	CapacityBTU     int             `json:"capacity_btu"`
	Status          EquipmentStatus `json:"status"`
	InstalledAt     time.Time       `json:"installed_at"`
	CreatedAt       time.Time       `json:"created_at"`
}
