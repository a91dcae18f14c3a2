package events

import "time"

const (
	EventTypeQuoteApproved = "QuoteApproved"
	EventTypeStockDepleted = "StockDepleted"
)

// QuoteApproved is emitted once an approval transaction has committed.
type QuoteApproved struct {
	QuoteID          int64     `json:"quoteId"`
	QuoteType        string    `json:"quoteType"`
	ClientID         int64     `json:"clientId"`
	WorkOrderID      string    `json:"workOrderId"`
	EquipmentIDs     []string  `json:"equipmentIds"`
	UnitsProvisioned int       `json:"unitsProvisioned"`
	ApprovedBy       int64     `json:"approvedBy"`
	ScheduledFor     time.Time `json:"scheduledFor"`
	OccurredAt       time.Time `json:"occurredAt"`
}

// StockDepleted is emitted when an approval brings an inventory item to zero.
type StockDepleted struct {
	InventoryItemID int64     `json:"inventoryItemId"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	QuoteID         int64     `json:"quoteId"`
	OccurredAt      time.Time `json:"occurredAt"`
}
