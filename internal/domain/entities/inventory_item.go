package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStatus is a projection of the stock count, never set independently by business rules.
type InventoryStatus string

const (
	InventoryStatusAvailable InventoryStatus = "available"
	InventoryStatusExhausted InventoryStatus = "exhausted"
)

// InventoryItem is a sellable equipment type (brand/model/capacity) with its stock on hand.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//
// Invariant: Stock >= 0.
type InventoryItem struct {
	ID          int64           `json:"id"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	CapacityBTU int             `json:"capacity_btu"`
	Stock       int             `json:"stock"`
	Status      InventoryStatus `json:"status"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeriveInventoryStatus maps a stock count to its status.
func DeriveInventoryStatus(stock int) InventoryStatus {
	if stock == 0 {
		return InventoryStatusExhausted
	}
	return InventoryStatusAvailable
}

func (i InventoryItem) IsExhausted() bool {
	return i.Status == InventoryStatusExhausted
}

// DisplayName is used in user-facing messages ("Carrier XPower 12000 BTU").
func (i InventoryItem) DisplayName() string {
	return i.Brand + " " + i.Model
}
