package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteType string

const (
	QuoteTypeInstallation QuoteType = "installation"
	QuoteTypeMaintenance  QuoteType = "maintenance"
	QuoteTypeRepair       QuoteType = "repair"
)

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - Quotes are created as pending by the quoting screens (outside this service).
//   - approved, rejected and deleted are terminal; the approval use case is their only writer.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusDeleted  QuoteStatus = "deleted"
)

func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusApproved || s == QuoteStatusRejected || s == QuoteStatusDeleted
}

// QuoteEquipmentLine asks for Quantity units of an inventory item. Immutable after quote creation.
type QuoteEquipmentLine struct {
	ID              int64           `json:"id"`
	QuoteID         int64           `json:"quote_id"`
	InventoryItemID int64           `json:"inventory_item_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// QuoteMaterialLine is a consumable billed with the quote (pipes, gas, brackets).
type QuoteMaterialLine struct {
	ID          int64           `json:"id"`
	QuoteID     int64           `json:"quote_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Quote is a priced proposal for installation, maintenance or repair work.
//
// Storage model (DynamoDB):
//   - PK: id (number)
//   - equipment_lines and material_lines are embedded lists (child records never change).
//
// Installation quotes reference either EquipmentLines or, for quotes created before
// multi-line support, a single InventoryItemID.
type Quote struct {
	ID              int64                `json:"id"`
	ClientID        int64                `json:"client_id"`
	Type            QuoteType            `json:"type"`
	Status          QuoteStatus          `json:"status"`
	Address         string               `json:"address"`
	Description     string               `json:"description"`
	LaborCost       decimal.Decimal      `json:"labor_cost"`
	MaterialCost    decimal.Decimal      `json:"material_cost"`
	Total           decimal.Decimal      `json:"total"`
	InventoryItemID *int64               `json:"inventory_item_id,omitempty"`
	EquipmentLines  []QuoteEquipmentLine `json:"equipment_lines,omitempty"`
	MaterialLines   []QuoteMaterialLine  `json:"material_lines,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
	ApprovedAt      *time.Time           `json:"approved_at,omitempty"`
	ApprovedBy      *int64               `json:"approved_by,omitempty"`
	RejectedAt      *time.Time           `json:"rejected_at,omitempty"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
}
