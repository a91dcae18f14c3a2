package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type WorkOrderType string

const (
	WorkOrderTypeInstallation WorkOrderType = "installation"
	WorkOrderTypeMaintenance  WorkOrderType = "maintenance"
	WorkOrderTypeRepair       WorkOrderType = "repair"
)

type WorkOrderStatus string

const (
	WorkOrderStatusScheduled WorkOrderStatus = "scheduled"
)

// UnassignedTechnician is the placeholder until dispatch picks a technician.
const UnassignedTechnician = "unassigned"

// WorkOrder is one scheduled visit.
//
// Storage model (DynamoDB):
//   - PK: id (string, uuid)
//   - a guard item with id "quote#<quote_id>" makes quote_id unique across work orders.
//
// Invariant: at most one work order references a given non-nil QuoteID.
type WorkOrder struct {
	ID           string          `json:"id"`
	ClientID     int64           `json:"client_id"`
	EquipmentID  *string         `json:"equipment_id,omitempty"`
	QuoteID      *int64          `json:"quote_id,omitempty"`
	Type         WorkOrderType   `json:"type"`
	Status       WorkOrderStatus `json:"status"`
	Technician   string          `json:"technician"`
	ScheduledFor time.Time       `json:"scheduled_for"`
	Notes        string          `json:"notes"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	CreatedBy    int64           `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}
