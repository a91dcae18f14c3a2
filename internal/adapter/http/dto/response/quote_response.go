package response

import (
	"time"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase"
)

type QuoteResponse struct {
	ID              int64      `json:"id"`
	ClientID        int64      `json:"client_id"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Total           string     `json:"total"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovedBy      *int64     `json:"approved_by,omitempty"`
	RejectedAt      *time.Time `json:"rejected_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type EquipmentResponse struct {
	ID              string    `json:"id"`
	ClientID        int64     `json:"client_id"`
	InventoryItemID *int64    `json:"inventory_item_id,omitempty"`
	Serial          string    `json:"serial"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	CapacityBTU     int       `json:"capacity_btu"`
	Status          string    `json:"status"`
	InstalledAt     time.Time `json:"installed_at"`
}

type WorkOrderResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	EquipmentID  *string   `json:"equipment_id,omitempty"`
	Technician   string    `json:"technician"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Notes        string    `json:"notes"`
	MaterialCost string    `json:"material_cost"`
}

type ApprovalResponse struct {
	Quote            QuoteResponse       `json:"quote"`
	WorkOrder        WorkOrderResponse   `json:"work_order"`
	Equipment        []EquipmentResponse `json:"equipment"`
	UnitsProvisioned int                 `json:"units_provisioned"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:              q.ID,
		ClientID:        q.ClientID,
		Type:            string(q.Type),
		Status:          string(q.Status),
		Total:           q.Total.StringFixed(2),
		ApprovedAt:      q.ApprovedAt,
		ApprovedBy:      q.ApprovedBy,
		RejectedAt:      q.RejectedAt,
		RejectionReason: q.RejectionReason,
		UpdatedAt:       q.UpdatedAt,
	}
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:              e.ID,
		ClientID:        e.ClientID,
		InventoryItemID: e.InventoryItemID,
		Serial:          e.Serial,
		Brand:           e.Brand,
		Model:           e.Model,
		CapacityBTU:     e.CapacityBTU,
		Status:          string(e.Status),
		InstalledAt:     e.InstalledAt,
	}
}

func FromWorkOrder(wo entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           wo.ID,
		Type:         string(wo.Type),
		Status:       string(wo.Status),
		EquipmentID:  wo.EquipmentID,
		Technician:   wo.Technician,
		ScheduledFor: wo.ScheduledFor,
		Notes:        wo.Notes,
		MaterialCost: wo.MaterialCost.StringFixed(2),
	}
}

func FromApprovalResult(r usecase.ApprovalResult) ApprovalResponse {
	equipment := make([]EquipmentResponse, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		equipment = append(equipment, FromEquipment(e))
	}
	return ApprovalResponse{
		Quote:            FromQuote(r.Quote),
		WorkOrder:        FromWorkOrder(r.WorkOrder),
		Equipment:        equipment,
		UnitsProvisioned: r.UnitsProvisioned,
	}
}
