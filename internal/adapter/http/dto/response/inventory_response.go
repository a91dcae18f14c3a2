package response

import (
	"time"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase"
)

type InventoryItemResponse struct {
	ID          int64     `json:"id"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	CapacityBTU int       `json:"capacity_btu"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	UnitPrice   string    `json:"unit_price"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AvailabilityResponse struct {
	InventoryItemID int64  `json:"inventory_item_id"`
	Requested       int    `json:"requested"`
	Stock           int    `json:"stock"`
	Status          string `json:"status"`
	Available       bool   `json:"available"`
	Reason          string `json:"reason,omitempty"`
}

func FromInventoryItem(i entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          i.ID,
		Brand:       i.Brand,
		Model:       i.Model,
		CapacityBTU: i.CapacityBTU,
		Stock:       i.Stock,
		Status:      string(i.Status),
		UnitPrice:   i.UnitPrice.StringFixed(2),
		UpdatedAt:   i.UpdatedAt,
	}
}

func FromAvailability(a usecase.StockAvailability, requested int) AvailabilityResponse {
	return AvailabilityResponse{
		InventoryItemID: a.Item.ID,
		Requested:       requested,
		Stock:           a.Item.Stock,
		Status:          string(a.Item.Status),
		Available:       a.Available,
		Reason:          a.Reason,
	}
}
