package services

import (
	"fmt"

	"hvac_service/internal/domain/entities"
)

// StockShortfall describes the first equipment line that cannot be served.
type StockShortfall struct {
	ItemID    int64
	Available int
	Requested int
}

// EligibilityResult is the outcome of ValidateEligibility. Reason is user-facing.
type EligibilityResult struct {
	Valid     bool
	Reason    string
	Shortfall *StockShortfall
}

func eligible() EligibilityResult { return EligibilityResult{Valid: true} }

func ineligible(format string, args ...any) EligibilityResult {
	return EligibilityResult{Reason: fmt.Sprintf(format, args...)}
}

// ValidateEligibility applies the per-type approval rules.
//
// items must hold every inventory item referenced by the quote; equipment is the
// client's equipment. The function has no side effects.
func ValidateEligibility(q entities.Quote, items map[int64]entities.InventoryItem, equipment []entities.Equipment) EligibilityResult {
	switch q.Type {
	case entities.QuoteTypeInstallation:
		return validateInstallation(q, items)
	case entities.QuoteTypeMaintenance:
		if hasEquipmentIn(equipment, entities.EquipmentStatusActive) {
			return eligible()
		}
		return ineligible("client has no active equipment to maintain")
	case entities.QuoteTypeRepair:
		if hasEquipmentIn(equipment, entities.EquipmentStatusActive, entities.EquipmentStatusInMaintenance) {
			return eligible()
		}
		return ineligible("client has no equipment eligible for repair")
	default:
		return ineligible("unsupported quote type %q", q.Type)
	}
}

func validateInstallation(q entities.Quote, items map[int64]entities.InventoryItem) EligibilityResult {
	lines, ok := ResolveInstallationLines(q)
	if !ok {
		return ineligible("installation quote has no equipment lines")
	}

	switch l := lines.(type) {
	case EquipmentLineList:
		for _, line := range l.Lines {
			if line.Quantity <= 0 {
				return ineligible("equipment line for item %d has invalid quantity %d", line.InventoryItemID, line.Quantity)
			}
			item, found := items[line.InventoryItemID]
			if !found {
				return ineligible("inventory item %d not found", line.InventoryItemID)
			}
			if item.IsExhausted() || item.Stock < line.Quantity {
				res := ineligible("insufficient stock for %s: available %d, requested %d", item.DisplayName(), item.Stock, line.Quantity)
				res.Shortfall = &StockShortfall{ItemID: item.ID, Available: item.Stock, Requested: line.Quantity}
				return res
			}
		}
		return eligible()
	case LegacySingleItem:
		item, found := items[l.InventoryItemID]
		if !found {
			return ineligible("inventory item %d not found", l.InventoryItemID)
		}
		if item.IsExhausted() || item.Stock <= 0 {
			res := ineligible("insufficient stock for %s: available %d, requested 1", item.DisplayName(), item.Stock)
			res.Shortfall = &StockShortfall{ItemID: item.ID, Available: item.Stock, Requested: 1}
			return res
		}
		return eligible()
	}
	return ineligible("installation quote has no equipment lines")
}

func hasEquipmentIn(equipment []entities.Equipment, statuses ...entities.EquipmentStatus) bool {
	for _, e := range equipment {
		for _, s := range statuses {
			if e.Status == s {
				return true
			}
		}
	}
	return false
}
