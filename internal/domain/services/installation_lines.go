package services

import "hvac_service/internal/domain/entities"

// InstallationLines is what an installation quote asks to provision: either a list of
// equipment lines or the legacy single inventory reference.
type InstallationLines interface {
	ItemIDs() []int64
	TotalUnits() int
	isInstallationLines()
}

type EquipmentLineList struct {
	Lines []entities.QuoteEquipmentLine
}

func (l EquipmentLineList) ItemIDs() []int64 {
	seen := make(map[int64]struct{}, len(l.Lines))
	ids := make([]int64, 0, len(l.Lines))
	for _, line := range l.Lines {
		if _, ok := seen[line.InventoryItemID]; ok {
			continue
		}
		seen[line.InventoryItemID] = struct{}{}
		ids = append(ids, line.InventoryItemID)
	}
	return ids
}

func (l EquipmentLineList) TotalUnits() int {
	total := 0
	for _, line := range l.Lines {
		total += line.Quantity
	}
	return total
}

func (EquipmentLineList) isInstallationLines() {}

// LegacySingleItem is a quote created before multi-line support: exactly one unit of one item.
type LegacySingleItem struct {
	InventoryItemID int64
}

func (l LegacySingleItem) ItemIDs() []int64 { return []int64{l.InventoryItemID} }

func (LegacySingleItem) TotalUnits() int { return 1 }

func (LegacySingleItem) isInstallationLines() {}

// ResolveInstallationLines picks the provisioning shape of a quote. Equipment lines win
// over the legacy reference; ok is false when the quote carries neither.
func ResolveInstallationLines(q entities.Quote) (InstallationLines, bool) {
	if len(q.EquipmentLines) > 0 {
		lines := make([]entities.QuoteEquipmentLine, len(q.EquipmentLines))
		copy(lines, q.EquipmentLines)
		return EquipmentLineList{Lines: lines}, true
	}
	if q.InventoryItemID != nil {
		return LegacySingleItem{InventoryItemID: *q.InventoryItemID}, true
	}
	return nil, false
}
