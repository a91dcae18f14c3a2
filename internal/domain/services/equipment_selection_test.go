package services

import (
	"testing"
	"time"

	"hvac_service/internal/domain/entities"
)

func TestSelectServiceCandidate(t *testing.T) {
	base := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	oldest := entities.Equipment{ID: "old", Status: entities.EquipmentStatusActive, InstalledAt: base}
	middle := entities.Equipment{ID: "mid", Status: entities.EquipmentStatusInMaintenance, InstalledAt: base.AddDate(0, 6, 0)}
	newest := entities.Equipment{ID: "new", Status: entities.EquipmentStatusActive, InstalledAt: base.AddDate(1, 0, 0)}
	retired := entities.Equipment{ID: "ret", Status: entities.EquipmentStatusDecommissioned, InstalledAt: base.AddDate(2, 0, 0)}
	all := []entities.Equipment{middle, newest, retired, oldest}

	t.Run("maintenance picks oldest active", func(t *testing.T) {
		got, ok := SelectServiceCandidate(all, ServiceModeMaintenance)
		if !ok || got.ID != "old" {
			t.Fatalf("expected old, got %+v (ok=%v)", got, ok)
		}
	})

	t.Run("repair picks newest serviceable", func(t *testing.T) {
		got, ok := SelectServiceCandidate(all, ServiceModeRepair)
		if !ok || got.ID != "new" {
			t.Fatalf("expected new, got %+v (ok=%v)", got, ok)
		}
	})

	t.Run("repair falls back to in maintenance", func(t *testing.T) {
		got, ok := SelectServiceCandidate([]entities.Equipment{retired, middle}, ServiceModeRepair)
		if !ok || got.ID != "mid" {
			t.Fatalf("expected mid, got %+v (ok=%v)", got, ok)
		}
	})

	t.Run("nothing serviceable", func(t *testing.T) {
		if _, ok := SelectServiceCandidate([]entities.Equipment{retired, middle}, ServiceModeMaintenance); ok {
			t.Fatalf("expected no candidate")
		}
	})

	t.Run("ties break by id", func(t *testing.T) {
		a := entities.Equipment{ID: "a", Status: entities.EquipmentStatusActive, InstalledAt: base}
		b := entities.Equipment{ID: "b", Status: entities.EquipmentStatusActive, InstalledAt: base}
		got, _ := SelectServiceCandidate([]entities.Equipment{b, a}, ServiceModeMaintenance)
		if got.ID != "a" {
			t.Fatalf("expected a, got %s", got.ID)
		}
	})
}

func TestResolveInstallationLines(t *testing.T) {
	t.Run("lines win over legacy reference", func(t *testing.T) {
		legacy := int64(3)
		q := entities.Quote{InventoryItemID: &legacy, EquipmentLines: []entities.QuoteEquipmentLine{
			{InventoryItemID: 1, Quantity: 2}, {InventoryItemID: 1, Quantity: 1}, {InventoryItemID: 2, Quantity: 1},
		}}
		lines, ok := ResolveInstallationLines(q)
		if !ok {
			t.Fatalf("expected lines")
		}
		list, isList := lines.(EquipmentLineList)
		if !isList {
			t.Fatalf("expected EquipmentLineList, got %T", lines)
		}
		if list.TotalUnits() != 4 {
			t.Fatalf("expected 4 units, got %d", list.TotalUnits())
		}
		if ids := list.ItemIDs(); len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
			t.Fatalf("unexpected item ids: %v", ids)
		}
	})

	t.Run("legacy", func(t *testing.T) {
		legacy := int64(3)
		lines, ok := ResolveInstallationLines(entities.Quote{InventoryItemID: &legacy})
		if !ok {
			t.Fatalf("expected legacy lines")
		}
		if l, isLegacy := lines.(LegacySingleItem); !isLegacy || l.InventoryItemID != 3 || l.TotalUnits() != 1 {
			t.Fatalf("unexpected lines: %#v", lines)
		}
	})

	t.Run("neither", func(t *testing.T) {
		if _, ok := ResolveInstallationLines(entities.Quote{}); ok {
			t.Fatalf("expected no lines")
		}
	})
}
