package services

import "hvac_service/internal/domain/entities"

// ServiceMode picks which existing unit a maintenance or repair visit targets.
type ServiceMode string

const (
	ServiceModeMaintenance ServiceMode = "maintenance"
	ServiceModeRepair      ServiceMode = "repair"
)

// SelectServiceCandidate chooses the unit to service.
//   - maintenance: the oldest installed active unit.
//   - repair: the most recently installed unit that is active or already in maintenance.
//
// Ties on InstalledAt are broken by ID so the choice is stable.
func SelectServiceCandidate(equipment []entities.Equipment, mode ServiceMode) (entities.Equipment, bool) {
	var (
		chosen entities.Equipment
		found  bool
	)
	for _, e := range equipment {
		if !serviceable(e, mode) {
			continue
		}
		if !found || better(e, chosen, mode) {
			chosen = e
			found = true
		}
	}
	return chosen, found
}

func serviceable(e entities.Equipment, mode ServiceMode) bool {
	switch mode {
	case ServiceModeMaintenance:
		return e.Status == entities.EquipmentStatusActive
	case ServiceModeRepair:
		return e.Status == entities.EquipmentStatusActive || e.Status == entities.EquipmentStatusInMaintenance
	}
	return false
}

func better(candidate, current entities.Equipment, mode ServiceMode) bool {
	if candidate.InstalledAt.Equal(current.InstalledAt) {
		return candidate.ID < current.ID
	}
	if mode == ServiceModeMaintenance {
		return candidate.InstalledAt.Before(current.InstalledAt)
	}
	return candidate.InstalledAt.After(current.InstalledAt)
}
