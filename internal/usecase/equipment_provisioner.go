package usecase

import (
	"context"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/domain/services"
	"hvac_service/internal/usecase/interfaces"
)

// Provisioning is what an installation approval created. Depleted lists the inventory items
// that reached zero stock during the run.
type Provisioning struct {
	Equipment  []entities.Equipment
	TotalUnits int
	Depleted   []entities.InventoryItem
}

// EquipmentProvisioner turns approved quotes into equipment: new units for installations,
// a selected existing unit for maintenance and repair.
type EquipmentProvisioner struct {
	ledger  *StockLedger
	ids     interfaces.IIDGenerator
	serials interfaces.ISerialGenerator
	clock   interfaces.IClock
}

func NewEquipmentProvisioner(ledger *StockLedger, ids interfaces.IIDGenerator, serials interfaces.ISerialGenerator, clock interfaces.IClock) *EquipmentProvisioner {
	if clock == nil {
		clock = systemClock{}
	}
	if ledger == nil {
		ledger = NewStockLedger(clock)
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	if serials == nil {
		serials = NewULIDSerialGenerator(clock)
	}
	return &EquipmentProvisioner{ledger: ledger, ids: ids, serials: serials, clock: clock}
}

func (p *EquipmentProvisioner) ProvisionInstallation(ctx context.Context, tx interfaces.ITxRepository, q entities.Quote, client entities.Client, lines services.InstallationLines) (Provisioning, error) {
	var out Provisioning
	sequence := 0

	provision := func(itemID int64, quantity int) error {
		availability, err := p.ledger.CheckAvailability(ctx, tx, itemID, quantity)
		if err != nil {
			return err
		}
		if !availability.Available {
			return insufficientStock(availability.Item, quantity)
		}
		for i := 0; i < quantity; i++ {
			sequence++
			unit := p.newUnit(q, client, availability.Item, sequence)
			if err := tx.CreateEquipment(ctx, unit); err != nil {
				return err
			}
			out.Equipment = append(out.Equipment, unit)
		}
		updated, err := p.ledger.Decrement(ctx, tx, itemID, quantity)
		if err != nil {
			return err
		}
		if updated.IsExhausted() {
			out.Depleted = append(out.Depleted, updated)
		}
		return nil
	}

	switch l := lines.(type) {
	case services.EquipmentLineList:
		for _, line := range l.Lines {
			if err := provision(line.InventoryItemID, line.Quantity); err != nil {
				return Provisioning{}, err
			}
		}
	case services.LegacySingleItem:
		if err := provision(l.InventoryItemID, 1); err != nil {
			return Provisioning{}, err
		}
	}

	out.TotalUnits = len(out.Equipment)
	if out.TotalUnits == 0 {
		return Provisioning{}, ErrNoEquipmentCreated
	}
	return out, nil
}

func (p *EquipmentProvisioner) newUnit(q entities.Quote, client entities.Client, item entities.InventoryItem, sequence int) entities.Equipment {
	now := p.clock.Now()
	itemID := item.ID
	quoteID := q.ID
	return entities.Equipment{
		ID:              p.ids.NewID(),
		ClientID:        client.ID,
		InventoryItemID: &itemID,
		QuoteID:         &quoteID,
		Serial:          p.serials.NewSerial(item, sequence),
		Brand:           item.Brand,
		Model:           item.Model,
		CapacityBTU:     item.CapacityBTU,
		Status:          entities.EquipmentStatusActive,
		InstalledAt:     now,
		CreatedAt:       now,
	}
}

// SelectEquipmentForService picks the unit a maintenance or repair visit targets and moves it
// to in_maintenance. A unit already in maintenance is returned as is.
func (p *EquipmentProvisioner) SelectEquipmentForService(ctx context.Context, tx interfaces.ITxRepository, client entities.Client, mode services.ServiceMode) (entities.Equipment, error) {
	owned, err := tx.ListEquipmentByClient(ctx, client.ID)
	if err != nil {
		return entities.Equipment{}, err
	}
	chosen, ok := services.SelectServiceCandidate(owned, mode)
	if !ok {
		return entities.Equipment{}, ErrNoEligibleEquipment
	}
	if chosen.Status == entities.EquipmentStatusInMaintenance {
		return chosen, nil
	}
	if err := tx.UpdateEquipmentStatus(ctx, chosen.ID, chosen.Status, entities.EquipmentStatusInMaintenance); err != nil {
		return entities.Equipment{}, err
	}
	chosen.Status = entities.EquipmentStatusInMaintenance
	return chosen, nil
}
