package usecase

import (
	"context"
	"fmt"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"
)

// StockAvailability answers "can item cover quantity right now?". Reason is set when it cannot.
type StockAvailability struct {
	Available bool
	Item      entities.InventoryItem
	Reason    string
}

// StockLedger is the only writer of InventoryItem.Stock. Every call runs against an open
// transaction so the read, the check and the write commit or roll back together.
type StockLedger struct {
	clock interfaces.IClock
}

func NewStockLedger(clock interfaces.IClock) *StockLedger {
	if clock == nil {
		clock = systemClock{}
	}
	return &StockLedger{clock: clock}
}

func (l *StockLedger) CheckAvailability(ctx context.Context, tx interfaces.ITxRepository, itemID int64, quantity int) (StockAvailability, error) {
	if quantity <= 0 {
		return StockAvailability{}, ErrInvalidQuantity
	}
	item, err := tx.GetInventoryItem(ctx, itemID)
	if err != nil {
		return StockAvailability{}, err
	}
	if item.ID == 0 {
		return StockAvailability{}, ErrInventoryItemNotFound
	}
	return availabilityOf(item, quantity), nil
}

func availabilityOf(item entities.InventoryItem, quantity int) StockAvailability {
	switch {
	case item.IsExhausted():
		return StockAvailability{Item: item, Reason: fmt.Sprintf("%s is exhausted", item.DisplayName())}
	case item.Stock < quantity:
		return StockAvailability{Item: item, Reason: fmt.Sprintf("insufficient stock for %s: available %d, requested %d", item.DisplayName(), item.Stock, quantity)}
	}
	return StockAvailability{Available: true, Item: item}
}

// Decrement takes quantity units out of stock. Stock reaching zero marks the item exhausted.
func (l *StockLedger) Decrement(ctx context.Context, tx interfaces.ITxRepository, itemID int64, quantity int) (entities.InventoryItem, error) {
	availability, err := l.CheckAvailability(ctx, tx, itemID, quantity)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if !availability.Available {
		return entities.InventoryItem{}, insufficientStock(availability.Item, quantity)
	}

	previous := availability.Item.Stock
	updated := availability.Item
	updated.Stock = previous - quantity
	updated.Status = entities.DeriveInventoryStatus(updated.Stock)
	updated.UpdatedAt = l.clock.Now()

	if err := tx.UpdateInventoryStock(ctx, updated, previous); err != nil {
		return entities.InventoryItem{}, err
	}
	return updated, nil
}

// Increment puts quantity units back (restock or return). The item is marked available
// whatever the resulting count; low-stock thresholds are not modelled.
func (l *StockLedger) Increment(ctx context.Context, tx interfaces.ITxRepository, itemID int64, quantity int) (entities.InventoryItem, error) {
	if quantity <= 0 {
		return entities.InventoryItem{}, ErrInvalidQuantity
	}
	item, err := tx.GetInventoryItem(ctx, itemID)
	if err != nil {
		return entities.InventoryItem{}, err
	}
	if item.ID == 0 {
		return entities.InventoryItem{}, ErrInventoryItemNotFound
	}

	previous := item.Stock
	item.Stock = previous + quantity
	item.Status = entities.InventoryStatusAvailable
	item.UpdatedAt = l.clock.Now()

	if err := tx.UpdateInventoryStock(ctx, item, previous); err != nil {
		return entities.InventoryItem{}, err
	}
	return item, nil
}

func insufficientStock(item entities.InventoryItem, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ItemID:    item.ID,
		ItemName:  item.DisplayName(),
		Available: item.Stock,
		Requested: requested,
	}
}
