package usecase

import (
	"context"
	"errors"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IInventoryUseCase exposes the stock ledger to the inventory screens:
//   - GET  /inventory/{id}/availability => CheckStock()
//   - POST /inventory/{id}/restock      => Restock()
type IInventoryUseCase interface {
	CheckStock(ctx context.Context, itemID int64, quantity int) (StockAvailability, error)
	Restock(ctx context.Context, itemID int64, quantity int) (entities.InventoryItem, error)
}

type InventoryUseCase struct {
	uow    interfaces.IUnitOfWork
	ledger *StockLedger
	log    *zap.Logger
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(uow interfaces.IUnitOfWork, clock interfaces.IClock, logger *zap.Logger) *InventoryUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryUseCase{uow: uow, ledger: NewStockLedger(clock), log: logger.Named("inventory")}
}

func (u *InventoryUseCase) CheckStock(ctx context.Context, itemID int64, quantity int) (StockAvailability, error) {
	if itemID <= 0 {
		return StockAvailability{}, ErrInvalidInventoryItemID
	}
	if quantity <= 0 {
		return StockAvailability{}, ErrInvalidQuantity
	}
	if u.uow == nil {
		return StockAvailability{}, errors.New("unit of work not configured")
	}

	var out StockAvailability
	err := u.uow.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		a, err := u.ledger.CheckAvailability(ctx, tx, itemID, quantity)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return StockAvailability{}, err
	}
	return out, nil
}

func (u *InventoryUseCase) Restock(ctx context.Context, itemID int64, quantity int) (entities.InventoryItem, error) {
	if itemID <= 0 {
		return entities.InventoryItem{}, ErrInvalidInventoryItemID
	}
	if quantity <= 0 {
		return entities.InventoryItem{}, ErrInvalidQuantity
	}
	if u.uow == nil {
		return entities.InventoryItem{}, errors.New("unit of work not configured")
	}

	var out entities.InventoryItem
	err := u.uow.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		item, err := u.ledger.Increment(ctx, tx, itemID, quantity)
		if err != nil {
			return err
		}
		out = item
		return nil
	})
	if err != nil {
		return entities.InventoryItem{}, translateStoreError(err)
	}
	u.log.Info("inventory restocked", zap.Int64("inventory_item_id", itemID), zap.Int("quantity", quantity), zap.Int("stock", out.Stock))
	return out, nil
}
