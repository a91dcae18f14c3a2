package interfaces

import (
	"context"
	"errors"

	"hvac_service/internal/domain/entities"
)

//go:generate mockgen -source=unit_of_work_interface.go -destination=mocks/unit_of_work_interface_mock.go

// Errors stores report when a store-level guard rejects a write.
var (
	// ErrWorkOrderExists: a work order already references the quote (unique quote_id).
	ErrWorkOrderExists = errors.New("work order already exists for quote")
	// ErrQuoteStateChanged: the quote left the status it was read with.
	ErrQuoteStateChanged = errors.New("quote state changed concurrently")
	// ErrStaleWrite: an inventory or equipment row changed after it was read.
	ErrStaleWrite = errors.New("stale write")
	// ErrTransactionTooLarge: the store cannot commit this many writes atomically.
	ErrTransactionTooLarge = errors.New("transaction too large")
)

// ITxRepository is the persistence surface available inside one transaction.
//
// Getters return a zero-value entity (ID == 0 or "") when the row does not exist, the same
// convention the repositories follow outside transactions. Reads of the quote and of inventory
// items lock or version the row so the writes below fail instead of overwriting a concurrent
// change. Writes become visible to other transactions only when WithinTx commits.
type ITxRepository interface {
	GetQuote(ctx context.Context, id int64) (entities.Quote, error)
	GetClient(ctx context.Context, id int64) (entities.Client, error)
	GetInventoryItem(ctx context.Context, id int64) (entities.InventoryItem, error)
	HasWorkOrderForQuote(ctx context.Context, quoteID int64) (bool, error)
	ListEquipmentByClient(ctx context.Context, clientID int64) ([]entities.Equipment, error)

	// UpdateInventoryStock writes item.Stock/Status, provided the stored stock still equals previousStock.
	UpdateInventoryStock(ctx context.Context, item entities.InventoryItem, previousStock int) error
	CreateEquipment(ctx context.Context, e entities.Equipment) error
	// UpdateEquipmentStatus moves a unit from one status to another; ErrStaleWrite if it is no longer in from.
	UpdateEquipmentStatus(ctx context.Context, id string, from, to entities.EquipmentStatus) error
	// CreateWorkOrder fails with ErrWorkOrderExists when wo.QuoteID is already referenced.
	CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) error
	// UpdateQuoteStatus persists q's status fields, provided the stored status still equals from.
	UpdateQuoteStatus(ctx context.Context, q entities.Quote, from entities.QuoteStatus) error
}

// IUnitOfWork runs fn inside one atomic store transaction. If fn returns an error nothing
// fn wrote is persisted; the error is returned as is. Commit-time guard failures are reported
// with the errors above.
type IUnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx ITxRepository) error) error
}
