package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"
)

// MemoryUnitOfWork keeps every table in process memory. Transactions are serialized by a
// single mutex and run against a staged copy of the tables; commit swaps the copy in, so a
// failed fn leaves nothing behind.
//
// Used by tests and by STORAGE_DRIVER=memory for local runs.
type MemoryUnitOfWork struct {
	mu     sync.Mutex
	tables memoryTables
}

var _ interfaces.IUnitOfWork = (*MemoryUnitOfWork)(nil)

type memoryTables struct {
	clients          map[int64]entities.Client
	inventory        map[int64]entities.InventoryItem
	quotes           map[int64]entities.Quote
	equipment        map[string]entities.Equipment
	workOrders       map[string]entities.WorkOrder
	workOrderByQuote map[int64]string
}

func NewMemoryUnitOfWork() *MemoryUnitOfWork {
	return &MemoryUnitOfWork{tables: memoryTables{
		clients:          map[int64]entities.Client{},
		inventory:        map[int64]entities.InventoryItem{},
		quotes:           map[int64]entities.Quote{},
		equipment:        map[string]entities.Equipment{},
		workOrders:       map[string]entities.WorkOrder{},
		workOrderByQuote: map[int64]string{},
	}}
}

func (t memoryTables) clone() memoryTables {
	return memoryTables{
		clients:          cloneMap(t.clients),
		inventory:        cloneMap(t.inventory),
		quotes:           cloneMap(t.quotes),
		equipment:        cloneMap(t.equipment),
		workOrders:       cloneMap(t.workOrders),
		workOrderByQuote: cloneMap(t.workOrderByQuote),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (u *MemoryUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITxRepository) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	staged := u.tables.clone()
	if err := fn(ctx, &memoryTx{t: staged}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	u.tables = staged
	return nil
}

// Seeding and inspection helpers. They bypass transactions and overwrite existing rows.

func (u *MemoryUnitOfWork) PutClient(c entities.Client) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tables.clients[c.ID] = c
}

func (u *MemoryUnitOfWork) PutInventoryItem(i entities.InventoryItem) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tables.inventory[i.ID] = i
}

func (u *MemoryUnitOfWork) PutQuote(q entities.Quote) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tables.quotes[q.ID] = q
}

func (u *MemoryUnitOfWork) PutEquipment(e entities.Equipment) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tables.equipment[e.ID] = e
}

func (u *MemoryUnitOfWork) PutWorkOrder(wo entities.WorkOrder) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tables.workOrders[wo.ID] = wo
	if wo.QuoteID != nil {
		u.tables.workOrderByQuote[*wo.QuoteID] = wo.ID
	}
}

func (u *MemoryUnitOfWork) Quote(id int64) (entities.Quote, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	q, ok := u.tables.quotes[id]
	return q, ok
}

func (u *MemoryUnitOfWork) InventoryItem(id int64) (entities.InventoryItem, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	i, ok := u.tables.inventory[id]
	return i, ok
}

func (u *MemoryUnitOfWork) EquipmentByClient(clientID int64) []entities.Equipment {
	u.mu.Lock()
	defer u.mu.Unlock()
	return (&memoryTx{t: u.tables}).equipmentOf(clientID)
}

func (u *MemoryUnitOfWork) WorkOrders() []entities.WorkOrder {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.WorkOrder, 0, len(u.tables.workOrders))
	for _, wo := range u.tables.workOrders {
		out = append(out, wo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type memoryTx struct {
	t memoryTables
}

var _ interfaces.ITxRepository = (*memoryTx)(nil)

func (tx *memoryTx) GetQuote(_ context.Context, id int64) (entities.Quote, error) {
	return tx.t.quotes[id], nil
}

func (tx *memoryTx) GetClient(_ context.Context, id int64) (entities.Client, error) {
	return tx.t.clients[id], nil
}

func (tx *memoryTx) GetInventoryItem(_ context.Context, id int64) (entities.InventoryItem, error) {
	return tx.t.inventory[id], nil
}

func (tx *memoryTx) HasWorkOrderForQuote(_ context.Context, quoteID int64) (bool, error) {
	_, ok := tx.t.workOrderByQuote[quoteID]
	return ok, nil
}

func (tx *memoryTx) ListEquipmentByClient(_ context.Context, clientID int64) ([]entities.Equipment, error) {
	return tx.equipmentOf(clientID), nil
}

func (tx *memoryTx) equipmentOf(clientID int64) []entities.Equipment {
	var out []entities.Equipment
	for _, e := range tx.t.equipment {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].InstalledAt.Equal(out[j].InstalledAt) {
			return out[i].InstalledAt.Before(out[j].InstalledAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (tx *memoryTx) UpdateInventoryStock(_ context.Context, item entities.InventoryItem, previousStock int) error {
	stored, ok := tx.t.inventory[item.ID]
	if !ok || stored.Stock != previousStock {
		return fmt.Errorf("inventory item %d: %w", item.ID, interfaces.ErrStaleWrite)
	}
	if item.Stock < 0 {
		return fmt.Errorf("inventory item %d: negative stock %d", item.ID, item.Stock)
	}
	stored.Stock = item.Stock
	stored.Status = item.Status
	stored.UpdatedAt = item.UpdatedAt
	tx.t.inventory[item.ID] = stored
	return nil
}

func (tx *memoryTx) CreateEquipment(_ context.Context, e entities.Equipment) error {
	if _, exists := tx.t.equipment[e.ID]; exists {
		return fmt.Errorf("equipment %s: %w", e.ID, interfaces.ErrStaleWrite)
	}
	tx.t.equipment[e.ID] = e
	return nil
}

func (tx *memoryTx) UpdateEquipmentStatus(_ context.Context, id string, from, to entities.EquipmentStatus) error {
	stored, ok := tx.t.equipment[id]
	if !ok || stored.Status != from {
		return fmt.Errorf("equipment %s: %w", id, interfaces.ErrStaleWrite)
	}
	stored.Status = to
	tx.t.equipment[id] = stored
	return nil
}

func (tx *memoryTx) CreateWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	if wo.QuoteID != nil {
		if _, exists := tx.t.workOrderByQuote[*wo.QuoteID]; exists {
			return interfaces.ErrWorkOrderExists
		}
		tx.t.workOrderByQuote[*wo.QuoteID] = wo.ID
	}
	tx.t.workOrders[wo.ID] = wo
	return nil
}

func (tx *memoryTx) UpdateQuoteStatus(_ context.Context, q entities.Quote, from entities.QuoteStatus) error {
	stored, ok := tx.t.quotes[q.ID]
	if !ok || stored.Status != from {
		return fmt.Errorf("quote %d: %w", q.ID, interfaces.ErrQuoteStateChanged)
	}
	stored.Status = q.Status
	stored.UpdatedAt = q.UpdatedAt
	stored.ApprovedAt = q.ApprovedAt
	stored.ApprovedBy = q.ApprovedBy
	stored.RejectedAt = q.RejectedAt
	stored.RejectionReason = q.RejectionReason
	tx.t.quotes[q.ID] = stored
	return nil
}
