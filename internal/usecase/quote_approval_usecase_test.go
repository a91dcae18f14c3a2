package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hvac_service/internal/adapter/persistence/repository"
	"hvac_service/internal/domain/entities"
	"hvac_service/internal/domain/events"
	"hvac_service/internal/infrastructure/cache"
	"hvac_service/internal/usecase/interfaces"
	mock_interfaces "hvac_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// Thursday; the next work date is Monday 2024-01-08.
var approvalNow = time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)

type sequentialIDs struct{ n atomic.Int64 }

func (g *sequentialIDs) NewID() string { return fmt.Sprintf("id-%03d", g.n.Add(1)) }

type itemSerials struct{}

func (itemSerials) NewSerial(item entities.InventoryItem, sequence int) string {
	return fmt.Sprintf("SN-%d-%03d", item.ID, sequence)
}

func int64Ptr(v int64) *int64 { return &v }

func newApprovalUseCase(store interfaces.IUnitOfWork, lock interfaces.IApprovalLock, publisher interfaces.IEventPublisher) *QuoteApprovalUseCase {
	return NewQuoteApprovalUseCase(QuoteApprovalDependencies{
		UnitOfWork: store,
		Lock:       lock,
		Publisher:  publisher,
		IDs:        &sequentialIDs{},
		Serials:    itemSerials{},
		Clock:      fixedClock{now: approvalNow},
	})
}

// seedInstallation stores client 1, items A (id 10) and B (id 11) and pending installation quote 100
// asking for 2 x A and 1 x B.
func seedInstallation(stockA, stockB int) *repository.MemoryUnitOfWork {
	store := repository.NewMemoryUnitOfWork()
	store.PutClient(entities.Client{ID: 1, Name: "Acme", Address: "Rua A, 10"})
	store.PutInventoryItem(entities.InventoryItem{ID: 10, Brand: "Carrier", Model: "XPower", CapacityBTU: 12000, Stock: stockA, Status: entities.DeriveInventoryStatus(stockA)})
	store.PutInventoryItem(entities.InventoryItem{ID: 11, Brand: "LG", Model: "Dual", CapacityBTU: 9000, Stock: stockB, Status: entities.DeriveInventoryStatus(stockB)})
	store.PutQuote(entities.Quote{
		ID:       100,
		ClientID: 1,
		Type:     entities.QuoteTypeInstallation,
		Status:   entities.QuoteStatusPending,
		EquipmentLines: []entities.QuoteEquipmentLine{
			{ID: 1, QuoteID: 100, InventoryItemID: 10, Quantity: 2},
			{ID: 2, QuoteID: 100, InventoryItemID: 11, Quantity: 1},
		},
	})
	return store
}

func seedService(quoteType entities.QuoteType, equipment ...entities.Equipment) *repository.MemoryUnitOfWork {
	store := repository.NewMemoryUnitOfWork()
	store.PutClient(entities.Client{ID: 1, Name: "Acme"})
	for _, e := range equipment {
		store.PutEquipment(e)
	}
	store.PutQuote(entities.Quote{
		ID:           200,
		ClientID:     1,
		Type:         quoteType,
		Status:       entities.QuoteStatusPending,
		MaterialCost: decimal.RequireFromString("150.40"),
	})
	return store
}

func TestQuoteApprovalUseCase_ApproveInstallation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	store := seedInstallation(5, 1)
	uc := newApprovalUseCase(store, nil, publisher)

	publisher.EXPECT().PublishQuoteApproved(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev events.QuoteApproved) error {
			if ev.QuoteID != 100 || ev.UnitsProvisioned != 3 || len(ev.EquipmentIDs) != 3 || ev.ApprovedBy != 42 {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		},
	)
	publisher.EXPECT().PublishStockDepleted(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev events.StockDepleted) error {
			if ev.InventoryItemID != 11 || ev.QuoteID != 100 {
				t.Fatalf("unexpected event: %+v", ev)
			}
			return nil
		},
	)

	res, err := uc.Approve(context.Background(), 100, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.UnitsProvisioned != 3 || len(res.Equipment) != 3 {
		t.Fatalf("expected 3 units, got %d (%d equipment)", res.UnitsProvisioned, len(res.Equipment))
	}
	wantSerials := []string{"SN-10-001", "SN-10-002", "SN-11-003"}
	for i, e := range res.Equipment {
		if e.Serial != wantSerials[i] || e.Status != entities.EquipmentStatusActive || e.ClientID != 1 {
			t.Fatalf("unexpected equipment %d: %+v", i, e)
		}
		if e.QuoteID == nil || *e.QuoteID != 100 || !e.InstalledAt.Equal(approvalNow) {
			t.Fatalf("equipment %d not linked to quote: %+v", i, e)
		}
	}

	if res.Quote.Status != entities.QuoteStatusApproved || res.Quote.ApprovedAt == nil || *res.Quote.ApprovedBy != 42 {
		t.Fatalf("unexpected quote: %+v", res.Quote)
	}
	wo := res.WorkOrder
	if wo.Type != entities.WorkOrderTypeInstallation || wo.Technician != entities.UnassignedTechnician || wo.Status != entities.WorkOrderStatusScheduled {
		t.Fatalf("unexpected work order: %+v", wo)
	}
	if want := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC); !wo.ScheduledFor.Equal(want) {
		t.Fatalf("expected scheduled for %v, got %v", want, wo.ScheduledFor)
	}
	if wo.QuoteID == nil || *wo.QuoteID != 100 || wo.CreatedBy != 42 {
		t.Fatalf("unexpected work order links: %+v", wo)
	}
	if wo.Notes == "" {
		t.Fatalf("expected installation notes")
	}

	a, _ := store.InventoryItem(10)
	b, _ := store.InventoryItem(11)
	if a.Stock != 3 || a.Status != entities.InventoryStatusAvailable {
		t.Fatalf("unexpected item A: %+v", a)
	}
	if b.Stock != 0 || b.Status != entities.InventoryStatusExhausted {
		t.Fatalf("unexpected item B: %+v", b)
	}
	if got := store.EquipmentByClient(1); len(got) != 3 {
		t.Fatalf("expected 3 stored equipment, got %d", len(got))
	}
	if got := store.WorkOrders(); len(got) != 1 {
		t.Fatalf("expected 1 work order, got %d", len(got))
	}
	stored, _ := store.Quote(100)
	if stored.Status != entities.QuoteStatusApproved {
		t.Fatalf("expected stored quote approved, got %s", stored.Status)
	}
}

func TestQuoteApprovalUseCase_ApproveLegacySingleItem(t *testing.T) {
	store := repository.NewMemoryUnitOfWork()
	store.PutClient(entities.Client{ID: 1, Address: "Rua B, 20"})
	store.PutInventoryItem(entities.InventoryItem{ID: 10, Brand: "Carrier", Model: "XPower", Stock: 2, Status: entities.InventoryStatusAvailable})
	store.PutQuote(entities.Quote{ID: 101, ClientID: 1, Type: entities.QuoteTypeInstallation, Status: entities.QuoteStatusPending, InventoryItemID: int64Ptr(10)})
	uc := newApprovalUseCase(store, nil, nil)

	res, err := uc.Approve(context.Background(), 101, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UnitsProvisioned != 1 || len(res.Equipment) != 1 {
		t.Fatalf("expected a single unit, got %+v", res)
	}
	if item, _ := store.InventoryItem(10); item.Stock != 1 {
		t.Fatalf("expected stock 1, got %d", item.Stock)
	}
}

func TestQuoteApprovalUseCase_ApproveInsufficientStock(t *testing.T) {
	store := seedInstallation(5, 0)
	uc := newApprovalUseCase(store, nil, nil)

	_, err := uc.Approve(context.Background(), 100, 42)
	if !errors.Is(err, ErrInsufficientStock) || !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected insufficient stock validation error, got %v", err)
	}
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) || stockErr.ItemID != 11 || stockErr.Available != 0 || stockErr.Requested != 1 {
		t.Fatalf("unexpected stock error: %#v", err)
	}

	if a, _ := store.InventoryItem(10); a.Stock != 5 {
		t.Fatalf("expected item A untouched, got %d", a.Stock)
	}
	if got := store.EquipmentByClient(1); len(got) != 0 {
		t.Fatalf("expected no equipment, got %d", len(got))
	}
	if got := store.WorkOrders(); len(got) != 0 {
		t.Fatalf("expected no work orders, got %d", len(got))
	}
	if q, _ := store.Quote(100); q.Status != entities.QuoteStatusPending {
		t.Fatalf("expected quote pending, got %s", q.Status)
	}
}

func TestQuoteApprovalUseCase_ApproveServiceQuotes(t *testing.T) {
	older := entities.Equipment{ID: "eq-old", ClientID: 1, Brand: "Carrier", Status: entities.EquipmentStatusActive, InstalledAt: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)}
	newer := entities.Equipment{ID: "eq-new", ClientID: 1, Brand: "LG", Status: entities.EquipmentStatusActive, InstalledAt: time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)}
	retired := entities.Equipment{ID: "eq-dead", ClientID: 1, Status: entities.EquipmentStatusDecommissioned, InstalledAt: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("maintenance picks oldest active unit", func(t *testing.T) {
		store := seedService(entities.QuoteTypeMaintenance, older, newer, retired)
		uc := newApprovalUseCase(store, nil, nil)

		res, err := uc.Approve(context.Background(), 200, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Equipment) != 1 || res.Equipment[0].ID != "eq-old" || res.Equipment[0].Status != entities.EquipmentStatusInMaintenance {
			t.Fatalf("unexpected equipment: %+v", res.Equipment)
		}
		if res.WorkOrder.Type != entities.WorkOrderTypeMaintenance || *res.WorkOrder.EquipmentID != "eq-old" {
			t.Fatalf("unexpected work order: %+v", res.WorkOrder)
		}
		if !res.WorkOrder.MaterialCost.IsZero() {
			t.Fatalf("maintenance work order should carry no material cost, got %s", res.WorkOrder.MaterialCost)
		}
		if res.UnitsProvisioned != 0 {
			t.Fatalf("expected no provisioned units, got %d", res.UnitsProvisioned)
		}
		for _, e := range store.EquipmentByClient(1) {
			if e.ID == "eq-old" && e.Status != entities.EquipmentStatusInMaintenance {
				t.Fatalf("expected stored unit in maintenance, got %s", e.Status)
			}
		}
	})

	t.Run("repair picks newest unit and copies material cost", func(t *testing.T) {
		inShop := newer
		inShop.Status = entities.EquipmentStatusInMaintenance
		store := seedService(entities.QuoteTypeRepair, older, inShop, retired)
		uc := newApprovalUseCase(store, nil, nil)

		res, err := uc.Approve(context.Background(), 200, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Equipment[0].ID != "eq-new" || res.Equipment[0].Status != entities.EquipmentStatusInMaintenance {
			t.Fatalf("unexpected equipment: %+v", res.Equipment)
		}
		if res.WorkOrder.Type != entities.WorkOrderTypeRepair || !res.WorkOrder.MaterialCost.Equal(decimal.RequireFromString("150.40")) {
			t.Fatalf("unexpected work order: %+v", res.WorkOrder)
		}
	})

	t.Run("maintenance without active equipment", func(t *testing.T) {
		store := seedService(entities.QuoteTypeMaintenance, retired)
		uc := newApprovalUseCase(store, nil, nil)

		_, err := uc.Approve(context.Background(), 200, 42)
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Reason == "" {
			t.Fatalf("expected ValidationError with reason, got %#v", err)
		}
		if errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("validation error must not look like a stock error")
		}
		if got := store.WorkOrders(); len(got) != 0 {
			t.Fatalf("expected no work orders, got %d", len(got))
		}
	})
}

func TestQuoteApprovalUseCase_ApproveGuards(t *testing.T) {
	cases := []struct {
		name    string
		quoteID int64
		prepare func(store *repository.MemoryUnitOfWork)
		wantErr error
	}{
		{name: "invalid id", quoteID: 0, wantErr: ErrInvalidQuoteID},
		{name: "quote not found", quoteID: 999, wantErr: ErrQuoteNotFound},
		{
			name:    "client not found",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) {
				q, _ := store.Quote(100)
				q.ClientID = 77
				store.PutQuote(q)
			},
			wantErr: ErrClientNotFound,
		},
		{
			name:    "already approved",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) { setStatus(store, 100, entities.QuoteStatusApproved) },
			wantErr: ErrAlreadyApproved,
		},
		{
			name:    "deleted",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) { setStatus(store, 100, entities.QuoteStatusDeleted) },
			wantErr: ErrAlreadyDeleted,
		},
		{
			name:    "rejected",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) { setStatus(store, 100, entities.QuoteStatusRejected) },
			wantErr: ErrAlreadyTerminal,
		},
		{
			name:    "work order already exists",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) {
				store.PutWorkOrder(entities.WorkOrder{ID: "wo-existing", ClientID: 1, QuoteID: int64Ptr(100)})
			},
			wantErr: ErrDuplicateWorkOrder,
		},
		{
			name:    "installation without lines",
			quoteID: 100,
			prepare: func(store *repository.MemoryUnitOfWork) {
				q, _ := store.Quote(100)
				q.EquipmentLines = nil
				store.PutQuote(q)
			},
			wantErr: ErrValidationFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := seedInstallation(5, 1)
			if tc.prepare != nil {
				tc.prepare(store)
			}
			uc := newApprovalUseCase(store, nil, nil)

			_, err := uc.Approve(context.Background(), tc.quoteID, 42)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if a, _ := store.InventoryItem(10); a.Stock != 5 {
				t.Fatalf("expected stock untouched, got %d", a.Stock)
			}
			if got := store.EquipmentByClient(1); len(got) != 0 {
				t.Fatalf("expected no equipment, got %d", len(got))
			}
		})
	}
}

func setStatus(store *repository.MemoryUnitOfWork, id int64, status entities.QuoteStatus) {
	q, _ := store.Quote(id)
	q.Status = status
	store.PutQuote(q)
}

func TestQuoteApprovalUseCase_SecondApprovalFails(t *testing.T) {
	store := seedInstallation(5, 1)
	uc := newApprovalUseCase(store, nil, nil)

	if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	if _, err := uc.Approve(context.Background(), 100, 42); !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}
	if got := store.WorkOrders(); len(got) != 1 {
		t.Fatalf("expected exactly one work order, got %d", len(got))
	}
	if a, _ := store.InventoryItem(10); a.Stock != 3 {
		t.Fatalf("expected stock decremented once, got %d", a.Stock)
	}
}

func TestQuoteApprovalUseCase_ConcurrentApprovalsOfSameQuote(t *testing.T) {
	store := seedInstallation(50, 50)
	uc := newApprovalUseCase(store, nil, nil)

	const callers = 16
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		errs      = make(chan error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
				errs <- err
				return
			}
			successes.Add(1)
		}()
	}
	wg.Wait()
	close(errs)

	if successes.Load() != 1 {
		t.Fatalf("expected exactly one successful approval, got %d", successes.Load())
	}
	for err := range errs {
		if !errors.Is(err, ErrAlreadyApproved) {
			t.Fatalf("expected ErrAlreadyApproved for losers, got %v", err)
		}
	}
	if got := store.WorkOrders(); len(got) != 1 {
		t.Fatalf("expected one work order, got %d", len(got))
	}
	if a, _ := store.InventoryItem(10); a.Stock != 48 {
		t.Fatalf("expected stock 48, got %d", a.Stock)
	}
}

// slowUnitOfWork keeps every transaction open for a while so concurrent callers overlap.
type slowUnitOfWork struct {
	inner interfaces.IUnitOfWork
	delay time.Duration
}

func (u slowUnitOfWork) WithinTx(ctx context.Context, fn func(context.Context, interfaces.ITxRepository) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		time.Sleep(u.delay)
		return fn(ctx, tx)
	})
}

func TestQuoteApprovalUseCase_ConcurrentApprovalsWithLock(t *testing.T) {
	store := seedInstallation(50, 50)
	uc := newApprovalUseCase(slowUnitOfWork{inner: store, delay: 20 * time.Millisecond}, cache.NewMemoryApprovalLock(cache.DefaultLockTTL), nil)

	const callers = 8
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		errs      = make(chan error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
				errs <- err
				return
			}
			successes.Add(1)
		}()
	}
	wg.Wait()
	close(errs)

	if successes.Load() != 1 {
		t.Fatalf("expected exactly one successful approval, got %d", successes.Load())
	}
	for err := range errs {
		if !errors.Is(err, ErrDuplicateWorkOrder) && !errors.Is(err, ErrAlreadyApproved) {
			t.Fatalf("expected ErrDuplicateWorkOrder or ErrAlreadyApproved for losers, got %v", err)
		}
	}
	if got := store.WorkOrders(); len(got) != 1 {
		t.Fatalf("expected one work order, got %d", len(got))
	}
}

func TestQuoteApprovalUseCase_ConcurrentApprovalsShareStock(t *testing.T) {
	store := repository.NewMemoryUnitOfWork()
	store.PutClient(entities.Client{ID: 1})
	store.PutInventoryItem(entities.InventoryItem{ID: 10, Brand: "Carrier", Model: "XPower", Stock: 3, Status: entities.InventoryStatusAvailable})
	const quotes = 6
	for i := int64(1); i <= quotes; i++ {
		store.PutQuote(entities.Quote{
			ID: i, ClientID: 1, Type: entities.QuoteTypeInstallation, Status: entities.QuoteStatusPending,
			EquipmentLines: []entities.QuoteEquipmentLine{{InventoryItemID: 10, Quantity: 1}},
		})
	}
	uc := newApprovalUseCase(store, nil, nil)

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		shortages atomic.Int32
	)
	for i := int64(1); i <= quotes; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := uc.Approve(context.Background(), id, 42)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, ErrInsufficientStock):
				shortages.Add(1)
			default:
				t.Errorf("unexpected error for quote %d: %v", id, err)
			}
		}(i)
	}
	wg.Wait()

	if successes.Load() != 3 || shortages.Load() != 3 {
		t.Fatalf("expected 3 approvals and 3 shortages, got %d/%d", successes.Load(), shortages.Load())
	}
	item, _ := store.InventoryItem(10)
	if item.Stock != 0 || !item.IsExhausted() {
		t.Fatalf("expected exhausted item, got %+v", item)
	}
}

// failingUnitOfWork runs the real store but makes one write fail, simulating a crash mid-approval.
type failingUnitOfWork struct {
	inner  interfaces.IUnitOfWork
	failOn string
}

func (u failingUnitOfWork) WithinTx(ctx context.Context, fn func(context.Context, interfaces.ITxRepository) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		return fn(ctx, failingTx{ITxRepository: tx, failOn: u.failOn})
	})
}

type failingTx struct {
	interfaces.ITxRepository
	failOn string
}

var errInjected = errors.New("injected failure")

func (tx failingTx) CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	if tx.failOn == "CreateWorkOrder" {
		return errInjected
	}
	return tx.ITxRepository.CreateWorkOrder(ctx, wo)
}

func (tx failingTx) UpdateQuoteStatus(ctx context.Context, q entities.Quote, from entities.QuoteStatus) error {
	if tx.failOn == "UpdateQuoteStatus" {
		return errInjected
	}
	return tx.ITxRepository.UpdateQuoteStatus(ctx, q, from)
}

func TestQuoteApprovalUseCase_FailureRollsBackEverything(t *testing.T) {
	for _, step := range []string{"CreateWorkOrder", "UpdateQuoteStatus"} {
		t.Run(step, func(t *testing.T) {
			store := seedInstallation(5, 1)
			uc := newApprovalUseCase(failingUnitOfWork{inner: store, failOn: step}, nil, nil)

			if _, err := uc.Approve(context.Background(), 100, 42); !errors.Is(err, errInjected) {
				t.Fatalf("expected injected failure, got %v", err)
			}
			if a, _ := store.InventoryItem(10); a.Stock != 5 {
				t.Fatalf("expected stock 5 after rollback, got %d", a.Stock)
			}
			if b, _ := store.InventoryItem(11); b.Stock != 1 || b.IsExhausted() {
				t.Fatalf("expected item B untouched, got %+v", b)
			}
			if got := store.EquipmentByClient(1); len(got) != 0 {
				t.Fatalf("expected no equipment after rollback, got %d", len(got))
			}
			if got := store.WorkOrders(); len(got) != 0 {
				t.Fatalf("expected no work orders after rollback, got %d", len(got))
			}
			if q, _ := store.Quote(100); q.Status != entities.QuoteStatusPending {
				t.Fatalf("expected quote pending, got %s", q.Status)
			}
		})
	}
}

func TestQuoteApprovalUseCase_ApprovalLock(t *testing.T) {
	t.Run("held elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIApprovalLock(ctrl)
		store := seedInstallation(5, 1)
		uc := newApprovalUseCase(store, lock, nil)

		lock.EXPECT().TryLock(gomock.Any(), "quote:100:approval").Return(nil, false, nil)

		_, err := uc.Approve(context.Background(), 100, 42)
		if !errors.Is(err, ErrApprovalInProgress) {
			t.Fatalf("expected ErrApprovalInProgress, got %v", err)
		}
		if !errors.Is(err, ErrDuplicateWorkOrder) {
			t.Fatalf("expected a held lock to read as a duplicate work order, got %v", err)
		}
		if q, _ := store.Quote(100); q.Status != entities.QuoteStatusPending {
			t.Fatalf("expected quote pending, got %s", q.Status)
		}
	})

	t.Run("released after approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIApprovalLock(ctrl)
		uc := newApprovalUseCase(seedInstallation(5, 1), lock, nil)

		released := false
		lock.EXPECT().TryLock(gomock.Any(), "quote:100:approval").Return(func(context.Context) { released = true }, true, nil)

		if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !released {
			t.Fatalf("expected lock release")
		}
	})

	t.Run("released after failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIApprovalLock(ctrl)
		uc := newApprovalUseCase(seedInstallation(5, 0), lock, nil)

		released := false
		lock.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(func(context.Context) { released = true }, true, nil)

		if _, err := uc.Approve(context.Background(), 100, 42); !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if !released {
			t.Fatalf("expected lock release")
		}
	})

	t.Run("backend error does not block approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIApprovalLock(ctrl)
		uc := newApprovalUseCase(seedInstallation(5, 1), lock, nil)

		lock.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))

		if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteApprovalUseCase_PublishFailureKeepsApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	store := seedInstallation(5, 2)
	uc := newApprovalUseCase(store, nil, publisher)

	publisher.EXPECT().PublishQuoteApproved(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	if _, err := uc.Approve(context.Background(), 100, 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q, _ := store.Quote(100); q.Status != entities.QuoteStatusApproved {
		t.Fatalf("expected quote approved, got %s", q.Status)
	}
}

func TestQuoteApprovalUseCase_RejectAndDelete(t *testing.T) {
	t.Run("reject pending", func(t *testing.T) {
		store := seedInstallation(5, 1)
		uc := newApprovalUseCase(store, nil, nil)

		q, err := uc.Reject(context.Background(), 100, "  too expensive ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusRejected || q.RejectedAt == nil || q.RejectionReason != "too expensive" {
			t.Fatalf("unexpected quote: %+v", q)
		}
		stored, _ := store.Quote(100)
		if stored.Status != entities.QuoteStatusRejected || stored.RejectionReason != "too expensive" {
			t.Fatalf("unexpected stored quote: %+v", stored)
		}
		if a, _ := store.InventoryItem(10); a.Stock != 5 {
			t.Fatalf("reject must not touch stock, got %d", a.Stock)
		}

		if _, err := uc.Reject(context.Background(), 100, "again"); !errors.Is(err, ErrAlreadyTerminal) {
			t.Fatalf("expected ErrAlreadyTerminal, got %v", err)
		}
		if _, err := uc.Approve(context.Background(), 100, 42); !errors.Is(err, ErrAlreadyTerminal) {
			t.Fatalf("expected ErrAlreadyTerminal on approve, got %v", err)
		}
	})

	t.Run("reject approved", func(t *testing.T) {
		store := seedInstallation(5, 1)
		setStatus(store, 100, entities.QuoteStatusApproved)
		uc := newApprovalUseCase(store, nil, nil)

		if _, err := uc.Reject(context.Background(), 100, ""); !errors.Is(err, ErrAlreadyApproved) {
			t.Fatalf("expected ErrAlreadyApproved, got %v", err)
		}
		if q, _ := store.Quote(100); q.Status != entities.QuoteStatusApproved {
			t.Fatalf("expected quote to stay approved, got %s", q.Status)
		}
	})

	t.Run("reject not found", func(t *testing.T) {
		uc := newApprovalUseCase(repository.NewMemoryUnitOfWork(), nil, nil)
		if _, err := uc.Reject(context.Background(), 5, ""); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("delete pending then again", func(t *testing.T) {
		store := seedInstallation(5, 1)
		uc := newApprovalUseCase(store, nil, nil)

		q, err := uc.Delete(context.Background(), 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusDeleted || q.RejectedAt != nil {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if _, err := uc.Delete(context.Background(), 100); !errors.Is(err, ErrAlreadyDeleted) {
			t.Fatalf("expected ErrAlreadyDeleted, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newApprovalUseCase(nil, nil, nil)
		if _, err := uc.Delete(context.Background(), -1); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})
}

func TestTranslateStoreError(t *testing.T) {
	cases := []struct {
		in   error
		want error
	}{
		{fmt.Errorf("tx: %w", interfaces.ErrWorkOrderExists), ErrDuplicateWorkOrder},
		{fmt.Errorf("quote 1: %w", interfaces.ErrQuoteStateChanged), ErrAlreadyTerminal},
		{fmt.Errorf("item 1: %w", interfaces.ErrStaleWrite), ErrConcurrentUpdate},
		{interfaces.ErrTransactionTooLarge, interfaces.ErrTransactionTooLarge},
	}
	for _, tc := range cases {
		if got := translateStoreError(tc.in); !errors.Is(got, tc.want) {
			t.Fatalf("translateStoreError(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
