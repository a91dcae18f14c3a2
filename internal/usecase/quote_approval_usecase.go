package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/domain/events"
	"hvac_service/internal/domain/services"
	"hvac_service/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// IQuoteApprovalUseCase exposes the quote decisions taken from the quotes screen:
//   - PATCH /quotes/{id}/approve => Approve()
//   - PATCH /quotes/{id}/reject  => Reject()
//   - PATCH /quotes/{id}/delete  => Delete()
type IQuoteApprovalUseCase interface {
	Approve(ctx context.Context, quoteID, userID int64) (ApprovalResult, error)
	Reject(ctx context.Context, quoteID int64, reason string) (entities.Quote, error)
	Delete(ctx context.Context, quoteID int64) (entities.Quote, error)
}

// ApprovalResult is everything one approval wrote.
type ApprovalResult struct {
	Quote            entities.Quote
	Equipment        []entities.Equipment
	WorkOrder        entities.WorkOrder
	UnitsProvisioned int
}

type QuoteApprovalDependencies struct {
	UnitOfWork interfaces.IUnitOfWork
	Lock       interfaces.IApprovalLock
	Publisher  interfaces.IEventPublisher
	IDs        interfaces.IIDGenerator
	Serials    interfaces.ISerialGenerator
	Clock      interfaces.IClock
	Logger     *zap.Logger
}

type QuoteApprovalUseCase struct {
	uow         interfaces.IUnitOfWork
	lock        interfaces.IApprovalLock
	publisher   interfaces.IEventPublisher
	ids         interfaces.IIDGenerator
	clock       interfaces.IClock
	provisioner *EquipmentProvisioner
	log         *zap.Logger
}

var _ IQuoteApprovalUseCase = (*QuoteApprovalUseCase)(nil)

// NewQuoteApprovalUseCase wires the approval flow. Lock and Publisher are optional; IDs,
// Serials and Clock fall back to uuid, ULID serials and the system clock.
func NewQuoteApprovalUseCase(deps QuoteApprovalDependencies) *QuoteApprovalUseCase {
	clock := deps.Clock
	if clock == nil {
		clock = systemClock{}
	}
	ids := deps.IDs
	if ids == nil {
		ids = uuidGenerator{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuoteApprovalUseCase{
		uow:         deps.UnitOfWork,
		lock:        deps.Lock,
		publisher:   deps.Publisher,
		ids:         ids,
		clock:       clock,
		provisioner: NewEquipmentProvisioner(NewStockLedger(clock), ids, deps.Serials, clock),
		log:         logger.Named("approval"),
	}
}

func (u *QuoteApprovalUseCase) Approve(ctx context.Context, quoteID, userID int64) (ApprovalResult, error) {
	if quoteID <= 0 {
		return ApprovalResult{}, ErrInvalidQuoteID
	}
	if u.uow == nil {
		return ApprovalResult{}, errors.New("unit of work not configured")
	}

	release, err := u.acquire(ctx, quoteID)
	if err != nil {
		return ApprovalResult{}, err
	}
	defer release(context.WithoutCancel(ctx))

	var (
		result   ApprovalResult
		depleted []entities.InventoryItem
	)
	err = u.uow.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		r, d, err := u.approveInTx(ctx, tx, quoteID, userID)
		if err != nil {
			return err
		}
		result, depleted = r, d
		return nil
	})
	if err != nil {
		err = translateStoreError(err)
		u.log.Info("quote approval refused", zap.Int64("quote_id", quoteID), zap.Int64("user_id", userID), zap.Error(err))
		return ApprovalResult{}, err
	}

	u.log.Info("quote approved",
		zap.Int64("quote_id", quoteID),
		zap.String("type", string(result.Quote.Type)),
		zap.String("work_order_id", result.WorkOrder.ID),
		zap.Int("units_provisioned", result.UnitsProvisioned),
	)
	u.publishApproval(ctx, result, depleted)
	return result, nil
}

func (u *QuoteApprovalUseCase) approveInTx(ctx context.Context, tx interfaces.ITxRepository, quoteID, userID int64) (ApprovalResult, []entities.InventoryItem, error) {
	q, err := tx.GetQuote(ctx, quoteID)
	if err != nil {
		return ApprovalResult{}, nil, err
	}
	if q.ID == 0 {
		return ApprovalResult{}, nil, ErrQuoteNotFound
	}
	client, err := tx.GetClient(ctx, q.ClientID)
	if err != nil {
		return ApprovalResult{}, nil, err
	}
	if client.ID == 0 {
		return ApprovalResult{}, nil, ErrClientNotFound
	}
	if err := terminalError(q.Status); err != nil {
		return ApprovalResult{}, nil, err
	}
	exists, err := tx.HasWorkOrderForQuote(ctx, q.ID)
	if err != nil {
		return ApprovalResult{}, nil, err
	}
	if exists {
		return ApprovalResult{}, nil, ErrDuplicateWorkOrder
	}

	if err := u.validate(ctx, tx, q); err != nil {
		return ApprovalResult{}, nil, err
	}

	now := u.clock.Now()
	quoteRef := q.ID
	wo := entities.WorkOrder{
		ID:           u.ids.NewID(),
		ClientID:     client.ID,
		QuoteID:      &quoteRef,
		Status:       entities.WorkOrderStatusScheduled,
		Technician:   entities.UnassignedTechnician,
		ScheduledFor: services.NextWorkDate(now),
		MaterialCost: decimal.Zero,
		CreatedBy:    userID,
		CreatedAt:    now,
	}

	var (
		result   ApprovalResult
		depleted []entities.InventoryItem
	)
	switch q.Type {
	case entities.QuoteTypeInstallation:
		lines, _ := services.ResolveInstallationLines(q)
		prov, err := u.provisioner.ProvisionInstallation(ctx, tx, q, client, lines)
		if err != nil {
			return ApprovalResult{}, nil, err
		}
		result.Equipment = prov.Equipment
		result.UnitsProvisioned = prov.TotalUnits
		depleted = prov.Depleted

		first := prov.Equipment[0].ID
		wo.Type = entities.WorkOrderTypeInstallation
		wo.EquipmentID = &first
		wo.Notes = installationNotes(prov.Equipment, installAddress(q, client))
	case entities.QuoteTypeMaintenance, entities.QuoteTypeRepair:
		mode := services.ServiceModeMaintenance
		wo.Type = entities.WorkOrderTypeMaintenance
		if q.Type == entities.QuoteTypeRepair {
			mode = services.ServiceModeRepair
			wo.Type = entities.WorkOrderTypeRepair
			wo.MaterialCost = q.MaterialCost
		}
		unit, err := u.provisioner.SelectEquipmentForService(ctx, tx, client, mode)
		if err != nil {
			return ApprovalResult{}, nil, err
		}
		result.Equipment = []entities.Equipment{unit}
		wo.EquipmentID = &unit.ID
		wo.Notes = serviceNotes(q, unit)
	}

	if err := tx.CreateWorkOrder(ctx, wo); err != nil {
		return ApprovalResult{}, nil, err
	}

	from := q.Status
	approvedBy := userID
	q.Status = entities.QuoteStatusApproved
	q.ApprovedAt = &now
	q.ApprovedBy = &approvedBy
	q.UpdatedAt = now
	if err := tx.UpdateQuoteStatus(ctx, q, from); err != nil {
		return ApprovalResult{}, nil, err
	}

	result.Quote = q
	result.WorkOrder = wo
	return result, depleted, nil
}

// validate loads what the eligibility rules need and applies them.
func (u *QuoteApprovalUseCase) validate(ctx context.Context, tx interfaces.ITxRepository, q entities.Quote) error {
	items := make(map[int64]entities.InventoryItem)
	var owned []entities.Equipment

	switch q.Type {
	case entities.QuoteTypeInstallation:
		if lines, ok := services.ResolveInstallationLines(q); ok {
			// ascending ids keep row locks in one global order
			ids := lines.ItemIDs()
			slices.Sort(ids)
			for _, id := range ids {
				item, err := tx.GetInventoryItem(ctx, id)
				if err != nil {
					return err
				}
				if item.ID != 0 {
					items[id] = item
				}
			}
		}
	case entities.QuoteTypeMaintenance, entities.QuoteTypeRepair:
		var err error
		if owned, err = tx.ListEquipmentByClient(ctx, q.ClientID); err != nil {
			return err
		}
	}

	verdict := services.ValidateEligibility(q, items, owned)
	if verdict.Valid {
		return nil
	}
	if s := verdict.Shortfall; s != nil {
		return &InsufficientStockError{
			ItemID:    s.ItemID,
			ItemName:  items[s.ItemID].DisplayName(),
			Available: s.Available,
			Requested: s.Requested,
		}
	}
	return &ValidationError{Reason: verdict.Reason}
}

func (u *QuoteApprovalUseCase) Reject(ctx context.Context, quoteID int64, reason string) (entities.Quote, error) {
	return u.close(ctx, quoteID, entities.QuoteStatusRejected, reason)
}

// Delete soft-deletes a pending quote. Like a rejection it has no stock or equipment side effects.
func (u *QuoteApprovalUseCase) Delete(ctx context.Context, quoteID int64) (entities.Quote, error) {
	return u.close(ctx, quoteID, entities.QuoteStatusDeleted, "")
}

func (u *QuoteApprovalUseCase) close(ctx context.Context, quoteID int64, to entities.QuoteStatus, reason string) (entities.Quote, error) {
	if quoteID <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if u.uow == nil {
		return entities.Quote{}, errors.New("unit of work not configured")
	}

	var out entities.Quote
	err := u.uow.WithinTx(ctx, func(ctx context.Context, tx interfaces.ITxRepository) error {
		q, err := tx.GetQuote(ctx, quoteID)
		if err != nil {
			return err
		}
		if q.ID == 0 {
			return ErrQuoteNotFound
		}
		if err := terminalError(q.Status); err != nil {
			return err
		}

		now := u.clock.Now()
		from := q.Status
		q.Status = to
		q.UpdatedAt = now
		if to == entities.QuoteStatusRejected {
			q.RejectedAt = &now
			q.RejectionReason = strings.TrimSpace(reason)
		}
		if err := tx.UpdateQuoteStatus(ctx, q, from); err != nil {
			return err
		}
		out = q
		return nil
	})
	if err != nil {
		return entities.Quote{}, translateStoreError(err)
	}
	u.log.Info("quote closed", zap.Int64("quote_id", quoteID), zap.String("status", string(to)))
	return out, nil
}

func (u *QuoteApprovalUseCase) acquire(ctx context.Context, quoteID int64) (func(context.Context), error) {
	noop := func(context.Context) {}
	if u.lock == nil {
		return noop, nil
	}
	release, acquired, err := u.lock.TryLock(ctx, approvalLockKey(quoteID))
	if err != nil {
		u.log.Warn("approval lock unavailable, continuing without it", zap.Int64("quote_id", quoteID), zap.Error(err))
		return noop, nil
	}
	if !acquired {
		return nil, ErrApprovalInProgress
	}
	if release == nil {
		return noop, nil
	}
	return release, nil
}

func approvalLockKey(quoteID int64) string {
	return fmt.Sprintf("quote:%d:approval", quoteID)
}

func (u *QuoteApprovalUseCase) publishApproval(ctx context.Context, r ApprovalResult, depleted []entities.InventoryItem) {
	if u.publisher == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	now := u.clock.Now()

	ids := make([]string, 0, len(r.Equipment))
	for _, e := range r.Equipment {
		ids = append(ids, e.ID)
	}
	var approvedBy int64
	if r.Quote.ApprovedBy != nil {
		approvedBy = *r.Quote.ApprovedBy
	}
	ev := events.QuoteApproved{
		QuoteID:          r.Quote.ID,
		QuoteType:        string(r.Quote.Type),
		ClientID:         r.Quote.ClientID,
		WorkOrderID:      r.WorkOrder.ID,
		EquipmentIDs:     ids,
		UnitsProvisioned: r.UnitsProvisioned,
		ApprovedBy:       approvedBy,
		ScheduledFor:     r.WorkOrder.ScheduledFor,
		OccurredAt:       now,
	}
	if err := u.publisher.PublishQuoteApproved(ctx, ev); err != nil {
		u.log.Warn("publish quote approved failed", zap.Int64("quote_id", r.Quote.ID), zap.Error(err))
	}

	for _, item := range depleted {
		ev := events.StockDepleted{
			InventoryItemID: item.ID,
			Brand:           item.Brand,
			Model:           item.Model,
			QuoteID:         r.Quote.ID,
			OccurredAt:      now,
		}
		if err := u.publisher.PublishStockDepleted(ctx, ev); err != nil {
			u.log.Warn("publish stock depleted failed", zap.Int64("inventory_item_id", item.ID), zap.Error(err))
		}
	}
}

func terminalError(status entities.QuoteStatus) error {
	switch status {
	case entities.QuoteStatusApproved:
		return ErrAlreadyApproved
	case entities.QuoteStatusDeleted:
		return ErrAlreadyDeleted
	case entities.QuoteStatusRejected:
		return ErrAlreadyTerminal
	}
	return nil
}

// translateStoreError maps store guard failures onto use case errors.
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrWorkOrderExists):
		return ErrDuplicateWorkOrder
	case errors.Is(err, interfaces.ErrQuoteStateChanged):
		return ErrAlreadyTerminal
	case errors.Is(err, interfaces.ErrStaleWrite):
		return ErrConcurrentUpdate
	}
	return err
}

func installAddress(q entities.Quote, c entities.Client) string {
	if addr := strings.TrimSpace(q.Address); addr != "" {
		return addr
	}
	return strings.TrimSpace(c.Address)
}

func installationNotes(units []entities.Equipment, address string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Installation of %d unit(s)", len(units))
	if address != "" {
		fmt.Fprintf(&b, " at %s", address)
	}
	b.WriteString(".")
	for _, e := range units {
		fmt.Fprintf(&b, "\n- %s %s %d BTU, serial %s", e.Brand, e.Model, e.CapacityBTU, e.Serial)
	}
	return b.String()
}

func serviceNotes(q entities.Quote, unit entities.Equipment) string {
	kind := "Maintenance"
	if q.Type == entities.QuoteTypeRepair {
		kind = "Repair"
	}
	notes := fmt.Sprintf("%s of %s %s %d BTU, serial %s.", kind, unit.Brand, unit.Model, unit.CapacityBTU, unit.Serial)
	if d := strings.TrimSpace(q.Description); d != "" {
		notes += " " + d
	}
	return notes
}
