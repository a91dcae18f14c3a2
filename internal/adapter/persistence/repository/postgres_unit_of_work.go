package repository

import (
	"context"
	"errors"
	"fmt"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	workOrdersQuoteIDKey = "work_orders_quote_id_key"
)

// PgxBeginner is the part of *pgxpool.Pool the unit of work needs. pgxmock pools satisfy it.
type PgxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// PostgresUnitOfWork runs each unit of work in one READ COMMITTED transaction.
//
// The quote row and every inventory row read through the tx are locked with SELECT ... FOR UPDATE,
// so concurrent approvals touching the same rows queue behind each other. work_orders.quote_id is
// UNIQUE, which keeps the one-work-order-per-quote rule even for writers that skip the locks.
type PostgresUnitOfWork struct {
	pool PgxBeginner
}

var _ interfaces.IUnitOfWork = (*PostgresUnitOfWork)(nil)

func NewPostgresUnitOfWork(pool PgxBeginner) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITxRepository) error) (err error) {
	tx, err := u.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(ctx, &postgresTx{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return mapPgError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

type postgresTx struct {
	tx pgx.Tx
}

var _ interfaces.ITxRepository = (*postgresTx)(nil)

const selectQuoteSQL = `
	SELECT id, client_id, type, status, address, description,
	       labor_cost::text, material_cost::text, total::text, inventory_item_id,
	       created_at, updated_at, approved_at, approved_by, rejected_at, rejection_reason
	FROM quotes
	WHERE id = $1
	FOR UPDATE`

func (r *postgresTx) GetQuote(ctx context.Context, id int64) (entities.Quote, error) {
	var (
		q                      entities.Quote
		qType, status          string
		labor, material, total string
	)
	err := r.tx.QueryRow(ctx, selectQuoteSQL, id).Scan(
		&q.ID, &q.ClientID, &qType, &status, &q.Address, &q.Description,
		&labor, &material, &total, &q.InventoryItemID,
		&q.CreatedAt, &q.UpdatedAt, &q.ApprovedAt, &q.ApprovedBy, &q.RejectedAt, &q.RejectionReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, fmt.Errorf("get quote %d: %w", id, err)
	}
	q.Type = entities.QuoteType(qType)
	q.Status = entities.QuoteStatus(status)
	q.LaborCost = parseDecimal(labor)
	q.MaterialCost = parseDecimal(material)
	q.Total = parseDecimal(total)

	if q.EquipmentLines, err = r.equipmentLines(ctx, id); err != nil {
		return entities.Quote{}, err
	}
	if q.MaterialLines, err = r.materialLines(ctx, id); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *postgresTx) equipmentLines(ctx context.Context, quoteID int64) ([]entities.QuoteEquipmentLine, error) {
	rows, err := r.tx.Query(ctx, `
		SELECT id, quote_id, inventory_item_id, quantity, unit_price::text
		FROM quote_equipment_lines
		WHERE quote_id = $1
		ORDER BY id`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list equipment lines: %w", err)
	}
	defer rows.Close()

	var out []entities.QuoteEquipmentLine
	for rows.Next() {
		var (
			l     entities.QuoteEquipmentLine
			price string
		)
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.InventoryItemID, &l.Quantity, &price); err != nil {
			return nil, fmt.Errorf("scan equipment line: %w", err)
		}
		l.UnitPrice = parseDecimal(price)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *postgresTx) materialLines(ctx context.Context, quoteID int64) ([]entities.QuoteMaterialLine, error) {
	rows, err := r.tx.Query(ctx, `
		SELECT id, quote_id, description, quantity, unit_price::text
		FROM quote_material_lines
		WHERE quote_id = $1
		ORDER BY id`, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list material lines: %w", err)
	}
	defer rows.Close()

	var out []entities.QuoteMaterialLine
	for rows.Next() {
		var (
			l     entities.QuoteMaterialLine
			price string
		)
		if err := rows.Scan(&l.ID, &l.QuoteID, &l.Description, &l.Quantity, &price); err != nil {
			return nil, fmt.Errorf("scan material line: %w", err)
		}
		l.UnitPrice = parseDecimal(price)
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *postgresTx) GetClient(ctx context.Context, id int64) (entities.Client, error) {
	var c entities.Client
	err := r.tx.QueryRow(ctx, `
		SELECT id, name, document, email, phone, address, created_at
		FROM clients
		WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Client{}, nil
		}
		return entities.Client{}, fmt.Errorf("get client %d: %w", id, err)
	}
	return c, nil
}

func (r *postgresTx) GetInventoryItem(ctx context.Context, id int64) (entities.InventoryItem, error) {
	var (
		item          entities.InventoryItem
		status, price string
	)
	err := r.tx.QueryRow(ctx, `
		SELECT id, brand, model, capacity_btu, stock, status, unit_price::text, updated_at
		FROM inventory_items
		WHERE id = $1
		FOR UPDATE`, id).Scan(&item.ID, &item.Brand, &item.Model, &item.CapacityBTU, &item.Stock, &status, &price, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.InventoryItem{}, nil
		}
		return entities.InventoryItem{}, fmt.Errorf("get inventory item %d: %w", id, err)
	}
	item.Status = entities.InventoryStatus(status)
	item.UnitPrice = parseDecimal(price)
	return item, nil
}

func (r *postgresTx) HasWorkOrderForQuote(ctx context.Context, quoteID int64) (bool, error) {
	var exists bool
	err := r.tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM work_orders WHERE quote_id = $1)`, quoteID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check work order for quote %d: %w", quoteID, err)
	}
	return exists, nil
}

func (r *postgresTx) ListEquipmentByClient(ctx context.Context, clientID int64) ([]entities.Equipment, error) {
	rows, err := r.tx.Query(ctx, `
		SELECT id, client_id, inventory_item_id, quote_id, serial, brand, model, capacity_btu, status, installed_at, created_at
		FROM equipment
		WHERE client_id = $1
		ORDER BY installed_at, id
		FOR UPDATE`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list equipment for client %d: %w", clientID, err)
	}
	defer rows.Close()

	var out []entities.Equipment
	for rows.Next() {
		var (
			e      entities.Equipment
			status string
		)
		if err := rows.Scan(&e.ID, &e.ClientID, &e.InventoryItemID, &e.QuoteID, &e.Serial, &e.Brand, &e.Model, &e.CapacityBTU, &status, &e.InstalledAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		e.Status = entities.EquipmentStatus(status)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *postgresTx) UpdateInventoryStock(ctx context.Context, item entities.InventoryItem, previousStock int) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE inventory_items
		SET stock = $2, status = $3, updated_at = $4
		WHERE id = $1 AND stock = $5`,
		item.ID, item.Stock, string(item.Status), item.UpdatedAt, previousStock)
	if err != nil {
		return mapPgError(fmt.Errorf("update inventory item %d: %w", item.ID, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory item %d: %w", item.ID, interfaces.ErrStaleWrite)
	}
	return nil
}

func (r *postgresTx) CreateEquipment(ctx context.Context, e entities.Equipment) error {
	_, err := r.tx.Exec(ctx, `
		INSERT INTO equipment (id, client_id, inventory_item_id, quote_id, serial, brand, model, capacity_btu, status, installed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		e.ID, e.ClientID, e.InventoryItemID, e.QuoteID, e.Serial, e.Brand, e.Model, e.CapacityBTU, string(e.Status), e.InstalledAt, e.CreatedAt)
	if err != nil {
		return mapPgError(fmt.Errorf("insert equipment %s: %w", e.ID, err))
	}
	return nil
}

func (r *postgresTx) UpdateEquipmentStatus(ctx context.Context, id string, from, to entities.EquipmentStatus) error {
	tag, err := r.tx.Exec(ctx, `UPDATE equipment SET status = $2 WHERE id = $1 AND status = $3`, id, string(to), string(from))
	if err != nil {
		return mapPgError(fmt.Errorf("update equipment %s: %w", id, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s: %w", id, interfaces.ErrStaleWrite)
	}
	return nil
}

func (r *postgresTx) CreateWorkOrder(ctx context.Context, wo entities.WorkOrder) error {
	_, err := r.tx.Exec(ctx, `
		INSERT INTO work_orders (id, client_id, equipment_id, quote_id, type, status, technician, scheduled_for, notes, material_cost, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::numeric, $11, $12)`,
		wo.ID, wo.ClientID, wo.EquipmentID, wo.QuoteID, string(wo.Type), string(wo.Status), wo.Technician,
		wo.ScheduledFor, wo.Notes, wo.MaterialCost.String(), wo.CreatedBy, wo.CreatedAt)
	if err != nil {
		return mapPgError(fmt.Errorf("insert work order %s: %w", wo.ID, err))
	}
	return nil
}

func (r *postgresTx) UpdateQuoteStatus(ctx context.Context, q entities.Quote, from entities.QuoteStatus) error {
	tag, err := r.tx.Exec(ctx, `
		UPDATE quotes
		SET status = $2, updated_at = $3, approved_at = $4, approved_by = $5, rejected_at = $6, rejection_reason = $7
		WHERE id = $1 AND status = $8`,
		q.ID, string(q.Status), q.UpdatedAt, q.ApprovedAt, q.ApprovedBy, q.RejectedAt, q.RejectionReason, string(from))
	if err != nil {
		return mapPgError(fmt.Errorf("update quote %d: %w", q.ID, err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("quote %d: %w", q.ID, interfaces.ErrQuoteStateChanged)
	}
	return nil
}

// mapPgError turns constraint and concurrency failures into store errors. Other errors pass through.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch {
	case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == workOrdersQuoteIDKey:
		return fmt.Errorf("%w: %s", interfaces.ErrWorkOrderExists, pgErr.Message)
	case pgErr.Code == pgUniqueViolation, pgErr.Code == pgSerializationFailure, pgErr.Code == pgDeadlockDetected:
		return fmt.Errorf("%w: %s", interfaces.ErrStaleWrite, pgErr.Message)
	}
	return err
}
