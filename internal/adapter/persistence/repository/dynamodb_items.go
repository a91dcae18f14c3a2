package repository

import (
	"os"
	"strconv"
	"strings"
	"time"

	"hvac_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	defaultClientsTableName    = "clients"
	defaultInventoryTableName  = "inventory_items"
	defaultQuotesTableName     = "quotes"
	defaultEquipmentTableName  = "equipment"
	defaultWorkOrdersTableName = "work_orders"
	equipmentClientIndex       = "client_id-index"
)

// DynamoTables names the tables the unit of work touches.
type DynamoTables struct {
	Clients    string
	Inventory  string
	Quotes     string
	Equipment  string
	WorkOrders string
}

func DynamoTablesFromEnv() DynamoTables {
	return DynamoTables{
		Clients:    tableName("CLIENTS_TABLE", defaultClientsTableName),
		Inventory:  tableName("INVENTORY_TABLE", defaultInventoryTableName),
		Quotes:     tableName("QUOTES_TABLE", defaultQuotesTableName),
		Equipment:  tableName("EQUIPMENT_TABLE", defaultEquipmentTableName),
		WorkOrders: tableName("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
	}
}

// tableName reads a table name override from env, ignoring blank values.
func tableName(env, fallback string) string {
	if name := strings.TrimSpace(os.Getenv(env)); name != "" {
		return name
	}
	return fallback
}

type clientItem struct {
	ID        int64  `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Document  string `dynamodbav:"document"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"phone"`
	Address   string `dynamodbav:"address"`
	CreatedAt string `dynamodbav:"created_at"`
}

type inventoryItemRecord struct {
	ID          int64  `dynamodbav:"id"`
	Brand       string `dynamodbav:"brand"`
	Model       string `dynamodbav:"model"`
	CapacityBTU int    `dynamodbav:"capacity_btu"`
	Stock       int    `dynamodbav:"stock"`
	Status      string `dynamodbav:"status"`
	UnitPrice   string `dynamodbav:"unit_price"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type quoteEquipmentLineItem struct {
	ID              int64  `dynamodbav:"id"`
	InventoryItemID int64  `dynamodbav:"inventory_item_id"`
	Quantity        int    `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
}

type quoteMaterialLineItem struct {
	ID          int64  `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
}

type quoteItem struct {
	ID              int64                    `dynamodbav:"id"`
	ClientID        int64                    `dynamodbav:"client_id"`
	Type            string                   `dynamodbav:"type"`
	Status          string                   `dynamodbav:"status"`
	Address         string                   `dynamodbav:"address"`
	Description     string                   `dynamodbav:"description"`
	LaborCost       string                   `dynamodbav:"labor_cost"`
	MaterialCost    string                   `dynamodbav:"material_cost"`
	Total           string                   `dynamodbav:"total"`
	InventoryItemID *int64                   `dynamodbav:"inventory_item_id,omitempty"`
	EquipmentLines  []quoteEquipmentLineItem `dynamodbav:"equipment_lines,omitempty"`
	MaterialLines   []quoteMaterialLineItem  `dynamodbav:"material_lines,omitempty"`
	CreatedAt       string                   `dynamodbav:"created_at"`
	UpdatedAt       string                   `dynamodbav:"updated_at"`
	ApprovedAt      string                   `dynamodbav:"approved_at,omitempty"`
	ApprovedBy      *int64                   `dynamodbav:"approved_by,omitempty"`
	RejectedAt      string                   `dynamodbav:"rejected_at,omitempty"`
	RejectionReason string                   `dynamodbav:"rejection_reason,omitempty"`
}

type equipmentItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        int64  `dynamodbav:"client_id"`
	InventoryItemID *int64 `dynamodbav:"inventory_item_id,omitempty"`
	QuoteID         *int64 `dynamodbav:"quote_id,omitempty"`
	Serial          string `dynamodbav:"serial"`
	Brand           string `dynamodbav:"brand"`
	Model           string `dynamodbav:"model"`
	CapacityBTU     int    `dynamodbav:"capacity_btu"`
	Status          string `dynamodbav:"status"`
	InstalledAt     string `dynamodbav:"installed_at"`
	CreatedAt       string `dynamodbav:"created_at"`
}

type workOrderItem struct {
	ID           string `dynamodbav:"id"`
	ClientID     int64  `dynamodbav:"client_id"`
	EquipmentID  string `dynamodbav:"equipment_id,omitempty"`
	QuoteID      *int64 `dynamodbav:"quote_id,omitempty"`
	Type         string `dynamodbav:"type"`
	Status       string `dynamodbav:"status"`
	Technician   string `dynamodbav:"technician"`
	ScheduledFor string `dynamodbav:"scheduled_for"`
	Notes        string `dynamodbav:"notes"`
	MaterialCost string `dynamodbav:"material_cost"`
	CreatedBy    int64  `dynamodbav:"created_by"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// quoteGuardItem lives in the work orders table. Its key is derived from the quote id, so a
// conditional put of it can succeed at most once per quote.
type quoteGuardItem struct {
	ID          string `dynamodbav:"id"`
	Kind        string `dynamodbav:"kind"`
	QuoteID     int64  `dynamodbav:"quote_id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
}

func quoteGuardKey(quoteID int64) string {
	return "quote#" + strconv.FormatInt(quoteID, 10)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Document:  it.Document,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func toInventoryRecord(i entities.InventoryItem) inventoryItemRecord {
	return inventoryItemRecord{
		ID:          i.ID,
		Brand:       i.Brand,
		Model:       i.Model,
		CapacityBTU: i.CapacityBTU,
		Stock:       i.Stock,
		Status:      string(i.Status),
		UnitPrice:   i.UnitPrice.String(),
		UpdatedAt:   formatTime(i.UpdatedAt),
	}
}

func fromInventoryRecord(it inventoryItemRecord) entities.InventoryItem {
	return entities.InventoryItem{
		ID:          it.ID,
		Brand:       it.Brand,
		Model:       it.Model,
		CapacityBTU: it.CapacityBTU,
		Stock:       it.Stock,
		Status:      entities.InventoryStatus(it.Status),
		UnitPrice:   parseDecimal(it.UnitPrice),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:              q.ID,
		ClientID:        q.ClientID,
		Type:            string(q.Type),
		Status:          string(q.Status),
		Address:         q.Address,
		Description:     q.Description,
		LaborCost:       q.LaborCost.String(),
		MaterialCost:    q.MaterialCost.String(),
		Total:           q.Total.String(),
		InventoryItemID: q.InventoryItemID,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
		ApprovedAt:      formatTimePtr(q.ApprovedAt),
		ApprovedBy:      q.ApprovedBy,
		RejectedAt:      formatTimePtr(q.RejectedAt),
		RejectionReason: q.RejectionReason,
	}
	for _, l := range q.EquipmentLines {
		it.EquipmentLines = append(it.EquipmentLines, quoteEquipmentLineItem{ID: l.ID, InventoryItemID: l.InventoryItemID, Quantity: l.Quantity, UnitPrice: l.UnitPrice.String()})
	}
	for _, l := range q.MaterialLines {
		it.MaterialLines = append(it.MaterialLines, quoteMaterialLineItem{ID: l.ID, Description: l.Description, Quantity: l.Quantity, UnitPrice: l.UnitPrice.String()})
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:              it.ID,
		ClientID:        it.ClientID,
		Type:            entities.QuoteType(it.Type),
		Status:          entities.QuoteStatus(it.Status),
		Address:         it.Address,
		Description:     it.Description,
		LaborCost:       parseDecimal(it.LaborCost),
		MaterialCost:    parseDecimal(it.MaterialCost),
		Total:           parseDecimal(it.Total),
		InventoryItemID: it.InventoryItemID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		ApprovedAt:      parseTimePtr(it.ApprovedAt),
		ApprovedBy:      it.ApprovedBy,
		RejectedAt:      parseTimePtr(it.RejectedAt),
		RejectionReason: it.RejectionReason,
	}
	for _, l := range it.EquipmentLines {
		q.EquipmentLines = append(q.EquipmentLines, entities.QuoteEquipmentLine{
			ID: l.ID, QuoteID: it.ID, InventoryItemID: l.InventoryItemID, Quantity: l.Quantity, UnitPrice: parseDecimal(l.UnitPrice),
		})
	}
	for _, l := range it.MaterialLines {
		q.MaterialLines = append(q.MaterialLines, entities.QuoteMaterialLine{
			ID: l.ID, QuoteID: it.ID, Description: l.Description, Quantity: l.Quantity, UnitPrice: parseDecimal(l.UnitPrice),
		})
	}
	return q
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:              e.ID,
		ClientID:        e.ClientID,
		InventoryItemID: e.InventoryItemID,
		QuoteID:         e.QuoteID,
		Serial:          e.Serial,
		Brand:           e.Brand,
		Model:           e.Model,
		CapacityBTU:     e.CapacityBTU,
		Status:          string(e.Status),
		InstalledAt:     formatTime(e.InstalledAt),
		CreatedAt:       formatTime(e.CreatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:              it.ID,
		ClientID:        it.ClientID,
		InventoryItemID: it.InventoryItemID,
		QuoteID:         it.QuoteID,
		Serial:          it.Serial,
		Brand:           it.Brand,
		Model:           it.Model,
		CapacityBTU:     it.CapacityBTU,
		Status:          entities.EquipmentStatus(it.Status),
		InstalledAt:     parseTime(it.InstalledAt),
		CreatedAt:       parseTime(it.CreatedAt),
	}
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ID:           wo.ID,
		ClientID:     wo.ClientID,
		QuoteID:      wo.QuoteID,
		Type:         string(wo.Type),
		Status:       string(wo.Status),
		Technician:   wo.Technician,
		ScheduledFor: formatTime(wo.ScheduledFor),
		Notes:        wo.Notes,
		MaterialCost: wo.MaterialCost.String(),
		CreatedBy:    wo.CreatedBy,
		CreatedAt:    formatTime(wo.CreatedAt),
	}
	if wo.EquipmentID != nil {
		it.EquipmentID = *wo.EquipmentID
	}
	return it
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
