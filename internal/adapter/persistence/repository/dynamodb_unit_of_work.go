package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the TransactWriteItems limit.
const maxTransactItems = 100

const quoteGuardKind = "quote_guard"

// DynamoAPI is the part of *dynamodb.Client the unit of work needs.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// DynamoUnitOfWork runs a use case against DynamoDB.
//
// Reads are strongly consistent GetItems (the client_id GSI query is the exception). Writes are
// buffered and sent as one TransactWriteItems on commit; every write carries a condition on the
// value it was derived from, so a concurrent writer cancels the whole transaction.
//
// Table requirements:
//   - clients, inventory_items, quotes: PK id (number)
//   - equipment: PK id (string), GSI client_id-index on client_id
//   - work_orders: PK id (string); also holds the "quote#<id>" guard items
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: DynamoTablesFromEnv()}
}

func (u *DynamoUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITxRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newDynamoTx(u.ddb, u.tables)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit(ctx)
}

type writeKind int

const (
	writeQuote writeKind = iota
	writeGuard
	writeWorkOrder
	writeInventory
	writeEquipmentPut
	writeEquipmentStatus
)

type quoteWrite struct {
	quote entities.Quote
	from  entities.QuoteStatus
}

type equipmentStatusWrite struct {
	id       string
	from, to entities.EquipmentStatus
}

type dynamoTx struct {
	ddb    DynamoAPI
	tables DynamoTables

	quotes    map[int64]entities.Quote
	inventory map[int64]entities.InventoryItem
	readStock map[int64]int

	quoteWrites     map[int64]*quoteWrite
	stockWrites     map[int64]struct{}
	equipmentPuts   []entities.Equipment
	equipmentStatus []*equipmentStatusWrite
	workOrders      []entities.WorkOrder
}

var _ interfaces.ITxRepository = (*dynamoTx)(nil)

func newDynamoTx(ddb DynamoAPI, tables DynamoTables) *dynamoTx {
	return &dynamoTx{
		ddb:         ddb,
		tables:      tables,
		quotes:      map[int64]entities.Quote{},
		inventory:   map[int64]entities.InventoryItem{},
		readStock:   map[int64]int{},
		quoteWrites: map[int64]*quoteWrite{},
		stockWrites: map[int64]struct{}{},
	}
}

func numberKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func stringKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (t *dynamoTx) getItem(ctx context.Context, table string, key map[string]types.AttributeValue, out any) (bool, error) {
	res, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("get item from %s: %w", table, err)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func (t *dynamoTx) GetQuote(ctx context.Context, id int64) (entities.Quote, error) {
	if q, ok := t.quotes[id]; ok {
		return q, nil
	}
	var it quoteItem
	found, err := t.getItem(ctx, t.tables.Quotes, numberKey(id), &it)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	q := fromQuoteItem(it)
	t.quotes[id] = q
	return q, nil
}

func (t *dynamoTx) GetClient(ctx context.Context, id int64) (entities.Client, error) {
	var it clientItem
	found, err := t.getItem(ctx, t.tables.Clients, numberKey(id), &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (t *dynamoTx) GetInventoryItem(ctx context.Context, id int64) (entities.InventoryItem, error) {
	if item, ok := t.inventory[id]; ok {
		return item, nil
	}
	var it inventoryItemRecord
	found, err := t.getItem(ctx, t.tables.Inventory, numberKey(id), &it)
	if err != nil || !found {
		return entities.InventoryItem{}, err
	}
	item := fromInventoryRecord(it)
	t.inventory[id] = item
	t.readStock[id] = item.Stock
	return item, nil
}

func (t *dynamoTx) HasWorkOrderForQuote(ctx context.Context, quoteID int64) (bool, error) {
	for _, wo := range t.workOrders {
		if wo.QuoteID != nil && *wo.QuoteID == quoteID {
			return true, nil
		}
	}
	var guard quoteGuardItem
	return t.getItem(ctx, t.tables.WorkOrders, stringKey(quoteGuardKey(quoteID)), &guard)
}

// ListEquipmentByClient queries the client_id GSI. GSIs only serve eventually consistent reads;
// the status condition written by UpdateEquipmentStatus catches anything this misses.
func (t *dynamoTx) ListEquipmentByClient(ctx context.Context, clientID int64) ([]entities.Equipment, error) {
	var (
		out   []entities.Equipment
		start map[string]types.AttributeValue
	)
	for {
		res, err := t.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(t.tables.Equipment),
			IndexName:              aws.String(equipmentClientIndex),
			KeyConditionExpression: aws.String("client_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberN{Value: strconv.FormatInt(clientID, 10)},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, fmt.Errorf("query equipment: %w", err)
		}
		for _, raw := range res.Items {
			var it equipmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromEquipmentItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		start = res.LastEvaluatedKey
	}

	for i := range out {
		if w := t.statusWrite(out[i].ID); w != nil {
			out[i].Status = w.to
		}
	}
	for _, e := range t.equipmentPuts {
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
	return out, nil
}

func (t *dynamoTx) UpdateInventoryStock(_ context.Context, item entities.InventoryItem, previousStock int) error {
	if cur, ok := t.inventory[item.ID]; ok && cur.Stock != previousStock {
		return fmt.Errorf("inventory item %d: %w", item.ID, interfaces.ErrStaleWrite)
	}
	if item.Stock < 0 {
		return fmt.Errorf("inventory item %d: negative stock %d", item.ID, item.Stock)
	}
	if _, read := t.readStock[item.ID]; !read {
		t.readStock[item.ID] = previousStock
	}
	t.inventory[item.ID] = item
	t.stockWrites[item.ID] = struct{}{}
	return nil
}

func (t *dynamoTx) CreateEquipment(_ context.Context, e entities.Equipment) error {
	for _, pending := range t.equipmentPuts {
		if pending.ID == e.ID {
			return fmt.Errorf("equipment %s: %w", e.ID, interfaces.ErrStaleWrite)
		}
	}
	t.equipmentPuts = append(t.equipmentPuts, e)
	return nil
}

func (t *dynamoTx) UpdateEquipmentStatus(_ context.Context, id string, from, to entities.EquipmentStatus) error {
	for i := range t.equipmentPuts {
		if t.equipmentPuts[i].ID != id {
			continue
		}
		if t.equipmentPuts[i].Status != from {
			return fmt.Errorf("equipment %s: %w", id, interfaces.ErrStaleWrite)
		}
		t.equipmentPuts[i].Status = to
		return nil
	}
	if w := t.statusWrite(id); w != nil {
		if w.to != from {
			return fmt.Errorf("equipment %s: %w", id, interfaces.ErrStaleWrite)
		}
		w.to = to
		return nil
	}
	t.equipmentStatus = append(t.equipmentStatus, &equipmentStatusWrite{id: id, from: from, to: to})
	return nil
}

func (t *dynamoTx) statusWrite(id string) *equipmentStatusWrite {
	for _, w := range t.equipmentStatus {
		if w.id == id {
			return w
		}
	}
	return nil
}

func (t *dynamoTx) CreateWorkOrder(_ context.Context, wo entities.WorkOrder) error {
	if wo.QuoteID != nil {
		for _, pending := range t.workOrders {
			if pending.QuoteID != nil && *pending.QuoteID == *wo.QuoteID {
				return interfaces.ErrWorkOrderExists
			}
		}
	}
	t.workOrders = append(t.workOrders, wo)
	return nil
}

func (t *dynamoTx) UpdateQuoteStatus(_ context.Context, q entities.Quote, from entities.QuoteStatus) error {
	if cur, ok := t.quotes[q.ID]; ok && cur.Status != from {
		return fmt.Errorf("quote %d: %w", q.ID, interfaces.ErrQuoteStateChanged)
	}
	if w, ok := t.quoteWrites[q.ID]; ok {
		w.quote = q
	} else {
		t.quoteWrites[q.ID] = &quoteWrite{quote: q, from: from}
	}
	t.quotes[q.ID] = q
	return nil
}

func (t *dynamoTx) commit(ctx context.Context) error {
	items, kinds, err := t.transactItems()
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("%d writes: %w", len(items), interfaces.ErrTransactionTooLarge)
	}
	_, err = t.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactError(err, kinds)
	}
	return nil
}

// transactItems lays the buffered writes out in a fixed order: quotes, work orders with their
// guards, stock, new equipment, equipment status changes.
func (t *dynamoTx) transactItems() ([]types.TransactWriteItem, []writeKind, error) {
	var (
		items []types.TransactWriteItem
		kinds []writeKind
	)
	add := func(k writeKind, it types.TransactWriteItem) {
		items = append(items, it)
		kinds = append(kinds, k)
	}

	quoteIDs := make([]int64, 0, len(t.quoteWrites))
	for id := range t.quoteWrites {
		quoteIDs = append(quoteIDs, id)
	}
	slices.Sort(quoteIDs)
	for _, id := range quoteIDs {
		add(writeQuote, t.quoteUpdate(t.quoteWrites[id]))
	}

	for _, wo := range t.workOrders {
		if wo.QuoteID != nil {
			guard, err := attributevalue.MarshalMap(quoteGuardItem{
				ID:          quoteGuardKey(*wo.QuoteID),
				Kind:        quoteGuardKind,
				QuoteID:     *wo.QuoteID,
				WorkOrderID: wo.ID,
			})
			if err != nil {
				return nil, nil, err
			}
			add(writeGuard, t.conditionalPut(t.tables.WorkOrders, guard))
		}
		av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
		if err != nil {
			return nil, nil, err
		}
		add(writeWorkOrder, t.conditionalPut(t.tables.WorkOrders, av))
	}

	itemIDs := make([]int64, 0, len(t.stockWrites))
	for id := range t.stockWrites {
		itemIDs = append(itemIDs, id)
	}
	slices.Sort(itemIDs)
	for _, id := range itemIDs {
		add(writeInventory, t.stockUpdate(t.inventory[id], t.readStock[id]))
	}

	for _, e := range t.equipmentPuts {
		av, err := attributevalue.MarshalMap(toEquipmentItem(e))
		if err != nil {
			return nil, nil, err
		}
		add(writeEquipmentPut, t.conditionalPut(t.tables.Equipment, av))
	}

	for _, w := range t.equipmentStatus {
		add(writeEquipmentStatus, types.TransactWriteItem{Update: &types.Update{
			TableName:           aws.String(t.tables.Equipment),
			Key:                 stringKey(w.id),
			UpdateExpression:    aws.String("SET #status = :to"),
			ConditionExpression: aws.String("#status = :from"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":to":   &types.AttributeValueMemberS{Value: string(w.to)},
				":from": &types.AttributeValueMemberS{Value: string(w.from)},
			},
		}})
	}
	return items, kinds, nil
}

func (t *dynamoTx) conditionalPut(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName:           aws.String(table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	}}
}

func (t *dynamoTx) stockUpdate(item entities.InventoryItem, expected int) types.TransactWriteItem {
	return types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(t.tables.Inventory),
		Key:                 numberKey(item.ID),
		UpdateExpression:    aws.String("SET #stock = :stock, #status = :status, #updated_at = :updated_at"),
		ConditionExpression: aws.String("#stock = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#stock":      "stock",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stock":      &types.AttributeValueMemberN{Value: strconv.Itoa(item.Stock)},
			":status":     &types.AttributeValueMemberS{Value: string(item.Status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(item.UpdatedAt)},
			":expected":   &types.AttributeValueMemberN{Value: strconv.Itoa(expected)},
		},
	}}
}

func (t *dynamoTx) quoteUpdate(w *quoteWrite) types.TransactWriteItem {
	q := w.quote
	set := []string{"#status = :status", "#updated_at = :updated_at"}
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(q.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(q.UpdatedAt)},
		":from":       &types.AttributeValueMemberS{Value: string(w.from)},
	}
	if q.ApprovedAt != nil {
		set = append(set, "#approved_at = :approved_at")
		names["#approved_at"] = "approved_at"
		values[":approved_at"] = &types.AttributeValueMemberS{Value: formatTime(*q.ApprovedAt)}
	}
	if q.ApprovedBy != nil {
		set = append(set, "#approved_by = :approved_by")
		names["#approved_by"] = "approved_by"
		values[":approved_by"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*q.ApprovedBy, 10)}
	}
	if q.RejectedAt != nil {
		set = append(set, "#rejected_at = :rejected_at")
		names["#rejected_at"] = "rejected_at"
		values[":rejected_at"] = &types.AttributeValueMemberS{Value: formatTime(*q.RejectedAt)}
	}
	if q.RejectionReason != "" {
		set = append(set, "#rejection_reason = :rejection_reason")
		names["#rejection_reason"] = "rejection_reason"
		values[":rejection_reason"] = &types.AttributeValueMemberS{Value: q.RejectionReason}
	}

	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(t.tables.Quotes),
		Key:                       numberKey(q.ID),
		UpdateExpression:          aws.String("SET " + strings.Join(set, ", ")),
		ConditionExpression:       aws.String("#status = :from"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
}

// mapTransactError turns a cancelled transaction into the store error of the write that failed
// its condition. A failed guard outranks the quote condition that fails with it; a quote
// failure alone means the quote was closed concurrently.
func mapTransactError(err error, kinds []writeKind) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return fmt.Errorf("transact write: %w", err)
	}
	var quoteFailed, guardFailed bool
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != "ConditionalCheckFailed" || i >= len(kinds) {
			continue
		}
		switch kinds[i] {
		case writeQuote:
			quoteFailed = true
		case writeGuard:
			guardFailed = true
		}
	}
	switch {
	case guardFailed:
		return interfaces.ErrWorkOrderExists
	case quoteFailed:
		return interfaces.ErrQuoteStateChanged
	}
	return interfaces.ErrStaleWrite
}
