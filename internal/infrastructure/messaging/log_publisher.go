package messaging

import (
	"context"

	"hvac_service/internal/domain/events"
	"hvac_service/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogPublisher writes events to the log instead of a broker. Used when RABBITMQ_URL is unset.
type LogPublisher struct {
	log *zap.Logger
}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{log: logger.Named("messaging")}
}

func (p *LogPublisher) PublishQuoteApproved(_ context.Context, ev events.QuoteApproved) error {
	p.log.Info(events.EventTypeQuoteApproved,
		zap.Int64("quote_id", ev.QuoteID),
		zap.String("quote_type", ev.QuoteType),
		zap.String("work_order_id", ev.WorkOrderID),
		zap.Strings("equipment_ids", ev.EquipmentIDs),
		zap.Time("scheduled_for", ev.ScheduledFor),
	)
	return nil
}

func (p *LogPublisher) PublishStockDepleted(_ context.Context, ev events.StockDepleted) error {
	p.log.Info(events.EventTypeStockDepleted,
		zap.Int64("inventory_item_id", ev.InventoryItemID),
		zap.String("brand", ev.Brand),
		zap.String("model", ev.Model),
		zap.Int64("quote_id", ev.QuoteID),
	)
	return nil
}
