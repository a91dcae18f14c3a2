package interfaces

import (
	"context"

	"hvac_service/internal/domain/events"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go

// IEventPublisher announces committed approvals to other services (scheduling, purchasing).
type IEventPublisher interface {
	PublishQuoteApproved(ctx context.Context, ev events.QuoteApproved) error
	PublishStockDepleted(ctx context.Context, ev events.StockDepleted) error
}
