package interfaces

import (
	"time"

	"hvac_service/internal/domain/entities"
)

// IIDGenerator issues identifiers for equipment and work orders.
type IIDGenerator interface {
	NewID() string
}

// ISerialGenerator issues the serial printed on a provisioned unit. sequence is the
// position of the unit within one provisioning run, starting at 1.
type ISerialGenerator interface {
	NewSerial(item entities.InventoryItem, sequence int) string
}

type IClock interface {
	Now() time.Time
}
