package usecase

import (
	"fmt"
	"strings"
	"time"

	"hvac_service/internal/domain/entities"
	"hvac_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

// ULIDSerialGenerator builds serials as BRAND-MODEL-<capacity>BTU-<ulid>-<seq>.
// The ULID carries the provisioning timestamp and enough entropy to keep concurrent
// approvals of the same model apart.
type ULIDSerialGenerator struct {
	clock interfaces.IClock
}

var _ interfaces.ISerialGenerator = (*ULIDSerialGenerator)(nil)

func NewULIDSerialGenerator(clock interfaces.IClock) *ULIDSerialGenerator {
	if clock == nil {
		clock = systemClock{}
	}
	return &ULIDSerialGenerator{clock: clock}
}

func (g *ULIDSerialGenerator) NewSerial(item entities.InventoryItem, sequence int) string {
	id := ulid.MustNew(ulid.Timestamp(g.clock.Now()), ulid.DefaultEntropy())
	return fmt.Sprintf("%s-%s-%dBTU-%s-%03d", serialToken(item.Brand), serialToken(item.Model), item.CapacityBTU, id.String(), sequence)
}

func serialToken(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "NA"
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "-", " ")), "_")
}
