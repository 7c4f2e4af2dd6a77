package payment

import (
	"strconv"

	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultInvoicePrefix = "RESERVA"

type InvoiceGenerator interface {
	NextInvoice() string
}

// TimestampInvoiceGenerator derives invoices from the current time in
// milliseconds. Two submissions in the same millisecond collide.
type TimestampInvoiceGenerator struct {
	prefix string
	clock  clock.Clock
}

func NewTimestampInvoiceGenerator(prefix string, c clock.Clock) *TimestampInvoiceGenerator {
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	return &TimestampInvoiceGenerator{prefix: prefix, clock: c}
}

func (g *TimestampInvoiceGenerator) NextInvoice() string {
	return g.prefix + "-" + strconv.FormatInt(g.clock.Now().UnixMilli(), 10)
}

type UUIDInvoiceGenerator struct {
	prefix string
}

func NewUUIDInvoiceGenerator(prefix string) *UUIDInvoiceGenerator {
	if prefix == "" {
		prefix = DefaultInvoicePrefix
	}
	return &UUIDInvoiceGenerator{prefix: prefix}
}

func (g *UUIDInvoiceGenerator) NextInvoice() string {
	return g.prefix + "-" + uuid.NewString()
}
