//go:build unit

package payment_test

import (
	"strings"
	"testing"
	"time"

	"hotel-reservation/internal/domain/payment"
	"hotel-reservation/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampInvoiceGenerator(t *testing.T) {
	clk := clock.NewMockClock(time.UnixMilli(1741964966123))

	t.Run("default prefix", func(t *testing.T) {
		gen := payment.NewTimestampInvoiceGenerator("", clk)
		assert.Equal(t, "RESERVA-1741964966123", gen.NextInvoice())
	})

	t.Run("custom prefix follows the clock", func(t *testing.T) {
		gen := payment.NewTimestampInvoiceGenerator("HOTEL", clk)
		first := gen.NextInvoice()
		clk.Advance(time.Millisecond)

		assert.Equal(t, "HOTEL-1741964966123", first)
		assert.Equal(t, "HOTEL-1741964966124", gen.NextInvoice())
	})
}

func TestUUIDInvoiceGenerator(t *testing.T) {
	gen := payment.NewUUIDInvoiceGenerator("")

	a, b := gen.NextInvoice(), gen.NextInvoice()

	assert.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "RESERVA-"))
	_, err := uuid.Parse(strings.TrimPrefix(a, "RESERVA-"))
	assert.NoError(t, err)
}
