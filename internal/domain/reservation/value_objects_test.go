//go:build unit

package reservation_test

import (
	"testing"

	"hotel-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestMoney_String(t *testing.T) {
	cases := map[int64]string{
		0:        "COP 0",
		999:      "COP 999",
		1000:     "COP 1.000",
		90000:    "COP 90.000",
		130000:   "COP 130.000",
		1234567:  "COP 1.234.567",
		-20000:   "COP -20.000",
		10000000: "COP 10.000.000",
	}

	for amount, want := range cases {
		assert.Equal(t, want, reservation.NewMoney(amount).String())
	}
}

func TestPriceQuote_Total(t *testing.T) {
	q := reservation.NewPriceQuote(reservation.NewMoney(120000), reservation.NewMoney(40000), 4)

	assert.Equal(t, int64(160000), q.Total().Amount())
	assert.Equal(t, 4, q.Guests())
	assert.False(t, q.Total().IsZero())
}
