//go:build unit

package reservation_test

import (
	"math"
	"testing"

	"hotel-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator()

	cases := []struct {
		name      string
		roomType  reservation.RoomType
		adults    string
		children  string
		base      int64
		surcharge int64
		guests    int
	}{
		{name: "standard two adults", roomType: "standard", adults: "2", children: "0", base: 90000, surcharge: 0, guests: 2},
		{name: "deluxe three guests", roomType: "deluxe", adults: "2", children: "1", base: 120000, surcharge: 20000, guests: 3},
		{name: "suite five guests", roomType: "suite", adults: "3", children: "2", base: 150000, surcharge: 60000, guests: 5},
		{name: "single guest gets no discount", roomType: "standard", adults: "1", children: "", base: 90000, surcharge: 0, guests: 1},
		{name: "empty counts", roomType: "suite", adults: "", children: "", base: 150000, surcharge: 0, guests: 0},
		{name: "no room type", roomType: "", adults: "4", children: "0", base: 0, surcharge: 40000, guests: 4},
		{name: "unknown room type", roomType: "penthouse", adults: "2", children: "0", base: 0, surcharge: 0, guests: 2},
		{name: "non-numeric children ignored", roomType: "deluxe", adults: "3", children: "abc", base: 120000, surcharge: 20000, guests: 3},
		{name: "trailing garbage", roomType: "standard", adults: "3 adults", children: "1.5", base: 90000, surcharge: 40000, guests: 4},
		{name: "negative offsets", roomType: "standard", adults: "4", children: "-1", base: 90000, surcharge: 20000, guests: 3},
		{name: "negative total has no surcharge", roomType: "standard", adults: "-9223372036854775808", children: "1", base: 90000, surcharge: 0, guests: -999999},
		{name: "huge adults are capped", roomType: "standard", adults: "1000000000000000", children: "0", base: 90000, surcharge: 999998 * 20000, guests: 1000000},
		{name: "max int64 adults do not wrap", roomType: "standard", adults: "9223372036854775807", children: "1", base: 90000, surcharge: 999999 * 20000, guests: 1000001},
		{name: "both counts capped", roomType: "suite", adults: "99999999999999999999", children: "99999999999999999999", base: 150000, surcharge: 1999998 * 20000, guests: 2000000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := calc.Quote(tc.roomType, tc.adults, tc.children)

			assert.Equal(t, tc.base, q.Base().Amount())
			assert.Equal(t, tc.surcharge, q.Surcharge().Amount())
			assert.Equal(t, tc.base+tc.surcharge, q.Total().Amount())
			assert.Equal(t, tc.guests, q.Guests())
		})
	}
}

func TestDefaultPriceCalculator_QuoteNeverNegative(t *testing.T) {
	calc := reservation.NewDefaultPriceCalculator()
	counts := []string{"", "0", "3", "-3", "999999", "1000000", "9223372036854775807", "-9223372036854775808", "18446744073709551616"}

	for _, adults := range counts {
		for _, children := range counts {
			q := calc.Quote(reservation.RoomTypeSuite, adults, children)

			assert.GreaterOrEqual(t, q.Surcharge().Amount(), int64(0), "adults=%q children=%q", adults, children)
			assert.GreaterOrEqual(t, q.Total().Amount(), q.Base().Amount(), "adults=%q children=%q", adults, children)
		}
	}
}

func TestDefaultPriceCalculator_SaturatesSurcharge(t *testing.T) {
	calc := &reservation.DefaultPriceCalculator{
		BaseRates:      map[reservation.RoomType]int64{reservation.RoomTypeSuite: 150000},
		ExtraGuestRate: math.MaxInt64 / 2,
		IncludedGuests: 2,
	}

	q := calc.Quote(reservation.RoomTypeSuite, "5", "0")

	assert.Equal(t, int64(math.MaxInt64-150000), q.Surcharge().Amount())
	assert.Equal(t, int64(math.MaxInt64), q.Total().Amount())
}

func TestDefaultPriceCalculator_NegativeRateIgnored(t *testing.T) {
	calc := &reservation.DefaultPriceCalculator{
		BaseRates:      map[reservation.RoomType]int64{reservation.RoomTypeStandard: 100},
		ExtraGuestRate: -10,
		IncludedGuests: 2,
	}

	q := calc.Quote(reservation.RoomTypeStandard, "4", "0")

	assert.Zero(t, q.Surcharge().Amount())
}

func TestDefaultPriceCalculator_CustomRates(t *testing.T) {
	calc := &reservation.DefaultPriceCalculator{
		BaseRates:      map[reservation.RoomType]int64{reservation.RoomTypeStandard: 100},
		ExtraGuestRate: 10,
		IncludedGuests: 1,
	}

	q := calc.Quote(reservation.RoomTypeStandard, "2", "1")

	assert.Equal(t, int64(120), q.Total().Amount())
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"":                     0,
		"0":                    0,
		"2":                    2,
		"  3":                  3,
		"\t4":                  4,
		"+5":                   5,
		"-2":                   -2,
		"12abc":                12,
		"1.9":                  1,
		"abc":                  0,
		"-":                    0,
		"+":                    0,
		"1e3":                  1,
		"007":                  7,
		" - 1":                 0,
		"3 ":                   3,
		"２":                    0,
		"99999x":               99999,
		"999999":               999999,
		"1000000":              reservation.MaxGuestCount,
		"1000000000000000":     reservation.MaxGuestCount,
		"9223372036854775807":  reservation.MaxGuestCount,
		"-9223372036854775808": -reservation.MaxGuestCount,
		"18446744073709551616": reservation.MaxGuestCount,
	}

	for raw, want := range cases {
		assert.Equal(t, want, reservation.ParseCount(raw), "raw=%q", raw)
	}
}
