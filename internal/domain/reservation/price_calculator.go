package reservation

import (
	"math"
	"strings"
	"unicode"
)

// MaxGuestCount caps a parsed guest count so sums and surcharges stay in range.
const MaxGuestCount = 1_000_000

type PriceCalculator interface {
	Quote(roomType RoomType, adults, children string) PriceQuote
}

type DefaultPriceCalculator struct {
	BaseRates      map[RoomType]int64
	ExtraGuestRate int64
	IncludedGuests int
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		BaseRates: map[RoomType]int64{
			RoomTypeStandard: 90000, // COP por noche
			RoomTypeDeluxe:   120000,
			RoomTypeSuite:    150000,
		},
		ExtraGuestRate: 20000,
		IncludedGuests: 2,
	}
}

func (pc *DefaultPriceCalculator) Quote(roomType RoomType, adults, children string) PriceQuote {
	base := pc.BaseRates[roomType]
	guests := ParseCount(adults) + ParseCount(children)

	extra := guests - pc.IncludedGuests
	if extra < 0 {
		extra = 0
	}

	return PriceQuote{
		base:      NewMoney(base),
		surcharge: NewMoney(surcharge(base, int64(extra), pc.ExtraGuestRate)),
		guests:    guests,
	}
}

// surcharge is extra*rate, never negative and saturated so base+surcharge
// fits in an int64.
func surcharge(base, extra, rate int64) int64 {
	if extra <= 0 || rate <= 0 {
		return 0
	}
	limit := int64(math.MaxInt64)
	if base > 0 {
		limit -= base
	}
	if extra > limit/rate {
		return limit
	}
	return extra * rate
}

// ParseCount reads the leading integer of a guest count the way the browser
// form does: surrounding whitespace and an optional sign are accepted, trailing
// garbage is ignored, and anything without leading digits counts as zero.
// Magnitudes above MaxGuestCount are clamped to it.
func ParseCount(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n := 0
	for _, ch := range s[:end] {
		n = n*10 + int(ch-'0')
		if n >= MaxGuestCount {
			n = MaxGuestCount
			break
		}
	}
	return sign * n
}
