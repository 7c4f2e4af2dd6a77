package reservation

import (
	"strconv"
	"strings"
)

// Money is an amount of whole Colombian pesos.
type Money struct {
	amount int64
}

func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

// String renders the amount with dot thousand separators, e.g. "COP 130.000".
func (m Money) String() string {
	digits := strconv.FormatInt(m.amount, 10)
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	if neg {
		return "COP -" + b.String()
	}
	return "COP " + b.String()
}

type PriceQuote struct {
	base      Money
	surcharge Money
	guests    int
}

func NewPriceQuote(base, surcharge Money, guests int) PriceQuote {
	return PriceQuote{base: base, surcharge: surcharge, guests: guests}
}

func (q PriceQuote) Base() Money      { return q.base }
func (q PriceQuote) Surcharge() Money { return q.surcharge }
func (q PriceQuote) Guests() int      { return q.guests }

func (q PriceQuote) Total() Money {
	return q.base.Add(q.surcharge)
}
