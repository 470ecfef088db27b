package reservation

import (
	"fmt"
	"math"
	"time"
)

// TimeSlot is a half-open interval [start, end) in UTC.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrMissingTime
	}
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start.UTC(),
		end:   end.UTC(),
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps applies the half-open rule: [a,b) and [c,d) overlap iff a < d and c < b.
// Touching endpoints do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

func (ts TimeSlot) StartsBefore(t time.Time) bool {
	return ts.start.Before(t)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// MaxMoneyCents caps every stored amount at 9,999,999,999.99.
const MaxMoneyCents int64 = 999_999_999_999

// Money is a non-negative amount in cents, at most MaxMoneyCents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	if cents > MaxMoneyCents {
		return Money{}, ErrPriceTooLarge
	}
	return Money{cents: cents}, nil
}

// MoneyFromAmount converts a decimal amount with two fraction digits, e.g. 150.25.
func MoneyFromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidPrice
	}
	return moneyFromCents(math.Round(amount * 100))
}

// moneyFromCents range-checks before converting so the int64 cannot wrap.
func moneyFromCents(cents float64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	if cents > float64(MaxMoneyCents) {
		return Money{}, ErrPriceTooLarge
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
