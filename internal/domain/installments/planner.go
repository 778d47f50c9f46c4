// Package installments splits a bill total into a monthly payment schedule.
package installments

import (
	"errors"
	"fmt"
	"time"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/pricing"
)

const (
	MinInstallments = 2
	MaxInstallments = 12
)

var (
	ErrInvalidCount   = errors.New("invalid number of installments")
	ErrNegativeTotal  = errors.New("total must not be negative")
	ErrMissingDueDate = errors.New("a first due date is required")
)

// Installment is one slice of a split total.
type Installment struct {
	Number           int       `json:"number"`
	AmountCents      int64     `json:"amount_cents"`
	SubtotalCents    int64     `json:"subtotal_cents"`
	PlatformFeeCents int64     `json:"platform_fee_cents"`
	DueDate          time.Time `json:"due_date"`
}

// Split divides totalCents into n installments. The first totalCents%n
// installments carry one extra cent, so the amounts sum to totalCents exactly
// and differ from each other by at most one cent. Installment k is due k
// calendar months after firstDue, clamped to the end of shorter months.
func Split(totalCents int64, n int, firstDue time.Time) ([]Installment, error) {
	if n < MinInstallments || n > MaxInstallments {
		return nil, fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidCount, MinInstallments, MaxInstallments, n)
	}
	if totalCents < 0 {
		return nil, ErrNegativeTotal
	}
	if firstDue.IsZero() {
		return nil, ErrMissingDueDate
	}

	base := totalCents / int64(n)
	remainder := totalCents - base*int64(n)
	first := booking.Noon(firstDue)

	out := make([]Installment, n)
	for i := range out {
		amount := base
		if int64(i) < remainder {
			amount++
		}
		out[i] = Installment{
			Number:        i + 1,
			AmountCents:   amount,
			SubtotalCents: amount,
			DueDate:       AddMonthsClamped(first, i),
		}
	}
	return out, nil
}

// WithFees recomputes each installment's platform fee from its own slice:
// ceil(slice * rate), at least one cent, never more than the slice. The
// subtotal is what remains of the slice. Installment totals still sum to the
// split total; subtotals may drift a few cents from the contract subtotal.
func WithFees(in []Installment, rate pricing.FeeRate) []Installment {
	out := make([]Installment, len(in))
	for i, it := range in {
		fee := int64(0)
		if it.AmountCents > 0 {
			fee = min(it.AmountCents, max(1, rate.Of(it.AmountCents)))
		}
		it.PlatformFeeCents = fee
		it.SubtotalCents = it.AmountCents - fee
		out[i] = it
	}
	return out
}

// AddMonthsClamped moves t forward by months calendar months keeping the day
// of month, or the last day of the target month when it is shorter.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := daysIn(target.Year(), target.Month())
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
