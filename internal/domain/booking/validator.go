// Package booking validates and derives the booked day span of a hunt.
//
// Every date is pinned to noon UTC on its own calendar day before any
// differencing, so a DST shift or a client in another zone cannot move a span
// by one day.
package booking

import (
	"errors"
	"fmt"
	"time"

	"outfitter_billing/internal/domain/entities"
)

const day = 24 * time.Hour

var (
	ErrInvalidRange        = errors.New("end date is before start date")
	ErrOutsideSeasonWindow = errors.New("dates fall outside the season window")
	ErrWrongDuration       = errors.New("span does not match the required number of days")
	ErrMissingStart        = errors.New("a start date is required")
)

// SpanError carries the legal values for a rejected span so the client can
// correct the selection without support.
type SpanError struct {
	Kind         error
	RequiredDays int
	ActualDays   int
	Window       *entities.DateWindow
}

func (e *SpanError) Error() string {
	switch e.Kind {
	case ErrWrongDuration:
		return fmt.Sprintf("%v: requires a %d-day span, got %d days", e.Kind, e.RequiredDays, e.ActualDays)
	case ErrOutsideSeasonWindow:
		if e.Window != nil {
			return fmt.Sprintf("%v: dates must be between %s and %s", e.Kind, FormatDate(e.Window.Start), FormatDate(e.Window.End))
		}
	}
	return e.Kind.Error()
}

func (e *SpanError) Unwrap() error { return e.Kind }

// Span is a validated, noon-pinned inclusive day range.
type Span struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// RequiredDays is the plan's included days plus any extra days bought. Zero
// means the span length is unconstrained.
func RequiredDays(plan *entities.PricingItem, extraDays int) int {
	n := max(0, extraDays)
	if plan != nil {
		n += plan.Days()
	}
	return n
}

// Noon pins t to 12:00 UTC on the calendar day t shows in its own location.
func Noon(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// DaysInclusive counts calendar days from start to end, both included.
func DaysInclusive(start, end time.Time) int {
	return int(Noon(end).Sub(Noon(start))/day) + 1
}

// ValidateSpan checks ordering, season window and, when requiredDays > 0, the
// exact inclusive length of the span.
func ValidateSpan(start, end time.Time, window *entities.DateWindow, requiredDays int) (Span, error) {
	s, e := Noon(start), Noon(end)
	if e.Before(s) {
		return Span{}, &SpanError{Kind: ErrInvalidRange, RequiredDays: requiredDays}
	}
	days := DaysInclusive(s, e)

	if window != nil {
		ws, we := Noon(window.Start), Noon(window.End)
		if s.Before(ws) || s.After(we) || e.Before(ws) || e.After(we) {
			return Span{}, &SpanError{Kind: ErrOutsideSeasonWindow, RequiredDays: requiredDays, ActualDays: days, Window: window}
		}
	}

	if requiredDays > 0 && days != requiredDays {
		return Span{}, &SpanError{Kind: ErrWrongDuration, RequiredDays: requiredDays, ActualDays: days, Window: window}
	}
	return Span{Start: s, End: e, Days: days}, nil
}

// DeriveSpan fills in a missing end date from the required day count and then
// validates the result. With no end and no requirement the hunt is one day.
func DeriveSpan(start time.Time, end *time.Time, window *entities.DateWindow, requiredDays int) (Span, error) {
	if start.IsZero() {
		return Span{}, ErrMissingStart
	}
	if end != nil && !end.IsZero() {
		return ValidateSpan(start, *end, window, requiredDays)
	}
	n := max(1, requiredDays)
	derived := Noon(start).AddDate(0, 0, n-1)
	return ValidateSpan(start, derived, window, requiredDays)
}

func FormatDate(t time.Time) string {
	return Noon(t).Format(time.DateOnly)
}
