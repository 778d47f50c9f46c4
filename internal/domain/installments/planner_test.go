package installments

import (
	"errors"
	"testing"
	"time"

	"outfitter_billing/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ExampleSchedule(t *testing.T) {
	got, err := Split(472500, 4, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 4)

	wantDue := []string{"2025-03-01", "2025-04-01", "2025-05-01", "2025-06-01"}
	for i, it := range got {
		assert.Equal(t, i+1, it.Number)
		assert.Equal(t, int64(118125), it.AmountCents)
		assert.Equal(t, wantDue[i], it.DueDate.Format(time.DateOnly))
	}
}

func TestSplit_SumAndSpread(t *testing.T) {
	first := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	totals := []int64{0, 1, 2, 11, 99, 100, 101, 472500, 472501, 999999, 1234567}
	for _, total := range totals {
		for n := MinInstallments; n <= MaxInstallments; n++ {
			got, err := Split(total, n, first)
			require.NoError(t, err)
			require.Len(t, got, n)

			var sum, lo, hi int64
			lo, hi = got[0].AmountCents, got[0].AmountCents
			for _, it := range got {
				sum += it.AmountCents
				lo = min(lo, it.AmountCents)
				hi = max(hi, it.AmountCents)
			}
			assert.Equal(t, total, sum, "total=%d n=%d", total, n)
			assert.LessOrEqual(t, hi-lo, int64(1), "total=%d n=%d", total, n)
		}
	}
}

func TestSplit_RemainderGoesFirst(t *testing.T) {
	got, err := Split(1003, 4, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	amounts := []int64{got[0].AmountCents, got[1].AmountCents, got[2].AmountCents, got[3].AmountCents}
	assert.Equal(t, []int64{251, 251, 251, 250}, amounts)
}

func TestSplit_Validation(t *testing.T) {
	d := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, n := range []int{-1, 0, 1, 13} {
		_, err := Split(1000, n, d)
		assert.True(t, errors.Is(err, ErrInvalidCount), "n=%d", n)
	}
	_, err := Split(-1, 2, d)
	assert.True(t, errors.Is(err, ErrNegativeTotal))
	_, err = Split(1000, 2, time.Time{})
	assert.True(t, errors.Is(err, ErrMissingDueDate))
}

func TestSplit_ClampsToShortMonths(t *testing.T) {
	got, err := Split(1200, 4, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	due := make([]string, len(got))
	for i, it := range got {
		due[i] = it.DueDate.Format(time.DateOnly)
	}
	assert.Equal(t, []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}, due)

	leap, err := Split(200, 2, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", leap[1].DueDate.Format(time.DateOnly))
}

func TestWithFees(t *testing.T) {
	rate, err := pricing.FeeRateFromPercent(5)
	require.NoError(t, err)

	split, err := Split(472500, 4, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	got := WithFees(split, rate)

	var total int64
	for _, it := range got {
		assert.Equal(t, int64(5907), it.PlatformFeeCents)
		assert.Equal(t, it.AmountCents, it.SubtotalCents+it.PlatformFeeCents)
		total += it.AmountCents
	}
	assert.Equal(t, int64(472500), total)
}

func TestWithFees_MinimumOneCent(t *testing.T) {
	zero, err := pricing.FeeRateFromPercent(0)
	require.NoError(t, err)

	split, err := Split(3, 3, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	for _, it := range WithFees(split, zero) {
		assert.Equal(t, int64(1), it.PlatformFeeCents)
		assert.Equal(t, int64(0), it.SubtotalCents)
	}

	empty, err := Split(0, 2, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	for _, it := range WithFees(empty, zero) {
		assert.Equal(t, int64(0), it.PlatformFeeCents)
	}
}

func TestAddMonthsClamped(t *testing.T) {
	d := time.Date(2025, 10, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-30", AddMonthsClamped(d, 1).Format(time.DateOnly))
	assert.Equal(t, "2026-02-28", AddMonthsClamped(d, 4).Format(time.DateOnly))
	assert.Equal(t, "2026-10-31", AddMonthsClamped(d, 12).Format(time.DateOnly))
}
