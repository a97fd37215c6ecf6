package money_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/pkg/money"
)

func TestRound2(t *testing.T) {
	t.Run("rounds half up", func(t *testing.T) {
		got := money.Round2(decimal.RequireFromString("26.665"))
		assert.True(t, decimal.RequireFromString("26.67").Equal(got), "got %s", got)
	})

	t.Run("keeps two places untouched", func(t *testing.T) {
		got := money.Round2(decimal.RequireFromString("10.50"))
		assert.True(t, decimal.RequireFromString("10.50").Equal(got))
	})

	t.Run("rounds down below the midpoint", func(t *testing.T) {
		got := money.Round2(decimal.RequireFromString("1.004"))
		assert.True(t, decimal.RequireFromString("1.00").Equal(got))
	})
}

func TestSplitEvenly(t *testing.T) {
	t.Run("remainder cent lands on the last part", func(t *testing.T) {
		parts := money.SplitEvenly(decimal.RequireFromString("80.00"), 3)

		require.Len(t, parts, 3)
		assert.True(t, decimal.RequireFromString("26.67").Equal(parts[0]))
		assert.True(t, decimal.RequireFromString("26.67").Equal(parts[1]))
		assert.True(t, decimal.RequireFromString("26.66").Equal(parts[2]))
	})

	t.Run("round-up base keeps every part non-negative", func(t *testing.T) {
		// 0.06 / 11 rounds the base part up to 0.01; the excess cents come
		// back off the trailing parts instead of driving the last one below
		// zero.
		parts := money.SplitEvenly(decimal.RequireFromString("0.06"), 11)

		require.Len(t, parts, 11)
		sum := decimal.Zero
		for i, p := range parts {
			assert.False(t, p.IsNegative(), "part %d is negative: %s", i, p)
			sum = sum.Add(p)
		}
		assert.True(t, decimal.RequireFromString("0.06").Equal(sum), "sum is %s", sum)
	})

	t.Run("sum always equals total", func(t *testing.T) {
		totals := []string{"100.00", "99.99", "0.06", "0.01", "1000.01", "33.33"}
		counts := []int{1, 2, 3, 7, 11, 12, 48}

		for _, ts := range totals {
			total := decimal.RequireFromString(ts)
			for _, n := range counts {
				parts := money.SplitEvenly(total, n)
				require.Len(t, parts, n)

				sum := decimal.Zero
				for _, p := range parts {
					sum = sum.Add(p)
					assert.False(t, p.IsNegative(), "part %s of %s/%d is negative", p, ts, n)
				}
				assert.True(t, total.Equal(sum), "split of %s into %d sums to %s", ts, n, sum)
			}
		}
	})

	t.Run("non-positive n yields nil", func(t *testing.T) {
		assert.Nil(t, money.SplitEvenly(decimal.NewFromInt(10), 0))
		assert.Nil(t, money.SplitEvenly(decimal.NewFromInt(10), -1))
	})
}

func TestAddMonths(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("clamps to end of february", func(t *testing.T) {
		assert.Equal(t, day(2023, time.February, 28), money.AddMonths(day(2023, time.January, 31), 1))
	})

	t.Run("leap year february keeps the 29th", func(t *testing.T) {
		assert.Equal(t, day(2024, time.February, 29), money.AddMonths(day(2024, time.January, 31), 1))
	})

	t.Run("thirty day months clamp the 31st", func(t *testing.T) {
		assert.Equal(t, day(2025, time.April, 30), money.AddMonths(day(2025, time.March, 31), 1))
	})

	t.Run("crosses year boundaries", func(t *testing.T) {
		assert.Equal(t, day(2026, time.January, 15), money.AddMonths(day(2025, time.November, 15), 2))
	})

	t.Run("zero months is the identity", func(t *testing.T) {
		d := day(2025, time.July, 31)
		assert.Equal(t, d, money.AddMonths(d, 0))
	})

	t.Run("mid-month days are never clamped", func(t *testing.T) {
		d := day(2025, time.January, 10)
		for k := 0; k < 24; k++ {
			got := money.AddMonths(d, k)
			assert.Equal(t, 10, got.Day(), "k=%d", k)
		}
	})
}
