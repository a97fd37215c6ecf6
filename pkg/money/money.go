// Package money provides fixed-point monetary arithmetic and the calendar
// math used by installment schedules. All amounts are shopspring decimals
// carried at currency minor-unit precision (two fractional digits); floats
// never enter monetary calculations.
package money

import (
	"time"

	"github.com/shopspring/decimal"
)

// Two is the number of fractional digits carried by every monetary amount.
const Two = 2

// Round2 rounds a decimal to two places using half-up rounding.
// Every monetary output of the engine passes through this.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(Two)
}

// SplitEvenly divides total into n parts of two decimal places whose sum is
// exactly total. Each base part is Round2(total/n); leftover cents are spread
// one per part from the end, so no part drifts more than a cent from the base
// and all parts stay non-negative for a non-negative total. n must be
// positive.
func SplitEvenly(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	total = Round2(total)
	base := Round2(total.Div(decimal.NewFromInt(int64(n))))

	parts := make([]decimal.Decimal, n)
	for i := range parts {
		parts[i] = base
	}

	// Half-up rounding keeps the remainder under half a cent per part, so it
	// never spans more than n/2 parts.
	diff := total.Sub(base.Mul(decimal.NewFromInt(int64(n))))
	step := decimal.New(1, -2)
	if diff.IsNegative() {
		step = step.Neg()
	}
	for i := n - 1; !diff.IsZero(); i-- {
		parts[i] = parts[i].Add(step)
		diff = diff.Sub(step)
	}

	return parts
}

// AddMonths adds k calendar months to d. When the target month is shorter
// than d's day-of-month the result clamps to the last day of that month
// (Jan 31 + 1 month is Feb 28, or Feb 29 in a leap year).
//
// time.Time.AddDate is not used here: it normalizes overflow days into the
// following month instead of clamping.
func AddMonths(d time.Time, k int) time.Time {
	y := d.Year()
	m := int(d.Month()) - 1 + k
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}

	month := time.Month(m + 1)
	day := d.Day()
	if last := lastDayOfMonth(y, month); day > last {
		day = last
	}

	return time.Date(y, month, day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func lastDayOfMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
