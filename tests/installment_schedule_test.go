package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

func TestGenerateInstallmentSchedule_ExactSplit(t *testing.T) {
	financed := decimal.RequireFromString("80.00")
	firstDue := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

	schedule, err := model.GenerateInstallmentSchedule(financed, 3, firstDue)

	require.NoError(t, err)
	require.Len(t, schedule, 3)

	// 80 / 3 rounds to 26.67 per part; the remainder cent lands on the last.
	assert.True(t, decimal.RequireFromString("26.67").Equal(schedule[0].Amount), "got %s", schedule[0].Amount)
	assert.True(t, decimal.RequireFromString("26.67").Equal(schedule[1].Amount), "got %s", schedule[1].Amount)
	assert.True(t, decimal.RequireFromString("26.66").Equal(schedule[2].Amount), "got %s", schedule[2].Amount)

	sum := decimal.Zero
	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.InstallmentNumber)
		assert.Equal(t, int32(-2), entry.Amount.Exponent(), "amount should carry two decimal places")
		sum = sum.Add(entry.Amount)
	}
	assert.True(t, financed.Equal(sum), "installments must sum exactly to the principal, got %s", sum)

	assert.Equal(t, firstDue, schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), schedule[2].DueDate)
}

func TestGenerateInstallmentSchedule_MonthEndClamping(t *testing.T) {
	financed := decimal.RequireFromString("300.00")
	firstDue := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	schedule, err := model.GenerateInstallmentSchedule(financed, 4, firstDue)

	require.NoError(t, err)
	require.Len(t, schedule, 4)

	// Jan 31 -> Feb 28 (2025 is not a leap year) -> Mar 31 -> Apr 30.
	assert.Equal(t, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), schedule[0].DueDate)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), schedule[1].DueDate)
	assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), schedule[2].DueDate)
	assert.Equal(t, time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), schedule[3].DueDate)
}

func TestGenerateInstallmentSchedule_SingleInstallment(t *testing.T) {
	financed := decimal.RequireFromString("123.45")
	firstDue := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	schedule, err := model.GenerateInstallmentSchedule(financed, 1, firstDue)

	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.True(t, financed.Equal(schedule[0].Amount))
	assert.Equal(t, firstDue, schedule[0].DueDate)
}

func TestGenerateInstallmentSchedule_Rejections(t *testing.T) {
	firstDue := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	_, err := model.GenerateInstallmentSchedule(decimal.RequireFromString("100.00"), 0, firstDue)
	require.ErrorIs(t, err, model.ErrInvalidInstallments)

	_, err = model.GenerateInstallmentSchedule(decimal.RequireFromString("100.00"), -3, firstDue)
	require.ErrorIs(t, err, model.ErrInvalidInstallments)

	_, err = model.GenerateInstallmentSchedule(decimal.Zero, 2, firstDue)
	require.ErrorIs(t, err, model.ErrNothingFinanced)

	_, err = model.GenerateInstallmentSchedule(decimal.RequireFromString("-10.00"), 2, firstDue)
	require.ErrorIs(t, err, model.ErrNothingFinanced)

	// 0.06 cannot give 11 installments a cent each.
	_, err = model.GenerateInstallmentSchedule(decimal.RequireFromString("0.06"), 11, firstDue)
	require.ErrorIs(t, err, model.ErrInstallmentTooSmall)
	assert.True(t, model.IsValidation(err))
}

func TestGenerateInstallmentSchedule_SumAlwaysExact(t *testing.T) {
	firstDue := time.Date(2025, time.February, 5, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		financed string
		count    int
	}{
		{"100.00", 3},
		{"0.05", 3},
		{"999.99", 7},
		{"1000.00", 12},
		{"33.34", 5},
	}

	for _, tc := range cases {
		financed := decimal.RequireFromString(tc.financed)
		schedule, err := model.GenerateInstallmentSchedule(financed, tc.count, firstDue)
		require.NoError(t, err, "financed=%s count=%d", tc.financed, tc.count)

		sum := decimal.Zero
		for _, entry := range schedule {
			sum = sum.Add(entry.Amount)
		}
		assert.True(t, financed.Equal(sum), "financed=%s count=%d sum=%s", tc.financed, tc.count, sum)
	}
}
