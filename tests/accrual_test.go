package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

func accrualConfig(fineRate, monthlyRate string) model.SystemConfig {
	cfg := model.DefaultSystemConfig(time.Now().UTC())
	cfg.FineRate = decimal.RequireFromString(fineRate)
	cfg.MonthlyInterestRate = decimal.RequireFromString(monthlyRate)
	return cfg
}

func TestCalculateAccrual_ThirtyDaysOverdue(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "100.00", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	result := model.CalculateAccrual(note, cfg, dueDate.AddDate(0, 0, 30))

	assert.Equal(t, 30, result.DaysOverdue)
	// fine = 100 * 2% = 2.00; interest = 100 * 1% * 30/30 = 1.00
	assert.True(t, decimal.RequireFromString("2.00").Equal(result.FineAmount), "fine: %s", result.FineAmount)
	assert.True(t, decimal.RequireFromString("1.00").Equal(result.InterestAmount), "interest: %s", result.InterestAmount)
	assert.True(t, decimal.RequireFromString("103.00").Equal(result.TotalUpdated), "total: %s", result.TotalUpdated)
}

func TestCalculateAccrual_ProratesInterestByDay(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "100.00", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	// 15 of 30 days: half a month of interest.
	result := model.CalculateAccrual(note, cfg, dueDate.AddDate(0, 0, 15))
	assert.Equal(t, 15, result.DaysOverdue)
	assert.True(t, decimal.RequireFromString("0.50").Equal(result.InterestAmount), "interest: %s", result.InterestAmount)

	// 45 days: interest keeps growing linearly past one month.
	result = model.CalculateAccrual(note, cfg, dueDate.AddDate(0, 0, 45))
	assert.Equal(t, 45, result.DaysOverdue)
	assert.True(t, decimal.RequireFromString("1.50").Equal(result.InterestAmount), "interest: %s", result.InterestAmount)
	// The fine stays flat regardless of how late.
	assert.True(t, decimal.RequireFromString("2.00").Equal(result.FineAmount))
}

func TestCalculateAccrual_NothingBeforeDueDate(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "100.00", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	for _, asOf := range []time.Time{dueDate.AddDate(0, 0, -5), dueDate} {
		result := model.CalculateAccrual(note, cfg, asOf)
		assert.Zero(t, result.DaysOverdue)
		assert.True(t, result.FineAmount.IsZero())
		assert.True(t, result.InterestAmount.IsZero())
		assert.True(t, result.TotalUpdated.Equal(note.OutstandingBalance()))
	}
}

func TestCalculateAccrual_SettledNoteAccruesNothing(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "100.00", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	settled, _, err := note.ApplyPayment(
		decimal.RequireFromString("100.00"), dueDate,
		decimal.Zero, decimal.Zero, "", time.Now().UTC(),
	)
	require.NoError(t, err)

	result := model.CalculateAccrual(settled, cfg, dueDate.AddDate(0, 2, 0))
	assert.Zero(t, result.DaysOverdue)
	assert.True(t, result.FineAmount.IsZero())
	assert.True(t, result.InterestAmount.IsZero())
	assert.True(t, result.TotalUpdated.IsZero())
}

func TestCalculateAccrual_PartialBalanceOnly(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "100.00", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	partial, _, err := note.ApplyPayment(
		decimal.RequireFromString("75.00"), dueDate,
		decimal.Zero, decimal.Zero, "", time.Now().UTC(),
	)
	require.NoError(t, err)

	result := model.CalculateAccrual(partial, cfg, dueDate.AddDate(0, 0, 30))
	assert.True(t, decimal.RequireFromString("25.00").Equal(result.OutstandingBalance))
	// fine = 25 * 2% = 0.50; interest = 25 * 1% = 0.25
	assert.True(t, decimal.RequireFromString("0.50").Equal(result.FineAmount))
	assert.True(t, decimal.RequireFromString("0.25").Equal(result.InterestAmount))
	assert.True(t, decimal.RequireFromString("25.75").Equal(result.TotalUpdated))
}

func TestCalculateAccrual_RoundsHalfUp(t *testing.T) {
	dueDate := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	note := newNote(t, "33.33", dueDate)
	cfg := accrualConfig("2.00", "1.00")

	result := model.CalculateAccrual(note, cfg, dueDate.AddDate(0, 0, 7))

	// fine = 33.33 * 0.02 = 0.6666 -> 0.67
	assert.True(t, decimal.RequireFromString("0.67").Equal(result.FineAmount), "fine: %s", result.FineAmount)
	// interest = 33.33 * 0.01 * 7/30 = 0.07777 -> 0.08
	assert.True(t, decimal.RequireFromString("0.08").Equal(result.InterestAmount), "interest: %s", result.InterestAmount)
}
