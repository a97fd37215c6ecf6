package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

func TestNewSale_GeneratesNotesForFinancedAmount(t *testing.T) {
	firstDue := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	sale, notes, err := model.NewSale(
		"cust-001", "sp-001", "bicicleta",
		decimal.RequireFromString("1000.00"), decimal.RequireFromString("100.00"),
		12, firstDue, now,
	)

	require.NoError(t, err)
	require.Len(t, notes, 12)
	assert.True(t, decimal.RequireFromString("900.00").Equal(sale.FinancedAmount()))

	sum := decimal.Zero
	for i, n := range notes {
		assert.Equal(t, sale.ID(), n.SaleID())
		assert.Equal(t, i+1, n.InstallmentNumber())
		sum = sum.Add(n.OriginalAmount())
	}
	assert.True(t, sale.FinancedAmount().Equal(sum))

	require.Len(t, sale.DomainEvents(), 1)
	assert.Equal(t, "credigestor.sale.created", sale.DomainEvents()[0].EventType())
}

func TestNewSale_Rejections(t *testing.T) {
	firstDue := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	_, _, err := model.NewSale(
		"cust-001", "sp-001", "",
		decimal.RequireFromString("-1.00"), decimal.Zero,
		2, firstDue, now,
	)
	require.ErrorIs(t, err, model.ErrNegativeAmount)

	_, _, err = model.NewSale(
		"cust-001", "sp-001", "",
		decimal.RequireFromString("100.00"), decimal.RequireFromString("100.01"),
		2, firstDue, now,
	)
	require.ErrorIs(t, err, model.ErrDownPaymentExceedsTotal)

	_, _, err = model.NewSale(
		"cust-001", "sp-001", "",
		decimal.RequireFromString("100.00"), decimal.RequireFromString("100.00"),
		2, firstDue, now,
	)
	require.ErrorIs(t, err, model.ErrNothingFinanced)

	_, _, err = model.NewSale(
		"cust-001", "sp-001", "",
		decimal.RequireFromString("100.00"), decimal.Zero,
		0, firstDue, now,
	)
	require.ErrorIs(t, err, model.ErrInvalidInstallments)
}

func TestSale_RescheduleRegeneratesNotes(t *testing.T) {
	firstDue := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	sale, original, err := model.NewSale(
		"cust-001", "sp-001", "",
		decimal.RequireFromString("100.00"), decimal.Zero,
		2, firstDue, now,
	)
	require.NoError(t, err)
	require.Len(t, original, 2)

	newFirstDue := firstDue.AddDate(0, 1, 0)
	sale, regenerated, err := sale.Reschedule(
		decimal.RequireFromString("120.00"), decimal.Zero,
		4, newFirstDue, now,
	)
	require.NoError(t, err)
	require.Len(t, regenerated, 4)
	assert.Equal(t, 4, sale.InstallmentsCount())
	assert.Equal(t, newFirstDue, sale.FirstInstallmentDate())

	for _, n := range regenerated {
		assert.True(t, decimal.RequireFromString("30.00").Equal(n.OriginalAmount()))
	}

	last := sale.DomainEvents()[len(sale.DomainEvents())-1]
	assert.Equal(t, "credigestor.sale.rescheduled", last.EventType())
}

func TestSale_UpdateDetailsKeepsFinancials(t *testing.T) {
	firstDue := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	sale, _, err := model.NewSale(
		"cust-001", "sp-001", "mesa",
		decimal.RequireFromString("100.00"), decimal.Zero,
		2, firstDue, now,
	)
	require.NoError(t, err)

	// Empty customer ID keeps the current reference.
	updated := sale.UpdateDetails("", "mesa de jantar", now)
	assert.Equal(t, "cust-001", updated.CustomerID())
	assert.Equal(t, "mesa de jantar", updated.Description())
	assert.True(t, sale.TotalAmount().Equal(updated.TotalAmount()))

	updated = sale.UpdateDetails("cust-002", "mesa", now)
	assert.Equal(t, "cust-002", updated.CustomerID())
}
