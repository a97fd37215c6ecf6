package postgres

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow implements the scannable interface over a fixed value slice so the
// row mapping helpers can be tested without a live database.
type fakeRow struct {
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.values) {
		return fmt.Errorf("expected %d destinations, got %d", len(r.values), len(dest))
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *decimal.Decimal:
			*d = v.(decimal.Decimal)
		case *time.Time:
			*d = v.(time.Time)
		case **time.Time:
			if v == nil {
				*d = nil
			} else {
				t := v.(time.Time)
				*d = &t
			}
		case **string:
			if v == nil {
				*d = nil
			} else {
				s := v.(string)
				*d = &s
			}
		default:
			return fmt.Errorf("unsupported destination type %T", dest[i])
		}
	}
	return nil
}

func TestScanNoteRow(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("maps an open note with null payment_date and notes", func(t *testing.T) {
		row := fakeRow{values: []any{
			"note-001", "sale-001", 2,
			decimal.RequireFromString("150.00"), decimal.RequireFromString("50.00"),
			due, nil, "partial_payment", nil, 3, created, created,
		}}

		note, err := scanNoteRow(row)
		require.NoError(t, err)

		assert.Equal(t, "note-001", note.ID())
		assert.Equal(t, "sale-001", note.SaleID())
		assert.Equal(t, 2, note.InstallmentNumber())
		assert.True(t, note.OriginalAmount().Equal(decimal.RequireFromString("150.00")))
		assert.True(t, note.PaidAmount().Equal(decimal.RequireFromString("50.00")))
		assert.Equal(t, "partial_payment", note.Status().String())
		assert.Nil(t, note.PaymentDate())
		assert.Empty(t, note.Notes())
		assert.Equal(t, 3, note.Version())
	})

	t.Run("maps a settled note with payment_date and notes text", func(t *testing.T) {
		paid := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
		row := fakeRow{values: []any{
			"note-002", "sale-001", 3,
			decimal.RequireFromString("150.00"), decimal.RequireFromString("150.00"),
			due, paid, "paid", "quitada no balcão", 4, created, created,
		}}

		note, err := scanNoteRow(row)
		require.NoError(t, err)

		assert.Equal(t, "paid", note.Status().String())
		require.NotNil(t, note.PaymentDate())
		assert.True(t, note.PaymentDate().Equal(paid))
		assert.Equal(t, "quitada no balcão", note.Notes())
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		row := fakeRow{values: []any{
			"note-003", "sale-001", 1,
			decimal.RequireFromString("10.00"), decimal.Zero,
			due, nil, "cancelled", nil, 1, created, created,
		}}

		_, err := scanNoteRow(row)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse note status")
	})
}

func TestScanSaleRow(t *testing.T) {
	firstDue := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("maps a sale with a description", func(t *testing.T) {
		row := fakeRow{values: []any{
			"sale-001", "cust-001", "sp-001", "geladeira duplex",
			decimal.RequireFromString("1200.00"), decimal.RequireFromString("200.00"),
			10, firstDue, 2, created, created,
		}}

		sale, err := scanSaleRow(row)
		require.NoError(t, err)

		assert.Equal(t, "sale-001", sale.ID())
		assert.Equal(t, "cust-001", sale.CustomerID())
		assert.Equal(t, "geladeira duplex", sale.Description())
		assert.True(t, sale.TotalAmount().Equal(decimal.RequireFromString("1200.00")))
		assert.True(t, sale.DownPayment().Equal(decimal.RequireFromString("200.00")))
		assert.Equal(t, 10, sale.InstallmentsCount())
		assert.True(t, sale.FirstInstallmentDate().Equal(firstDue))
		assert.Equal(t, 2, sale.Version())
	})

	t.Run("maps a null description to empty", func(t *testing.T) {
		row := fakeRow{values: []any{
			"sale-002", "cust-001", "sp-001", nil,
			decimal.RequireFromString("100.00"), decimal.Zero,
			1, firstDue, 1, created, created,
		}}

		sale, err := scanSaleRow(row)
		require.NoError(t, err)
		assert.Empty(t, sale.Description())
	})
}

func TestNullable(t *testing.T) {
	t.Run("empty string maps to nil", func(t *testing.T) {
		assert.Nil(t, nullable(""))
	})

	t.Run("non-empty string maps to pointer", func(t *testing.T) {
		p := nullable("fiado")
		require.NotNil(t, p)
		assert.Equal(t, "fiado", *p)
	})
}
