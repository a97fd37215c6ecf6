package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/application/usecase"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

func TestListNotes_Execute(t *testing.T) {
	t.Run("returns the projection with the filter passed through", func(t *testing.T) {
		var captured port.NoteFilter
		noteRepo := &mockNoteRepository{
			listFunc: func(ctx context.Context, filter port.NoteFilter) ([]port.NoteView, error) {
				captured = filter
				return []port.NoteView{
					{
						ID:                 "note-001",
						SaleID:             "sale-001",
						CustomerID:         "cust-001",
						CustomerName:       "Maria Souza",
						InstallmentNumber:  1,
						DueDate:            time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
						OriginalAmount:     decimal.RequireFromString("40.00"),
						PaidAmount:         decimal.RequireFromString("10.00"),
						OutstandingBalance: decimal.RequireFromString("30.00"),
						Status:             "partial_payment",
					},
				}, nil
			},
		}
		uc := usecase.NewListNotesUseCase(noteRepo)

		resp, err := uc.Execute(context.Background(), dto.ListNotesRequest{
			Status:     "partial_payment",
			CustomerID: "cust-001",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Maria Souza", resp.Items[0].CustomerName)
		assert.True(t, decimal.RequireFromString("30.00").Equal(resp.Items[0].OutstandingBalance))

		assert.Equal(t, "partial_payment", captured.Status)
		assert.Equal(t, "cust-001", captured.CustomerID)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		uc := usecase.NewListNotesUseCase(&mockNoteRepository{})

		_, err := uc.Execute(context.Background(), dto.ListNotesRequest{Status: "settled"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid promissory note status")
	})

	t.Run("accepts an empty result", func(t *testing.T) {
		uc := usecase.NewListNotesUseCase(&mockNoteRepository{})

		resp, err := uc.Execute(context.Background(), dto.ListNotesRequest{})

		require.NoError(t, err)
		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Items)
	})
}
