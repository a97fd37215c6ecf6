package usecase

import (
	"context"
	"fmt"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// ListPaymentsUseCase returns the append-only payment history of one note.
type ListPaymentsUseCase struct {
	notes port.PromissoryNoteRepository
}

// NewListPaymentsUseCase wires dependencies.
func NewListPaymentsUseCase(notes port.PromissoryNoteRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{notes: notes}
}

// Execute lists every payment registered against the note, oldest first.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, noteID string) ([]dto.PaymentResponse, error) {
	// The note must exist; an empty history on a real note is not an error.
	note, err := uc.notes.FindByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("find note: %w", err)
	}

	payments, err := uc.notes.ListPayments(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{
			ID:                 p.ID,
			PromissoryNoteID:   p.PromissoryNoteID,
			AmountPaid:         p.AmountPaid,
			InterestAmount:     p.InterestAmount,
			FineAmount:         p.FineAmount,
			TotalAmount:        p.TotalAmount(),
			PaymentDate:        p.PaymentDate,
			Notes:              p.Notes,
			NoteStatus:         note.Status().String(),
			OutstandingBalance: note.OutstandingBalance(),
		})
	}
	return out, nil
}
