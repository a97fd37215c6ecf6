package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// RegisterPaymentUseCase applies a payment to a promissory note.
type RegisterPaymentUseCase struct {
	notes     port.PromissoryNoteRepository
	publisher port.EventPublisher
}

// NewRegisterPaymentUseCase wires dependencies.
func NewRegisterPaymentUseCase(
	notes port.PromissoryNoteRepository,
	publisher port.EventPublisher,
) *RegisterPaymentUseCase {
	return &RegisterPaymentUseCase{notes: notes, publisher: publisher}
}

// Execute processes one payment. The whole operation is rejected when the
// note is settled, the amount is non-positive, or it exceeds the outstanding
// balance; on failure no state changes and no payment row is created.
func (uc *RegisterPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RegisterPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the note.
	note, err := uc.notes.FindByID(ctx, req.PromissoryNoteID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find note: %w", err)
	}

	// 2. Apply the payment on the aggregate.
	note, payment, err := note.ApplyPayment(
		req.Amount, req.PaymentDate,
		req.InterestAmount, req.FineAmount,
		req.Notes, now,
	)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("apply payment: %w", err)
	}

	// 3. Persist note and payment together; the version guard rejects a
	// concurrent payment that raced us past the overpayment check.
	if err := uc.notes.SaveWithPayment(ctx, note, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, note.DomainEvents()...); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.PaymentResponse{
		ID:                 payment.ID,
		PromissoryNoteID:   payment.PromissoryNoteID,
		AmountPaid:         payment.AmountPaid,
		InterestAmount:     payment.InterestAmount,
		FineAmount:         payment.FineAmount,
		TotalAmount:        payment.TotalAmount(),
		PaymentDate:        payment.PaymentDate,
		Notes:              payment.Notes,
		NoteStatus:         note.Status().String(),
		OutstandingBalance: note.OutstandingBalance(),
	}, nil
}
