package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/valueobject"
	pkgpostgres "github.com/hscHeric/credigestor-api/pkg/postgres"
)

// scannable covers pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

const noteColumns = `
	id, sale_id, installment_number, original_amount, paid_amount,
	due_date, payment_date, status, notes, version, created_at, updated_at`

func scanNoteRow(s scannable) (model.PromissoryNote, error) {
	var (
		id, saleID           string
		installmentNumber    int
		originalAmount       decimal.Decimal
		paidAmount           decimal.Decimal
		dueDate              time.Time
		paymentDate          *time.Time
		statusStr            string
		notes                *string
		version              int
		createdAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &saleID, &installmentNumber, &originalAmount, &paidAmount,
		&dueDate, &paymentDate, &statusStr, &notes, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.PromissoryNote{}, fmt.Errorf("scan note: %w", err)
	}

	status, err := valueobject.NewNoteStatus(statusStr)
	if err != nil {
		return model.PromissoryNote{}, fmt.Errorf("parse note status: %w", err)
	}

	noteText := ""
	if notes != nil {
		noteText = *notes
	}

	return model.ReconstructPromissoryNote(
		id, saleID, installmentNumber,
		originalAmount, paidAmount,
		dueDate, paymentDate, status, noteText,
		version, createdAt, updatedAt,
	), nil
}

// insertNote appends one note row inside an open transaction.
func insertNote(ctx context.Context, q pkgpostgres.Querier, note model.PromissoryNote) error {
	query := `
		INSERT INTO promissory_notes (
			id, sale_id, installment_number, original_amount, paid_amount,
			due_date, payment_date, status, notes, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`
	var notes *string
	if note.Notes() != "" {
		v := note.Notes()
		notes = &v
	}

	_, err := q.Exec(ctx, query,
		note.ID(), note.SaleID(), note.InstallmentNumber(),
		note.OriginalAmount(), note.PaidAmount(),
		note.DueDate(), note.PaymentDate(), note.Status().String(), notes,
		note.Version(), note.CreatedAt(), note.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert note %d: %w", note.InstallmentNumber(), err)
	}
	return nil
}
