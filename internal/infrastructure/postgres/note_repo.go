package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
	pkgpostgres "github.com/hscHeric/credigestor-api/pkg/postgres"
)

// NoteRepo implements port.PromissoryNoteRepository.
type NoteRepo struct {
	pool *pgxpool.Pool
}

// NewNoteRepo creates a PostgreSQL-backed promissory note repository.
func NewNoteRepo(pool *pgxpool.Pool) *NoteRepo {
	return &NoteRepo{pool: pool}
}

// FindByID retrieves a note by ID.
func (r *NoteRepo) FindByID(ctx context.Context, id string) (model.PromissoryNote, error) {
	query := `SELECT ` + noteColumns + ` FROM promissory_notes WHERE id = $1`

	note, err := scanNoteRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PromissoryNote{}, model.ErrNoteNotFound
		}
		return model.PromissoryNote{}, err
	}
	return note, nil
}

// FindBySaleID retrieves all notes of a sale ordered by installment number.
func (r *NoteRepo) FindBySaleID(ctx context.Context, saleID string) ([]model.PromissoryNote, error) {
	query := `SELECT ` + noteColumns + ` FROM promissory_notes
		WHERE sale_id = $1
		ORDER BY installment_number`

	rows, err := r.pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.PromissoryNote
	for rows.Next() {
		note, err := scanNoteRow(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// SaveWithPayment persists the updated note and appends the payment row in
// one transaction. The version guard makes concurrent payments on the same
// note serialize: the loser of the race sees zero affected rows and the
// whole transaction rolls back, payment row included.
func (r *NoteRepo) SaveWithPayment(ctx context.Context, note model.PromissoryNote, payment model.Payment) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		noteQuery := `
			UPDATE promissory_notes SET
				paid_amount  = $2,
				payment_date = $3,
				status       = $4,
				version      = version + 1,
				updated_at   = $5
			WHERE id = $1 AND version = $6
		`
		tag, err := tx.Exec(ctx, noteQuery,
			note.ID(), note.PaidAmount(), note.PaymentDate(), note.Status().String(),
			note.UpdatedAt(), note.Version(),
		)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on promissory note")
		}

		paymentQuery := `
			INSERT INTO payments (
				id, promissory_note_id, amount_paid, payment_date,
				interest_amount, fine_amount, notes, created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		`
		_, err = tx.Exec(ctx, paymentQuery,
			payment.ID, payment.PromissoryNoteID, payment.AmountPaid, payment.PaymentDate,
			payment.InterestAmount, payment.FineAmount, nullable(payment.Notes), payment.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		return nil
	})
}

// ListPayments retrieves a note's payment history, oldest first.
func (r *NoteRepo) ListPayments(ctx context.Context, noteID string) ([]model.Payment, error) {
	query := `
		SELECT id, promissory_note_id, amount_paid, payment_date,
		       interest_amount, fine_amount, notes, created_at
		FROM payments
		WHERE promissory_note_id = $1
		ORDER BY payment_date, created_at
	`
	rows, err := r.pool.Query(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var (
			p     model.Payment
			notes *string
		)
		err := rows.Scan(
			&p.ID, &p.PromissoryNoteID, &p.AmountPaid, &p.PaymentDate,
			&p.InterestAmount, &p.FineAmount, &notes, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if notes != nil {
			p.Notes = *notes
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// List returns the joined note projection matching the filter, ordered by
// due date then id for a stable listing.
func (r *NoteRepo) List(ctx context.Context, filter port.NoteFilter) ([]port.NoteView, error) {
	var (
		conds []string
		args  []any
	)
	addArg := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, cond+"$"+strconv.Itoa(len(args)))
	}

	if filter.Status != "" {
		addArg("n.status = ", filter.Status)
	}
	if filter.CustomerID != "" {
		addArg("s.customer_id = ", filter.CustomerID)
	}
	if filter.DueFrom != nil {
		addArg("n.due_date >= ", *filter.DueFrom)
	}
	if filter.DueTo != nil {
		addArg("n.due_date <= ", *filter.DueTo)
	}

	query := `
		SELECT n.id, n.sale_id, c.id, c.full_name,
		       n.installment_number, n.due_date, n.original_amount, n.paid_amount,
		       n.status, n.created_at, n.updated_at
		FROM promissory_notes n
		JOIN sales s ON n.sale_id = s.id
		JOIN customers c ON s.customer_id = c.id
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY n.due_date ASC, n.id ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query note views: %w", err)
	}
	defer rows.Close()

	var views []port.NoteView
	for rows.Next() {
		var (
			v              port.NoteView
			originalAmount decimal.Decimal
			paidAmount     decimal.Decimal
			dueDate        time.Time
		)
		err := rows.Scan(
			&v.ID, &v.SaleID, &v.CustomerID, &v.CustomerName,
			&v.InstallmentNumber, &dueDate, &originalAmount, &paidAmount,
			&v.Status, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan note view: %w", err)
		}
		v.DueDate = dueDate
		v.OriginalAmount = originalAmount
		v.PaidAmount = paidAmount
		v.OutstandingBalance = originalAmount.Sub(paidAmount)
		views = append(views, v)
	}
	return views, rows.Err()
}
