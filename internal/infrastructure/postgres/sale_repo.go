package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
	pkgpostgres "github.com/hscHeric/credigestor-api/pkg/postgres"
)

// SaleRepo implements port.SaleRepository.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepo creates a PostgreSQL-backed sale repository.
func NewSaleRepo(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// CreateWithNotes inserts the sale and every note in one transaction.
func (r *SaleRepo) CreateWithNotes(ctx context.Context, sale model.Sale, notes []model.PromissoryNote) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := insertSale(ctx, tx, sale); err != nil {
			return err
		}
		for _, note := range notes {
			if err := insertNote(ctx, tx, note); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceSchedule updates the sale row, drops all of its notes and inserts
// the regenerated schedule atomically. Payments cascade away with the old
// notes, which is safe because rescheduling is gated on there being none.
func (r *SaleRepo) ReplaceSchedule(ctx context.Context, sale model.Sale, notes []model.PromissoryNote) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := updateSale(ctx, tx, sale); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM promissory_notes WHERE sale_id = $1`, sale.ID()); err != nil {
			return fmt.Errorf("delete old notes: %w", err)
		}
		for _, note := range notes {
			if err := insertNote(ctx, tx, note); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update persists the sale row only.
func (r *SaleRepo) Update(ctx context.Context, sale model.Sale) error {
	return updateSale(ctx, r.pool, sale)
}

// FindByID retrieves a sale by ID.
func (r *SaleRepo) FindByID(ctx context.Context, id string) (model.Sale, error) {
	query := `
		SELECT id, customer_id, salesperson_id, description,
		       total_amount, down_payment, installments_count, first_installment_date,
		       version, created_at, updated_at
		FROM sales
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	sale, err := scanSaleRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Sale{}, model.ErrSaleNotFound
	}
	return sale, err
}

// Delete removes the sale; notes and payments follow via ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSaleNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func insertSale(ctx context.Context, q pkgpostgres.Querier, sale model.Sale) error {
	query := `
		INSERT INTO sales (
			id, customer_id, salesperson_id, description,
			total_amount, down_payment, installments_count, first_installment_date,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err := q.Exec(ctx, query,
		sale.ID(), sale.CustomerID(), sale.SalespersonID(), nullable(sale.Description()),
		sale.TotalAmount(), sale.DownPayment(), sale.InstallmentsCount(), sale.FirstInstallmentDate(),
		sale.Version(), sale.CreatedAt(), sale.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func updateSale(ctx context.Context, q pkgpostgres.Querier, sale model.Sale) error {
	query := `
		UPDATE sales SET
			customer_id            = $2,
			description            = $3,
			total_amount           = $4,
			down_payment           = $5,
			installments_count     = $6,
			first_installment_date = $7,
			version                = version + 1,
			updated_at             = $8
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		sale.ID(), sale.CustomerID(), nullable(sale.Description()),
		sale.TotalAmount(), sale.DownPayment(), sale.InstallmentsCount(), sale.FirstInstallmentDate(),
		sale.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrSaleNotFound
	}
	return nil
}

func scanSaleRow(s scannable) (model.Sale, error) {
	var (
		id, customerID, salespersonID string
		description                   *string
		totalAmount, downPayment      decimal.Decimal
		installmentsCount             int
		firstInstallmentDate          time.Time
		version                       int
		createdAt, updatedAt          time.Time
	)

	err := s.Scan(
		&id, &customerID, &salespersonID, &description,
		&totalAmount, &downPayment, &installmentsCount, &firstInstallmentDate,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Sale{}, err
		}
		return model.Sale{}, fmt.Errorf("scan sale: %w", err)
	}

	desc := ""
	if description != nil {
		desc = *description
	}

	return model.ReconstructSale(
		id, customerID, salespersonID, desc,
		totalAmount, downPayment, installmentsCount, firstInstallmentDate,
		version, createdAt, updatedAt,
	), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
