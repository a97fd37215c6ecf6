package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

// CustomerRepo implements port.CustomerRepository over the customer registry
// table. It is read-only.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

// NewCustomerRepo creates a PostgreSQL-backed customer repository.
func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// FindByID retrieves a customer by ID.
func (r *CustomerRepo) FindByID(ctx context.Context, id string) (model.Customer, error) {
	query := `
		SELECT id, full_name, cpf, phone, email, active, created_at, updated_at
		FROM customers WHERE id = $1
	`
	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FullName, &c.CPF, &c.Phone, &c.Email, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Customer{}, model.ErrCustomerNotFound
		}
		return model.Customer{}, fmt.Errorf("scan customer: %w", err)
	}
	return c, nil
}
