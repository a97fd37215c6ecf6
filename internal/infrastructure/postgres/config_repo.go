package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

// SystemConfigRepo implements port.SystemConfigRepository. The table holds a
// single row, created lazily with defaults on first read.
type SystemConfigRepo struct {
	pool *pgxpool.Pool
}

// NewSystemConfigRepo creates a PostgreSQL-backed system config repository.
func NewSystemConfigRepo(pool *pgxpool.Pool) *SystemConfigRepo {
	return &SystemConfigRepo{pool: pool}
}

const configColumns = `id, company_name, logo_url, monthly_interest_rate,
	fine_rate, days_before_due_alert, created_at, updated_at`

// GetOrCreate returns the configuration row, inserting the defaults when the
// table is still empty. Two racing first reads resolve via the conflict
// clause: the loser re-reads the row the winner inserted.
func (r *SystemConfigRepo) GetOrCreate(ctx context.Context) (model.SystemConfig, error) {
	cfg, err := r.get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.SystemConfig{}, err
	}

	def := model.DefaultSystemConfig(time.Now().UTC())
	insert := `
		INSERT INTO system_configs (` + configColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (singleton) DO NOTHING
	`
	_, err = r.pool.Exec(ctx, insert,
		def.ID, def.CompanyName, nullable(def.LogoURL), def.MonthlyInterestRate,
		def.FineRate, def.DaysBeforeDueAlert, def.CreatedAt, def.UpdatedAt,
	)
	if err != nil {
		return model.SystemConfig{}, fmt.Errorf("insert default config: %w", err)
	}
	return r.get(ctx)
}

// Update persists the configuration and returns the stored value.
func (r *SystemConfigRepo) Update(ctx context.Context, cfg model.SystemConfig) (model.SystemConfig, error) {
	query := `
		UPDATE system_configs SET
			company_name          = $2,
			logo_url              = $3,
			monthly_interest_rate = $4,
			fine_rate             = $5,
			days_before_due_alert = $6,
			updated_at            = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		cfg.ID, cfg.CompanyName, nullable(cfg.LogoURL), cfg.MonthlyInterestRate,
		cfg.FineRate, cfg.DaysBeforeDueAlert, cfg.UpdatedAt,
	)
	if err != nil {
		return model.SystemConfig{}, fmt.Errorf("update config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.SystemConfig{}, fmt.Errorf("config row %s not found", cfg.ID)
	}
	return cfg, nil
}

func (r *SystemConfigRepo) get(ctx context.Context) (model.SystemConfig, error) {
	query := `SELECT ` + configColumns + ` FROM system_configs LIMIT 1`

	var (
		cfg     model.SystemConfig
		logoURL *string
	)
	err := r.pool.QueryRow(ctx, query).Scan(
		&cfg.ID, &cfg.CompanyName, &logoURL, &cfg.MonthlyInterestRate,
		&cfg.FineRate, &cfg.DaysBeforeDueAlert, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SystemConfig{}, err
		}
		return model.SystemConfig{}, fmt.Errorf("scan config: %w", err)
	}
	if logoURL != nil {
		cfg.LogoURL = *logoURL
	}
	return cfg, nil
}
