package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/pkg/money"
)

// SystemConfig is the system-wide rate configuration. It is stored as a
// single row, lazily created with defaults on first read, and threaded
// explicitly through accrual calculations rather than read as global state.
// Rate changes affect subsequent calculations only; recorded payments keep
// the interest and fine they were registered with.
type SystemConfig struct {
	ID                  string
	CompanyName         string
	LogoURL             string
	MonthlyInterestRate decimal.Decimal // percent, e.g. 1.00 = 1% per month
	FineRate            decimal.Decimal // percent, flat on the outstanding balance
	DaysBeforeDueAlert  int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultSystemConfig returns the configuration created on first read.
func DefaultSystemConfig(now time.Time) SystemConfig {
	return SystemConfig{
		ID:                  uuid.New().String(),
		CompanyName:         "Minha Empresa",
		MonthlyInterestRate: decimal.RequireFromString("1.00"),
		FineRate:            decimal.RequireFromString("2.00"),
		DaysBeforeDueAlert:  5,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// SystemConfigPatch carries the fields of an UpdateSystemConfig request.
// Nil fields are left unchanged.
type SystemConfigPatch struct {
	CompanyName         *string
	LogoURL             *string
	MonthlyInterestRate *decimal.Decimal
	FineRate            *decimal.Decimal
	DaysBeforeDueAlert  *int
}

// Apply returns a copy of the config with the patch applied. Rates are
// normalized to two places; negative rates are rejected.
func (c SystemConfig) Apply(patch SystemConfigPatch, now time.Time) (SystemConfig, error) {
	next := c

	if patch.CompanyName != nil {
		next.CompanyName = *patch.CompanyName
	}
	if patch.LogoURL != nil {
		next.LogoURL = *patch.LogoURL
	}
	if patch.MonthlyInterestRate != nil {
		if patch.MonthlyInterestRate.IsNegative() {
			return c, ErrNegativeAmount
		}
		next.MonthlyInterestRate = money.Round2(*patch.MonthlyInterestRate)
	}
	if patch.FineRate != nil {
		if patch.FineRate.IsNegative() {
			return c, ErrNegativeAmount
		}
		next.FineRate = money.Round2(*patch.FineRate)
	}
	if patch.DaysBeforeDueAlert != nil {
		if *patch.DaysBeforeDueAlert < 0 {
			return c, ErrNegativeAmount
		}
		next.DaysBeforeDueAlert = *patch.DaysBeforeDueAlert
	}

	next.UpdatedAt = now
	return next, nil
}
