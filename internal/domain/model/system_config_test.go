package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

func TestDefaultSystemConfig(t *testing.T) {
	now := time.Now().UTC()
	cfg := model.DefaultSystemConfig(now)

	assert.NotEmpty(t, cfg.ID)
	assert.Equal(t, "Minha Empresa", cfg.CompanyName)
	assert.True(t, decimal.RequireFromString("1.00").Equal(cfg.MonthlyInterestRate))
	assert.True(t, decimal.RequireFromString("2.00").Equal(cfg.FineRate))
	assert.Equal(t, 5, cfg.DaysBeforeDueAlert)
	assert.Equal(t, now, cfg.CreatedAt)
}

func TestSystemConfig_Apply(t *testing.T) {
	now := time.Now().UTC()
	base := model.DefaultSystemConfig(now)

	t.Run("patches only the given fields", func(t *testing.T) {
		name := "Loja do Zé"
		rate := decimal.RequireFromString("1.5")
		next, err := base.Apply(model.SystemConfigPatch{
			CompanyName:         &name,
			MonthlyInterestRate: &rate,
		}, now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, "Loja do Zé", next.CompanyName)
		// Rates are normalized to two places.
		assert.True(t, decimal.RequireFromString("1.50").Equal(next.MonthlyInterestRate))
		assert.True(t, base.FineRate.Equal(next.FineRate))
		assert.Equal(t, base.DaysBeforeDueAlert, next.DaysBeforeDueAlert)
		assert.True(t, next.UpdatedAt.After(base.UpdatedAt))
	})

	t.Run("rejects negative rates", func(t *testing.T) {
		rate := decimal.RequireFromString("-0.01")
		_, err := base.Apply(model.SystemConfigPatch{FineRate: &rate}, now)
		require.ErrorIs(t, err, model.ErrNegativeAmount)

		_, err = base.Apply(model.SystemConfigPatch{MonthlyInterestRate: &rate}, now)
		require.ErrorIs(t, err, model.ErrNegativeAmount)
	})

	t.Run("rejects a negative alert window", func(t *testing.T) {
		days := -1
		_, err := base.Apply(model.SystemConfigPatch{DaysBeforeDueAlert: &days}, now)
		require.ErrorIs(t, err, model.ErrNegativeAmount)
	})

	t.Run("empty patch only bumps the update timestamp", func(t *testing.T) {
		later := now.Add(time.Minute)
		next, err := base.Apply(model.SystemConfigPatch{}, later)
		require.NoError(t, err)
		assert.Equal(t, base.CompanyName, next.CompanyName)
		assert.Equal(t, later, next.UpdatedAt)
	})
}
