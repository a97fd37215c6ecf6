package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/event"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// GetSystemConfigUseCase returns the configuration row, creating it with
// defaults on first read.
type GetSystemConfigUseCase struct {
	config port.SystemConfigRepository
}

// NewGetSystemConfigUseCase wires dependencies.
func NewGetSystemConfigUseCase(config port.SystemConfigRepository) *GetSystemConfigUseCase {
	return &GetSystemConfigUseCase{config: config}
}

// Execute loads or lazily creates the configuration.
func (uc *GetSystemConfigUseCase) Execute(ctx context.Context) (dto.SystemConfigResponse, error) {
	cfg, err := uc.config.GetOrCreate(ctx)
	if err != nil {
		return dto.SystemConfigResponse{}, fmt.Errorf("load config: %w", err)
	}
	return dto.FromSystemConfig(cfg), nil
}

// UpdateSystemConfigUseCase patches the configuration row. New rates apply
// to subsequent accrual previews only.
type UpdateSystemConfigUseCase struct {
	config    port.SystemConfigRepository
	publisher port.EventPublisher
}

// NewUpdateSystemConfigUseCase wires dependencies.
func NewUpdateSystemConfigUseCase(
	config port.SystemConfigRepository,
	publisher port.EventPublisher,
) *UpdateSystemConfigUseCase {
	return &UpdateSystemConfigUseCase{config: config, publisher: publisher}
}

// Execute applies the patch and persists the result.
func (uc *UpdateSystemConfigUseCase) Execute(
	ctx context.Context,
	req dto.UpdateSystemConfigRequest,
) (dto.SystemConfigResponse, error) {
	now := time.Now().UTC()

	cfg, err := uc.config.GetOrCreate(ctx)
	if err != nil {
		return dto.SystemConfigResponse{}, fmt.Errorf("load config: %w", err)
	}

	cfg, err = cfg.Apply(model.SystemConfigPatch{
		CompanyName:         req.CompanyName,
		LogoURL:             req.LogoURL,
		MonthlyInterestRate: req.MonthlyInterestRate,
		FineRate:            req.FineRate,
		DaysBeforeDueAlert:  req.DaysBeforeDueAlert,
	}, now)
	if err != nil {
		return dto.SystemConfigResponse{}, fmt.Errorf("apply config patch: %w", err)
	}

	cfg, err = uc.config.Update(ctx, cfg)
	if err != nil {
		return dto.SystemConfigResponse{}, fmt.Errorf("update config: %w", err)
	}

	evt := event.NewSystemConfigUpdated(cfg.ID, cfg.MonthlyInterestRate, cfg.FineRate, cfg.DaysBeforeDueAlert)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.SystemConfigResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromSystemConfig(cfg), nil
}
