package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// PreviewAccrualUseCase projects fine and interest for an overdue note as of
// a reference date. It never writes anything.
type PreviewAccrualUseCase struct {
	notes  port.PromissoryNoteRepository
	config port.SystemConfigRepository
}

// NewPreviewAccrualUseCase wires dependencies.
func NewPreviewAccrualUseCase(
	notes port.PromissoryNoteRepository,
	config port.SystemConfigRepository,
) *PreviewAccrualUseCase {
	return &PreviewAccrualUseCase{notes: notes, config: config}
}

// Execute computes the accrual preview. A zero AsOf defaults to today.
func (uc *PreviewAccrualUseCase) Execute(
	ctx context.Context,
	req dto.PreviewAccrualRequest,
) (dto.AccrualResponse, error) {
	note, err := uc.notes.FindByID(ctx, req.PromissoryNoteID)
	if err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("find note: %w", err)
	}

	cfg, err := uc.config.GetOrCreate(ctx)
	if err != nil {
		return dto.AccrualResponse{}, fmt.Errorf("load config: %w", err)
	}

	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	result := model.CalculateAccrual(note, cfg, asOf)

	return dto.AccrualResponse{
		PromissoryNoteID:    note.ID(),
		DaysOverdue:         result.DaysOverdue,
		OutstandingBalance:  result.OutstandingBalance,
		FineRate:            result.FineRate,
		MonthlyInterestRate: result.MonthlyInterestRate,
		FineAmount:          result.FineAmount,
		InterestAmount:      result.InterestAmount,
		TotalUpdated:        result.TotalUpdated,
	}, nil
}
