package usecase

import (
	"context"
	"fmt"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// GetSaleUseCase retrieves a sale with its promissory notes.
type GetSaleUseCase struct {
	sales port.SaleRepository
	notes port.PromissoryNoteRepository
}

// NewGetSaleUseCase wires dependencies.
func NewGetSaleUseCase(sales port.SaleRepository, notes port.PromissoryNoteRepository) *GetSaleUseCase {
	return &GetSaleUseCase{sales: sales, notes: notes}
}

// Execute loads the sale and its notes.
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID string) (dto.SaleResponse, error) {
	sale, err := uc.sales.FindByID(ctx, saleID)
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("find sale: %w", err)
	}

	notes, err := uc.notes.FindBySaleID(ctx, saleID)
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("load notes: %w", err)
	}

	return dto.FromSale(sale, notes), nil
}
