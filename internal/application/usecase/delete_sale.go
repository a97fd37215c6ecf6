package usecase

import (
	"context"
	"fmt"

	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// DeleteSaleUseCase removes a sale; its notes and their payments go with it
// through the cascade. Deletion is unconditional; audit consumers archive
// on the SaleDeleted event.
type DeleteSaleUseCase struct {
	sales     port.SaleRepository
	publisher port.EventPublisher
}

// NewDeleteSaleUseCase wires dependencies.
func NewDeleteSaleUseCase(sales port.SaleRepository, publisher port.EventPublisher) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{sales: sales, publisher: publisher}
}

// Execute deletes the sale and publishes the deletion event.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, saleID string) error {
	// 1. Load the sale so the event carries its customer reference.
	sale, err := uc.sales.FindByID(ctx, saleID)
	if err != nil {
		return fmt.Errorf("find sale: %w", err)
	}

	// 2. Cascade delete.
	if err := uc.sales.Delete(ctx, saleID); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	// 3. Publish after the delete committed.
	sale = sale.ClearEvents().Deleted()
	if err := uc.publisher.Publish(ctx, sale.DomainEvents()...); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	return nil
}
