package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// CreateSaleUseCase registers a financed sale and generates its promissory
// notes in a single transaction.
type CreateSaleUseCase struct {
	sales     port.SaleRepository
	customers port.CustomerRepository
	publisher port.EventPublisher
}

// NewCreateSaleUseCase wires dependencies.
func NewCreateSaleUseCase(
	sales port.SaleRepository,
	customers port.CustomerRepository,
	publisher port.EventPublisher,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		sales:     sales,
		customers: customers,
		publisher: publisher,
	}
}

// Execute validates the request, builds the sale with its installment
// schedule and persists everything atomically.
func (uc *CreateSaleUseCase) Execute(
	ctx context.Context,
	req dto.CreateSaleRequest,
) (dto.SaleResponse, error) {
	now := time.Now().UTC()

	// 1. The customer must exist before anything is written.
	if _, err := uc.customers.FindByID(ctx, req.CustomerID); err != nil {
		return dto.SaleResponse{}, fmt.Errorf("find customer: %w", err)
	}

	// 2. Build the aggregate; schedule generation and all financial
	// validations happen here.
	sale, notes, err := model.NewSale(
		req.CustomerID, req.SalespersonID, req.Description,
		req.TotalAmount, req.DownPayment,
		req.InstallmentsCount, req.FirstInstallmentDate,
		now,
	)
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("new sale: %w", err)
	}

	// 3. Persist sale and notes in one transaction.
	if err := uc.sales.CreateWithNotes(ctx, sale, notes); err != nil {
		return dto.SaleResponse{}, fmt.Errorf("create sale: %w", err)
	}

	// 4. Publish events.
	if err := uc.publisher.Publish(ctx, sale.DomainEvents()...); err != nil {
		return dto.SaleResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromSale(sale, notes), nil
}
