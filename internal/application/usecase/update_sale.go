package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// UpdateSaleUseCase patches a sale. A patch that touches financial terms
// regenerates the whole schedule and is only allowed while no note has
// received a payment.
type UpdateSaleUseCase struct {
	sales     port.SaleRepository
	notes     port.PromissoryNoteRepository
	customers port.CustomerRepository
	publisher port.EventPublisher
}

// NewUpdateSaleUseCase wires dependencies.
func NewUpdateSaleUseCase(
	sales port.SaleRepository,
	notes port.PromissoryNoteRepository,
	customers port.CustomerRepository,
	publisher port.EventPublisher,
) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		sales:     sales,
		notes:     notes,
		customers: customers,
		publisher: publisher,
	}
}

// Execute applies the patch and returns the sale with its (possibly
// regenerated) notes.
func (uc *UpdateSaleUseCase) Execute(
	ctx context.Context,
	req dto.UpdateSaleRequest,
) (dto.SaleResponse, error) {
	now := time.Now().UTC()

	// 1. Load the sale.
	sale, err := uc.sales.FindByID(ctx, req.SaleID)
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("find sale: %w", err)
	}

	// 2. A patched customer reference must exist.
	if req.CustomerID != nil {
		if _, err := uc.customers.FindByID(ctx, *req.CustomerID); err != nil {
			return dto.SaleResponse{}, fmt.Errorf("find customer: %w", err)
		}
	}

	if !req.TouchesFinancials() {
		// Non-financial patch: apply directly, schedule untouched.
		sale = applyDetails(sale, req, now)
		if err := uc.sales.Update(ctx, sale); err != nil {
			return dto.SaleResponse{}, fmt.Errorf("update sale: %w", err)
		}

		notes, err := uc.notes.FindBySaleID(ctx, sale.ID())
		if err != nil {
			return dto.SaleResponse{}, fmt.Errorf("load notes: %w", err)
		}
		return dto.FromSale(sale, notes), nil
	}

	// 3. Financial patch: the schedule is locked once any note has received
	// money.
	existing, err := uc.notes.FindBySaleID(ctx, sale.ID())
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("load notes: %w", err)
	}
	for _, n := range existing {
		if n.Status().Settled() || n.PaidAmount().IsPositive() {
			return dto.SaleResponse{}, fmt.Errorf("reschedule sale: %w", model.ErrSaleLocked)
		}
	}

	// 4. Regenerate from the patched terms, falling back to current values.
	total := sale.TotalAmount()
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	down := sale.DownPayment()
	if req.DownPayment != nil {
		down = *req.DownPayment
	}
	count := sale.InstallmentsCount()
	if req.InstallmentsCount != nil {
		count = *req.InstallmentsCount
	}
	firstDue := sale.FirstInstallmentDate()
	if req.FirstInstallmentDate != nil {
		firstDue = *req.FirstInstallmentDate
	}

	sale = applyDetails(sale, req, now)
	sale, regenerated, err := sale.Reschedule(total, down, count, firstDue, now)
	if err != nil {
		return dto.SaleResponse{}, fmt.Errorf("reschedule sale: %w", err)
	}

	// 5. Replace the schedule atomically.
	if err := uc.sales.ReplaceSchedule(ctx, sale, regenerated); err != nil {
		return dto.SaleResponse{}, fmt.Errorf("replace schedule: %w", err)
	}

	// 6. Publish events.
	if err := uc.publisher.Publish(ctx, sale.DomainEvents()...); err != nil {
		return dto.SaleResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.FromSale(sale, regenerated), nil
}

func applyDetails(sale model.Sale, req dto.UpdateSaleRequest, now time.Time) model.Sale {
	customerID := ""
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}
	description := sale.Description()
	if req.Description != nil {
		description = *req.Description
	}
	return sale.UpdateDetails(customerID, description, now)
}
