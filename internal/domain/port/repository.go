package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/event"
	"github.com/hscHeric/credigestor-api/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// SaleRepository persists and retrieves sales together with their notes.
// Sales own their notes exclusively: creation, schedule replacement and
// deletion each happen in one transaction.
type SaleRepository interface {
	// CreateWithNotes inserts a sale and all of its notes atomically.
	CreateWithNotes(ctx context.Context, sale model.Sale, notes []model.PromissoryNote) error
	// ReplaceSchedule updates the sale row, deletes every existing note for
	// it and inserts the regenerated ones, all in one transaction.
	ReplaceSchedule(ctx context.Context, sale model.Sale, notes []model.PromissoryNote) error
	// Update persists non-financial sale fields only.
	Update(ctx context.Context, sale model.Sale) error
	FindByID(ctx context.Context, id string) (model.Sale, error)
	// Delete removes the sale; notes and payments go with it via cascade.
	// Returns model.ErrSaleNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}

// PromissoryNoteRepository persists and retrieves individual notes.
type PromissoryNoteRepository interface {
	FindByID(ctx context.Context, id string) (model.PromissoryNote, error)
	FindBySaleID(ctx context.Context, saleID string) ([]model.PromissoryNote, error)
	// SaveWithPayment persists the updated note guarded by its version and
	// appends the payment record in the same transaction, so two concurrent
	// payments can never both pass the overpayment check against a stale
	// balance.
	SaveWithPayment(ctx context.Context, note model.PromissoryNote, payment model.Payment) error
	ListPayments(ctx context.Context, noteID string) ([]model.Payment, error)
	List(ctx context.Context, filter NoteFilter) ([]NoteView, error)
}

// CustomerRepository reads the customer registry. The engine never writes it.
type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (model.Customer, error)
}

// SystemConfigRepository owns the singleton configuration row.
type SystemConfigRepository interface {
	// GetOrCreate returns the config row, inserting the defaults when the
	// table is empty.
	GetOrCreate(ctx context.Context) (model.SystemConfig, error)
	Update(ctx context.Context, cfg model.SystemConfig) (model.SystemConfig, error)
}

// ---------------------------------------------------------------------------
// Read projections
// ---------------------------------------------------------------------------

// NoteFilter narrows a note listing. Zero values mean "no constraint".
type NoteFilter struct {
	Status     string
	CustomerID string
	DueFrom    *time.Time
	DueTo      *time.Time
}

// NoteView is the read-only projection of a note joined with its sale and
// customer, ordered by due date. Consumers compute overdue-ness from DueDate.
type NoteView struct {
	ID                 string
	SaleID             string
	CustomerID         string
	CustomerName       string
	InstallmentNumber  int
	DueDate            time.Time
	OriginalAmount     decimal.Decimal
	PaidAmount         decimal.Decimal
	OutstandingBalance decimal.Decimal
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
