package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/event"
	"github.com/hscHeric/credigestor-api/pkg/money"
)

// ---------------------------------------------------------------------------
// Sale aggregate root
// ---------------------------------------------------------------------------

// Sale is a financed transaction that owns a sequence of promissory notes.
// The aggregate is immutable: mutations return a new copy.
//
// Invariant: the sum of the generated notes' original amounts equals
// total - down payment to the cent; GenerateInstallmentSchedule guarantees it.
type Sale struct {
	id                   string
	customerID           string
	salespersonID        string
	description          string
	totalAmount          decimal.Decimal
	downPayment          decimal.Decimal
	installmentsCount    int
	firstInstallmentDate time.Time
	version              int
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// NewSale validates the financial terms, generates the installment schedule
// and returns the sale together with its pending promissory notes. Sale and
// notes must be persisted atomically by the caller.
func NewSale(
	customerID, salespersonID, description string,
	totalAmount, downPayment decimal.Decimal,
	installmentsCount int,
	firstInstallmentDate time.Time,
	now time.Time,
) (Sale, []PromissoryNote, error) {
	if totalAmount.IsNegative() || downPayment.IsNegative() {
		return Sale{}, nil, ErrNegativeAmount
	}
	if installmentsCount <= 0 {
		return Sale{}, nil, ErrInvalidInstallments
	}
	if downPayment.GreaterThan(totalAmount) {
		return Sale{}, nil, ErrDownPaymentExceedsTotal
	}

	financed := money.Round2(totalAmount.Sub(downPayment))
	schedule, err := GenerateInstallmentSchedule(financed, installmentsCount, firstInstallmentDate)
	if err != nil {
		return Sale{}, nil, err
	}

	sale := Sale{
		id:                   uuid.New().String(),
		customerID:           customerID,
		salespersonID:        salespersonID,
		description:          description,
		totalAmount:          money.Round2(totalAmount),
		downPayment:          money.Round2(downPayment),
		installmentsCount:    installmentsCount,
		firstInstallmentDate: firstInstallmentDate,
		version:              1,
		createdAt:            now,
		updatedAt:            now,
	}

	notes := notesFromSchedule(sale.id, schedule, now)

	sale.domainEvents = append(sale.domainEvents, event.NewSaleCreated(
		sale.id, customerID,
		sale.totalAmount, sale.downPayment, financed,
		installmentsCount, firstInstallmentDate,
	))

	return sale, notes, nil
}

// ReconstructSale rebuilds a Sale aggregate from persistence.
func ReconstructSale(
	id, customerID, salespersonID, description string,
	totalAmount, downPayment decimal.Decimal,
	installmentsCount int,
	firstInstallmentDate time.Time,
	version int,
	createdAt, updatedAt time.Time,
) Sale {
	return Sale{
		id:                   id,
		customerID:           customerID,
		salespersonID:        salespersonID,
		description:          description,
		totalAmount:          totalAmount,
		downPayment:          downPayment,
		installmentsCount:    installmentsCount,
		firstInstallmentDate: firstInstallmentDate,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Reschedule replaces the sale's financial terms and regenerates its notes.
// The caller must first verify none of the existing notes has received a
// payment (ErrSaleLocked); the old notes are replaced wholesale in the same
// transaction that persists the new ones.
func (s Sale) Reschedule(
	totalAmount, downPayment decimal.Decimal,
	installmentsCount int,
	firstInstallmentDate time.Time,
	now time.Time,
) (Sale, []PromissoryNote, error) {
	if totalAmount.IsNegative() || downPayment.IsNegative() {
		return s, nil, ErrNegativeAmount
	}
	if installmentsCount <= 0 {
		return s, nil, ErrInvalidInstallments
	}
	if downPayment.GreaterThan(totalAmount) {
		return s, nil, ErrDownPaymentExceedsTotal
	}

	financed := money.Round2(totalAmount.Sub(downPayment))
	schedule, err := GenerateInstallmentSchedule(financed, installmentsCount, firstInstallmentDate)
	if err != nil {
		return s, nil, err
	}

	next := s
	next.totalAmount = money.Round2(totalAmount)
	next.downPayment = money.Round2(downPayment)
	next.installmentsCount = installmentsCount
	next.firstInstallmentDate = firstInstallmentDate
	next.updatedAt = now
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSaleRescheduled(
		s.id, financed, installmentsCount, firstInstallmentDate,
	))

	return next, notesFromSchedule(s.id, schedule, now), nil
}

// UpdateDetails changes non-financial fields only; the schedule is untouched.
func (s Sale) UpdateDetails(customerID, description string, now time.Time) Sale {
	next := s
	if customerID != "" {
		next.customerID = customerID
	}
	next.description = description
	next.updatedAt = now
	return next
}

// Deleted records the deletion event for publication after the cascade
// delete commits.
func (s Sale) Deleted() Sale {
	next := s
	next.domainEvents = copyEvents(s.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSaleDeleted(s.id, s.customerID))
	return next
}

func notesFromSchedule(saleID string, schedule []ScheduleEntry, now time.Time) []PromissoryNote {
	notes := make([]PromissoryNote, 0, len(schedule))
	for _, entry := range schedule {
		notes = append(notes, NewPromissoryNote(saleID, entry, now))
	}
	return notes
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (s Sale) ID() string                      { return s.id }
func (s Sale) CustomerID() string              { return s.customerID }
func (s Sale) SalespersonID() string           { return s.salespersonID }
func (s Sale) Description() string             { return s.description }
func (s Sale) TotalAmount() decimal.Decimal    { return s.totalAmount }
func (s Sale) DownPayment() decimal.Decimal    { return s.downPayment }
func (s Sale) InstallmentsCount() int          { return s.installmentsCount }
func (s Sale) FirstInstallmentDate() time.Time { return s.firstInstallmentDate }
func (s Sale) Version() int                    { return s.version }
func (s Sale) CreatedAt() time.Time            { return s.createdAt }
func (s Sale) UpdatedAt() time.Time            { return s.updatedAt }
func (s Sale) DomainEvents() []event.DomainEvent { return s.domainEvents }

// FinancedAmount is the principal scheduled across the installments.
func (s Sale) FinancedAmount() decimal.Decimal {
	return money.Round2(s.totalAmount.Sub(s.downPayment))
}

// ClearEvents returns a copy with an empty event list.
func (s Sale) ClearEvents() Sale {
	next := s
	next.domainEvents = nil
	return next
}
