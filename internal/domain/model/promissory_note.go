package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/event"
	"github.com/hscHeric/credigestor-api/internal/domain/valueobject"
	"github.com/hscHeric/credigestor-api/pkg/money"
)

// ---------------------------------------------------------------------------
// Payment value object
// ---------------------------------------------------------------------------

// Payment is an immutable record of money applied to one promissory note.
// Payments are append-only: the engine never updates or deletes one.
//
// AmountPaid tracks principal only; interest and fine are informational
// amounts supplied by the caller (usually from an accrual preview) and do not
// reduce the note's outstanding balance.
type Payment struct {
	ID               string
	PromissoryNoteID string
	AmountPaid       decimal.Decimal
	PaymentDate      time.Time
	InterestAmount   decimal.Decimal
	FineAmount       decimal.Decimal
	Notes            string
	CreatedAt        time.Time
}

// TotalAmount is the full sum collected: principal + interest + fine.
func (p Payment) TotalAmount() decimal.Decimal {
	return p.AmountPaid.Add(p.InterestAmount).Add(p.FineAmount)
}

// ---------------------------------------------------------------------------
// PromissoryNote aggregate root
// ---------------------------------------------------------------------------

// PromissoryNote is one installment of a sale. The aggregate is immutable:
// mutations return a new copy.
//
// The stored status only distinguishes pending, partial_payment and paid.
// Overdue-ness is computed on read from the due date (IsOverdue); nothing in
// the ledger depends on a job flipping a stored "overdue" flag.
type PromissoryNote struct {
	id                string
	saleID            string
	installmentNumber int
	originalAmount    decimal.Decimal
	paidAmount        decimal.Decimal
	dueDate           time.Time
	paymentDate       *time.Time
	status            valueobject.NoteStatus
	notes             string
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	domainEvents      []event.DomainEvent
}

// NewPromissoryNote creates a pending note for one schedule entry.
func NewPromissoryNote(saleID string, entry ScheduleEntry, now time.Time) PromissoryNote {
	return PromissoryNote{
		id:                uuid.New().String(),
		saleID:            saleID,
		installmentNumber: entry.InstallmentNumber,
		originalAmount:    entry.Amount,
		paidAmount:        decimal.Zero.Round(money.Two),
		dueDate:           entry.DueDate,
		status:            valueobject.NoteStatusPending,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}
}

// ReconstructPromissoryNote rebuilds a note from persistence.
func ReconstructPromissoryNote(
	id, saleID string,
	installmentNumber int,
	originalAmount, paidAmount decimal.Decimal,
	dueDate time.Time,
	paymentDate *time.Time,
	status valueobject.NoteStatus,
	notes string,
	version int,
	createdAt, updatedAt time.Time,
) PromissoryNote {
	return PromissoryNote{
		id:                id,
		saleID:            saleID,
		installmentNumber: installmentNumber,
		originalAmount:    originalAmount,
		paidAmount:        paidAmount,
		dueDate:           dueDate,
		paymentDate:       paymentDate,
		status:            status,
		notes:             notes,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// ApplyPayment records a payment of amount against the note's outstanding
// balance and returns the updated note together with the created Payment.
//
// The operation is rejected whole when the note is already settled, when the
// amount is not positive, or when it exceeds the outstanding balance; the
// engine never clamps an overpayment.
func (n PromissoryNote) ApplyPayment(
	amount decimal.Decimal,
	paymentDate time.Time,
	interest, fine decimal.Decimal,
	notes string,
	now time.Time,
) (PromissoryNote, Payment, error) {
	if n.status.Settled() {
		return n, Payment{}, ErrAlreadySettled
	}

	amount = money.Round2(amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		return n, Payment{}, ErrInvalidAmount
	}
	if interest.IsNegative() || fine.IsNegative() {
		return n, Payment{}, ErrNegativeAmount
	}

	outstanding := n.OutstandingBalance()
	if amount.GreaterThan(outstanding) {
		return n, Payment{}, ErrOverpayment
	}

	payment := Payment{
		ID:               uuid.New().String(),
		PromissoryNoteID: n.id,
		AmountPaid:       amount,
		PaymentDate:      paymentDate,
		InterestAmount:   money.Round2(interest),
		FineAmount:       money.Round2(fine),
		Notes:            notes,
		CreatedAt:        now,
	}

	next := n
	next.paidAmount = money.Round2(n.paidAmount.Add(amount))
	next.updatedAt = now
	next.domainEvents = copyEvents(n.domainEvents)

	newOutstanding := next.OutstandingBalance()
	if newOutstanding.IsZero() {
		next.status = valueobject.NoteStatusPaid
		pd := paymentDate
		next.paymentDate = &pd
	} else {
		next.status = valueobject.NoteStatusPartialPayment
		next.paymentDate = nil
	}

	next.domainEvents = append(next.domainEvents, event.NewPaymentRegistered(
		n.id, payment.ID, n.saleID,
		amount, payment.InterestAmount, payment.FineAmount, newOutstanding,
		paymentDate,
	))
	if newOutstanding.IsZero() {
		next.domainEvents = append(next.domainEvents, event.NewNoteSettled(n.id, n.saleID, paymentDate))
	}

	return next, payment, nil
}

// ---------------------------------------------------------------------------
// Read-time predicates
// ---------------------------------------------------------------------------

// OutstandingBalance is the principal still owed on the note.
func (n PromissoryNote) OutstandingBalance() decimal.Decimal {
	return money.Round2(n.originalAmount.Sub(n.paidAmount))
}

// IsOverdue reports whether the note is unsettled past its due date as of
// the given date.
func (n PromissoryNote) IsOverdue(asOf time.Time) bool {
	return !n.status.Settled() && dateOf(asOf).After(dateOf(n.dueDate))
}

// DaysOverdue is the number of whole days past the due date, zero when the
// note is settled or not yet due.
func (n PromissoryNote) DaysOverdue(asOf time.Time) int {
	if !n.IsOverdue(asOf) {
		return 0
	}
	return int(dateOf(asOf).Sub(dateOf(n.dueDate)).Hours() / 24)
}

// dateOf truncates a timestamp to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (n PromissoryNote) ID() string                         { return n.id }
func (n PromissoryNote) SaleID() string                     { return n.saleID }
func (n PromissoryNote) InstallmentNumber() int             { return n.installmentNumber }
func (n PromissoryNote) OriginalAmount() decimal.Decimal    { return n.originalAmount }
func (n PromissoryNote) PaidAmount() decimal.Decimal        { return n.paidAmount }
func (n PromissoryNote) DueDate() time.Time                 { return n.dueDate }
func (n PromissoryNote) Status() valueobject.NoteStatus     { return n.status }
func (n PromissoryNote) Notes() string                      { return n.notes }
func (n PromissoryNote) Version() int                       { return n.version }
func (n PromissoryNote) CreatedAt() time.Time               { return n.createdAt }
func (n PromissoryNote) UpdatedAt() time.Time               { return n.updatedAt }
func (n PromissoryNote) DomainEvents() []event.DomainEvent { return n.domainEvents }

// PaymentDate returns the settlement date, or nil while the note is open.
func (n PromissoryNote) PaymentDate() *time.Time {
	if n.paymentDate == nil {
		return nil
	}
	pd := *n.paymentDate
	return &pd
}

// ClearEvents returns a copy with an empty event list.
func (n PromissoryNote) ClearEvents() PromissoryNote {
	next := n
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
