package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Sale events
// ---------------------------------------------------------------------------

// SaleCreated is raised when a sale and its promissory notes are persisted.
type SaleCreated struct {
	events.BaseEvent
	CustomerID        string          `json:"customer_id"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	InstallmentsCount int             `json:"installments_count"`
	FirstDueDate      time.Time       `json:"first_due_date"`
}

func NewSaleCreated(
	saleID, customerID string,
	total, down, financed decimal.Decimal,
	installments int, firstDue time.Time,
) SaleCreated {
	return SaleCreated{
		BaseEvent:         events.NewBaseEvent("credigestor.sale.created", saleID, "Sale"),
		CustomerID:        customerID,
		TotalAmount:       total,
		DownPayment:       down,
		FinancedAmount:    financed,
		InstallmentsCount: installments,
		FirstDueDate:      firstDue,
	}
}

// SaleRescheduled is raised when a sale's financial terms change and its
// notes are regenerated.
type SaleRescheduled struct {
	events.BaseEvent
	FinancedAmount    decimal.Decimal `json:"financed_amount"`
	InstallmentsCount int             `json:"installments_count"`
	FirstDueDate      time.Time       `json:"first_due_date"`
}

func NewSaleRescheduled(saleID string, financed decimal.Decimal, installments int, firstDue time.Time) SaleRescheduled {
	return SaleRescheduled{
		BaseEvent:         events.NewBaseEvent("credigestor.sale.rescheduled", saleID, "Sale"),
		FinancedAmount:    financed,
		InstallmentsCount: installments,
		FirstDueDate:      firstDue,
	}
}

// SaleDeleted is raised when a sale is removed along with its notes and
// payments. Consumers that need an audit trail archive on this event.
type SaleDeleted struct {
	events.BaseEvent
	CustomerID string `json:"customer_id"`
}

func NewSaleDeleted(saleID, customerID string) SaleDeleted {
	return SaleDeleted{
		BaseEvent:  events.NewBaseEvent("credigestor.sale.deleted", saleID, "Sale"),
		CustomerID: customerID,
	}
}

// ---------------------------------------------------------------------------
// Promissory note events
// ---------------------------------------------------------------------------

// PaymentRegistered is raised whenever money is applied to a note.
type PaymentRegistered struct {
	events.BaseEvent
	PaymentID          string          `json:"payment_id"`
	SaleID             string          `json:"sale_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	InterestAmount     decimal.Decimal `json:"interest_amount"`
	FineAmount         decimal.Decimal `json:"fine_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	PaymentDate        time.Time       `json:"payment_date"`
}

func NewPaymentRegistered(
	noteID, paymentID, saleID string,
	amount, interest, fine, outstanding decimal.Decimal,
	paymentDate time.Time,
) PaymentRegistered {
	return PaymentRegistered{
		BaseEvent:          events.NewBaseEvent("credigestor.note.payment_registered", noteID, "PromissoryNote"),
		PaymentID:          paymentID,
		SaleID:             saleID,
		AmountPaid:         amount,
		InterestAmount:     interest,
		FineAmount:         fine,
		OutstandingBalance: outstanding,
		PaymentDate:        paymentDate,
	}
}

// NoteSettled is raised when a payment brings a note's outstanding balance to
// zero.
type NoteSettled struct {
	events.BaseEvent
	SaleID      string    `json:"sale_id"`
	PaymentDate time.Time `json:"payment_date"`
}

func NewNoteSettled(noteID, saleID string, paymentDate time.Time) NoteSettled {
	return NoteSettled{
		BaseEvent:   events.NewBaseEvent("credigestor.note.settled", noteID, "PromissoryNote"),
		SaleID:      saleID,
		PaymentDate: paymentDate,
	}
}

// ---------------------------------------------------------------------------
// System config events
// ---------------------------------------------------------------------------

// SystemConfigUpdated is raised when rates or alert thresholds change. Rate
// changes only affect subsequent accrual previews, never recorded payments.
type SystemConfigUpdated struct {
	events.BaseEvent
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	FineRate            decimal.Decimal `json:"fine_rate"`
	DaysBeforeDueAlert  int             `json:"days_before_due_alert"`
}

func NewSystemConfigUpdated(configID string, monthlyRate, fineRate decimal.Decimal, daysBefore int) SystemConfigUpdated {
	return SystemConfigUpdated{
		BaseEvent:           events.NewBaseEvent("credigestor.config.updated", configID, "SystemConfig"),
		MonthlyInterestRate: monthlyRate,
		FineRate:            fineRate,
		DaysBeforeDueAlert:  daysBefore,
	}
}
