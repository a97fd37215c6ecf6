package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/internal/domain/model"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreateSaleRequest carries the data needed to register a financed sale.
type CreateSaleRequest struct {
	CustomerID           string          `json:"customer_id"`
	SalespersonID        string          `json:"salesperson_id"`
	Description          string          `json:"description,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	DownPayment          decimal.Decimal `json:"down_payment"`
	InstallmentsCount    int             `json:"installments_count"`
	FirstInstallmentDate time.Time       `json:"first_installment_date"`
}

// UpdateSaleRequest patches a sale. Nil fields are left unchanged. Patching
// any financial field regenerates the schedule and is rejected once the sale
// has received payments.
type UpdateSaleRequest struct {
	SaleID               string           `json:"sale_id"`
	CustomerID           *string          `json:"customer_id,omitempty"`
	Description          *string          `json:"description,omitempty"`
	TotalAmount          *decimal.Decimal `json:"total_amount,omitempty"`
	DownPayment          *decimal.Decimal `json:"down_payment,omitempty"`
	InstallmentsCount    *int             `json:"installments_count,omitempty"`
	FirstInstallmentDate *time.Time       `json:"first_installment_date,omitempty"`
}

// TouchesFinancials reports whether the patch changes any field that feeds
// the installment schedule.
func (r UpdateSaleRequest) TouchesFinancials() bool {
	return r.TotalAmount != nil ||
		r.DownPayment != nil ||
		r.InstallmentsCount != nil ||
		r.FirstInstallmentDate != nil
}

// RegisterPaymentRequest carries the data for a payment against one note.
// Interest and fine are the amounts actually collected on top of the
// principal, typically taken from a preceding accrual preview.
type RegisterPaymentRequest struct {
	PromissoryNoteID string          `json:"promissory_note_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentDate      time.Time       `json:"payment_date"`
	InterestAmount   decimal.Decimal `json:"interest_amount"`
	FineAmount       decimal.Decimal `json:"fine_amount"`
	Notes            string          `json:"notes,omitempty"`
}

// PreviewAccrualRequest identifies the note and reference date for an
// interest/fine projection. A zero AsOf means "today".
type PreviewAccrualRequest struct {
	PromissoryNoteID string    `json:"promissory_note_id"`
	AsOf             time.Time `json:"as_of,omitempty"`
}

// ListNotesRequest filters the note listing. Zero values mean no constraint.
type ListNotesRequest struct {
	Status     string     `json:"status,omitempty"`
	CustomerID string     `json:"customer_id,omitempty"`
	DueFrom    *time.Time `json:"due_from,omitempty"`
	DueTo      *time.Time `json:"due_to,omitempty"`
}

// UpdateSystemConfigRequest patches the singleton configuration row.
type UpdateSystemConfigRequest struct {
	CompanyName         *string          `json:"company_name,omitempty"`
	LogoURL             *string          `json:"logo_url,omitempty"`
	MonthlyInterestRate *decimal.Decimal `json:"monthly_interest_rate,omitempty"`
	FineRate            *decimal.Decimal `json:"fine_rate,omitempty"`
	DaysBeforeDueAlert  *int             `json:"days_before_due_alert,omitempty"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PromissoryNoteResponse is the external representation of one installment.
type PromissoryNoteResponse struct {
	ID                 string          `json:"id"`
	SaleID             string          `json:"sale_id"`
	InstallmentNumber  int             `json:"installment_number"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	DueDate            time.Time       `json:"due_date"`
	PaymentDate        *time.Time      `json:"payment_date,omitempty"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// SaleResponse is the external representation of a sale and its notes.
type SaleResponse struct {
	ID                   string                   `json:"id"`
	CustomerID           string                   `json:"customer_id"`
	SalespersonID        string                   `json:"salesperson_id"`
	Description          string                   `json:"description,omitempty"`
	TotalAmount          decimal.Decimal          `json:"total_amount"`
	DownPayment          decimal.Decimal          `json:"down_payment"`
	FinancedAmount       decimal.Decimal          `json:"financed_amount"`
	InstallmentsCount    int                      `json:"installments_count"`
	FirstInstallmentDate time.Time                `json:"first_installment_date"`
	Notes                []PromissoryNoteResponse `json:"promissory_notes,omitempty"`
	CreatedAt            time.Time                `json:"created_at"`
	UpdatedAt            time.Time                `json:"updated_at"`
}

// PaymentResponse is the external representation of a registered payment.
type PaymentResponse struct {
	ID                 string          `json:"id"`
	PromissoryNoteID   string          `json:"promissory_note_id"`
	AmountPaid         decimal.Decimal `json:"amount_paid"`
	InterestAmount     decimal.Decimal `json:"interest_amount"`
	FineAmount         decimal.Decimal `json:"fine_amount"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PaymentDate        time.Time       `json:"payment_date"`
	Notes              string          `json:"notes,omitempty"`
	NoteStatus         string          `json:"note_status"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

// AccrualResponse is the external representation of an interest/fine preview.
type AccrualResponse struct {
	PromissoryNoteID    string          `json:"promissory_note_id"`
	DaysOverdue         int             `json:"days_overdue"`
	OutstandingBalance  decimal.Decimal `json:"outstanding_balance"`
	FineRate            decimal.Decimal `json:"fine_rate"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	FineAmount          decimal.Decimal `json:"fine_amount"`
	InterestAmount      decimal.Decimal `json:"interest_amount"`
	TotalUpdated        decimal.Decimal `json:"total_updated"`
}

// NoteViewResponse is one row of the joined note listing.
type NoteViewResponse struct {
	ID                 string          `json:"id"`
	SaleID             string          `json:"sale_id"`
	CustomerID         string          `json:"customer_id"`
	CustomerName       string          `json:"customer_name"`
	InstallmentNumber  int             `json:"installment_number"`
	DueDate            time.Time       `json:"due_date"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NoteListResponse wraps a filtered note listing.
type NoteListResponse struct {
	Items []NoteViewResponse `json:"items"`
	Total int                `json:"total"`
}

// SystemConfigResponse is the external representation of the configuration.
type SystemConfigResponse struct {
	ID                  string          `json:"id"`
	CompanyName         string          `json:"company_name"`
	LogoURL             string          `json:"logo_url,omitempty"`
	MonthlyInterestRate decimal.Decimal `json:"monthly_interest_rate"`
	FineRate            decimal.Decimal `json:"fine_rate"`
	DaysBeforeDueAlert  int             `json:"days_before_due_alert"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// FromNote maps a note aggregate to its response form.
func FromNote(n model.PromissoryNote) PromissoryNoteResponse {
	return PromissoryNoteResponse{
		ID:                 n.ID(),
		SaleID:             n.SaleID(),
		InstallmentNumber:  n.InstallmentNumber(),
		OriginalAmount:     n.OriginalAmount(),
		PaidAmount:         n.PaidAmount(),
		OutstandingBalance: n.OutstandingBalance(),
		DueDate:            n.DueDate(),
		PaymentDate:        n.PaymentDate(),
		Status:             n.Status().String(),
		CreatedAt:          n.CreatedAt(),
		UpdatedAt:          n.UpdatedAt(),
	}
}

// FromSale maps a sale and its notes to the response form.
func FromSale(s model.Sale, notes []model.PromissoryNote) SaleResponse {
	resp := SaleResponse{
		ID:                   s.ID(),
		CustomerID:           s.CustomerID(),
		SalespersonID:        s.SalespersonID(),
		Description:          s.Description(),
		TotalAmount:          s.TotalAmount(),
		DownPayment:          s.DownPayment(),
		FinancedAmount:       s.FinancedAmount(),
		InstallmentsCount:    s.InstallmentsCount(),
		FirstInstallmentDate: s.FirstInstallmentDate(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
	}
	for _, n := range notes {
		resp.Notes = append(resp.Notes, FromNote(n))
	}
	return resp
}

// FromNoteView maps a listing projection row to its response form.
func FromNoteView(v port.NoteView) NoteViewResponse {
	return NoteViewResponse(v)
}

// FromSystemConfig maps the configuration to its response form.
func FromSystemConfig(cfg model.SystemConfig) SystemConfigResponse {
	return SystemConfigResponse{
		ID:                  cfg.ID,
		CompanyName:         cfg.CompanyName,
		LogoURL:             cfg.LogoURL,
		MonthlyInterestRate: cfg.MonthlyInterestRate,
		FineRate:            cfg.FineRate,
		DaysBeforeDueAlert:  cfg.DaysBeforeDueAlert,
		UpdatedAt:           cfg.UpdatedAt,
	}
}
