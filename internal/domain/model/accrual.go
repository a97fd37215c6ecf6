package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/pkg/money"
)

// AccrualResult is a point-in-time projection of fine and interest on an
// overdue note. It is a preview only: committing a payment with interest and
// fine is a separate, explicit operation where the caller supplies the
// amounts to record.
type AccrualResult struct {
	DaysOverdue         int
	OutstandingBalance  decimal.Decimal
	FineRate            decimal.Decimal
	MonthlyInterestRate decimal.Decimal
	FineAmount          decimal.Decimal
	InterestAmount      decimal.Decimal
	TotalUpdated        decimal.Decimal
}

// CalculateAccrual computes fine and prorated interest for a note's overdue
// balance as of the given date. Side-effect free.
//
// The fine is a flat percentage of the outstanding balance. Interest accrues
// linearly at 1/30th of the monthly rate per elapsed day; it is not
// compounded and not calendar-month aware.
func CalculateAccrual(note PromissoryNote, cfg SystemConfig, asOf time.Time) AccrualResult {
	outstanding := note.OutstandingBalance()

	result := AccrualResult{
		OutstandingBalance:  outstanding,
		FineRate:            money.Round2(cfg.FineRate),
		MonthlyInterestRate: money.Round2(cfg.MonthlyInterestRate),
		FineAmount:          decimal.Zero.Round(money.Two),
		InterestAmount:      decimal.Zero.Round(money.Two),
		TotalUpdated:        outstanding,
	}

	if note.Status().Settled() || outstanding.LessThanOrEqual(decimal.Zero) {
		return result
	}

	days := note.DaysOverdue(asOf)
	if days <= 0 {
		return result
	}

	hundred := decimal.NewFromInt(100)
	fine := money.Round2(outstanding.Mul(cfg.FineRate).Div(hundred))
	interest := money.Round2(
		outstanding.
			Mul(cfg.MonthlyInterestRate).Div(hundred).
			Mul(decimal.NewFromInt(int64(days))).Div(decimal.NewFromInt(30)),
	)

	result.DaysOverdue = days
	result.FineAmount = fine
	result.InterestAmount = interest
	result.TotalUpdated = money.Round2(outstanding.Add(fine).Add(interest))

	return result
}
