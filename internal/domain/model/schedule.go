package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hscHeric/credigestor-api/pkg/money"
)

// ScheduleEntry is an immutable value object representing one installment in
// a generated schedule.
type ScheduleEntry struct {
	DueDate           time.Time
	Amount            decimal.Decimal
	InstallmentNumber int
}

// GenerateInstallmentSchedule splits a financed principal into n equal
// installments due one calendar month apart, starting at firstDueDate.
//
// The installment amounts come from money.SplitEvenly, so they carry two
// decimal places, sum exactly to the principal, and the remainder cents land
// on the trailing installments. A principal too small to give every
// installment at least one cent is rejected. Due dates clamp to month ends
// (Jan 31, Feb 28, Mar 31, ...).
func GenerateInstallmentSchedule(
	financed decimal.Decimal,
	installmentsCount int,
	firstDueDate time.Time,
) ([]ScheduleEntry, error) {
	if installmentsCount <= 0 {
		return nil, ErrInvalidInstallments
	}
	if financed.LessThanOrEqual(decimal.Zero) {
		return nil, ErrNothingFinanced
	}

	amounts := money.SplitEvenly(financed, installmentsCount)

	// Every installment must carry at least one cent.
	for _, amount := range amounts {
		if amount.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInstallmentTooSmall
		}
	}

	schedule := make([]ScheduleEntry, 0, installmentsCount)
	for i := 1; i <= installmentsCount; i++ {
		schedule = append(schedule, ScheduleEntry{
			InstallmentNumber: i,
			Amount:            amounts[i-1],
			DueDate:           money.AddMonths(firstDueDate, i-1),
		})
	}

	return schedule, nil
}
