package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// NoteStatus – immutable value object
// ---------------------------------------------------------------------------

// NoteStatus represents the stored lifecycle stage of a promissory note.
//
// The ledger only ever writes pending, partial_payment and paid. The legacy
// "overdue" value is accepted when reading rows written by older tooling, but
// overdue-ness itself is always recomputed from the due date; see
// PromissoryNote.IsOverdue.
type NoteStatus struct {
	value string
}

const (
	noteStatusPending        = "pending"
	noteStatusPartialPayment = "partial_payment"
	noteStatusPaid           = "paid"
	noteStatusOverdue        = "overdue"
)

var (
	NoteStatusPending        = NoteStatus{value: noteStatusPending}
	NoteStatusPartialPayment = NoteStatus{value: noteStatusPartialPayment}
	NoteStatusPaid           = NoteStatus{value: noteStatusPaid}

	// NoteStatusOverdue is a display artifact, never authoritative.
	NoteStatusOverdue = NoteStatus{value: noteStatusOverdue}
)

var validNoteStatuses = map[string]NoteStatus{
	noteStatusPending:        NoteStatusPending,
	noteStatusPartialPayment: NoteStatusPartialPayment,
	noteStatusPaid:           NoteStatusPaid,
	noteStatusOverdue:        NoteStatusOverdue,
}

// NewNoteStatus creates a NoteStatus from a raw string.
func NewNoteStatus(s string) (NoteStatus, error) {
	v, ok := validNoteStatuses[s]
	if !ok {
		return NoteStatus{}, fmt.Errorf("invalid promissory note status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s NoteStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s NoteStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s NoteStatus) Equal(other NoteStatus) bool { return s.value == other.value }

// Settled reports whether the note is fully paid.
func (s NoteStatus) Settled() bool { return s.value == noteStatusPaid }

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
