package usecase

import (
	"context"
	"fmt"

	"github.com/hscHeric/credigestor-api/internal/application/dto"
	"github.com/hscHeric/credigestor-api/internal/domain/port"
	"github.com/hscHeric/credigestor-api/internal/domain/valueobject"
)

// ListNotesUseCase is the read-only note listing joined with sale and
// customer data. It never mutates ledger state.
type ListNotesUseCase struct {
	notes port.PromissoryNoteRepository
}

// NewListNotesUseCase wires dependencies.
func NewListNotesUseCase(notes port.PromissoryNoteRepository) *ListNotesUseCase {
	return &ListNotesUseCase{notes: notes}
}

// Execute returns notes matching the filter, ordered by due date.
func (uc *ListNotesUseCase) Execute(
	ctx context.Context,
	req dto.ListNotesRequest,
) (dto.NoteListResponse, error) {
	// A status filter must name a known status.
	if req.Status != "" {
		if _, err := valueobject.NewNoteStatus(req.Status); err != nil {
			return dto.NoteListResponse{}, fmt.Errorf("status filter: %w", err)
		}
	}

	views, err := uc.notes.List(ctx, port.NoteFilter{
		Status:     req.Status,
		CustomerID: req.CustomerID,
		DueFrom:    req.DueFrom,
		DueTo:      req.DueTo,
	})
	if err != nil {
		return dto.NoteListResponse{}, fmt.Errorf("list notes: %w", err)
	}

	resp := dto.NoteListResponse{Total: len(views)}
	for _, v := range views {
		resp.Items = append(resp.Items, dto.FromNoteView(v))
	}
	return resp, nil
}
