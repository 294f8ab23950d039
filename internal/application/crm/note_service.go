package crm

import (
	"context"

	"github.com/labworks/backend/internal/domain/crm"
)

// ContactNoteService handles the append-only contact log for clients
type ContactNoteService struct {
	noteRepo crm.ContactNoteRepository
}

// NewContactNoteService creates a new ContactNoteService
func NewContactNoteService(noteRepo crm.ContactNoteRepository) *ContactNoteService {
	return &ContactNoteService{noteRepo: noteRepo}
}

// ListByClient returns all notes recorded for one client, newest first
func (s *ContactNoteService) ListByClient(ctx context.Context, clientID int64) ([]NoteResponse, error) {
	notes, err := s.noteRepo.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(&note))
	}
	return responses, nil
}

// Create records a new contact note and returns its id
func (s *ContactNoteService) Create(ctx context.Context, req CreateNoteRequest) (int64, error) {
	note, err := crm.NewContactNote(req.ClientID, req.Note)
	if err != nil {
		return 0, err
	}

	if err := s.noteRepo.Save(ctx, note); err != nil {
		return 0, err
	}
	return note.ID, nil
}
