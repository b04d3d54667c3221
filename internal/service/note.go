package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var ErrNoteNotFound = errors.New("note not found")

type CreateNoteInput struct {
	WorkspaceID *int64
	Title       string
	Body        string
	Pinned      bool
}

type UpdateNoteInput struct {
	Title  string
	Body   string
	Pinned bool
}

type NoteService interface {
	Create(ctx context.Context, profileID int64, input CreateNoteInput) (*model.Note, error)
	Get(ctx context.Context, profileID, noteID int64) (*model.Note, error)
	Update(ctx context.Context, profileID, noteID int64, input UpdateNoteInput) (*model.Note, error)
	Delete(ctx context.Context, profileID, noteID int64) error
	List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Note, error)
}

type noteService struct {
	noteStore store.NoteStore
	evaluator *access.Evaluator
}

func NewNoteService(noteStore store.NoteStore, evaluator *access.Evaluator) NoteService {
	return &noteService{
		noteStore: noteStore,
		evaluator: evaluator,
	}
}

func (s *noteService) Create(ctx context.Context, profileID int64, input CreateNoteInput) (*model.Note, error) {
	if err := enforceFreeTierLimit(ctx, s.evaluator, profileID, s.noteStore.CountByProfile, FreeTierNoteLimit, "notes"); err != nil {
		return nil, err
	}

	note := &model.Note{
		ID:          id.New(),
		ProfileID:   profileID,
		WorkspaceID: input.WorkspaceID,
		Title:       input.Title,
		Body:        input.Body,
		Pinned:      input.Pinned,
	}

	if err := s.noteStore.Create(ctx, note); err != nil {
		slog.ErrorContext(ctx, "failed to create note",
			"error", err,
			"profile_id", profileID,
		)
		return nil, fmt.Errorf("creating note: %w", err)
	}

	return note, nil
}

func (s *noteService) Get(ctx context.Context, profileID, noteID int64) (*model.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("getting note: %w", err)
	}
	if note.ProfileID != profileID {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, profileID, noteID int64, input UpdateNoteInput) (*model.Note, error) {
	note, err := s.Get(ctx, profileID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = input.Title
	note.Body = input.Body
	note.Pinned = input.Pinned

	if err := s.noteStore.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, profileID, noteID int64) error {
	if _, err := s.Get(ctx, profileID, noteID); err != nil {
		return err
	}
	if err := s.noteStore.Delete(ctx, noteID, profileID); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

func (s *noteService) List(ctx context.Context, profileID int64, limit, offset int32) ([]model.Note, error) {
	return s.noteStore.ListByProfile(ctx, profileID, limit, offset)
}
