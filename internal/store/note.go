package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type noteStore struct {
	queries *sqlc.Queries
}

func newNoteStore(queries *sqlc.Queries) NoteStore {
	return &noteStore{queries: queries}
}

func (s *noteStore) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	row, err := s.queries.GetNote(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toNoteModel(row), nil
}

func (s *noteStore) Create(ctx context.Context, note *model.Note) error {
	row, err := s.queries.CreateNote(ctx, sqlc.CreateNoteParams{
		ID:          note.ID,
		ProfileID:   note.ProfileID,
		WorkspaceID: note.WorkspaceID,
		Title:       note.Title,
		Body:        note.Body,
		Pinned:      note.Pinned,
	})
	if err != nil {
		return err
	}
	*note = *toNoteModel(row)
	return nil
}

func (s *noteStore) Update(ctx context.Context, note *model.Note) error {
	row, err := s.queries.UpdateNote(ctx, sqlc.UpdateNoteParams{
		ID:        note.ID,
		ProfileID: note.ProfileID,
		Title:     note.Title,
		Body:      note.Body,
		Pinned:    note.Pinned,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*note = *toNoteModel(row)
	return nil
}

func (s *noteStore) Delete(ctx context.Context, id, profileID int64) error {
	return s.queries.SoftDeleteNote(ctx, sqlc.SoftDeleteNoteParams{
		ID:        id,
		ProfileID: profileID,
	})
}

func (s *noteStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Note, error) {
	rows, err := s.queries.ListNotesByProfile(ctx, sqlc.ListNotesByProfileParams{
		ProfileID: profileID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Note, len(rows))
	for i, row := range rows {
		result[i] = *toNoteModel(row)
	}
	return result, nil
}

func (s *noteStore) CountByProfile(ctx context.Context, profileID int64) (int64, error) {
	return s.queries.CountNotesByProfile(ctx, profileID)
}

func toNoteModel(row sqlc.Note) *model.Note {
	return &model.Note{
		ID:          row.ID,
		ProfileID:   row.ProfileID,
		WorkspaceID: row.WorkspaceID,
		Title:       row.Title,
		Body:        row.Body,
		Pinned:      row.Pinned,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
		IsDeleted:   row.IsDeleted,
	}
}
