package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type CreateNoteRequest struct {
	WorkspaceID *string `json:"workspace_id,omitempty"`
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Body        string  `json:"body" binding:"max=50000"`
	Pinned      bool    `json:"pinned"`
}

func (r *CreateNoteRequest) ToInput() (service.CreateNoteInput, error) {
	workspaceID, err := parseOptionalID(r.WorkspaceID, "workspace_id")
	if err != nil {
		return service.CreateNoteInput{}, err
	}
	return service.CreateNoteInput{
		WorkspaceID: workspaceID,
		Title:       r.Title,
		Body:        r.Body,
		Pinned:      r.Pinned,
	}, nil
}

type UpdateNoteRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=255"`
	Body   string `json:"body" binding:"max=50000"`
	Pinned bool   `json:"pinned"`
}

func (r *UpdateNoteRequest) ToInput() service.UpdateNoteInput {
	return service.UpdateNoteInput{
		Title:  r.Title,
		Body:   r.Body,
		Pinned: r.Pinned,
	}
}

type NoteResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID *string   `json:"workspace_id,omitempty"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToNoteResponse(n *model.Note) *NoteResponse {
	return &NoteResponse{
		ID:          n.ID,
		WorkspaceID: formatOptionalID(n.WorkspaceID),
		Title:       n.Title,
		Body:        n.Body,
		Pinned:      n.Pinned,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func ToNoteResponses(notes []model.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		out = append(out, *ToNoteResponse(&notes[i]))
	}
	return out
}
