package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type NoteHandler struct {
	noteService service.NoteService
}

func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.Create(ctx, profile.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrFreeTierLimit) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "limit_reached"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	noteID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	note, err := h.noteService.Get(ctx, profile.ID, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get note"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	noteID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.Update(ctx, profile.ID, noteID, req.ToInput())
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

func (h *NoteHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	noteID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	if err := h.noteService.Delete(ctx, profile.ID, noteID); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *NoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	limit, offset := pagination(c)
	notes, err := h.noteService.List(ctx, profile.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": dto.ToNoteResponses(notes)})
}
