package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/pusula-app/backend/internal/domain"
)

func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	var req struct {
		Text     string `json:"text" validate:"required"`
		Color    string `json:"color" validate:"omitempty,hexcolor"`
		IsPinned bool   `json:"isPinned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Color == "" {
		req.Color = "#fff3b0" // pano notlarının varsayılan rengi
	}

	note := &domain.Note{
		ID:        uuid.NewString(),
		StudentID: student.ID,
		Text:      req.Text,
		Color:     req.Color,
		IsPinned:  req.IsPinned,
	}

	if err := h.repository.CreateNote(note); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "not eklendi", note)
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	notes, err := h.repository.GetNotesByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "notlar getirildi", notes)
}

func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     *string `json:"text"`
		Color    *string `json:"color" validate:"omitempty,hexcolor"`
		IsPinned *bool   `json:"isPinned"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	note := r.Context().Value(NoteCtx).(*domain.Note)

	if req.Text != nil {
		note.Text = *req.Text
	}
	if req.Color != nil {
		note.Color = *req.Color
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}

	if err := h.repository.UpdateNote(note); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "not güncellendi", note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	note := r.Context().Value(NoteCtx).(*domain.Note)

	if err := h.repository.DeleteNote(note.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "not silindi", nil)
}
