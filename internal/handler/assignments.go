package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pusula-app/backend/internal/assignment"
	"github.com/pusula-app/backend/internal/domain"
)

func (h *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title   string `json:"title" validate:"required"`
		Lesson  string `json:"lesson"`
		DueDate string `json:"dueDate" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dueDate, err := domain.ParseCalendarDate(req.DueDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	newAssignment := domain.Assignment{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Lesson:    req.Lesson,
		DueDate:   dueDate,
		CreatedAt: time.Now(),
	}

	if err := h.assignments.Add(r.Context(), newAssignment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ödev eklendi", newAssignment)
}

func (h *Handler) GetAllAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignments.ListAll(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "ödev listesi getirildi", assignments)
}

func (h *Handler) ToggleAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	toggled, err := h.assignments.Toggle(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrNotFound):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "ödev durumu güncellendi", toggled)
}
