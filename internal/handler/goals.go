package handler

import (
	"net/http"

	"github.com/pusula-app/backend/internal/domain"
)

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	var req struct {
		Text string `json:"text" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	goal := &domain.Goal{
		StudentID: student.ID,
		Text:      req.Text,
	}

	if err := h.repository.CreateGoal(goal); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "hedef eklendi", goal)
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	goals, err := h.repository.GetGoalsByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "hedefler getirildi", goals)
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text   *string `json:"text"`
		IsDone *bool   `json:"isDone"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	goal := r.Context().Value(GoalCtx).(*domain.Goal)

	if req.Text != nil {
		goal.Text = *req.Text
	}
	if req.IsDone != nil {
		goal.IsDone = *req.IsDone
	}

	if err := h.repository.UpdateGoal(goal); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "hedef güncellendi", goal)
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	goal := r.Context().Value(GoalCtx).(*domain.Goal)

	if err := h.repository.DeleteGoal(goal.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "hedef silindi", nil)
}
