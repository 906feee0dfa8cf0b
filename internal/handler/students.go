package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pusula-app/backend/internal/domain"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName         string `json:"fullName" validate:"required"`
		Email            string `json:"email" validate:"required,email"`
		ExamType         string `json:"examType" validate:"required,oneof=YKS LGS KPSS"`
		TargetProfession string `json:"targetProfession"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student := &domain.Student{
		FullName:         req.FullName,
		Email:            req.Email,
		ExamType:         domain.ExamType(req.ExamType),
		TargetProfession: req.TargetProfession,
	}

	if err := h.repository.CreateStudent(student); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "students_email_key":
				h.errorResponse(w, r, "bu e-posta adresi zaten kayıtlı")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "öğrenci oluşturuldu", student)
}

func (h *Handler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.repository.GetAllStudents()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "öğrenci listesi getirildi", students)
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	h.successResponse(w, r, "öğrenci bilgileri getirildi", student)
}

func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName         *string `json:"fullName"`
		Email            *string `json:"email" validate:"omitempty,email"`
		ExamType         *string `json:"examType" validate:"omitempty,oneof=YKS LGS KPSS"`
		TargetProfession *string `json:"targetProfession"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.ExamType != nil {
		student.ExamType = domain.ExamType(*req.ExamType)
	}
	if req.TargetProfession != nil {
		student.TargetProfession = *req.TargetProfession
	}

	if err := h.repository.UpdateStudent(student); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "students_email_key":
				h.errorResponse(w, r, "bu e-posta adresi zaten kayıtlı")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "öğrenci bilgileri güncellendi", student)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	if err := h.repository.DeleteStudent(student.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "öğrenci silindi", nil)
}
