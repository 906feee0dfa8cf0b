package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/history"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("istek işlendi", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog ile yazılınca okunması zorlaşıyor
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) studentInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		studentIDParam := chi.URLParam(r, "id")
		studentID, err := strconv.ParseInt(studentIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "öğrenci kimliği geçersiz")
			return
		}

		student, err := h.repository.GetStudentByID(studentID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "öğrenci bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), StudentInfoCtx, student)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) savedProgram(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		programID := chi.URLParam(r, "id")

		entry, err := h.history.Find(r.Context(), programID)
		if err != nil {
			switch {
			case errors.Is(err, history.ErrNotFound):
				h.errorResponse(w, r, "kayıtlı program bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), SavedProgramCtx, entry)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) examResult(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resultIDParam := chi.URLParam(r, "resultID")
		resultID, err := strconv.ParseInt(resultIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "deneme kimliği geçersiz")
			return
		}

		result, err := h.repository.GetExamResultByID(resultID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "deneme sonucu bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		// Deneme başka bir öğrenciye aitse yokmuş gibi davranılır
		student := r.Context().Value(StudentInfoCtx).(*domain.Student)
		if result.StudentID != student.ID {
			h.errorResponse(w, r, "deneme sonucu bulunamadı")
			return
		}

		ctx := context.WithValue(r.Context(), ExamResultCtx, result)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) goalInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		goalIDParam := chi.URLParam(r, "goalID")
		goalID, err := strconv.ParseInt(goalIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "hedef kimliği geçersiz")
			return
		}

		goal, err := h.repository.GetGoalByID(goalID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "hedef bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		student := r.Context().Value(StudentInfoCtx).(*domain.Student)
		if goal.StudentID != student.ID {
			h.errorResponse(w, r, "hedef bulunamadı")
			return
		}

		ctx := context.WithValue(r.Context(), GoalCtx, goal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) noteInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		noteID := chi.URLParam(r, "noteID")

		note, err := h.repository.GetNoteByID(noteID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "not bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		student := r.Context().Value(StudentInfoCtx).(*domain.Student)
		if note.StudentID != student.ID {
			h.errorResponse(w, r, "not bulunamadı")
			return
		}

		ctx := context.WithValue(r.Context(), NoteCtx, note)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) countdownInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		countdownIDParam := chi.URLParam(r, "countdownID")
		countdownID, err := strconv.ParseInt(countdownIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "geri sayım kimliği geçersiz")
			return
		}

		countdown, err := h.repository.GetCountdownByID(countdownID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "geri sayım bulunamadı")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		student := r.Context().Value(StudentInfoCtx).(*domain.Student)
		if countdown.StudentID != student.ID {
			h.errorResponse(w, r, "geri sayım bulunamadı")
			return
		}

		ctx := context.WithValue(r.Context(), CountdownCtx, countdown)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
