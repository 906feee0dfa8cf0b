package handler

import (
	"net/http"

	"github.com/pusula-app/backend/internal/domain"
)

func (h *Handler) CreateExamResult(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	var req struct {
		ExamName string `json:"examName" validate:"required"`
		ExamDate string `json:"examDate" validate:"required"`
		Lessons  []struct {
			LessonName string `json:"lessonName" validate:"required"`
			Correct    int32  `json:"correct" validate:"min=0"`
			Wrong      int32  `json:"wrong" validate:"min=0"`
			Blank      int32  `json:"blank" validate:"min=0"`
		} `json:"lessons" validate:"required,min=1,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	examDate, err := domain.ParseCalendarDate(req.ExamDate)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	result := &domain.ExamResult{
		StudentID: student.ID,
		ExamName:  req.ExamName,
		ExamDate:  examDate,
		Lessons:   make([]domain.LessonResult, len(req.Lessons)),
	}

	for i, lesson := range req.Lessons {
		result.Lessons[i] = domain.LessonResult{
			LessonName: lesson.LessonName,
			Correct:    lesson.Correct,
			Wrong:      lesson.Wrong,
			Blank:      lesson.Blank,
		}
	}

	if err := h.repository.CreateExamResult(result); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "deneme sonucu kaydedildi", result)
}

func (h *Handler) GetExamResults(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	results, err := h.repository.GetExamResultsByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "deneme sonuçları getirildi", results)
}

// GetExamResultStats, öğrencinin tüm denemeleri üzerinden özet istatistik
// hesaplar: deneme sayısı, ortalama net, en iyi net ve son denemenin neti.
func (h *Handler) GetExamResultStats(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	results, err := h.repository.GetExamResultsByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	stats := struct {
		ExamCount  int     `json:"examCount"`
		AverageNet float64 `json:"averageNet"`
		BestNet    float64 `json:"bestNet"`
		LastNet    float64 `json:"lastNet"`
	}{}

	stats.ExamCount = len(results)
	for i, result := range results {
		net := result.TotalNet()
		stats.AverageNet += net
		if i == 0 || net > stats.BestNet {
			stats.BestNet = net
		}
		stats.LastNet = net
	}
	if stats.ExamCount > 0 {
		stats.AverageNet /= float64(stats.ExamCount)
	}

	h.successResponse(w, r, "deneme istatistikleri hesaplandı", stats)
}

func (h *Handler) GetExamResult(w http.ResponseWriter, r *http.Request) {
	result := r.Context().Value(ExamResultCtx).(*domain.ExamResult)

	h.successResponse(w, r, "deneme sonucu getirildi", result)
}

func (h *Handler) DeleteExamResult(w http.ResponseWriter, r *http.Request) {
	result := r.Context().Value(ExamResultCtx).(*domain.ExamResult)

	if err := h.repository.DeleteExamResult(result.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "deneme sonucu silindi", nil)
}
