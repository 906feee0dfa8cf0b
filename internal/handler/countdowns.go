package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/notify"
	amqp "github.com/rabbitmq/amqp091-go"
)

func (h *Handler) CreateCountdown(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	var req struct {
		Name     string `json:"name" validate:"required"`
		ExamDate string `json:"examDate" validate:"required"`
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

	countdown := &domain.Countdown{
		StudentID: student.ID,
		Name:      req.Name,
		ExamDate:  examDate,
	}

	if err := h.repository.CreateCountdown(countdown); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "geri sayım eklendi", countdown)
}

func (h *Handler) GetCountdowns(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	countdowns, err := h.repository.GetCountdownsByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Liste, kalan gün sayısıyla birlikte döner
	now := time.Now()
	type countdownWithRemaining struct {
		*domain.Countdown
		DaysRemaining int `json:"daysRemaining"`
	}

	enriched := make([]countdownWithRemaining, 0, len(countdowns))
	for _, countdown := range countdowns {
		enriched = append(enriched, countdownWithRemaining{
			Countdown:     countdown,
			DaysRemaining: countdown.DaysRemaining(now),
		})
	}

	h.successResponse(w, r, "geri sayımlar getirildi", enriched)
}

func (h *Handler) DeleteCountdown(w http.ResponseWriter, r *http.Request) {
	countdown := r.Context().Value(CountdownCtx).(*domain.Countdown)

	if err := h.repository.DeleteCountdown(countdown.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "geri sayım silindi", nil)
}

// RemindCountdown, öğrenciye sınava kaç gün kaldığını hatırlatan e-postayı
// bildirim kuyruğuna bırakır.
func (h *Handler) RemindCountdown(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)
	countdown := r.Context().Value(CountdownCtx).(*domain.Countdown)

	daysRemaining := countdown.DaysRemaining(time.Now())
	if daysRemaining < 0 {
		h.errorResponse(w, r, "sınav tarihi geçmiş, hatırlatma gönderilemez")
		return
	}

	severity := domain.SeverityInfo
	if daysRemaining <= h.config.Reminder.UrgentDaysThreshold {
		severity = domain.SeverityWarning
	}

	notification := domain.NotificationMessage{
		Type:     "exam_reminder",
		To:       student.Email,
		Title:    countdown.Name,
		Severity: severity,
		Data: domain.ExamReminderMailData{
			FullName:      student.FullName,
			ExamName:      countdown.Name,
			ExamDate:      countdown.ExamDate.Key(),
			DaysRemaining: daysRemaining,
		},
	}

	body, err := json.Marshal(notification)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		notify.QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "hatırlatma e-postası kuyruğa eklendi", nil)
}

// SendWeeklyReport, öğrencinin deneme istatistiklerini ve tamamladığı ders
// sayısını içeren haftalık özet e-postasını kuyruğa bırakır.
func (h *Handler) SendWeeklyReport(w http.ResponseWriter, r *http.Request) {
	student := r.Context().Value(StudentInfoCtx).(*domain.Student)

	results, err := h.repository.GetExamResultsByStudentID(student.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	reportData := domain.WeeklyReportMailData{
		FullName:  student.FullName,
		ExamCount: len(results),
	}
	for i, result := range results {
		net := result.TotalNet()
		reportData.AverageNet += net
		if i == 0 || net > reportData.BestNet {
			reportData.BestNet = net
		}
	}
	if reportData.ExamCount > 0 {
		reportData.AverageNet /= float64(reportData.ExamCount)
	}

	// Tamamlanan ders sayısı kayıtlı programların işaretlerinden toplanır
	entries, err := h.history.All(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	for _, entry := range entries {
		for _, completed := range entry.CompletedMap {
			if completed {
				reportData.CompletedSlots++
			}
		}
	}

	notification := domain.NotificationMessage{
		Type:     "weekly_report",
		To:       student.Email,
		Title:    "Haftalık Özet",
		Severity: domain.SeverityInfo,
		Data:     reportData,
	}

	body, err := json.Marshal(notification)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.notifyChannel.PublishWithContext(
		ctx,
		"",
		notify.QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "haftalık özet e-postası kuyruğa eklendi", nil)
}
