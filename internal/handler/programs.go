package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/history"
	"github.com/pusula-app/backend/internal/reconcile"
	"github.com/pusula-app/backend/internal/schedule"
)

// ToggleSelectionDate, takvimdeki bir güne tıklamanın sonucunu hesaplar.
// Uç nokta durumsuzdur: mevcut seçim istemciden gelir, yeni seçim geri döner.
func (h *Handler) ToggleSelectionDate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dates   []string `json:"dates"`
		Toggled string   `json:"toggled" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	toggled, err := domain.ParseCalendarDate(req.Toggled)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	selection := schedule.NewSelectionFromDates(dates)
	if err := selection.Toggle(toggled); err != nil {
		// Sınır aşımında seçim olduğu gibi kalır; istemci uyarıyı gösterir
		h.errorResponse(w, r, err.Error())
		return
	}

	keys := make([]string, 0, selection.Len())
	for _, d := range selection.Dates() {
		keys = append(keys, d.Key())
	}

	h.successResponse(w, r, "seçim güncellendi", keys)
}

func (h *Handler) GenerateProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dates         []string `json:"dates" validate:"required,min=1,max=7"`
		DailyStart    string   `json:"dailyStart" validate:"required"`
		DailyEnd      string   `json:"dailyEnd" validate:"required"`
		LessonMinutes int      `json:"lessonMinutes" validate:"required,min=1"`
		BreakMinutes  int      `json:"breakMinutes" validate:"min=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	dailyStart, err := domain.ParseTimeOfDay(req.DailyStart)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	dailyEnd, err := domain.ParseTimeOfDay(req.DailyEnd)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	// Seçim üzerinden geçirmek tarihleri sıralar ve tekrarları ayıklar
	selection := schedule.NewSelectionFromDates(dates)

	table, err := schedule.Generate(selection.Dates(), schedule.DurationConfig{
		DailyStart:    dailyStart,
		DailyEnd:      dailyEnd,
		LessonMinutes: req.LessonMinutes,
		BreakMinutes:  req.BreakMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidTimeWindow), errors.Is(err, schedule.ErrWindowTooShort):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "program oluşturuldu", table)
}

func (h *Handler) SaveProgram(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title" validate:"required"`
		Days  []struct {
			Date  string `json:"date" validate:"required"`
			Slots []struct {
				ID        string `json:"id" validate:"required"`
				StartTime string `json:"startTime" validate:"required"`
				EndTime   string `json:"endTime" validate:"required"`
				Content   string `json:"content"`
			} `json:"slots" validate:"required,dive"`
		} `json:"days" validate:"required,min=1,max=7,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// İstemcinin düzenlediği tabloyu yeniden kur
	table := &schedule.Table{Days: make([]schedule.DaySchedule, 0, len(req.Days))}
	for _, reqDay := range req.Days {
		date, err := domain.ParseCalendarDate(reqDay.Date)
		if err != nil {
			h.badRequest(w, r, err)
			return
		}

		day := schedule.DaySchedule{
			Date:  date,
			Slots: make([]schedule.TimeSlot, 0, len(reqDay.Slots)),
		}

		for _, reqSlot := range reqDay.Slots {
			startTime, err := domain.ParseTimeOfDay(reqSlot.StartTime)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}
			endTime, err := domain.ParseTimeOfDay(reqSlot.EndTime)
			if err != nil {
				h.badRequest(w, r, err)
				return
			}

			day.Slots = append(day.Slots, schedule.TimeSlot{
				ID:        reqSlot.ID,
				StartTime: startTime,
				EndTime:   endTime,
				Content:   reqSlot.Content,
			})
		}

		table.Days = append(table.Days, day)
	}

	entry := history.NewSavedSchedule(req.Title, table, time.Now())

	if err := h.history.Append(r.Context(), entry); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// İçeriği dolu slotlar ödev listesine aktarılır
	exported := table.ToAssignments()
	if len(exported) > 0 {
		if err := h.assignments.Add(r.Context(), exported...); err != nil {
			// Program kaydedildi; yalnızca aktarım başarısız oldu
			h.logInternalServerError(r, err)
			h.sink.Notify("Program kaydedildi ancak ödev listesine aktarılamadı.", domain.SeverityWarning, "Pusula")
			h.writeJSON(w, r, http.StatusOK, Response{
				Success: false,
				Message: "program kaydedildi ancak ödev listesine aktarılamadı",
				Data:    entry,
			})
			return
		}
	}

	h.sink.Notify("Programın kaydedildi. Kolay gelsin!", domain.SeverityInfo, "Pusula")
	h.successResponse(w, r, "program kaydedildi", entry)
}

func (h *Handler) GetAllPrograms(w http.ResponseWriter, r *http.Request) {
	entries, err := h.history.All(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "kayıtlı programlar getirildi", entries)
}

func (h *Handler) GetProgram(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(SavedProgramCtx).(*domain.SavedSchedule)

	h.successResponse(w, r, "kayıtlı program getirildi", entry)
}

func (h *Handler) SearchPrograms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.errorResponse(w, r, "arama sorgusu boş olamaz")
		return
	}

	matches, err := h.history.Search(r.Context(), query)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "arama tamamlandı", matches)
}

func (h *Handler) ToggleProgramSlot(w http.ResponseWriter, r *http.Request) {
	entry := r.Context().Value(SavedProgramCtx).(*domain.SavedSchedule)

	var req struct {
		SlotKey string `json:"slotKey" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	updated, err := h.reconciler.ToggleSlot(r.Context(), entry.ID, req.SlotKey)
	if err != nil {
		var syncErr *reconcile.SyncError
		switch {
		case errors.Is(err, reconcile.ErrSlotNotFound):
			h.errorResponse(w, r, err.Error())
		case errors.Is(err, history.ErrNotFound):
			h.errorResponse(w, r, "kayıtlı program bulunamadı")
		case errors.As(err, &syncErr):
			// Slot durumu kaydedildi; yalnızca ödev eşitlemesi başarısız oldu
			h.logInternalServerError(r, err)
			h.sink.Notify("Ders işaretlendi ancak ödev listesi güncellenemedi.", domain.SeverityWarning, "Pusula")
			h.writeJSON(w, r, http.StatusOK, Response{
				Success: false,
				Message: "ders işaretlendi ancak ödev listesi güncellenemedi",
				Data:    updated,
			})
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	message := "ders durumu güncellendi"
	if updated.IsComplete() {
		message = "tebrikler, programdaki tüm dersler tamamlandı"
	}

	h.successResponse(w, r, message, updated)
}

func parseDates(values []string) ([]domain.CalendarDate, error) {
	dates := make([]domain.CalendarDate, 0, len(values))
	for _, value := range values {
		date, err := domain.ParseCalendarDate(value)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}
