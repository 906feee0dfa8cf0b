package schedule

import (
	"strconv"

	"github.com/pusula-app/backend/internal/domain"
)

// DurationConfig, günlük çalışma penceresi ile ders ve mola sürelerini tutar.
type DurationConfig struct {
	DailyStart    domain.TimeOfDay `json:"dailyStart"`
	DailyEnd      domain.TimeOfDay `json:"dailyEnd"`
	LessonMinutes int              `json:"lessonMinutes"`
	BreakMinutes  int              `json:"breakMinutes"`
}

// Generate, seçilen günler ve süre ayarlarından ders tablosunu üretir.
// Fonksiyon saftır: aynı girdiler her zaman alan alan eşit tablolar üretir
// ve hata durumunda asla kısmi bir tablo dönmez.
//
// Her günde slotsPerDay = floor(pencere / (ders + mola)) adet slot oluşur;
// k. slotun başlangıcı dailyStart + k*(ders+mola), bitişi başlangıç + ders
// dakikasıdır. Mola süresi slotların arasında erir, görüntülenen aralığa
// dahil değildir.
func Generate(dates []domain.CalendarDate, cfg DurationConfig) (*Table, error) {
	totalMinutes := int(cfg.DailyEnd) - int(cfg.DailyStart)
	if totalMinutes <= 0 {
		return nil, ErrInvalidTimeWindow
	}

	slotStep := cfg.LessonMinutes + cfg.BreakMinutes
	if slotStep <= 0 {
		return nil, ErrWindowTooShort
	}

	slotsPerDay := totalMinutes / slotStep
	if slotsPerDay <= 0 {
		return nil, ErrWindowTooShort
	}

	table := &Table{Days: make([]DaySchedule, 0, len(dates))}

	for _, date := range dates {
		day := DaySchedule{
			Date:  date,
			Slots: make([]TimeSlot, 0, slotsPerDay),
		}

		for k := 0; k < slotsPerDay; k++ {
			start := cfg.DailyStart.AddMinutes(k * slotStep)
			day.Slots = append(day.Slots, TimeSlot{
				ID:        date.Key() + "-" + strconv.Itoa(k),
				StartTime: start,
				EndTime:   start.AddMinutes(cfg.LessonMinutes),
			})
		}

		table.Days = append(table.Days, day)
	}

	return table, nil
}
