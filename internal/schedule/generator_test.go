package schedule

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pusula-app/backend/internal/domain"
)

func durationConfig(t *testing.T, start, end string, lesson, brk int) DurationConfig {
	t.Helper()
	dailyStart, err := domain.ParseTimeOfDay(start)
	if err != nil {
		t.Fatalf("saat çözümlenemedi: %v", err)
	}
	dailyEnd, err := domain.ParseTimeOfDay(end)
	if err != nil {
		t.Fatalf("saat çözümlenemedi: %v", err)
	}
	return DurationConfig{
		DailyStart:    dailyStart,
		DailyEnd:      dailyEnd,
		LessonMinutes: lesson,
		BreakMinutes:  brk,
	}
}

func TestGenerate_SlotLayout(t *testing.T) {
	dates := []domain.CalendarDate{date(t, "2026-03-10"), date(t, "2026-03-11")}
	cfg := durationConfig(t, "08:00", "18:00", 45, 15)

	table, err := Generate(dates, cfg)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}

	if len(table.Days) != 2 {
		t.Fatalf("beklenen 2 gün, gelen %d", len(table.Days))
	}

	// 600 dakikalık pencere / 60 dakikalık adım = günde 10 slot
	day := table.Days[0]
	if len(day.Slots) != 10 {
		t.Fatalf("beklenen 10 slot, gelen %d", len(day.Slots))
	}

	first := day.Slots[0]
	if first.ID != "2026-03-10-0" {
		t.Errorf("ilk slot kimliği: beklenen 2026-03-10-0, gelen %s", first.ID)
	}
	if first.TimeRange() != "08:00-08:45" {
		t.Errorf("ilk slot aralığı: beklenen 08:00-08:45, gelen %s", first.TimeRange())
	}

	last := day.Slots[9]
	if last.TimeRange() != "17:00-17:45" {
		t.Errorf("son slot aralığı: beklenen 17:00-17:45, gelen %s", last.TimeRange())
	}
}

func TestGenerate_PartialSlotDropped(t *testing.T) {
	// 100 dakikalık pencereye 60 dakikalık adımdan yalnızca bir tane sığar
	cfg := durationConfig(t, "09:00", "10:40", 45, 15)

	table, err := Generate([]domain.CalendarDate{date(t, "2026-03-10")}, cfg)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}

	if len(table.Days[0].Slots) != 1 {
		t.Errorf("artan süre slot üretmemeli: %d slot", len(table.Days[0].Slots))
	}
}

func TestGenerate_InvalidTimeWindow(t *testing.T) {
	cfg := durationConfig(t, "18:00", "08:00", 45, 15)

	if _, err := Generate([]domain.CalendarDate{date(t, "2026-03-10")}, cfg); !errors.Is(err, ErrInvalidTimeWindow) {
		t.Errorf("beklenen ErrInvalidTimeWindow, gelen %v", err)
	}
}

func TestGenerate_WindowTooShort(t *testing.T) {
	// Pencereye tek bir slot bile sığmıyor
	cfg := durationConfig(t, "09:00", "09:30", 45, 15)

	if _, err := Generate([]domain.CalendarDate{date(t, "2026-03-10")}, cfg); !errors.Is(err, ErrWindowTooShort) {
		t.Errorf("beklenen ErrWindowTooShort, gelen %v", err)
	}
}

func TestGenerate_ZeroStepRejected(t *testing.T) {
	cfg := durationConfig(t, "09:00", "18:00", 0, 0)

	if _, err := Generate([]domain.CalendarDate{date(t, "2026-03-10")}, cfg); !errors.Is(err, ErrWindowTooShort) {
		t.Errorf("beklenen ErrWindowTooShort, gelen %v", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	dates := []domain.CalendarDate{date(t, "2026-03-10"), date(t, "2026-03-11")}
	cfg := durationConfig(t, "08:00", "18:00", 45, 15)

	first, err := Generate(dates, cfg)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}
	second, err := Generate(dates, cfg)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("aynı girdiler alan alan eşit tablolar üretmeli")
	}
}
