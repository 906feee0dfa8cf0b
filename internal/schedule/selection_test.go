package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func date(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseCalendarDate(s)
	if err != nil {
		t.Fatalf("tarih çözümlenemedi: %v", err)
	}
	return d
}

func keys(s *Selection) []string {
	dates := s.Dates()
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Key()
	}
	return out
}

func TestToggle_EdgeExtensionFillsGap(t *testing.T) {
	s := NewSelection()
	if err := s.Toggle(date(t, "2026-03-10")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}
	if err := s.Toggle(date(t, "2026-03-11")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	// Son günün iki gün sonrasına tıklamak aradaki 12'yi de seçmeli
	if err := s.Toggle(date(t, "2026-03-13")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	want := []string{"2026-03-10", "2026-03-11", "2026-03-12", "2026-03-13"}
	got := keys(s)
	if len(got) != len(want) {
		t.Fatalf("beklenen %d gün, gelen %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gün %d: beklenen %s, gelen %s", i, want[i], got[i])
		}
	}
}

func TestToggle_BackwardExtensionFillsGap(t *testing.T) {
	s := NewSelection()
	if err := s.Toggle(date(t, "2026-03-13")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	// İlk günün öncesine tıklamak aralığı geriye doğru doldurmalı
	if err := s.Toggle(date(t, "2026-03-10")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	if s.Len() != 4 {
		t.Fatalf("beklenen 4 gün, gelen %d: %v", s.Len(), keys(s))
	}
}

func TestToggle_ExtensionOverLimitLeavesSelectionUnchanged(t *testing.T) {
	s := NewSelection()
	if err := s.Toggle(date(t, "2026-03-10")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	// 10'dan 17'ye uzatmak 8 günlük bir aralık oluştururdu
	err := s.Toggle(date(t, "2026-03-17"))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("beklenen ErrLimitExceeded, gelen %v", err)
	}

	if s.Len() != 1 || !s.Contains(date(t, "2026-03-10")) {
		t.Errorf("başarısız uzatma seçimi değiştirmemeli: %v", keys(s))
	}
}

func TestToggle_RemoveCreatesSparseSelection(t *testing.T) {
	s := NewSelection()
	for _, key := range []string{"2026-03-10", "2026-03-11", "2026-03-12"} {
		if err := s.Toggle(date(t, key)); err != nil {
			t.Fatalf("Toggle başarısız: %v", err)
		}
	}

	// Ortadaki günü kaldırmak boşluğu onarmamalı
	if err := s.Toggle(date(t, "2026-03-11")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	got := keys(s)
	if len(got) != 2 || got[0] != "2026-03-10" || got[1] != "2026-03-12" {
		t.Errorf("beklenen seyrek seçim [10, 12], gelen %v", got)
	}
}

func TestToggle_InteriorAddDoesNotFill(t *testing.T) {
	s := NewSelectionFromDates([]domain.CalendarDate{
		date(t, "2026-03-10"),
		date(t, "2026-03-14"),
	})

	// Aralığın içine tıklamak yalnızca o günü eklemeli
	if err := s.Toggle(date(t, "2026-03-12")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}

	got := keys(s)
	want := []string{"2026-03-10", "2026-03-12", "2026-03-14"}
	if len(got) != len(want) {
		t.Fatalf("beklenen %v, gelen %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gün %d: beklenen %s, gelen %s", i, want[i], got[i])
		}
	}
}

func TestToggle_InteriorAddRejectedWhenSpanAtLimit(t *testing.T) {
	// 10–16 arası 7 günlük bir aralık, 11 eksik
	s := NewSelectionFromDates([]domain.CalendarDate{
		date(t, "2026-03-10"),
		date(t, "2026-03-12"),
		date(t, "2026-03-13"),
		date(t, "2026-03-14"),
		date(t, "2026-03-15"),
		date(t, "2026-03-16"),
	})

	err := s.Toggle(date(t, "2026-03-11"))
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("beklenen ErrLimitExceeded, gelen %v", err)
	}
	if s.Len() != 6 {
		t.Errorf("başarısız ekleme seçimi değiştirmemeli: %v", keys(s))
	}
}

func TestToggle_SevenDayRangeAllowed(t *testing.T) {
	s := NewSelection()
	if err := s.Toggle(date(t, "2026-03-10")); err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}
	if err := s.Toggle(date(t, "2026-03-16")); err != nil {
		t.Fatalf("tam 7 günlük aralık kabul edilmeli: %v", err)
	}
	if s.Len() != MaxSelectedDays {
		t.Errorf("beklenen %d gün, gelen %d", MaxSelectedDays, s.Len())
	}
}

func TestNewSelectionFromDates_SortsAndDeduplicates(t *testing.T) {
	s := NewSelectionFromDates([]domain.CalendarDate{
		date(t, "2026-03-14"),
		date(t, "2026-03-10"),
		date(t, "2026-03-14"),
		date(t, "2026-03-12"),
	})

	got := keys(s)
	want := []string{"2026-03-10", "2026-03-12", "2026-03-14"}
	if len(got) != len(want) {
		t.Fatalf("beklenen %v, gelen %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("gün %d: beklenen %s, gelen %s", i, want[i], got[i])
		}
	}
}

func TestClear_EmptiesSelection(t *testing.T) {
	s := NewSelectionFromDates([]domain.CalendarDate{
		date(t, "2026-03-10"),
		date(t, "2026-03-11"),
	})

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Clear sonrası seçim boş olmalı, gelen %d gün", s.Len())
	}

	// Temizlenen seçim yeniden kullanılabilmeli
	if err := s.Toggle(domain.NewCalendarDate(time.Now())); err != nil {
		t.Errorf("temizlenmiş seçime ekleme başarısız: %v", err)
	}
}
