package schedule

import (
	"errors"
	"testing"

	"github.com/pusula-app/backend/internal/domain"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := Generate(
		[]domain.CalendarDate{date(t, "2026-03-10"), date(t, "2026-03-11")},
		durationConfig(t, "09:00", "12:00", 45, 15),
	)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}
	return table
}

func TestSetContent_UpdatesSlot(t *testing.T) {
	table := sampleTable(t)

	if err := table.SetContent("2026-03-10", "2026-03-10-1", "Matematik tekrar"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}

	if got := table.Days[0].Slots[1].Content; got != "Matematik tekrar" {
		t.Errorf("beklenen içerik yazılmadı: %q", got)
	}
}

func TestSetContent_EmptyTextClears(t *testing.T) {
	table := sampleTable(t)

	if err := table.SetContent("2026-03-10", "2026-03-10-0", "Fizik"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}
	if err := table.SetContent("2026-03-10", "2026-03-10-0", ""); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}

	if got := table.Days[0].Slots[0].Content; got != "" {
		t.Errorf("boş metin içeriği temizlemeli, gelen %q", got)
	}
}

func TestSetContent_UnknownSlot(t *testing.T) {
	table := sampleTable(t)

	if err := table.SetContent("2026-03-10", "2026-03-10-99", "x"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("beklenen ErrSlotNotFound, gelen %v", err)
	}
	if err := table.SetContent("2026-03-15", "2026-03-15-0", "x"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("tabloda olmayan gün için beklenen ErrSlotNotFound, gelen %v", err)
	}
}

func TestToAssignments_SkipsEmptySlots(t *testing.T) {
	table := sampleTable(t)

	if err := table.SetContent("2026-03-10", "2026-03-10-0", "Paragraf çözümü"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}
	if err := table.SetContent("2026-03-11", "2026-03-11-2", "Deneme analizi"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}

	assignments := table.ToAssignments()
	if len(assignments) != 2 {
		t.Fatalf("beklenen 2 ödev, gelen %d", len(assignments))
	}

	for _, a := range assignments {
		if a.ID == "" {
			t.Error("ödev kimliği boş olmamalı")
		}
		if !a.IsFromProgram {
			t.Error("programdan aktarılan ödev IsFromProgram ile işaretlenmeli")
		}
		if a.IsCompleted {
			t.Error("yeni aktarılan ödev tamamlanmamış olmalı")
		}
	}

	if assignments[0].Title != "Paragraf çözümü" || assignments[0].DueDate.Key() != "2026-03-10" {
		t.Errorf("ilk ödev beklenen slottan gelmedi: %+v", assignments[0])
	}
}

func TestToSlotMap_Keys(t *testing.T) {
	table := sampleTable(t)

	if err := table.SetContent("2026-03-10", "2026-03-10-0", "Kimya"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}

	slotMap := table.ToSlotMap()

	// 180 dakikalık pencere / 60 dakikalık adım = günde 3 slot, 2 gün
	if len(slotMap) != 6 {
		t.Fatalf("beklenen 6 slotKey, gelen %d", len(slotMap))
	}

	record, ok := slotMap["2026-03-10-09:00-09:45"]
	if !ok {
		t.Fatal("beklenen slotKey bulunamadı: 2026-03-10-09:00-09:45")
	}
	if record.Content != "Kimya" {
		t.Errorf("slot kaydının içeriği korunmalı, gelen %q", record.Content)
	}
	if record.Date.Key() != "2026-03-10" {
		t.Errorf("slot kaydının tarihi korunmalı, gelen %s", record.Date.Key())
	}
}
