package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/schedule"
	"github.com/pusula-app/backend/internal/storage"
)

func buildEntry(t *testing.T, title string, createdAt time.Time) *domain.SavedSchedule {
	t.Helper()

	start, err := domain.ParseCalendarDate("2026-03-10")
	if err != nil {
		t.Fatalf("tarih çözümlenemedi: %v", err)
	}
	dailyStart, _ := domain.ParseTimeOfDay("09:00")
	dailyEnd, _ := domain.ParseTimeOfDay("12:00")

	table, err := schedule.Generate(
		[]domain.CalendarDate{start, start.AddDays(1)},
		schedule.DurationConfig{
			DailyStart:    dailyStart,
			DailyEnd:      dailyEnd,
			LessonMinutes: 45,
			BreakMinutes:  15,
		},
	)
	if err != nil {
		t.Fatalf("Generate başarısız: %v", err)
	}

	if err := table.SetContent("2026-03-10", "2026-03-10-0", "Matematik"); err != nil {
		t.Fatalf("SetContent başarısız: %v", err)
	}

	return NewSavedSchedule(title, table, createdAt)
}

func TestNewSavedSchedule_InitialState(t *testing.T) {
	createdAt := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)
	entry := buildEntry(t, "TYT Tekrar", createdAt)

	if entry.ID != "1773066600000" {
		t.Errorf("kimlik oluşturulma anının milisaniye damgası olmalı, gelen %s", entry.ID)
	}
	if entry.StartDate.Key() != "2026-03-10" || entry.EndDate.Key() != "2026-03-11" {
		t.Errorf("tarih aralığı tablodan türemeli: %s - %s", entry.StartDate.Key(), entry.EndDate.Key())
	}

	// Günde 3 slot, 2 gün
	if len(entry.SlotMap) != 6 {
		t.Fatalf("beklenen 6 slotKey, gelen %d", len(entry.SlotMap))
	}
	if len(entry.CompletedMap) != len(entry.SlotMap) {
		t.Fatalf("completedMap her slotKey için başlatılmalı: %d / %d", len(entry.CompletedMap), len(entry.SlotMap))
	}
	for key, completed := range entry.CompletedMap {
		if completed {
			t.Errorf("yeni kaydedilen programın slotu tamamlanmış olmamalı: %s", key)
		}
	}

	if entry.IsComplete() {
		t.Error("yeni kaydedilen program tamamlanmış sayılmamalı")
	}
}

func TestStore_AppendAndFind(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), storage.KeyPrograms)
	ctx := context.Background()

	first := buildEntry(t, "TYT Tekrar", time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
	second := buildEntry(t, "AYT Deneme", time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))

	if err := store.Append(ctx, first); err != nil {
		t.Fatalf("Append başarısız: %v", err)
	}
	if err := store.Append(ctx, second); err != nil {
		t.Fatalf("Append başarısız: %v", err)
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All başarısız: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("beklenen 2 girdi, gelen %d", len(all))
	}
	if all[0].Title != "TYT Tekrar" || all[1].Title != "AYT Deneme" {
		t.Errorf("girdiler ekleme sırasını korumalı: %s, %s", all[0].Title, all[1].Title)
	}

	found, err := store.Find(ctx, second.ID)
	if err != nil {
		t.Fatalf("Find başarısız: %v", err)
	}
	if found.Title != "AYT Deneme" {
		t.Errorf("Find yanlış girdi döndürdü: %s", found.Title)
	}

	// SlotMap ve CompletedMap JSON gidiş dönüşünden sağ çıkmalı
	if len(found.SlotMap) != 6 || len(found.CompletedMap) != 6 {
		t.Errorf("slotMap/completedMap korunmalı: %d / %d", len(found.SlotMap), len(found.CompletedMap))
	}
	record, ok := found.SlotMap["2026-03-10-09:00-09:45"]
	if !ok || record.Content != "Matematik" {
		t.Errorf("slot kaydı korunmalı: %+v", record)
	}
}

func TestStore_FindUnknown(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), storage.KeyPrograms)

	if _, err := store.Find(context.Background(), "yok"); !errors.Is(err, ErrNotFound) {
		t.Errorf("beklenen ErrNotFound, gelen %v", err)
	}
}

func TestStore_AllOnEmptyStore(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), storage.KeyPrograms)

	all, err := store.All(context.Background())
	if err != nil {
		t.Fatalf("boş depo hata döndürmemeli: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("boş depo boş liste döndürmeli, gelen %d girdi", len(all))
	}
}

func TestStore_Replace(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), storage.KeyPrograms)
	ctx := context.Background()

	entry := buildEntry(t, "TYT Tekrar", time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))
	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("Append başarısız: %v", err)
	}

	entry.CompletedMap["2026-03-10-09:00-09:45"] = true
	if err := store.Replace(ctx, entry.ID, entry); err != nil {
		t.Fatalf("Replace başarısız: %v", err)
	}

	found, err := store.Find(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Find başarısız: %v", err)
	}
	if !found.CompletedMap["2026-03-10-09:00-09:45"] {
		t.Error("Replace completedMap değişikliğini kalıcılaştırmalı")
	}

	if err := store.Replace(ctx, "yok", entry); !errors.Is(err, ErrNotFound) {
		t.Errorf("bilinmeyen kimlik için beklenen ErrNotFound, gelen %v", err)
	}
}

func TestStore_SearchCaseInsensitive(t *testing.T) {
	store := NewStore(storage.NewMemoryStore(), storage.KeyPrograms)
	ctx := context.Background()

	if err := store.Append(ctx, buildEntry(t, "TYT Tekrar Programı", time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Append başarısız: %v", err)
	}
	if err := store.Append(ctx, buildEntry(t, "AYT Deneme Haftası", time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC))); err != nil {
		t.Fatalf("Append başarısız: %v", err)
	}

	matches, err := store.Search(ctx, "tyt")
	if err != nil {
		t.Fatalf("Search başarısız: %v", err)
	}
	if len(matches) != 1 || matches[0].Title != "TYT Tekrar Programı" {
		t.Errorf("büyük/küçük harfe duyarsız arama eşleşmeli: %v", matches)
	}

	matches, err = store.Search(ctx, "Deneme")
	if err != nil {
		t.Fatalf("Search başarısız: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("alt dizge araması eşleşmeli: %d sonuç", len(matches))
	}

	matches, err = store.Search(ctx, "lgs")
	if err != nil {
		t.Fatalf("Search başarısız: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("eşleşmeyen sorgu boş liste döndürmeli: %d sonuç", len(matches))
	}
}
