package assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/storage"
)

func newTestStore() *Store {
	return NewStore(storage.NewMemoryStore(), storage.KeyAssignments)
}

func sampleAssignment(id, title string) domain.Assignment {
	return domain.Assignment{
		ID:        id,
		Title:     title,
		DueDate:   domain.NewCalendarDate(time.Now()),
		CreatedAt: time.Now(),
	}
}

func TestListAll_EmptyStore(t *testing.T) {
	store := newTestStore()

	all, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("boş depo hata döndürmemeli: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("boş depo boş liste döndürmeli, gelen %d ödev", len(all))
	}
}

func TestAdd_AppendsInOrder(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	if err := store.Add(ctx, sampleAssignment("a", "Matematik"), sampleAssignment("b", "Fizik")); err != nil {
		t.Fatalf("Add başarısız: %v", err)
	}
	if err := store.Add(ctx, sampleAssignment("c", "Kimya")); err != nil {
		t.Fatalf("Add başarısız: %v", err)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll başarısız: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("beklenen 3 ödev, gelen %d", len(all))
	}
	if all[0].ID != "a" || all[1].ID != "b" || all[2].ID != "c" {
		t.Errorf("ödevler ekleme sırasını korumalı: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestToggle_FlipsCompletion(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	if err := store.Add(ctx, sampleAssignment("a", "Matematik")); err != nil {
		t.Fatalf("Add başarısız: %v", err)
	}

	toggled, err := store.Toggle(ctx, "a")
	if err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}
	if !toggled.IsCompleted {
		t.Error("ilk Toggle ödevi tamamlanmış yapmalı")
	}

	toggled, err = store.Toggle(ctx, "a")
	if err != nil {
		t.Fatalf("Toggle başarısız: %v", err)
	}
	if toggled.IsCompleted {
		t.Error("ikinci Toggle ödevi geri almalı")
	}

	// Değişiklik kalıcılaşmış olmalı
	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll başarısız: %v", err)
	}
	if all[0].IsCompleted {
		t.Error("Toggle sonucu depoya yazılmalı")
	}
}

func TestToggle_UnknownAssignment(t *testing.T) {
	store := newTestStore()

	if _, err := store.Toggle(context.Background(), "yok"); !errors.Is(err, ErrNotFound) {
		t.Errorf("beklenen ErrNotFound, gelen %v", err)
	}
}
