package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/schedule"
	"github.com/pusula-app/backend/internal/storage"
)

// ErrNotFound, aranan kaydedilmiş program geçmişte yoksa döner.
var ErrNotFound = errors.New("kayıtlı program bulunamadı")

// Store, kaydedilmiş programların eklemeli geçmişidir. Liste anahtar-değer
// deposunda tek bir JSON belgesi olarak tutulur; her değişiklik belgenin
// tamamını okuyup yeniden yazar. Bu bileşen hiçbir kaydı silmez.
type Store struct {
	kv  storage.KeyValueStore
	key string
}

func NewStore(kv storage.KeyValueStore, key string) *Store {
	return &Store{
		kv:  kv,
		key: key,
	}
}

// NewSavedSchedule, düzenlenmiş tablodan geçmişe eklenecek girdiyi kurar.
// Girdinin kimliği oluşturulma anının milisaniye cinsinden zaman damgasıdır;
// completedMap tablodaki her slotKey için false ile başlar.
func NewSavedSchedule(title string, table *schedule.Table, now time.Time) *domain.SavedSchedule {
	slotMap := table.ToSlotMap()

	completedMap := make(map[string]bool, len(slotMap))
	for key := range slotMap {
		completedMap[key] = false
	}

	entry := &domain.SavedSchedule{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Title:        title,
		CreatedDate:  now,
		SlotMap:      slotMap,
		CompletedMap: completedMap,
	}

	if len(table.Days) > 0 {
		entry.StartDate = table.Days[0].Date
		entry.EndDate = table.Days[len(table.Days)-1].Date
	}

	return entry
}

// Append, girdiyi geçmişin sonuna ekler. Başlıklar tekrar edebilir;
// yalnızca kimliğin tekil olması beklenir.
func (s *Store) Append(ctx context.Context, entry *domain.SavedSchedule) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	entries = append(entries, *entry)
	return s.save(ctx, entries)
}

func (s *Store) All(ctx context.Context) ([]domain.SavedSchedule, error) {
	return s.load(ctx)
}

func (s *Store) Find(ctx context.Context, id string) (*domain.SavedSchedule, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}

	return nil, ErrNotFound
}

// Replace, verilen kimlikteki girdiyi yenisiyle değiştirir. Tamamlanma
// uzlaştırması completedMap'i bu yolla kalıcılaştırır.
func (s *Store) Replace(ctx context.Context, id string, updated *domain.SavedSchedule) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i := range entries {
		if entries[i].ID == id {
			entries[i] = *updated
			return s.save(ctx, entries)
		}
	}

	return ErrNotFound
}

// Search, başlığında sorguyu geçen girdileri döndürür. Eşleşme büyük/küçük
// harfe duyarsız alt dizge aramasıdır.
func (s *Store) Search(ctx context.Context, query string) ([]domain.SavedSchedule, error) {
	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	matches := make([]domain.SavedSchedule, 0)
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), query) {
			matches = append(matches, entry)
		}
	}

	return matches, nil
}

func (s *Store) load(ctx context.Context) ([]domain.SavedSchedule, error) {
	document, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return make([]domain.SavedSchedule, 0), nil
		}
		return nil, err
	}

	var entries []domain.SavedSchedule
	if err := json.Unmarshal([]byte(document), &entries); err != nil {
		return nil, fmt.Errorf("program geçmişi çözümlenemedi: %w", err)
	}

	return entries, nil
}

func (s *Store) save(ctx context.Context, entries []domain.SavedSchedule) error {
	document, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("program geçmişi serileştirilemedi: %w", err)
	}

	return s.kv.Set(ctx, s.key, string(document))
}
