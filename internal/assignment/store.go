package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/storage"
)

// ErrNotFound, aranan ödev listede yoksa döner.
var ErrNotFound = errors.New("ödev bulunamadı")

// Store, ödev listesinin anahtar-değer deposundaki tek JSON belgesi üzerinde
// çalışan gerçeklemesidir. Her değişiklik listenin tamamını okuyup bellekte
// günceller ve tamamını geri yazar.
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

func (s *Store) ListAll(ctx context.Context) ([]domain.Assignment, error) {
	document, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return make([]domain.Assignment, 0), nil
		}
		return nil, err
	}

	var assignments []domain.Assignment
	if err := json.Unmarshal([]byte(document), &assignments); err != nil {
		return nil, fmt.Errorf("ödev listesi çözümlenemedi: %w", err)
	}

	return assignments, nil
}

func (s *Store) ReplaceAll(ctx context.Context, assignments []domain.Assignment) error {
	document, err := json.Marshal(assignments)
	if err != nil {
		return fmt.Errorf("ödev listesi serileştirilemedi: %w", err)
	}

	return s.kv.Set(ctx, s.key, string(document))
}

// Add, verilen ödevleri listenin sonuna ekler.
func (s *Store) Add(ctx context.Context, assignments ...domain.Assignment) error {
	existing, err := s.ListAll(ctx)
	if err != nil {
		return err
	}

	existing = append(existing, assignments...)
	return s.ReplaceAll(ctx, existing)
}

// Toggle, verilen ödevin tamamlanma durumunu tersine çevirir ve güncel
// halini döndürür.
func (s *Store) Toggle(ctx context.Context, id string) (*domain.Assignment, error) {
	assignments, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range assignments {
		if assignments[i].ID == id {
			assignments[i].IsCompleted = !assignments[i].IsCompleted
			if err := s.ReplaceAll(ctx, assignments); err != nil {
				return nil, err
			}
			return &assignments[i], nil
		}
	}

	return nil, ErrNotFound
}
