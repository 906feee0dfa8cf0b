package storage

import (
	"context"
	"errors"
)

// Kalıcı JSON belgelerinin sabit anahtarları. Her koleksiyon tek bir belge
// olarak okunur ve yazılır; kısmi güncelleme yoktur, son yazan kazanır.
const (
	KeyPrograms    = "pusula:programs"
	KeyAssignments = "pusula:assignments"
)

// ErrKeyNotFound, anahtar deposunda kayıt olmadığında döner. Koleksiyon
// depoları bunu boş liste olarak yorumlar.
var ErrKeyNotFound = errors.New("anahtar bulunamadı")

// KeyValueStore, çekirdeğin tek kalıcılık yeteneğidir. Uygulamada Redis ile
// sağlanır; araçlar ve testler bellek içi sürümü kullanır.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
