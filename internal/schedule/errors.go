package schedule

import "errors"

var (
	// ErrLimitExceeded, seçim 7 günlük sınırı aşacağında döner; seçim değişmez.
	ErrLimitExceeded = errors.New("en fazla 7 gün seçebilirsiniz")

	// ErrInvalidTimeWindow, günlük bitiş saati başlangıç saatinden sonra değilse döner.
	ErrInvalidTimeWindow = errors.New("günlük bitiş saati başlangıç saatinden sonra olmalıdır")

	// ErrWindowTooShort, günlük zaman aralığına tek bir ders bile sığmıyorsa döner.
	ErrWindowTooShort = errors.New("seçilen zaman aralığına hiç ders sığmıyor")

	// ErrSlotNotFound, verilen gün veya slot tabloda yoksa döner.
	ErrSlotNotFound = errors.New("ders saati bulunamadı")
)
