package schedule

import (
	"github.com/pusula-app/backend/internal/domain"
)

// MaxSelectedDays, bir programın kapsayabileceği en fazla gün sayısıdır.
const MaxSelectedDays = 7

// Selection, takvimden tıklanarak oluşturulan sıralı gün kümesidir. Uç
// tarafa ekleme aradaki boşlukları otomatik doldurur, araya ekleme ise
// doldurmaz; bu asimetri kasıtlı olarak korunur.
type Selection struct {
	dates []domain.CalendarDate // her zaman artan sırada ve tekrarsız
}

func NewSelection() *Selection {
	return &Selection{dates: make([]domain.CalendarDate, 0)}
}

// NewSelectionFromDates, mevcut bir seçim durumunu yükler. Tarihler
// sıralanır ve tekrarlar atılır.
func NewSelectionFromDates(dates []domain.CalendarDate) *Selection {
	s := NewSelection()
	for _, d := range dates {
		s.insert(d)
	}
	return s
}

// Dates, seçili günlerin artan sıradaki kopyasını döndürür.
func (s *Selection) Dates() []domain.CalendarDate {
	out := make([]domain.CalendarDate, len(s.dates))
	copy(out, s.dates)
	return out
}

func (s *Selection) Len() int {
	return len(s.dates)
}

func (s *Selection) Contains(date domain.CalendarDate) bool {
	for _, d := range s.dates {
		if d.Key() == date.Key() {
			return true
		}
	}
	return false
}

// Toggle, bir günü seçer ya da seçimden çıkarır.
//
//   - Seçili bir güne tekrar tıklanırsa gün seçimden çıkarılır. Bu, bitişik
//     bir aralığı seyrek hale getirebilir; onarılmaz.
//   - Seçimin dışına (ilk günden önceye ya da son günden sonraya) tıklanırsa
//     aradaki tüm günler de dahil edilerek aralık uzatılır. Yeni aralık 7
//     günü aşacaksa ErrLimitExceeded döner ve seçim olduğu gibi kalır.
//   - Aralığın içindeki seçili olmayan bir güne tıklanırsa yalnızca o gün
//     eklenir; boşluklar doldurulmaz. Mevcut aralık zaten 7 gün veya daha
//     genişse ErrLimitExceeded döner.
func (s *Selection) Toggle(date domain.CalendarDate) error {
	if s.Contains(date) {
		s.remove(date)
		return nil
	}

	if len(s.dates) == 0 {
		s.dates = append(s.dates, date)
		return nil
	}

	first := s.dates[0]
	last := s.dates[len(s.dates)-1]

	switch {
	case date.Before(first.Time):
		span := domain.DaysBetween(date, last) + 1
		if span > MaxSelectedDays {
			return ErrLimitExceeded
		}
		s.fillRange(date, last)
	case date.After(last.Time):
		span := domain.DaysBetween(first, date) + 1
		if span > MaxSelectedDays {
			return ErrLimitExceeded
		}
		s.fillRange(first, date)
	default:
		currentSpan := domain.DaysBetween(first, last) + 1
		if currentSpan >= MaxSelectedDays {
			return ErrLimitExceeded
		}
		s.insert(date)
	}

	return nil
}

// Clear, seçimi koşulsuz olarak boşaltır.
func (s *Selection) Clear() {
	s.dates = s.dates[:0]
}

// fillRange, seçimi from ile to arasındaki (ikisi de dahil) tüm günlerle
// değiştirir.
func (s *Selection) fillRange(from, to domain.CalendarDate) {
	s.dates = s.dates[:0]
	for d := from; !d.After(to.Time); d = d.AddDays(1) {
		s.dates = append(s.dates, d)
	}
}

func (s *Selection) insert(date domain.CalendarDate) {
	if s.Contains(date) {
		return
	}
	i := 0
	for i < len(s.dates) && s.dates[i].Before(date.Time) {
		i++
	}
	s.dates = append(s.dates, domain.CalendarDate{})
	copy(s.dates[i+1:], s.dates[i:])
	s.dates[i] = date
}

func (s *Selection) remove(date domain.CalendarDate) {
	for i, d := range s.dates {
		if d.Key() == date.Key() {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			return
		}
	}
}
