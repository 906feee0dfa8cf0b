package schedule

import (
	"time"

	"github.com/google/uuid"
	"github.com/pusula-app/backend/internal/domain"
)

// TimeSlot, bir gün içindeki tek bir ders aralığıdır. ID alanı gün ve slot
// sırasından türetilir, içerik düzenlense de değişmez.
type TimeSlot struct {
	ID          string           `json:"id"`
	StartTime   domain.TimeOfDay `json:"startTime"`
	EndTime     domain.TimeOfDay `json:"endTime"`
	Content     string           `json:"content"`
	IsCompleted bool             `json:"isCompleted"`
}

// TimeRange, slotKey'lerde kullanılan "HH:MM-HH:MM" biçimidir.
func (ts *TimeSlot) TimeRange() string {
	return ts.StartTime.String() + "-" + ts.EndTime.String()
}

type DaySchedule struct {
	Date  domain.CalendarDate `json:"date"`
	Slots []TimeSlot          `json:"slots"`
}

// Table, kaydedilmeden önce bellekte düzenlenen gün × slot tablosudur.
// Günler tarihe göre artan sıradadır.
type Table struct {
	Days []DaySchedule `json:"days"`
}

// SetContent, bir slotun içeriğini değiştirir. Boş metin içeriği temizler;
// içerik üzerinde başka bir doğrulama yapılmaz. Kalıcılık çağıranın işidir.
func (t *Table) SetContent(dateKey, slotID, text string) error {
	for i := range t.Days {
		if t.Days[i].Date.Key() != dateKey {
			continue
		}
		for j := range t.Days[i].Slots {
			if t.Days[i].Slots[j].ID == slotID {
				t.Days[i].Slots[j].Content = text
				return nil
			}
		}
	}
	return ErrSlotNotFound
}

// ToAssignments, içeriği dolu her slotu ödev listesine aktarılacak bir
// kayda dönüştürür. Boş slotlar atlanır.
func (t *Table) ToAssignments() []domain.Assignment {
	assignments := make([]domain.Assignment, 0)
	for _, day := range t.Days {
		for _, slot := range day.Slots {
			if slot.Content == "" {
				continue
			}
			assignments = append(assignments, domain.Assignment{
				ID:            uuid.NewString(),
				Title:         slot.Content,
				DueDate:       day.Date,
				IsFromProgram: true,
				CreatedAt:     time.Now(),
			})
		}
	}
	return assignments
}

// ToSlotMap, kaydedilmiş programların kullandığı slotKey → kayıt eşlemesini
// üretir. Anahtar "tarih-HH:MM-HH:MM" biçimindedir ve kayıt içinde tekildir.
func (t *Table) ToSlotMap() map[string]domain.SlotRecord {
	slotMap := make(map[string]domain.SlotRecord)
	for _, day := range t.Days {
		for _, slot := range day.Slots {
			key := day.Date.Key() + "-" + slot.TimeRange()
			slotMap[key] = domain.SlotRecord{
				Date:      day.Date,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Content:   slot.Content,
			}
		}
	}
	return slotMap
}
