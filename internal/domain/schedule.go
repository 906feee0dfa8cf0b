package domain

import "time"

// SlotRecord, kaydedilmiş bir programdaki tek bir dersin dondurulmuş halidir.
// Anahtarı "tarih-başlangıç-bitiş" biçimindeki slotKey'dir.
type SlotRecord struct {
	Date      CalendarDate `json:"date"`
	StartTime TimeOfDay    `json:"startTime"`
	EndTime   TimeOfDay    `json:"endTime"`
	Content   string       `json:"content"`
}

// SavedSchedule, kullanıcının isim vererek kaydettiği bir çalışma programıdır.
// Oluşturulduktan sonra yalnızca completedMap alanı değişir.
type SavedSchedule struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	CreatedDate  time.Time             `json:"createdDate"`
	StartDate    CalendarDate          `json:"startDate"`
	EndDate      CalendarDate          `json:"endDate"`
	SlotMap      map[string]SlotRecord `json:"slotMap"`
	CompletedMap map[string]bool       `json:"completedMap"`
}

// IsComplete, slotMap'teki her anahtarın completedMap'te işaretli olup
// olmadığını her seferinde baştan tarar. Sayaç tutulmaz; slotMap bağımsız
// olarak değişebileceği için tam tarama şarttır.
func (s *SavedSchedule) IsComplete() bool {
	if len(s.SlotMap) == 0 {
		return false
	}
	for key := range s.SlotMap {
		if !s.CompletedMap[key] {
			return false
		}
	}
	return true
}

// Dates, slotMap'te geçen tarihlerin kümesini YYYY-MM-DD anahtarlarıyla döndürür.
func (s *SavedSchedule) Dates() map[string]bool {
	dates := make(map[string]bool)
	for _, record := range s.SlotMap {
		dates[record.Date.Key()] = true
	}
	return dates
}

// Assignment, ödev listesindeki bir kayıttır. isFromProgram işaretli olanlar
// kaydedilmiş bir programdan dışa aktarılmıştır ve tamamlanma durumları
// program tamamlanma uzlaştırması tarafından güncellenir.
type Assignment struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Lesson        string       `json:"lesson"`
	DueDate       CalendarDate `json:"dueDate"`
	IsCompleted   bool         `json:"isCompleted"`
	IsFromProgram bool         `json:"isFromProgram"`
	CreatedAt     time.Time    `json:"createdAt"`
}
