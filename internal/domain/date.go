package domain

import (
	"fmt"
	"strings"
	"time"
)

const CalendarDateLayout = "2006-01-02"

// CalendarDate, günün saatinden arındırılmış bir takvim günüdür. Eşitlik ve
// map anahtarı olarak kullanım yalnızca yıl/ay/gün üzerinden yapılır.
type CalendarDate struct {
	time.Time
}

func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("geçersiz tarih biçimi: %q", s)
	}
	return NewCalendarDate(t), nil
}

// Key, tarihin map anahtarı olarak kullanılan YYYY-MM-DD biçimidir.
func (d CalendarDate) Key() string {
	return d.Format(CalendarDateLayout)
}

func (d CalendarDate) AddDays(n int) CalendarDate {
	return NewCalendarDate(d.AddDate(0, 0, n))
}

// DaysBetween, a'dan b'ye kaç gün geçtiğini döndürür (b < a ise negatif).
func DaysBetween(a, b CalendarDate) int {
	return int(b.Sub(a.Time).Hours() / 24)
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Key() + `"`), nil
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay, gece yarısından itibaren geçen dakika sayısıdır. Tüm zaman
// aritmetiği tam sayı dakika üzerinden yapılır.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("geçersiz saat biçimi: %q", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// String, saati iki haneli olarak HH:MM biçiminde döndürür.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	return t + TimeOfDay(m)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
