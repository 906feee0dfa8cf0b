package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCalendarDate_KeyAndArithmetic(t *testing.T) {
	d, err := ParseCalendarDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseCalendarDate başarısız: %v", err)
	}

	if d.Key() != "2026-03-10" {
		t.Errorf("Key: beklenen 2026-03-10, gelen %s", d.Key())
	}

	next := d.AddDays(5)
	if next.Key() != "2026-03-15" {
		t.Errorf("AddDays: beklenen 2026-03-15, gelen %s", next.Key())
	}

	if got := DaysBetween(d, next); got != 5 {
		t.Errorf("DaysBetween: beklenen 5, gelen %d", got)
	}
	if got := DaysBetween(next, d); got != -5 {
		t.Errorf("DaysBetween ters yönde negatif dönmeli, gelen %d", got)
	}
}

func TestNewCalendarDate_DropsTimeOfDay(t *testing.T) {
	morning := NewCalendarDate(time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC))
	evening := NewCalendarDate(time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC))

	if morning.Key() != evening.Key() {
		t.Errorf("aynı günün farklı saatleri aynı anahtara düşmeli: %s / %s", morning.Key(), evening.Key())
	}
}

func TestParseCalendarDate_Invalid(t *testing.T) {
	for _, input := range []string{"10.03.2026", "2026-3-1", "bugün", ""} {
		if _, err := ParseCalendarDate(input); err == nil {
			t.Errorf("geçersiz girdi kabul edilmemeli: %q", input)
		}
	}
}

func TestCalendarDate_JSONRoundTrip(t *testing.T) {
	d, err := ParseCalendarDate("2026-03-10")
	if err != nil {
		t.Fatalf("ParseCalendarDate başarısız: %v", err)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal başarısız: %v", err)
	}
	if string(data) != `"2026-03-10"` {
		t.Errorf("tarih JSON'a YYYY-MM-DD olarak yazılmalı, gelen %s", data)
	}

	var parsed CalendarDate
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal başarısız: %v", err)
	}
	if parsed.Key() != d.Key() {
		t.Errorf("gidiş dönüş tarihi korumalı: %s", parsed.Key())
	}
}

func TestTimeOfDay_StringPadsToTwoDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"08:00", "08:00"},
		{"09:05", "09:05"},
		{"23:59", "23:59"},
		{"00:00", "00:00"},
	}

	for _, c := range cases {
		parsed, err := ParseTimeOfDay(c.input)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) başarısız: %v", c.input, err)
		}
		if parsed.String() != c.want {
			t.Errorf("String: beklenen %s, gelen %s", c.want, parsed.String())
		}
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start, err := ParseTimeOfDay("08:45")
	if err != nil {
		t.Fatalf("ParseTimeOfDay başarısız: %v", err)
	}

	if got := start.AddMinutes(75).String(); got != "10:00" {
		t.Errorf("AddMinutes: beklenen 10:00, gelen %s", got)
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	for _, input := range []string{"25:00", "sabah", "8.30", ""} {
		if _, err := ParseTimeOfDay(input); err == nil {
			t.Errorf("geçersiz girdi kabul edilmemeli: %q", input)
		}
	}
}
