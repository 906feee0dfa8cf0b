package utils

import (
	"strings"
	"testing"
	"unicode"
)

func TestGenerateUsernameFromTurkishName_FoldsTurkishCharacters(t *testing.T) {
	username := GenerateUsernameFromTurkishName("Çağrı Şükrü Öztürk")

	for _, r := range username {
		if r == '.' {
			continue
		}
		if r > unicode.MaxASCII {
			t.Errorf("kullanıcı adında ASCII dışı karakter kalmamalı: %q", username)
		}
		if unicode.IsUpper(r) {
			t.Errorf("kullanıcı adı tamamen küçük harf olmalı: %q", username)
		}
	}

	if !strings.HasPrefix(username, "cagri.sukru.ozturk") {
		t.Errorf("Türkçe karakterler sadeleştirilmeli: %q", username)
	}
}

func TestGenerateRandomStudent_EmailUsesDomain(t *testing.T) {
	student := GenerateRandomStudent("pusula.app")

	if !strings.HasSuffix(student.Email, "@pusula.app") {
		t.Errorf("e-posta verilen alan adını kullanmalı: %q", student.Email)
	}
	if student.FullName == "" {
		t.Error("öğrencinin adı boş olmamalı")
	}
}

func TestGenerateRandomExamResult_NetConsistency(t *testing.T) {
	result := GenerateRandomExamResult(1)

	if len(result.Lessons) == 0 {
		t.Fatal("deneme sonucunda en az bir ders olmalı")
	}

	for _, lesson := range result.Lessons {
		if lesson.Correct < 0 || lesson.Wrong < 0 || lesson.Blank < 0 {
			t.Errorf("ders sayıları negatif olmamalı: %+v", lesson)
		}
	}

	// Toplam net derslerin netlerinin toplamına eşit olmalı
	total := 0.0
	for i := range result.Lessons {
		total += result.Lessons[i].Net()
	}
	if result.TotalNet() != total {
		t.Errorf("TotalNet ders netlerinin toplamı olmalı: %f / %f", result.TotalNet(), total)
	}
}

func TestGenerateRandomSchedule_ProducesValidEntry(t *testing.T) {
	entry, err := GenerateRandomSchedule("Deneme Programı")
	if err != nil {
		t.Fatalf("GenerateRandomSchedule başarısız: %v", err)
	}

	if entry.Title != "Deneme Programı" {
		t.Errorf("başlık korunmalı: %q", entry.Title)
	}
	if len(entry.SlotMap) == 0 {
		t.Error("üretilen programda slot olmalı")
	}
	if len(entry.CompletedMap) != len(entry.SlotMap) {
		t.Errorf("completedMap her slot için başlatılmalı: %d / %d", len(entry.CompletedMap), len(entry.SlotMap))
	}
	if entry.IsComplete() {
		t.Error("yeni üretilen program tamamlanmış sayılmamalı")
	}
}
