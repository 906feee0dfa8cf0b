package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/history"
	"github.com/pusula-app/backend/internal/schedule"
)

var commonFirstNames = []string{
	"Ahmet", "Mehmet", "Mustafa", "Ali", "Hasan", "Hüseyin", "Emre", "Burak",
	"Ayşe", "Fatma", "Zeynep", "Elif", "Merve", "Büşra", "Esra", "Selin",
	"Can", "Deniz", "Ege", "Kerem", "Yusuf", "Ömer", "İrem", "Ceren",
}

var commonSurnames = []string{
	"Yılmaz", "Kaya", "Demir", "Çelik", "Şahin", "Yıldız", "Yıldırım", "Öztürk",
	"Aydın", "Özdemir", "Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Kara",
}

func GenerateRandomTurkishName() string {
	return commonFirstNames[rand.Intn(len(commonFirstNames))] + " " + commonSurnames[rand.Intn(len(commonSurnames))]
}

var examTypes = []domain.ExamType{
	domain.ExamTypeYKS,
	domain.ExamTypeLGS,
	domain.ExamTypeKPSS,
}

func GenerateRandomExamType() domain.ExamType {
	return examTypes[rand.Intn(len(examTypes))]
}

var asciiFold = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
	" ", ".",
)

var digits = "0123456789"

// GenerateUsernameFromTurkishName, isimdeki Türkçe karakterleri sadeleştirip
// sonuna rastgele rakamlar ekleyerek bir kullanıcı adı üretir.
func GenerateUsernameFromTurkishName(fullName string) string {
	username := asciiFold.Replace(strings.ToLower(fullName))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomStudent(emailDomainName string) *domain.Student {
	fullName := GenerateRandomTurkishName()
	username := GenerateUsernameFromTurkishName(fullName)

	return &domain.Student{
		FullName:         fullName,
		Email:            username + "@" + emailDomainName,
		ExamType:         GenerateRandomExamType(),
		TargetProfession: professions[rand.Intn(len(professions))],
	}
}

var professions = []string{
	"Doktor", "Mühendis", "Öğretmen", "Avukat", "Mimar", "Hemşire", "Pilot", "Eczacı",
}

var lessonNames = []string{
	"Matematik", "Türkçe", "Fizik", "Kimya", "Biyoloji", "Tarih", "Coğrafya", "İngilizce",
}

// GenerateRandomExamResult, toplamı soru sayısını aşmayan rastgele
// doğru/yanlış/boş dağılımlı bir deneme sonucu üretir.
func GenerateRandomExamResult(studentID int64) *domain.ExamResult {
	lessonCount := rand.Intn(4) + 2
	lessons := make([]domain.LessonResult, lessonCount)

	for i := range lessons {
		questionCount := int32(rand.Intn(31) + 10)
		correct := rand.Int31n(questionCount + 1)
		wrong := rand.Int31n(questionCount - correct + 1)

		lessons[i] = domain.LessonResult{
			LessonName: lessonNames[(rand.Intn(len(lessonNames))+i)%len(lessonNames)],
			Correct:    correct,
			Wrong:      wrong,
			Blank:      questionCount - correct - wrong,
		}
	}

	return &domain.ExamResult{
		StudentID: studentID,
		ExamName:  "Deneme " + GenerateRandomID(0, 3),
		ExamDate:  domain.NewCalendarDate(time.Now().AddDate(0, 0, -rand.Intn(60))),
		Lessons:   lessons,
	}
}

var goalTexts = []string{
	"Bu hafta 300 paragraf sorusu çöz",
	"Her gün 50 kelime ezberle",
	"Matematik konu tekrarını bitir",
	"İki deneme sınavı çöz",
	"Fizik formüllerini tekrar et",
}

func GenerateRandomGoal(studentID int64) *domain.Goal {
	return &domain.Goal{
		StudentID: studentID,
		Text:      goalTexts[rand.Intn(len(goalTexts))],
		IsDone:    rand.Intn(2) == 0,
	}
}

var noteColors = []string{"#fff3b0", "#ffd6a5", "#caffbf", "#9bf6ff", "#bdb2ff"}

func GenerateRandomNote(studentID int64) *domain.Note {
	return &domain.Note{
		ID:        GenerateRandomID(4, 4),
		StudentID: studentID,
		Text:      "Not " + GenerateRandomID(8, 4),
		Color:     noteColors[rand.Intn(len(noteColors))],
		IsPinned:  rand.Intn(4) == 0,
	}
}

func GenerateRandomCountdown(studentID int64) *domain.Countdown {
	return &domain.Countdown{
		StudentID: studentID,
		Name:      fmt.Sprintf("%s %d", GenerateRandomExamType(), time.Now().Year()+1),
		ExamDate:  domain.NewCalendarDate(time.Now().AddDate(0, 0, rand.Intn(300)+1)),
	}
}

var letters = []rune("abcdefghijklmnopqrstuvwxyz")

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var slotContents = []string{
	"Matematik konu tekrarı", "Paragraf çözümü", "Fizik soru bankası",
	"Kimya konu anlatımı", "Tarih tekrarı", "Deneme analizi", "",
}

// GenerateRandomSchedule, rastgele bir tarih aralığı ve ders süresiyle
// doldurulmuş kayıtlı bir çalışma programı üretir.
func GenerateRandomSchedule(title string) (*domain.SavedSchedule, error) {
	start := domain.NewCalendarDate(time.Now().AddDate(0, 0, rand.Intn(14)))
	dayCount := rand.Intn(schedule.MaxSelectedDays) + 1

	dates := make([]domain.CalendarDate, dayCount)
	for i := range dates {
		dates[i] = start.AddDays(i)
	}

	dailyStart, _ := domain.ParseTimeOfDay("09:00")
	dailyEnd, _ := domain.ParseTimeOfDay("18:00")

	table, err := schedule.Generate(dates, schedule.DurationConfig{
		DailyStart:    dailyStart,
		DailyEnd:      dailyEnd,
		LessonMinutes: 40 + rand.Intn(3)*10,
		BreakMinutes:  10 + rand.Intn(2)*5,
	})
	if err != nil {
		return nil, err
	}

	for _, day := range table.Days {
		for _, slot := range day.Slots {
			content := slotContents[rand.Intn(len(slotContents))]
			if content == "" {
				continue
			}
			if err := table.SetContent(day.Date.Key(), slot.ID, content); err != nil {
				return nil, err
			}
		}
	}

	return history.NewSavedSchedule(title, table, time.Now()), nil
}
