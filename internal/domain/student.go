package domain

import "time"

type ExamType string

const (
	ExamTypeYKS  ExamType = "YKS"
	ExamTypeLGS  ExamType = "LGS"
	ExamTypeKPSS ExamType = "KPSS"
)

type Student struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"fullName"`
	Email            string    `json:"email"`
	ExamType         ExamType  `json:"examType"`
	TargetProfession string    `json:"targetProfession"`
	CreatedAt        time.Time `json:"createdAt"`
	Version          int32     `json:"-"`
}

// LessonResult, bir deneme sınavındaki tek dersin doğru/yanlış/boş sayılarıdır.
type LessonResult struct {
	ID         int64  `json:"id"`
	LessonName string `json:"lessonName"`
	Correct    int32  `json:"correct"`
	Wrong      int32  `json:"wrong"`
	Blank      int32  `json:"blank"`
}

// Net, dersin net puanını döndürür. Dört yanlış bir doğruyu götürür.
func (lr *LessonResult) Net() float64 {
	return float64(lr.Correct) - float64(lr.Wrong)/4
}

// ExamResult, kullanıcının girdiği bir deneme sınavı sonucudur.
type ExamResult struct {
	ID        int64          `json:"id"`
	StudentID int64          `json:"studentID"`
	ExamName  string         `json:"examName"`
	ExamDate  CalendarDate   `json:"examDate"`
	Lessons   []LessonResult `json:"lessons"`
	CreatedAt time.Time      `json:"createdAt"`
	Version   int32          `json:"-"`
}

// TotalNet, denemedeki tüm derslerin net toplamıdır.
func (er *ExamResult) TotalNet() float64 {
	total := 0.0
	for i := range er.Lessons {
		total += er.Lessons[i].Net()
	}
	return total
}

type Goal struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"studentID"`
	Text      string    `json:"text"`
	IsDone    bool      `json:"isDone"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// Note, pano ekranına iliştirilen bir nottur.
type Note struct {
	ID        string    `json:"id"`
	StudentID int64     `json:"studentID"`
	Text      string    `json:"text"`
	Color     string    `json:"color"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// Countdown, hedef sınav tarihine geri sayımdır.
type Countdown struct {
	ID        int64        `json:"id"`
	StudentID int64        `json:"studentID"`
	Name      string       `json:"name"`
	ExamDate  CalendarDate `json:"examDate"`
	CreatedAt time.Time    `json:"createdAt"`
	Version   int32        `json:"-"`
}

// DaysRemaining, bugünden sınav tarihine kalan gün sayısıdır. Geçmiş
// sınavlar için negatif döner.
func (c *Countdown) DaysRemaining(now time.Time) int {
	return DaysBetween(NewCalendarDate(now), c.ExamDate)
}
