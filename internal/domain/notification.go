package domain

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// NotificationMessage, bildirim kuyruğuna yazılan mesajın zarfıdır.
// Type alanına göre worker tarafında farklı şekilde işlenir.
type NotificationMessage struct {
	Type     string   `json:"type"`
	To       string   `json:"to"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Data     any      `json:"data"`
}

type ExamReminderMailData struct {
	FullName      string `json:"fullName"`
	ExamName      string `json:"examName"`
	ExamDate      string `json:"examDate"`
	DaysRemaining int    `json:"daysRemaining"`
}

type WeeklyReportMailData struct {
	FullName       string  `json:"fullName"`
	ExamCount      int     `json:"examCount"`
	AverageNet     float64 `json:"averageNet"`
	BestNet        float64 `json:"bestNet"`
	CompletedSlots int     `json:"completedSlots"`
}
