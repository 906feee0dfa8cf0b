package handler

type ContextKey string

var (
	StudentInfoCtx  ContextKey = "studentInfo"
	SavedProgramCtx ContextKey = "savedProgram"
	ExamResultCtx   ContextKey = "examResult"
	GoalCtx         ContextKey = "goal"
	NoteCtx         ContextKey = "note"
	CountdownCtx    ContextKey = "countdown"
)
