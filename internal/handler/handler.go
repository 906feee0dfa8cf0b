package handler

import (
	"math/rand"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/tr"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	tr_translations "github.com/go-playground/validator/v10/translations/tr"
	"github.com/pusula-app/backend/internal/assignment"
	"github.com/pusula-app/backend/internal/assistant"
	"github.com/pusula-app/backend/internal/config"
	"github.com/pusula-app/backend/internal/history"
	"github.com/pusula-app/backend/internal/notify"
	"github.com/pusula-app/backend/internal/reconcile"
	"github.com/pusula-app/backend/internal/repository"
	"github.com/pusula-app/backend/internal/storage"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	history       *history.Store
	assignments   *assignment.Store
	reconciler    *reconcile.Reconciler
	assistant     *assistant.Assistant
	sink          notify.Sink
	notifyChannel *amqp.Channel

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, kv storage.KeyValueStore, notifyCh *amqp.Channel, sink notify.Sink) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	tr := tr.New()
	uni := ut.New(tr, tr)
	trans, _ := uni.GetTranslator("tr")
	if err := tr_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	historyStore := history.NewStore(kv, storage.KeyPrograms)
	assignmentStore := assignment.NewStore(kv, storage.KeyAssignments)

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		history:       historyStore,
		assignments:   assignmentStore,
		reconciler:    reconcile.New(historyStore, assignmentStore),
		assistant:     assistant.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
		sink:          sink,
		notifyChannel: notifyCh,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Çalışma programı oluşturma ve geçmişi
	h.Mux.Route("/programs", func(r chi.Router) {
		r.Post("/selection", h.ToggleSelectionDate)
		r.Post("/generate", h.GenerateProgram)
		r.Post("/", h.SaveProgram)
		r.Get("/", h.GetAllPrograms)
		r.Get("/search", h.SearchPrograms)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.savedProgram)
			r.Get("/", h.GetProgram)
			r.Post("/slots/toggle", h.ToggleProgramSlot)
		})
	})

	// Ödev listesi
	h.Mux.Route("/assignments", func(r chi.Router) {
		r.Post("/", h.CreateAssignment)
		r.Get("/", h.GetAllAssignments)
		r.Post("/{id}/toggle", h.ToggleAssignment)
	})

	// Öğrenci profili ve öğrenciye bağlı kayıtlar
	h.Mux.Route("/students", func(r chi.Router) {
		r.Post("/", h.CreateStudent)
		r.Get("/", h.GetAllStudents)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.studentInfo)
			r.Get("/", h.GetStudent)
			r.Patch("/", h.UpdateStudent)
			r.Delete("/", h.DeleteStudent)

			r.Route("/exam-results", func(r chi.Router) {
				r.Post("/", h.CreateExamResult)
				r.Get("/", h.GetExamResults)
				r.Get("/stats", h.GetExamResultStats)
				r.Route("/{resultID}", func(r chi.Router) {
					r.Use(h.examResult)
					r.Get("/", h.GetExamResult)
					r.Delete("/", h.DeleteExamResult)
				})
			})

			r.Route("/goals", func(r chi.Router) {
				r.Post("/", h.CreateGoal)
				r.Get("/", h.GetGoals)
				r.Route("/{goalID}", func(r chi.Router) {
					r.Use(h.goalInfo)
					r.Patch("/", h.UpdateGoal)
					r.Delete("/", h.DeleteGoal)
				})
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", h.CreateNote)
				r.Get("/", h.GetNotes)
				r.Route("/{noteID}", func(r chi.Router) {
					r.Use(h.noteInfo)
					r.Patch("/", h.UpdateNote)
					r.Delete("/", h.DeleteNote)
				})
			})

			r.Route("/countdowns", func(r chi.Router) {
				r.Post("/", h.CreateCountdown)
				r.Get("/", h.GetCountdowns)
				r.Route("/{countdownID}", func(r chi.Router) {
					r.Use(h.countdownInfo)
					r.Delete("/", h.DeleteCountdown)
					r.Post("/remind", h.RemindCountdown)
				})
			})

			r.Post("/weekly-report", h.SendWeeklyReport)
		})
	})

	// Hazır yanıtlı asistan
	h.Mux.Post("/assistant/messages", h.AssistantMessage)
}
