package seed

import (
	"context"
	"log/slog"
	"time"

	"github.com/pusula-app/backend/internal/assignment"
	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/history"
	"github.com/pusula-app/backend/internal/repository"
	"github.com/pusula-app/backend/internal/storage"
	"github.com/pusula-app/backend/internal/utils"
)

// SeedDemoData, tanıtım ortamı için tek bir öğrenciyi tüm kayıtlarıyla
// birlikte oluşturur: deneme sonuçları, hedefler, notlar, geri sayımlar
// ve ödev listesine aktarılmış iki çalışma programı.
func SeedDemoData(repo *repository.Repository, kv storage.KeyValueStore) {
	student := &domain.Student{
		FullName:         "Deniz Yılmaz",
		Email:            "deniz.yilmaz@pusula.app",
		ExamType:         domain.ExamTypeYKS,
		TargetProfession: "Doktor",
	}

	if err := repo.CreateStudent(student); err != nil {
		slog.Error("tanıtım öğrencisi eklenemedi", "error", err)
		return
	}

	for i := 0; i < 4; i++ {
		result := utils.GenerateRandomExamResult(student.ID)
		if err := repo.CreateExamResult(result); err != nil {
			slog.Error("deneme sonucu eklenemedi", "error", err)
		}
	}

	for i := 0; i < 3; i++ {
		if err := repo.CreateGoal(utils.GenerateRandomGoal(student.ID)); err != nil {
			slog.Error("hedef eklenemedi", "error", err)
		}
	}

	for i := 0; i < 3; i++ {
		if err := repo.CreateNote(utils.GenerateRandomNote(student.ID)); err != nil {
			slog.Error("not eklenemedi", "error", err)
		}
	}

	if err := repo.CreateCountdown(utils.GenerateRandomCountdown(student.ID)); err != nil {
		slog.Error("geri sayım eklenemedi", "error", err)
	}

	historyStore := history.NewStore(kv, storage.KeyPrograms)
	assignmentStore := assignment.NewStore(kv, storage.KeyAssignments)

	ctx := context.Background()
	titles := []string{"TYT Tekrar Programı", "AYT Deneme Haftası"}
	for _, title := range titles {
		entry, err := utils.GenerateRandomSchedule(title)
		if err != nil {
			slog.Error("program üretilemedi", "error", err)
			continue
		}

		if err := historyStore.Append(ctx, entry); err != nil {
			slog.Error("program geçmişe eklenemedi", "error", err)
			continue
		}

		assignments := make([]domain.Assignment, 0)
		for _, record := range entry.SlotMap {
			if record.Content == "" {
				continue
			}
			assignments = append(assignments, domain.Assignment{
				ID:            utils.GenerateRandomID(4, 4),
				Title:         record.Content,
				DueDate:       record.Date,
				IsFromProgram: true,
				CreatedAt:     time.Now(),
			})
		}

		if err := assignmentStore.Add(ctx, assignments...); err != nil {
			slog.Error("ödevler listeye aktarılamadı", "error", err)
		}

		// Program kimliği zaman damgasından türediği için ardışık kayıtlar
		// arasında beklemek gerekir
		time.Sleep(2 * time.Millisecond)
	}

	slog.Info("tanıtım verisi eklendi", "student", student.Email)
}
