package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pusula-app/backend/internal/assignment"
	"github.com/pusula-app/backend/internal/config"
	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/history"
	"github.com/pusula-app/backend/internal/repository"
	"github.com/pusula-app/backend/internal/seed"
	"github.com/pusula-app/backend/internal/storage"
	"github.com/pusula-app/backend/internal/utils"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var studentID int64

	flag.IntVar(&op, "op", 0, "yapılacak işlem (1: rastgele öğrenci ekle, 2: öğrenciye rastgele deneme sonucu ekle, 3: öğrenciye hedef/not/geri sayım ekle, 4: rastgele çalışma programı ekle, 5: tanıtım verisi ekle)")
	flag.IntVar(&n, "n", 5, "eklenecek kayıt sayısı")
	flag.Int64Var(&studentID, "student-id", 0, "kayıtların ekleneceği öğrenci kimliği")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Yapılandırmayı oku
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("yapılandırma okunamadı", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Veritabanı bağlantı havuzunu oluştur
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("veritabanı bağlantı havuzu oluşturulamadı", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open bağlantı havuzu nesnesini oluşturur ama veritabanına hemen
	// bağlanmaz, bu yüzden açıkça ping atmak gerekir
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("veritabanına bağlanılamadı", "error", err)
		return
	}

	// Program geçmişi ve ödev listesi için anahtar-değer deposunu oluştur
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	kv := storage.NewRedisStore(redisClient, time.Duration(cfg.Redis.OperationTimeout)*time.Second)

	// Repository'yi oluştur
	repo := repository.NewRepository(cfg, dbpool)

	// İşlemi yürüt
	switch op {
	case 0:
		slog.Error("işlem belirtilmedi")
	case 1:
		if n <= 0 {
			slog.Error("geçerli bir öğrenci sayısı girin")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			student := utils.GenerateRandomStudent(cfg.Email.UserDomain)
			if err := repo.CreateStudent(student); err != nil {
				slog.Error("öğrenci eklenemedi", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("öğrenciler eklendi", slog.Int("count", n-cnt))
	case 2:
		if studentID <= 0 {
			slog.Error("geçerli bir öğrenci kimliği girin")
			return
		}
		if _, err := repo.GetStudentByID(studentID); err != nil {
			slog.Error("öğrenci bulunamadı", slog.Int64("student_id", studentID), slog.String("error", err.Error()))
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			result := utils.GenerateRandomExamResult(studentID)
			if err := repo.CreateExamResult(result); err != nil {
				slog.Error("deneme sonucu eklenemedi", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("deneme sonuçları eklendi", slog.Int("count", n-cnt))
	case 3:
		if studentID <= 0 {
			slog.Error("geçerli bir öğrenci kimliği girin")
			return
		}
		if _, err := repo.GetStudentByID(studentID); err != nil {
			slog.Error("öğrenci bulunamadı", slog.Int64("student_id", studentID), slog.String("error", err.Error()))
			return
		}

		for i := 0; i < n; i++ {
			if err := repo.CreateGoal(utils.GenerateRandomGoal(studentID)); err != nil {
				slog.Error("hedef eklenemedi", slog.String("error", err.Error()))
			}
			if err := repo.CreateNote(utils.GenerateRandomNote(studentID)); err != nil {
				slog.Error("not eklenemedi", slog.String("error", err.Error()))
			}
		}

		if err := repo.CreateCountdown(utils.GenerateRandomCountdown(studentID)); err != nil {
			slog.Error("geri sayım eklenemedi", slog.String("error", err.Error()))
		}

		slog.Info("hedefler, notlar ve geri sayım eklendi", slog.Int64("student_id", studentID))
	case 4:
		if n <= 0 {
			slog.Error("geçerli bir program sayısı girin")
			return
		}

		historyStore := history.NewStore(kv, storage.KeyPrograms)
		assignmentStore := assignment.NewStore(kv, storage.KeyAssignments)

		cnt := n
		for i := 0; i < n; i++ {
			entry, err := utils.GenerateRandomSchedule(fmt.Sprintf("Çalışma Programı %d", i+1))
			if err != nil {
				slog.Error("program üretilemedi", slog.String("error", err.Error()))
				continue
			}

			if err := historyStore.Append(context.Background(), entry); err != nil {
				slog.Error("program geçmişe eklenemedi", slog.String("error", err.Error()))
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

			if err := assignmentStore.Add(context.Background(), assignments...); err != nil {
				slog.Error("ödevler listeye aktarılamadı", slog.String("error", err.Error()))
			}

			cnt--

			// Program kimliği zaman damgasından türediği için ardışık
			// kayıtlar arasında beklemek gerekir
			time.Sleep(2 * time.Millisecond)
		}

		slog.Info("programlar eklendi", slog.Int("count", n-cnt))
	case 5:
		seed.SeedDemoData(repo, kv)
	default:
		slog.Error("belirtilen işlem geçersiz")
	}
}
