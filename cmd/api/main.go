package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pusula-app/backend/internal/config"
	"github.com/pusula-app/backend/internal/handler"
	"github.com/pusula-app/backend/internal/notify"
	"github.com/pusula-app/backend/internal/repository"
	"github.com/pusula-app/backend/internal/storage"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * Logger'ı oluştur
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Yapılandırmayı yükle
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("yapılandırma yüklenemedi", "error", err)
		return
	}

	/**********************************************
	 * Veritabanına bağlan
	 **********************************************/
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

	/**********************************************
	 * Repository'yi oluştur
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	/**********************************************
	 * RabbitMQ'ya bağlan
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("rabbitmq'ya bağlanılamadı", "error", err)
		return
	}
	defer conn.Close()

	// Kanalı aç
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("kanal açılamadı", "error", err)
		return
	}
	defer ch.Close()

	// Kuyruğu bildir
	_, err = ch.QueueDeclare(
		notify.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("kuyruk bildirilemedi", "error", err)
		return
	}

	/**********************************************
	 * Redis'e bağlan
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})
	kv := storage.NewRedisStore(rdb, time.Duration(cfg.Redis.OperationTimeout)*time.Second)

	/**********************************************
	 * Handler'ı oluştur
	 **********************************************/
	sink := notify.NewAMQPSink(ch, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)

	handler, err := handler.NewHandler(cfg, repo, kv, ch, sink)
	if err != nil {
		logger.Error("handler oluşturulamadı", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * HTTP sunucusunu başlat
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("sunucu başlatılıyor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("sunucu başlatılamadı", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("sunucu kapatılıyor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("sunucu kapatılamadı", slog.String("error", err.Error()))
	}
	logger.Info("sunucu başarıyla kapatıldı")
}
