package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pusula-app/backend/internal/config"
	"github.com/pusula-app/backend/internal/domain"
	"github.com/pusula-app/backend/internal/notify"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"
)

func main() {
	/**********************************************
	 * Logger'ı oluştur
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Yapılandırmayı yükle
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("yapılandırma yüklenemedi", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * E-posta istemcisini oluştur
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("e-posta istemcisi oluşturulamadı", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// İstemcinin sunucuya bağlanabildiğini doğrula
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("e-posta sunucusuna bağlanılamadı", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * RabbitMQ'ya bağlan
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("rabbitmq'ya bağlanılamadı", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	// Kanalı aç
	ch, err := conn.Channel()
	if err != nil {
		logger.Error("kanal açılamadı", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// Kuyruğu bildir
	q, err := ch.QueueDeclare(
		notify.QueueName, // kuyruk adı
		true,             // kalıcı olsun
		false,            // tüketici yokken otomatik silinmesin
		false,            // birden fazla tüketiciye izin ver
		false,            // kuyruğun oluşturulduğu onayını bekle
		nil,              // ek parametre yok
	)
	if err != nil {
		logger.Error("kuyruk bildirilemedi", slog.String("error", err.Error()))
		return
	}

	// CTRL+C sinyalini dinle
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Mesajları tüket
	msgs, err := ch.Consume(
		q.Name, // kuyruk
		"",     // tüketici etiketini RabbitMQ atasın
		false,  // mesajlar elle onaylanacak
		false,  // kuyruk paylaşımlı
		false,  // RabbitMQ bu parametreyi desteklemediği için false
		false,  // RabbitMQ yanıtını bekle
		nil,    // ek parametre yok
	)
	if err != nil {
		logger.Error("mesajlar tüketilemedi", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Goroutine'i kapatmak için kullanılan bağlam
	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mesaj alındı", slog.String("message", string(msg.Body)))

				notification := domain.NotificationMessage{}
				if err := json.Unmarshal(msg.Body, &notification); err != nil {
					logger.Error("bildirim çözümlenemedi", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// Anlık bildirimler e-posta gerektirmez, yalnızca günlüğe yazılır
				if notification.Type == "toast" {
					logger.Info("anlık bildirim",
						slog.String("title", notification.Title),
						slog.String("severity", string(notification.Severity)),
						slog.String("message", notification.Message),
					)
					_ = msg.Ack(false)
					continue
				}

				// E-postayı kur
				email := mail.NewMsg()
				if err := email.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("gönderen adresi ayarlanamadı", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := email.To(notification.To); err != nil {
					logger.Error("alıcı adresi ayarlanamadı", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// Bildirim türüne göre şablonu seç
				switch notification.Type {
				case "exam_reminder":
					tmpl, err := template.ParseFiles("./templates/exam_reminder_email.html")
					if err != nil {
						logger.Error("e-posta şablonu çözümlenemedi", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := email.SetBodyHTMLTemplate(tmpl, notification.Data); err != nil {
						logger.Error("e-posta gövdesi ayarlanamadı", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					subject := "Pusula - Sınav Hatırlatması"
					if notification.Severity == domain.SeverityWarning {
						subject = "Pusula - Sınav Yaklaşıyor!"
					}
					email.Subject(subject)
				case "weekly_report":
					tmpl, err := template.ParseFiles("./templates/weekly_report_email.html")
					if err != nil {
						logger.Error("e-posta şablonu çözümlenemedi", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := email.SetBodyHTMLTemplate(tmpl, notification.Data); err != nil {
						logger.Error("e-posta gövdesi ayarlanamadı", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					email.Subject("Pusula - Haftalık Özet")
				default:
					logger.Error("desteklenmeyen bildirim türü", slog.String("type", notification.Type))
					_ = msg.Nack(false, false)
					continue
				}

				// E-postayı gönder
				if err := client.DialAndSend(email); err != nil {
					logger.Error("e-posta gönderilemedi", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // mesajı yeniden kuyruğa al
					continue
				}

				// Mesajı onayla
				_ = msg.Ack(false)
			}
		}
	}()

	// CTRL+C sinyalini bekle
	logger.Info("mesajlar bekleniyor... (çıkmak için CTRL+C)")
	<-sigChan

	// Düzgün kapanış
	slog.Info("notifier worker kapatılıyor...")
	cancel()
	wg.Wait() // tüm goroutine'lerin bitmesini bekle
	slog.Info("notifier worker başarıyla kapatıldı")
}
