package notify

import (
	"log/slog"

	"github.com/pusula-app/backend/internal/domain"
)

// QueueName, bildirim mesajlarının yazıldığı kuyruğun adıdır. Kuyruk API
// tarafından bildirilir, notifier worker tarafından tüketilir.
const QueueName = "notification_queue"

// Sink, kullanıcıya tek seferlik geri bildirim iletme yeteneğidir. Çağrılar
// ateşle-unut biçimindedir: iletim beklenmez ve başarısızlık çağırana dönmez.
type Sink interface {
	Notify(message string, severity domain.Severity, title string)
}

// SlogSink, bildirimleri yalnızca günlüğe yazan gerçeklemedir. Araçlarda ve
// testlerde kullanılır.
type SlogSink struct{}

func (SlogSink) Notify(message string, severity domain.Severity, title string) {
	slog.Info("bildirim", "title", title, "severity", string(severity), "message", message)
}
