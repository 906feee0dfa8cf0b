package reconcile

import (
	"context"
	"errors"

	"github.com/pusula-app/backend/internal/domain"
)

// ErrSlotNotFound, verilen slotKey kayıtlı programın slotMap'inde yoksa döner.
var ErrSlotNotFound = errors.New("programda böyle bir ders saati yok")

// SyncError, slot tamamlanma durumu yerel olarak kaydedildikten sonra ödev
// listesi eşitlemesinin başarısız olduğunu bildirir. İki yazma bağımsız
// başarısızlık alanlarıdır; çağıran bu hatayı ayrıca yüzeye çıkarmalıdır.
type SyncError struct {
	Err error
}

func (e *SyncError) Error() string {
	return "ödev listesi eşitlenemedi: " + e.Err.Error()
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

// HistoryStore, uzlaştırıcının program geçmişinden beklediği yeteneklerdir.
type HistoryStore interface {
	Find(ctx context.Context, id string) (*domain.SavedSchedule, error)
	Replace(ctx context.Context, id string, updated *domain.SavedSchedule) error
}

// AssignmentCollaborator, ödev listesinin tamamını okuma ve tamamını geri
// yazma yeteneğidir.
type AssignmentCollaborator interface {
	ListAll(ctx context.Context) ([]domain.Assignment, error)
	ReplaceAll(ctx context.Context, assignments []domain.Assignment) error
}

// Reconciler, kayıtlı bir programın slot tamamlanma durumlarını ödev
// listesiyle uzlaştırır. Bir program ancak tüm slotları işaretlendiğinde
// tamamlanmış sayılır; kısmi tamamlanma ödevlere hiçbir şekilde yansımaz.
type Reconciler struct {
	history     HistoryStore
	assignments AssignmentCollaborator
}

func New(history HistoryStore, assignments AssignmentCollaborator) *Reconciler {
	return &Reconciler{
		history:     history,
		assignments: assignments,
	}
}

// ToggleSlot, slotun tamamlanma işaretini tersine çevirir ve programın
// toplam durumunu baştan hesaplar.
//
// Toplam durum Tamamlandı'ya geçtiğinde, programın kapsadığı tarihlere denk
// gelen ve programdan aktarılmış tüm ödevler tamamlandı olarak işaretlenir;
// Tamamlandı'dan çıkıldığında aynı küme geri alınır. Toplam durum değişmeyen
// bir geçiş ödevlere dokunmaz.
//
// completedMap değişikliği her durumda önce yerel olarak kalıcılaştırılır.
// Ardından gelen ödev eşitlemesi başarısız olursa güncel program girdisiyle
// birlikte *SyncError döner.
func (r *Reconciler) ToggleSlot(ctx context.Context, scheduleID, slotKey string) (*domain.SavedSchedule, error) {
	entry, err := r.history.Find(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	if _, exists := entry.SlotMap[slotKey]; !exists {
		return nil, ErrSlotNotFound
	}

	wasComplete := entry.IsComplete()

	if entry.CompletedMap == nil {
		entry.CompletedMap = make(map[string]bool)
	}
	entry.CompletedMap[slotKey] = !entry.CompletedMap[slotKey]

	nowComplete := entry.IsComplete()

	// Birincil yazma: slot durumu, eşitleme başarısız olsa bile kaybolmamalı.
	if err := r.history.Replace(ctx, scheduleID, entry); err != nil {
		return nil, err
	}

	if wasComplete == nowComplete {
		return entry, nil
	}

	if err := r.syncAssignments(ctx, entry, nowComplete); err != nil {
		return entry, &SyncError{Err: err}
	}

	return entry, nil
}

// syncAssignments, programdan aktarılmış ve programın kapsadığı bir tarihe
// denk gelen tüm ödevlerin tamamlanma durumunu verilen değere çeker.
func (r *Reconciler) syncAssignments(ctx context.Context, entry *domain.SavedSchedule, completed bool) error {
	assignments, err := r.assignments.ListAll(ctx)
	if err != nil {
		return err
	}

	coveredDates := entry.Dates()
	for i := range assignments {
		if !assignments[i].IsFromProgram {
			continue
		}
		if !coveredDates[assignments[i].DueDate.Key()] {
			continue
		}
		assignments[i].IsCompleted = completed
	}

	return r.assignments.ReplaceAll(ctx, assignments)
}
