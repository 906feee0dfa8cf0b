package repository

import (
	"context"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func (r *Repository) CreateCountdown(countdown *domain.Countdown) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO countdowns (student_id, name, exam_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	params := []any{countdown.StudentID, countdown.Name, countdown.ExamDate.Time}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&countdown.ID, &countdown.CreatedAt, &countdown.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCountdownsByStudentID(studentID int64) ([]*domain.Countdown, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, student_id, name, exam_date, created_at, version
		FROM countdowns
		WHERE student_id = $1
		ORDER BY exam_date
	`

	rows, err := r.dbpool.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	countdowns := make([]*domain.Countdown, 0)
	for rows.Next() {
		countdown := &domain.Countdown{}
		var examDate time.Time
		if err := rows.Scan(&countdown.ID, &countdown.StudentID, &countdown.Name, &examDate, &countdown.CreatedAt, &countdown.Version); err != nil {
			return nil, err
		}
		countdown.ExamDate = domain.NewCalendarDate(examDate)
		countdowns = append(countdowns, countdown)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return countdowns, nil
}

func (r *Repository) GetCountdownByID(id int64) (*domain.Countdown, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, student_id, name, exam_date, created_at, version
		FROM countdowns
		WHERE id = $1
	`

	countdown := &domain.Countdown{}
	var examDate time.Time
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&countdown.ID, &countdown.StudentID, &countdown.Name, &examDate, &countdown.CreatedAt, &countdown.Version); err != nil {
		return nil, err
	}
	countdown.ExamDate = domain.NewCalendarDate(examDate)

	return countdown, nil
}

func (r *Repository) DeleteCountdown(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM countdowns WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
