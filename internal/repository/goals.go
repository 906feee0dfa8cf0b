package repository

import (
	"context"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func (r *Repository) CreateGoal(goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO goals (student_id, text)
		VALUES ($1, $2)
		RETURNING id, is_done, created_at, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, goal.StudentID, goal.Text).Scan(&goal.ID, &goal.IsDone, &goal.CreatedAt, &goal.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetGoalsByStudentID(studentID int64) ([]*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, student_id, text, is_done, created_at, version
		FROM goals
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal := &domain.Goal{}
		if err := rows.Scan(&goal.ID, &goal.StudentID, &goal.Text, &goal.IsDone, &goal.CreatedAt, &goal.Version); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *Repository) GetGoalByID(id int64) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, student_id, text, is_done, created_at, version
		FROM goals
		WHERE id = $1
	`

	goal := &domain.Goal{}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&goal.ID, &goal.StudentID, &goal.Text, &goal.IsDone, &goal.CreatedAt, &goal.Version); err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *Repository) UpdateGoal(goal *domain.Goal) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE goals
		SET
			text = $1,
			is_done = $2,
			version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version
	`

	params := []any{goal.Text, goal.IsDone, goal.ID, goal.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&goal.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteGoal(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM goals WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
