package repository

import (
	"context"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func (r *Repository) CreateNote(note *domain.Note) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO notes (id, student_id, text, color, is_pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, version
	`

	params := []any{note.ID, note.StudentID, note.Text, note.Color, note.IsPinned}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&note.CreatedAt, &note.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetNotesByStudentID(studentID int64) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// Sabitlenen notlar panoda üstte görünür
	query := `
		SELECT id, student_id, text, color, is_pinned, created_at, version
		FROM notes
		WHERE student_id = $1
		ORDER BY is_pinned DESC, created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		note := &domain.Note{}
		if err := rows.Scan(&note.ID, &note.StudentID, &note.Text, &note.Color, &note.IsPinned, &note.CreatedAt, &note.Version); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *Repository) GetNoteByID(id string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, student_id, text, color, is_pinned, created_at, version
		FROM notes
		WHERE id = $1
	`

	note := &domain.Note{}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&note.ID, &note.StudentID, &note.Text, &note.Color, &note.IsPinned, &note.CreatedAt, &note.Version); err != nil {
		return nil, err
	}

	return note, nil
}

func (r *Repository) UpdateNote(note *domain.Note) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE notes
		SET
			text = $1,
			color = $2,
			is_pinned = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	params := []any{note.Text, note.Color, note.IsPinned, note.ID, note.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&note.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteNote(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM notes WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
