package repository

import (
	"context"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func (r *Repository) CreateStudent(student *domain.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO students (full_name, email, exam_type, target_profession)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	params := []any{student.FullName, student.Email, student.ExamType, student.TargetProfession}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&student.ID, &student.CreatedAt, &student.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllStudents() ([]*domain.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, full_name, email, exam_type, target_profession, created_at, version
		FROM students
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*domain.Student, 0)
	for rows.Next() {
		student := &domain.Student{}
		dst := []any{
			&student.ID,
			&student.FullName,
			&student.Email,
			&student.ExamType,
			&student.TargetProfession,
			&student.CreatedAt,
			&student.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

func (r *Repository) GetStudentByID(id int64) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, full_name, email, exam_type, target_profession, created_at, version
		FROM students
		WHERE id = $1
	`

	student := &domain.Student{}
	dst := []any{
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.ExamType,
		&student.TargetProfession,
		&student.CreatedAt,
		&student.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return student, nil
}

func (r *Repository) UpdateStudent(student *domain.Student) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE students
		SET
			full_name = $1,
			email = $2,
			exam_type = $3,
			target_profession = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	params := []any{student.FullName, student.Email, student.ExamType, student.TargetProfession, student.ID, student.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&student.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStudent(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM students WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
