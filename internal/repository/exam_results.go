package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pusula-app/backend/internal/domain"
)

func (r *Repository) CreateExamResult(result *domain.ExamResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO exam_results (student_id, exam_name, exam_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`
	params := []any{result.StudentID, result.ExamName, result.ExamDate.Time}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&result.ID, &result.CreatedAt, &result.Version); err != nil {
		return err
	}

	for i := range result.Lessons {
		query = `
			INSERT INTO exam_result_lessons (exam_result_id, lesson_name, correct, wrong, blank)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		params = []any{result.ID, result.Lessons[i].LessonName, result.Lessons[i].Correct, result.Lessons[i].Wrong, result.Lessons[i].Blank}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&result.Lessons[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetExamResultsByStudentID(studentID int64) ([]*domain.ExamResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			er.id,
			er.exam_name,
			er.exam_date,
			er.created_at,
			er.version,
			erl.id,
			erl.lesson_name,
			erl.correct,
			erl.wrong,
			erl.blank
		FROM exam_results er
		LEFT JOIN exam_result_lessons erl ON er.id = erl.exam_result_id
		WHERE er.student_id = $1
		ORDER BY er.exam_date, er.id, erl.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resultsMap := make(map[int64]*domain.ExamResult)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			ExamName  string
			ExamDate  time.Time
			CreatedAt time.Time
			Version   int32

			LessonID   sql.NullInt64
			LessonName sql.NullString
			Correct    sql.NullInt32
			Wrong      sql.NullInt32
			Blank      sql.NullInt32
		}

		dst := []any{
			&row.ID,
			&row.ExamName,
			&row.ExamDate,
			&row.CreatedAt,
			&row.Version,
			&row.LessonID,
			&row.LessonName,
			&row.Correct,
			&row.Wrong,
			&row.Blank,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if _, exists := resultsMap[row.ID]; !exists {
			// Bu deneme ilk kez görülüyor, map'te oluşturulması gerekiyor
			resultsMap[row.ID] = &domain.ExamResult{
				ID:        row.ID,
				StudentID: studentID,
				ExamName:  row.ExamName,
				ExamDate:  domain.NewCalendarDate(row.ExamDate),
				Lessons:   make([]domain.LessonResult, 0),
				CreatedAt: row.CreatedAt,
				Version:   row.Version,
			}
			order = append(order, row.ID)
		}

		// LessonID boşsa bu denemeye hiç ders girilmemiş demektir
		if !row.LessonID.Valid {
			continue
		}

		resultsMap[row.ID].Lessons = append(resultsMap[row.ID].Lessons, domain.LessonResult{
			ID:         row.LessonID.Int64,
			LessonName: row.LessonName.String,
			Correct:    row.Correct.Int32,
			Wrong:      row.Wrong.Int32,
			Blank:      row.Blank.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]*domain.ExamResult, 0, len(order))
	for _, id := range order {
		results = append(results, resultsMap[id])
	}

	return results, nil
}

func (r *Repository) GetExamResultByID(id int64) (*domain.ExamResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			er.student_id,
			er.exam_name,
			er.exam_date,
			er.created_at,
			er.version,
			erl.id,
			erl.lesson_name,
			erl.correct,
			erl.wrong,
			erl.blank
		FROM exam_results er
		LEFT JOIN exam_result_lessons erl ON er.id = erl.exam_result_id
		WHERE er.id = $1
		ORDER BY erl.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &domain.ExamResult{
		ID:      id,
		Lessons: make([]domain.LessonResult, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			StudentID int64
			ExamName  string
			ExamDate  time.Time
			CreatedAt time.Time
			Version   int32

			LessonID   sql.NullInt64
			LessonName sql.NullString
			Correct    sql.NullInt32
			Wrong      sql.NullInt32
			Blank      sql.NullInt32
		}

		dst := []any{
			&row.StudentID,
			&row.ExamName,
			&row.ExamDate,
			&row.CreatedAt,
			&row.Version,
			&row.LessonID,
			&row.LessonName,
			&row.Correct,
			&row.Wrong,
			&row.Blank,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			result.StudentID = row.StudentID
			result.ExamName = row.ExamName
			result.ExamDate = domain.NewCalendarDate(row.ExamDate)
			result.CreatedAt = row.CreatedAt
			result.Version = row.Version
			found = true
		}

		if !row.LessonID.Valid {
			continue
		}

		result.Lessons = append(result.Lessons, domain.LessonResult{
			ID:         row.LessonID.Int64,
			LessonName: row.LessonName.String,
			Correct:    row.Correct.Int32,
			Wrong:      row.Wrong.Int32,
			Blank:      row.Blank.Int32,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return result, nil
}

func (r *Repository) DeleteExamResult(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM exam_results WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
