package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"quizdeck/internal/models"
)

type QuizSQLite struct {
	db *sql.DB
}

func NewQuizSQLite(db *sql.DB) *QuizSQLite {
	return &QuizSQLite{db: db}
}

var _ Quizzes = (*QuizSQLite)(nil)

const (
	insertQuizSQL = `INSERT INTO quizzes (id, title, questions, created_at) VALUES (?, ?, ?, ?)`
	selectQuizSQL = `SELECT id, title, questions, created_at FROM quizzes WHERE id = ?`
	listQuizSQL   = `SELECT id, title, questions, created_at FROM quizzes ORDER BY created_at`
	updateQuizSQL = `UPDATE quizzes SET title = ?, questions = ? WHERE id = ?`
	deleteQuizSQL = `DELETE FROM quizzes WHERE id = ?`
	countQuizSQL  = `SELECT COUNT(*) FROM quizzes`
)

// marshalQuestions converts the question list to its JSON column form.
func marshalQuestions(qs []models.Question) (string, error) {
	b, err := json.Marshal(qs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalQuestions parses the JSON column back into the question list.
func unmarshalQuestions(s string) ([]models.Question, error) {
	if s == "" {
		return nil, nil
	}
	var qs []models.Question
	if err := json.Unmarshal([]byte(s), &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func scanQuiz(scan func(dest ...any) error) (*models.Quiz, error) {
	var q models.Quiz
	var questionsJSON string
	if err := scan(&q.ID, &q.Title, &questionsJSON, &q.CreatedAt); err != nil {
		return nil, err
	}
	qs, err := unmarshalQuestions(questionsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode questions for quiz %q: %w", q.ID, err)
	}
	q.Questions = qs
	q.CreatedAt = q.CreatedAt.UTC()
	return &q, nil
}

// List returns all quizzes in creation order.
func (r *QuizSQLite) List(ctx context.Context) ([]models.Quiz, error) {
	rows, err := r.db.QueryContext(ctx, listQuizSQL)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []models.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan quiz row: %w", err)
		}
		quizzes = append(quizzes, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz rows: %w", err)
	}
	return quizzes, nil
}

// GetByID fetches one quiz. Returns sql.ErrNoRows if the id has no row.
func (r *QuizSQLite) GetByID(ctx context.Context, id string) (*models.Quiz, error) {
	row := r.db.QueryRowContext(ctx, selectQuizSQL, id)
	q, err := scanQuiz(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("select quiz %q: %w", id, err)
	}
	return q, nil
}

// Insert stores a new quiz document.
func (r *QuizSQLite) Insert(ctx context.Context, q models.Quiz) error {
	questionsJSON, err := marshalQuestions(q.Questions)
	if err != nil {
		return fmt.Errorf("encode questions for quiz %q: %w", q.ID, err)
	}
	if _, err := r.db.ExecContext(ctx, insertQuizSQL, q.ID, q.Title, questionsJSON, q.CreatedAt.UTC()); err != nil {
		return fmt.Errorf("insert quiz %q: %w", q.ID, err)
	}
	return nil
}

// Update replaces title and questions wholesale, leaving created_at intact.
// Returns sql.ErrNoRows if the id has no row.
func (r *QuizSQLite) Update(ctx context.Context, q models.Quiz) error {
	questionsJSON, err := marshalQuestions(q.Questions)
	if err != nil {
		return fmt.Errorf("encode questions for quiz %q: %w", q.ID, err)
	}
	res, err := r.db.ExecContext(ctx, updateQuizSQL, q.Title, questionsJSON, q.ID)
	if err != nil {
		return fmt.Errorf("update quiz %q: %w", q.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for quiz %q: %w", q.ID, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the quiz entirely. Returns sql.ErrNoRows if the id has no row.
func (r *QuizSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteQuizSQL, id)
	if err != nil {
		return fmt.Errorf("delete quiz %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for quiz %q: %w", id, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Count reports the number of stored quizzes (used by the startup seed).
func (r *QuizSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countQuizSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return n, nil
}
