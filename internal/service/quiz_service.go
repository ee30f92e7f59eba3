package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizdeck/internal/models"
	"quizdeck/internal/repository"

	"github.com/google/uuid"
)

// ErrQuizNotFound covers both unknown and malformed quiz ids.
var ErrQuizNotFound = errors.New("quiz not found")

// ValidationError reports the first structural violation found in a quiz payload.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

type QuizService struct {
	quizRepo repository.Quizzes
}

func NewQuizService(repo repository.Quizzes) *QuizService {
	return &QuizService{quizRepo: repo}
}

// List returns summaries only; question bodies and correct answers are
// never exposed by the list endpoint.
func (s *QuizService) List(ctx context.Context) ([]models.QuizSummary, error) {
	quizzes, err := s.quizRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]models.QuizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, q.Summary())
	}
	return summaries, nil
}

// Get returns the full quiz, including questions and correct answers.
func (s *QuizService) Get(ctx context.Context, id string) (*models.Quiz, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrQuizNotFound
	}
	q, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return q, nil
}

// Create validates the payload and persists a new quiz with a generated id.
// Nothing is persisted when validation fails.
func (s *QuizService) Create(ctx context.Context, title string, questions []models.Question) (*models.Quiz, error) {
	if err := validateQuiz(title, questions); err != nil {
		return nil, err
	}
	q := models.Quiz{
		ID:        uuid.NewString(),
		Title:     title,
		Questions: questions,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.quizRepo.Insert(ctx, q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Update replaces title and questions wholesale after the same validation as Create.
func (s *QuizService) Update(ctx context.Context, id, title string, questions []models.Question) (*models.Quiz, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrQuizNotFound
	}
	if err := validateQuiz(title, questions); err != nil {
		return nil, err
	}
	err := s.quizRepo.Update(ctx, models.Quiz{ID: id, Title: title, Questions: questions})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	// Re-read so the response carries the original created_at.
	q, err := s.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Delete removes the quiz entirely; there is no recovery.
func (s *QuizService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrQuizNotFound
	}
	err := s.quizRepo.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrQuizNotFound
	}
	return err
}

// validateQuiz enforces the structural invariants in order, short-circuiting
// on the first violation: title, then question count, then each question's
// text, option count, option contents, and correct answer membership.
func validateQuiz(title string, questions []models.Question) error {
	if strings.TrimSpace(title) == "" {
		return validationErrorf("quiz title is required")
	}
	if len(questions) == 0 {
		return validationErrorf("quiz must have at least one question")
	}
	for i, q := range questions {
		n := i + 1
		if strings.TrimSpace(q.Text) == "" {
			return validationErrorf("question %d: text is required", n)
		}
		if len(q.Options) != models.OptionsPerQuestion {
			return validationErrorf("question %d: exactly %d options are required", n, models.OptionsPerQuestion)
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return validationErrorf("question %d: options must be non-empty", n)
			}
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return validationErrorf("question %d: correct answer must be one of the options", n)
		}
	}
	return nil
}

// containsOption checks membership with an exact, case-sensitive match.
func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
