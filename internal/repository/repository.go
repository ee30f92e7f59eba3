package repository

import (
	"context"
	"database/sql"

	"quizdeck/internal/models"
)

type Authorization interface {
	Create(username, hash, role string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// Quizzes persists whole quiz documents. Update and Delete report
// sql.ErrNoRows when the id matches no row.
type Quizzes interface {
	List(ctx context.Context) ([]models.Quiz, error)
	GetByID(ctx context.Context, id string) (*models.Quiz, error)
	Insert(ctx context.Context, q models.Quiz) error
	Update(ctx context.Context, q models.Quiz) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Auth    Authorization
	Quizzes Quizzes
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:    NewUserRepository(db),
		Quizzes: NewQuizSQLite(db),
	}
}
