package service

import (
	"context"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/repository"
)

type Authorization interface {
	Register(username, password string) (string, error)
	Login(username, password string) (string, error)
	ParseToken(accessToken string) (*TokenClaims, error)
}

// Quizzes exposes quiz CRUD with structural validation on every write.
type Quizzes interface {
	List(ctx context.Context) ([]models.QuizSummary, error)
	Get(ctx context.Context, id string) (*models.Quiz, error)
	Create(ctx context.Context, title string, questions []models.Question) (*models.Quiz, error)
	Update(ctx context.Context, id, title string, questions []models.Question) (*models.Quiz, error)
	Delete(ctx context.Context, id string) error
}

// Seeder runs the idempotent startup seed (admin account, optional sample data).
type Seeder interface {
	Run(ctx context.Context) error
}

type Service struct {
	Authorization
	Quizzes
	Seeder
}

// Deps carries everything the services need beyond the repository layer.
type Deps struct {
	Repos         *repository.Repository
	SigningKey    string
	AdminUsername string
	AdminPassword string
	SeedSamples   bool
	Log           *logger.Logger
}

func NewService(d Deps) *Service {
	return &Service{
		Authorization: NewAuthService(d.Repos.Auth, d.SigningKey),
		Quizzes:       NewQuizService(d.Repos.Quizzes),
		Seeder:        NewSeedService(d.Repos.Auth, d.Repos.Quizzes, d.AdminUsername, d.AdminPassword, d.SeedSamples, d.Log),
	}
}
