package service

import (
	"context"
	"fmt"
	"time"

	"quizdeck/internal/logger"
	"quizdeck/internal/models"
	"quizdeck/internal/repository"

	"github.com/google/uuid"
)

// SeedService runs once at startup. It is idempotent: the admin account is
// created only if absent, and sample quizzes only into an empty collection.
type SeedService struct {
	authRepo      repository.Authorization
	quizRepo      repository.Quizzes
	adminUsername string
	adminPassword string
	seedSamples   bool
	log           *logger.Logger
}

func NewSeedService(authRepo repository.Authorization, quizRepo repository.Quizzes, adminUsername, adminPassword string, seedSamples bool, log *logger.Logger) *SeedService {
	return &SeedService{
		authRepo:      authRepo,
		quizRepo:      quizRepo,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		seedSamples:   seedSamples,
		log:           log,
	}
}

func (s *SeedService) Run(ctx context.Context) error {
	if err := s.ensureAdmin(); err != nil {
		return err
	}
	if s.seedSamples {
		return s.ensureSampleQuizzes(ctx)
	}
	return nil
}

// ensureAdmin guarantees exactly one admin account with the fixed username.
func (s *SeedService) ensureAdmin() error {
	existing, err := s.authRepo.GetByUsername(s.adminUsername)
	if err != nil {
		return fmt.Errorf("look up admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := hashPassword(s.adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := s.authRepo.Create(s.adminUsername, hash, models.RoleAdmin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	if s.log != nil {
		s.log.Infow("admin account created", "username", s.adminUsername)
	}
	return nil
}

// ensureSampleQuizzes inserts the fixed sample set when the collection is empty.
func (s *SeedService) ensureSampleQuizzes(ctx context.Context) error {
	n, err := s.quizRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count quizzes: %w", err)
	}
	if n > 0 {
		return nil
	}

	for _, q := range sampleQuizzes() {
		if err := s.quizRepo.Insert(ctx, q); err != nil {
			return fmt.Errorf("seed quiz %q: %w", q.Title, err)
		}
	}
	if s.log != nil {
		s.log.Infow("sample quizzes seeded", "count", len(sampleQuizzes()))
	}
	return nil
}

func sampleQuizzes() []models.Quiz {
	now := time.Now().UTC()
	return []models.Quiz{
		{
			ID:        uuid.NewString(),
			Title:     "General Knowledge Trivia",
			CreatedAt: now,
			Questions: []models.Question{
				{
					Text:          "What is the capital of France?",
					Options:       []string{"Paris", "London", "Berlin", "Madrid"},
					CorrectAnswer: "Paris",
				},
				{
					Text:          "Which planet is known as the Red Planet?",
					Options:       []string{"Mars", "Jupiter", "Venus", "Mercury"},
					CorrectAnswer: "Mars",
				},
			},
		},
		{
			ID:        uuid.NewString(),
			Title:     "Basic Math Quiz",
			CreatedAt: now,
			Questions: []models.Question{
				{
					Text:          "What is 5 + 7?",
					Options:       []string{"10", "11", "12", "13"},
					CorrectAnswer: "12",
				},
				{
					Text:          "What is the square root of 16?",
					Options:       []string{"2", "4", "6", "8"},
					CorrectAnswer: "4",
				},
			},
		},
		{
			ID:        uuid.NewString(),
			Title:     "Science Basics",
			CreatedAt: now,
			Questions: []models.Question{
				{
					Text:          "What gas do plants absorb from the atmosphere?",
					Options:       []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Helium"},
					CorrectAnswer: "Carbon Dioxide",
				},
				{
					Text:          "What is the chemical symbol for water?",
					Options:       []string{"H2O", "CO2", "O2", "N2"},
					CorrectAnswer: "H2O",
				},
			},
		},
	}
}
