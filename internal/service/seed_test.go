package service

import (
	"context"
	"testing"

	"quizdeck/internal/models"
)

func newSeedMocks(existingAdmin *models.User) (*mockAuthRepo, *fakeQuizRepo) {
	auth := &mockAuthRepo{
		GetByUsernameFn: func(username string) (*models.User, error) {
			return existingAdmin, nil
		},
		CreateFn: func(username, hash, role string) (int, error) {
			return 1, nil
		},
	}
	return auth, newFakeQuizRepo()
}

func TestSeedService_CreatesAdminWhenAbsent(t *testing.T) {
	auth, quizzes := newSeedMocks(nil)
	seed := NewSeedService(auth, quizzes, "admin", "Admin@123", false, nil)

	if err := seed.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(auth.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(auth.createCalls))
	}
	call := auth.createCalls[0]
	if call.username != "admin" {
		t.Errorf("expected admin username, got %q", call.username)
	}
	if call.role != models.RoleAdmin {
		t.Errorf("expected role %q, got %q", models.RoleAdmin, call.role)
	}
	if err := verifyPassword(call.hash, "Admin@123"); err != nil {
		t.Errorf("admin hash does not verify with the configured password: %v", err)
	}
}

func TestSeedService_SkipsExistingAdmin(t *testing.T) {
	auth, quizzes := newSeedMocks(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	seed := NewSeedService(auth, quizzes, "admin", "Admin@123", false, nil)

	if err := seed.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(auth.createCalls) != 0 {
		t.Fatalf("expected no Create calls for existing admin, got %d", len(auth.createCalls))
	}
}

func TestSeedService_SampleQuizzesOnlyIntoEmptyCollection(t *testing.T) {
	auth, quizzes := newSeedMocks(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	seed := NewSeedService(auth, quizzes, "admin", "Admin@123", true, nil)

	if err := seed.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if quizzes.insertCalls != 3 {
		t.Fatalf("expected 3 sample quizzes seeded, got %d inserts", quizzes.insertCalls)
	}

	// Second run must be a no-op: the collection is no longer empty.
	if err := seed.Run(context.Background()); err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if quizzes.insertCalls != 3 {
		t.Fatalf("seed must be idempotent; got %d inserts after second run", quizzes.insertCalls)
	}

	// Every seeded quiz must itself satisfy the structural invariants.
	all, err := quizzes.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, q := range all {
		if err := validateQuiz(q.Title, q.Questions); err != nil {
			t.Errorf("seeded quiz %q is structurally invalid: %v", q.Title, err)
		}
	}
}

func TestSeedService_SamplesDisabled(t *testing.T) {
	auth, quizzes := newSeedMocks(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	seed := NewSeedService(auth, quizzes, "admin", "Admin@123", false, nil)

	if err := seed.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if quizzes.insertCalls != 0 {
		t.Fatalf("expected no quiz inserts when sample seeding is disabled, got %d", quizzes.insertCalls)
	}
}
