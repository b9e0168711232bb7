package api

import (
	"context" // Request-scoped cancellation
	"time"    // Sign-in timestamps

	"retirement_planner/internal/advisor" // LLM recommendations
	"retirement_planner/internal/domain"  // Domain models
	"retirement_planner/internal/store"   // Pagination
)

// ScenarioRepository is the scenario persistence the handlers need.
// Every method is scoped to the owning user.
type ScenarioRepository interface {
	Create(ctx context.Context, sc *domain.Scenario) error
	ListByUser(ctx context.Context, userID uint, page store.Page) ([]domain.Scenario, int64, error)
	Get(ctx context.Context, id, userID uint) (*domain.Scenario, error)
	Update(ctx context.Context, userID uint, sc *domain.Scenario) error
	Delete(ctx context.Context, id, userID uint) error
	Compare(ctx context.Context, userID uint, ids []uint) ([]domain.Scenario, error)
}

// RothRepository stores Roth conversion analyses.
type RothRepository interface {
	Create(ctx context.Context, rc *domain.RothConversion) error
	ListByUser(ctx context.Context, userID uint, page store.Page) ([]domain.RothConversion, int64, error)
}

// UserRepository stores accounts.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error
	List(ctx context.Context, page store.Page) ([]domain.User, int64, error)
}

// Advisor produces model-written recommendations for a stored scenario.
type Advisor interface {
	Recommend(ctx context.Context, sc *domain.Scenario) ([]advisor.Recommendation, error)
}
