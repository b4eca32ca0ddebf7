package services

import (
	"context"
	"time"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

type memoryRepos struct {
	federations repositories.FederationRepository
	players     repositories.PlayerRepository
	tournaments repositories.TournamentRepository
	results     repositories.ResultRepository
}

func newMemoryRepos() memoryRepos {
	store := repositories.NewMemoryStore()
	return memoryRepos{
		federations: repositories.NewMemoryFederationRepository(store),
		players:     repositories.NewMemoryPlayerRepository(store),
		tournaments: repositories.NewMemoryTournamentRepository(store),
		results:     repositories.NewMemoryResultRepository(store),
	}
}

func intPtr(v int) *int { return &v }

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validTournamentInput(name string, start time.Time) TournamentInput {
	return TournamentInput{
		Name:        name,
		Location:    "Wijk aan Zee",
		StartDate:   models.Timestamp(start),
		EndDate:     models.Timestamp(start.AddDate(0, 0, 8)),
		Rounds:      9,
		TimeControl: "90+30",
		Arbiter:     "Jane Arbiter",
	}
}

// mockPlayerRepository lets a test replace single repository calls.
type mockPlayerRepository struct {
	repositories.PlayerRepository
	ListFn func(ctx context.Context, search string, limit int) ([]models.Player, error)
}

func (m *mockPlayerRepository) List(ctx context.Context, search string, limit int) ([]models.Player, error) {
	return m.ListFn(ctx, search, limit)
}

type mockResultRepository struct {
	repositories.ResultRepository
	CreateFn func(ctx context.Context, result *models.TournamentResult) error
}

func (m *mockResultRepository) Create(ctx context.Context, result *models.TournamentResult) error {
	return m.CreateFn(ctx, result)
}
