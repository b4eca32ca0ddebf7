package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/chess-registry/models"
)

func intPtr(v int) *int { return &v }

func newPlayer(name, federation string) *models.Player {
	return &models.Player{ID: models.NewID(), Name: name, Federation: federation, CreatedAt: models.Now()}
}

func newTournament(name string, start time.Time) *models.Tournament {
	return &models.Tournament{
		ID:        models.NewID(),
		Name:      name,
		StartDate: start,
		EndDate:   start.Add(72 * time.Hour),
		Rounds:    9,
		CreatedAt: models.Now(),
	}
}

func TestMemoryFederationRepository_CodeIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFederationRepository(NewMemoryStore())

	require.NoError(t, repo.Create(ctx, &models.Federation{ID: models.NewID(), Code: "NOR", Name: "Norway"}))
	err := repo.Create(ctx, &models.Federation{ID: models.NewID(), Code: "NOR", Name: "Norway again"})
	assert.ErrorIs(t, err, ErrFederationCodeConflict)

	got, err := repo.GetByCode(ctx, "NOR")
	require.NoError(t, err)
	assert.Equal(t, "Norway", got.Name)

	_, err = repo.GetByCode(ctx, "XXX")
	assert.ErrorIs(t, err, ErrFederationNotFound)
}

func TestMemoryFederationRepository_ListMatchesNameOrCode(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFederationRepository(NewMemoryStore())
	for _, f := range []models.Federation{
		{ID: models.NewID(), Code: "USA", Name: "United States"},
		{ID: models.NewID(), Code: "GER", Name: "Germany"},
		{ID: models.NewID(), Code: "ESP", Name: "Spain"},
	} {
		f := f
		require.NoError(t, repo.Create(ctx, &f))
	}

	byCode, err := repo.List(ctx, "us", 10)
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "USA", byCode[0].Code)

	byName, err := repo.List(ctx, "MANY", 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "GER", byName[0].Code)

	all, err := repo.List(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "USA", all[0].Code, "insertion order is kept")
}

func TestMemoryPlayerRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPlayerRepository(NewMemoryStore())
	p := newPlayer("Magnus Carlsen", "NOR")
	require.NoError(t, repo.Create(ctx, p))

	update := &models.Player{ID: p.ID, Name: "Magnus Carlsen", Federation: "NOR", Rating: 2830, Title: models.TitleGM, BirthYear: intPtr(1990)}
	require.NoError(t, repo.Update(ctx, update))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2830, got.Rating)
	assert.Equal(t, p.CreatedAt, got.CreatedAt)
	require.NotNil(t, got.BirthYear)
	assert.Equal(t, 1990, *got.BirthYear)

	*update.BirthYear = 1900
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1990, *got.BirthYear, "stored values must not alias caller memory")

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrPlayerNotFound)
	_, err = repo.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.ErrorIs(t, repo.Update(ctx, update), ErrPlayerNotFound)
}

func TestMemoryPlayerRepository_SearchTreatsInputLiterally(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPlayerRepository(NewMemoryStore())
	require.NoError(t, repo.Create(ctx, newPlayer("Maxime Vachier-Lagrave", "FRA")))
	require.NoError(t, repo.Create(ctx, newPlayer("Wesley So", "USA")))

	got, err := repo.List(ctx, "VACHIER-lag", 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.List(ctx, ".*", 1000)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryTournamentRepository_ListSortedByStartDateDesc(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTournamentRepository(NewMemoryStore())
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	older := newTournament("Tata Steel Masters 2024", base)
	newer := newTournament("US Chess Championship 2024", base.AddDate(0, 9, 0))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.List(ctx, "", 1000)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestMemoryResultRepository_JoinsDropDanglingReferences(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	players := NewMemoryPlayerRepository(store)
	tournaments := NewMemoryTournamentRepository(store)
	results := NewMemoryResultRepository(store)

	tournament := newTournament("Gibraltar Chess Festival 2024", time.Date(2024, 1, 23, 15, 0, 0, 0, time.UTC))
	require.NoError(t, tournaments.Create(ctx, tournament))
	second := newPlayer("Anish Giri", "NED")
	first := newPlayer("Wesley So", "USA")
	require.NoError(t, players.Create(ctx, second))
	require.NoError(t, players.Create(ctx, first))

	for _, res := range []*models.TournamentResult{
		{ID: models.NewID(), TournamentID: tournament.ID, PlayerID: second.ID, Points: 7, Rank: 2},
		{ID: models.NewID(), TournamentID: tournament.ID, PlayerID: first.ID, Points: 8, Rank: 1},
		{ID: models.NewID(), TournamentID: tournament.ID, PlayerID: "ghost", Points: 6, Rank: 3},
		{ID: models.NewID(), TournamentID: "missing", PlayerID: first.ID, Points: 1, Rank: 40},
	} {
		require.NoError(t, results.Create(ctx, res))
	}

	standings, err := results.ListByTournament(ctx, tournament.ID, 1000)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, first.ID, standings[0].Player.ID)
	assert.Equal(t, second.ID, standings[1].Player.ID)

	history, err := results.ListByPlayer(ctx, first.ID, 1000)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, tournament.ID, history[0].Tournament.ID)

	err = results.Create(ctx, &models.TournamentResult{ID: models.NewID(), TournamentID: tournament.ID, PlayerID: first.ID, Rank: 1})
	assert.ErrorIs(t, err, ErrResultConflict)
}
