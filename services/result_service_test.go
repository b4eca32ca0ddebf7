package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/chess-registry/models"
)

type recordingNotifier struct {
	results []*models.TournamentResult
}

func (n *recordingNotifier) NotifyResultCreated(result *models.TournamentResult) {
	n.results = append(n.results, result)
}

func TestResultService_TournamentStandings(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	players := NewPlayerService(repos.players, 1000)
	tournaments := NewTournamentService(repos.tournaments, 1000)
	notifier := &recordingNotifier{}
	svc := NewResultService(repos.results, notifier, 1000)

	tournament, err := tournaments.CreateTournament(ctx, validTournamentInput("Candidates", date(2024, time.April, 3)))
	require.NoError(t, err)
	winner, err := players.CreatePlayer(ctx, PlayerInput{Name: "Winner", Federation: "IND", Rating: 2750})
	require.NoError(t, err)
	runnerUp, err := players.CreatePlayer(ctx, PlayerInput{Name: "Runner-up", Federation: "USA", Rating: 2780})
	require.NoError(t, err)

	_, err = svc.CreateResult(ctx, ResultInput{TournamentID: tournament.ID, PlayerID: runnerUp.ID, Points: 8.5, Rank: 2})
	require.NoError(t, err)
	created, err := svc.CreateResult(ctx, ResultInput{
		TournamentID: tournament.ID, PlayerID: winner.ID, Points: 9, Rank: 1, PerformanceRating: intPtr(2850),
	})
	require.NoError(t, err)
	assert.Equal(t, 2850, *created.PerformanceRating)

	// A result pointing at a player that does not exist is stored but never joined.
	_, err = svc.CreateResult(ctx, ResultInput{TournamentID: tournament.ID, PlayerID: "ghost", Points: 1, Rank: 8})
	require.NoError(t, err)
	assert.Len(t, notifier.results, 3)

	standings, err := svc.ListTournamentResults(ctx, tournament.ID)
	require.NoError(t, err)
	require.Len(t, standings, 2)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, winner.ID, standings[0].Player.ID)
	assert.Equal(t, 2, standings[1].Rank)
	assert.Equal(t, runnerUp.ID, standings[1].Player.ID)
}

func TestResultService_PlayerHistory(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	players := NewPlayerService(repos.players, 1000)
	tournaments := NewTournamentService(repos.tournaments, 1000)
	svc := NewResultService(repos.results, nil, 1000)

	player, err := players.CreatePlayer(ctx, PlayerInput{Name: "Traveller", Federation: "NED"})
	require.NoError(t, err)
	older, err := tournaments.CreateTournament(ctx, validTournamentInput("Older", date(2021, time.January, 5)))
	require.NoError(t, err)
	newer, err := tournaments.CreateTournament(ctx, validTournamentInput("Newer", date(2023, time.January, 5)))
	require.NoError(t, err)

	for _, id := range []string{older.ID, newer.ID, "deleted-tournament"} {
		_, err := svc.CreateResult(ctx, ResultInput{TournamentID: id, PlayerID: player.ID, Points: 5, Rank: 3})
		require.NoError(t, err)
	}

	history, err := svc.ListPlayerResults(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Newer", history[0].Tournament.Name)
	assert.Equal(t, "Older", history[1].Tournament.Name)

	empty, err := svc.ListPlayerResults(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestResultService_DuplicatePair(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	svc := NewResultService(newMemoryRepos().results, notifier, 1000)

	input := ResultInput{TournamentID: "t1", PlayerID: "p1", Points: 4, Rank: 5}
	_, err := svc.CreateResult(ctx, input)
	require.NoError(t, err)

	_, err = svc.CreateResult(ctx, input)
	assert.ErrorIs(t, err, ErrResultConflict)
	assert.Len(t, notifier.results, 1)
}

func TestResultService_Validation(t *testing.T) {
	svc := NewResultService(newMemoryRepos().results, nil, 1000)

	_, err := svc.CreateResult(context.Background(), ResultInput{Points: -1, Rank: 0, PerformanceRating: intPtr(-5)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 5)
	for _, field := range []string{"tournament_id", "player_id", "points", "rank", "performance_rating"} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestResultService_StorageFailureIsWrapped(t *testing.T) {
	storageErr := errors.New("connection reset")
	repo := &mockResultRepository{
		CreateFn: func(context.Context, *models.TournamentResult) error { return storageErr },
	}
	notifier := &recordingNotifier{}
	svc := NewResultService(repo, notifier, 1000)

	_, err := svc.CreateResult(context.Background(), ResultInput{TournamentID: "t", PlayerID: "p", Points: 1, Rank: 1})
	assert.ErrorIs(t, err, storageErr)
	assert.Empty(t, notifier.results)
}
