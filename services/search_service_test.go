package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/chess-registry/models"
)

func TestSearchService_AllCategories(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	federations := NewFederationService(repos.federations, 1000)
	players := NewPlayerService(repos.players, 1000)
	tournaments := NewTournamentService(repos.tournaments, 1000)
	svc := NewSearchService(repos.players, repos.tournaments, repos.federations, 10)

	_, err := federations.CreateFederation(ctx, CreateFederationInput{Code: "NOR", Name: "Norway"})
	require.NoError(t, err)
	_, err = federations.CreateFederation(ctx, CreateFederationInput{Code: "USA", Name: "United States"})
	require.NoError(t, err)
	_, err = players.CreatePlayer(ctx, PlayerInput{Name: "Norbert Nordic", Federation: "NOR"})
	require.NoError(t, err)
	_, err = tournaments.CreateTournament(ctx, validTournamentInput("Norway Chess", date(2024, time.May, 27)))
	require.NoError(t, err)

	results, err := svc.Search(ctx, "nor")
	require.NoError(t, err)
	require.Len(t, results.Players, 1)
	require.Len(t, results.Tournaments, 1)
	require.Len(t, results.Federations, 1)
	assert.Equal(t, "NOR", results.Federations[0].Code)

	byCode, err := svc.Search(ctx, "us")
	require.NoError(t, err)
	require.Len(t, byCode.Federations, 1)
	assert.Equal(t, "USA", byCode.Federations[0].Code)
	assert.NotNil(t, byCode.Players)
	assert.Empty(t, byCode.Players)
}

func TestSearchService_CapPerCategory(t *testing.T) {
	ctx := context.Background()
	repos := newMemoryRepos()
	players := NewPlayerService(repos.players, 1000)
	svc := NewSearchService(repos.players, repos.tournaments, repos.federations, 10)

	for i := 0; i < 15; i++ {
		_, err := players.CreatePlayer(ctx, PlayerInput{Name: fmt.Sprintf("Smith %02d", i), Federation: "ENG"})
		require.NoError(t, err)
	}

	results, err := svc.Search(ctx, "smith")
	require.NoError(t, err)
	assert.Len(t, results.Players, 10)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	repos := newMemoryRepos()
	svc := NewSearchService(repos.players, repos.tournaments, repos.federations, 10)

	_, err := svc.Search(context.Background(), "   ")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"q": "must be provided"}, verr.Fields)
}

func TestSearchService_FailingCategoryFailsSearch(t *testing.T) {
	repos := newMemoryRepos()
	storageErr := errors.New("players collection unavailable")
	playerRepo := &mockPlayerRepository{
		ListFn: func(context.Context, string, int) ([]models.Player, error) { return nil, storageErr },
	}
	svc := NewSearchService(playerRepo, repos.tournaments, repos.federations, 10)

	_, err := svc.Search(context.Background(), "anything")
	assert.ErrorIs(t, err, storageErr)
}
