package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/chess-registry/models"
)

func TestPlayerService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	input := PlayerInput{Name: "Test Player", Federation: "USA", Rating: 2000, Title: models.TitleFM}
	created, err := svc.CreatePlayer(ctx, input)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Nil(t, created.BirthYear)

	input.Rating = 2100
	updated, err := svc.UpdatePlayer(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 2100, updated.Rating)

	require.NoError(t, svc.DeletePlayer(ctx, created.ID))

	_, err = svc.GetPlayerByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.ErrorIs(t, svc.DeletePlayer(ctx, created.ID), ErrPlayerNotFound)
}

func TestPlayerService_Defaults(t *testing.T) {
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	p, err := svc.CreatePlayer(context.Background(), PlayerInput{Name: "Anon", Federation: "FID"})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Rating)
	assert.Equal(t, models.TitleNone, p.Title)
	assert.Nil(t, p.BirthYear)
}

func TestPlayerService_StoresFieldsAsSent(t *testing.T) {
	ctx := context.Background()
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	created, err := svc.CreatePlayer(ctx, PlayerInput{Name: "  Test Player ", Federation: " USA", Title: models.TitleWGM})
	require.NoError(t, err)
	assert.Equal(t, "  Test Player ", created.Name)
	assert.Equal(t, " USA", created.Federation)

	fetched, err := svc.GetPlayerByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestPlayerService_TitleIsCaseSensitive(t *testing.T) {
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	_, err := svc.CreatePlayer(context.Background(), PlayerInput{Name: "A", Federation: "IND", Title: "wgm"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Contains(t, verr.Fields, "title")
}

func TestPlayerService_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input PlayerInput
		field string
	}{
		{"missing name", PlayerInput{Federation: "USA"}, "name"},
		{"missing federation", PlayerInput{Name: "A"}, "federation"},
		{"blank name", PlayerInput{Name: " \t ", Federation: "USA"}, "name"},
		{"negative rating", PlayerInput{Name: "A", Federation: "USA", Rating: -1}, "rating"},
		{"unknown title", PlayerInput{Name: "A", Federation: "USA", Title: "NM"}, "title"},
		{"implausible birth year", PlayerInput{Name: "A", Federation: "USA", BirthYear: intPtr(42)}, "birth_year"},
	}
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlayer(context.Background(), tt.input)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestPlayerService_UpdateUnknown(t *testing.T) {
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	_, err := svc.UpdatePlayer(context.Background(), "missing", PlayerInput{Name: "A", Federation: "USA"})
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

func TestPlayerService_ListSearch(t *testing.T) {
	ctx := context.Background()
	svc := NewPlayerService(newMemoryRepos().players, 1000)

	for _, name := range []string{"Magnus Carlsen", "Hikaru Nakamura", "Fabiano Caruana"} {
		_, err := svc.CreatePlayer(ctx, PlayerInput{Name: name, Federation: "FID"})
		require.NoError(t, err)
	}

	all, err := svc.ListPlayers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	hits, err := svc.ListPlayers(ctx, "CAR")
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "Magnus Carlsen", hits[0].Name)
	assert.Equal(t, "Fabiano Caruana", hits[1].Name)

	none, err := svc.ListPlayers(ctx, ".*")
	require.NoError(t, err)
	assert.Empty(t, none)
}
