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

func TestTournamentService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewTournamentService(newMemoryRepos().tournaments, 1000)

	input := validTournamentInput("Tata Steel", date(2024, time.January, 13))
	created, err := svc.CreateTournament(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 9, created.Rounds)

	got, err := svc.GetTournamentByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	input.Rounds = 13
	input.Location = "Amsterdam"
	updated, err := svc.UpdateTournament(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, 13, updated.Rounds)
	assert.Equal(t, "Amsterdam", updated.Location)

	require.NoError(t, svc.DeleteTournament(ctx, created.ID))
	_, err = svc.GetTournamentByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestTournamentService_DatesNormalizedToUTC(t *testing.T) {
	svc := NewTournamentService(newMemoryRepos().tournaments, 1000)

	zone := time.FixedZone("CET", 3600)
	input := validTournamentInput("Local", time.Date(2024, time.March, 1, 10, 0, 0, 123456789, zone))
	created, err := svc.CreateTournament(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, time.UTC, created.StartDate.Location())
	assert.Equal(t, time.Date(2024, time.March, 1, 9, 0, 0, 123000000, time.UTC), created.StartDate)
}

func TestTournamentService_Validation(t *testing.T) {
	svc := NewTournamentService(newMemoryRepos().tournaments, 1000)

	input := validTournamentInput("Backwards", date(2024, time.May, 10))
	input.EndDate = models.Timestamp(date(2024, time.May, 1))
	input.Rounds = 0
	input.Arbiter = ""

	_, err := svc.CreateTournament(context.Background(), input)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "must not be before start_date", verr.Fields["end_date"])
	assert.Equal(t, "must be greater than or equal to 1", verr.Fields["rounds"])
	assert.Equal(t, "must be provided", verr.Fields["arbiter"])
}

func TestTournamentService_ListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewTournamentService(newMemoryRepos().tournaments, 1000)

	for _, tc := range []struct {
		name  string
		start time.Time
	}{
		{"Open 2022", date(2022, time.June, 1)},
		{"Open 2024", date(2024, time.June, 1)},
		{"Open 2023", date(2023, time.June, 1)},
	} {
		_, err := svc.CreateTournament(ctx, validTournamentInput(tc.name, tc.start))
		require.NoError(t, err)
	}

	list, err := svc.ListTournaments(ctx, "open")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Open 2024", list[0].Name)
	assert.Equal(t, "Open 2023", list[1].Name)
	assert.Equal(t, "Open 2022", list[2].Name)
}
