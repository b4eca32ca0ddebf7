package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

type SearchService interface {
	Search(ctx context.Context, query string) (*models.SearchResults, error)
}

type searchService struct {
	playerRepo     repositories.PlayerRepository
	tournamentRepo repositories.TournamentRepository
	federationRepo repositories.FederationRepository
	limit          int
}

func NewSearchService(
	playerRepo repositories.PlayerRepository,
	tournamentRepo repositories.TournamentRepository,
	federationRepo repositories.FederationRepository,
	limit int,
) SearchService {
	return &searchService{
		playerRepo:     playerRepo,
		tournamentRepo: tournamentRepo,
		federationRepo: federationRepo,
		limit:          limit,
	}
}

// Search looks the query up in players, tournaments and federations concurrently.
// Each category is capped independently; there is no ranking across categories.
func (s *searchService) Search(ctx context.Context, query string) (*models.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ValidationError{Fields: map[string]string{"q": "must be provided"}}
	}

	var (
		players     []models.Player
		tournaments []models.Tournament
		federations []models.Federation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if players, err = s.playerRepo.List(gctx, query, s.limit); err != nil {
			return fmt.Errorf("failed to search players: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if tournaments, err = s.tournamentRepo.List(gctx, query, s.limit); err != nil {
			return fmt.Errorf("failed to search tournaments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if federations, err = s.federationRepo.List(gctx, query, s.limit); err != nil {
			return fmt.Errorf("failed to search federations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := &models.SearchResults{
		Players:     players,
		Tournaments: tournaments,
		Federations: federations,
	}
	if results.Players == nil {
		results.Players = []models.Player{}
	}
	if results.Tournaments == nil {
		results.Tournaments = []models.Tournament{}
	}
	if results.Federations == nil {
		results.Federations = []models.Federation{}
	}
	return results, nil
}
