package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

// ResultNotifier is told about every stored result. The live hub implements it.
type ResultNotifier interface {
	NotifyResultCreated(result *models.TournamentResult)
}

type ResultService interface {
	CreateResult(ctx context.Context, input ResultInput) (*models.TournamentResult, error)
	ListTournamentResults(ctx context.Context, tournamentID string) ([]models.ResultWithPlayer, error)
	ListPlayerResults(ctx context.Context, playerID string) ([]models.ResultWithTournament, error)
}

type ResultInput struct {
	TournamentID      string  `json:"tournament_id" validate:"required,notblank"`
	PlayerID          string  `json:"player_id" validate:"required,notblank"`
	Points            float64 `json:"points" validate:"gte=0"`
	Rank              int     `json:"rank" validate:"gte=1"`
	Tiebreak1         float64 `json:"tiebreak1"`
	Tiebreak2         float64 `json:"tiebreak2"`
	Tiebreak3         float64 `json:"tiebreak3"`
	PerformanceRating *int    `json:"performance_rating" validate:"omitempty,gte=0"`
}

type resultService struct {
	resultRepo repositories.ResultRepository
	notifier   ResultNotifier
	listLimit  int
}

// NewResultService builds the result service. notifier may be nil.
func NewResultService(resultRepo repositories.ResultRepository, notifier ResultNotifier, listLimit int) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		notifier:   notifier,
		listLimit:  listLimit,
	}
}

func (s *resultService) CreateResult(ctx context.Context, input ResultInput) (*models.TournamentResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	result := &models.TournamentResult{
		ID:                models.NewID(),
		TournamentID:      input.TournamentID,
		PlayerID:          input.PlayerID,
		Points:            input.Points,
		Rank:              input.Rank,
		Tiebreak1:         input.Tiebreak1,
		Tiebreak2:         input.Tiebreak2,
		Tiebreak3:         input.Tiebreak3,
		PerformanceRating: input.PerformanceRating,
		CreatedAt:         models.Now(),
	}

	if err := s.resultRepo.Create(ctx, result); err != nil {
		if errors.Is(err, repositories.ErrResultConflict) {
			return nil, ErrResultConflict
		}
		return nil, fmt.Errorf("failed to create result for player %s in tournament %s: %w",
			input.PlayerID, input.TournamentID, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyResultCreated(result)
	}
	return result, nil
}

func (s *resultService) ListTournamentResults(ctx context.Context, tournamentID string) ([]models.ResultWithPlayer, error) {
	results, err := s.resultRepo.ListByTournament(ctx, tournamentID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results of tournament %s: %w", tournamentID, err)
	}
	if results == nil {
		return []models.ResultWithPlayer{}, nil
	}
	return results, nil
}

func (s *resultService) ListPlayerResults(ctx context.Context, playerID string) ([]models.ResultWithTournament, error) {
	results, err := s.resultRepo.ListByPlayer(ctx, playerID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results of player %s: %w", playerID, err)
	}
	if results == nil {
		return []models.ResultWithTournament{}, nil
	}
	return results, nil
}
