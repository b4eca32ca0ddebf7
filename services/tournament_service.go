package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

type TournamentService interface {
	CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error)
	ListTournaments(ctx context.Context, search string) ([]models.Tournament, error)
	GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error)
	UpdateTournament(ctx context.Context, id string, input TournamentInput) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
}

type TournamentInput struct {
	Name        string           `json:"name" validate:"required,notblank"`
	Location    string           `json:"location" validate:"required,notblank"`
	StartDate   models.Timestamp `json:"start_date" validate:"required"`
	EndDate     models.Timestamp `json:"end_date" validate:"required,gtefield=StartDate"`
	Rounds      int              `json:"rounds" validate:"gte=1"`
	TimeControl string           `json:"time_control" validate:"required,notblank"`
	Arbiter     string           `json:"arbiter" validate:"required,notblank"`
}

// record builds the stored shape of in. Dates are kept in UTC at millisecond precision.
func (in TournamentInput) record(id string) *models.Tournament {
	return &models.Tournament{
		ID:          id,
		Name:        in.Name,
		Location:    in.Location,
		StartDate:   models.NormalizeTime(in.StartDate.Time()),
		EndDate:     models.NormalizeTime(in.EndDate.Time()),
		Rounds:      in.Rounds,
		TimeControl: in.TimeControl,
		Arbiter:     in.Arbiter,
	}
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	listLimit      int
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, listLimit int) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		listLimit:      listLimit,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input TournamentInput) (*models.Tournament, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tournament := input.record(models.NewID())
	tournament.CreatedAt = models.Now()

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament %q: %w", input.Name, err)
	}
	return tournament, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, search string) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx, search, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	if tournaments == nil {
		return []models.Tournament{}, nil
	}
	return tournaments, nil
}

func (s *tournamentService) GetTournamentByID(ctx context.Context, id string) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament by id %s: %w", id, err)
	}
	return tournament, nil
}

func (s *tournamentService) UpdateTournament(ctx context.Context, id string, input TournamentInput) (*models.Tournament, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tournamentToUpdate := input.record(id)

	if err := s.tournamentRepo.Update(ctx, tournamentToUpdate); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to update tournament (id: %s): %w", id, err)
	}

	return s.GetTournamentByID(ctx, id)
}

func (s *tournamentService) DeleteTournament(ctx context.Context, id string) error {
	if err := s.tournamentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to delete tournament (id: %s): %w", id, err)
	}
	return nil
}
