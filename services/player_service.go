package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	ListPlayers(ctx context.Context, search string) ([]models.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id string, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

// PlayerInput is the creation shape of a player. Updates take the same shape
// and replace every field it carries.
type PlayerInput struct {
	Name       string       `json:"name" validate:"required,notblank"`
	Federation string       `json:"federation" validate:"required,notblank"`
	Rating     int          `json:"rating" validate:"gte=0"`
	Title      models.Title `json:"title" validate:"chesstitle"`
	BirthYear  *int         `json:"birth_year" validate:"omitempty,gte=1800,lte=2100"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	listLimit  int
}

func NewPlayerService(playerRepo repositories.PlayerRepository, listLimit int) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		listLimit:  listLimit,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:         models.NewID(),
		Name:       input.Name,
		Federation: input.Federation,
		Rating:     input.Rating,
		Title:      input.Title,
		BirthYear:  input.BirthYear,
		CreatedAt:  models.Now(),
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, search string) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx, search, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %s: %w", id, err)
	}
	return player, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, input PlayerInput) (*models.Player, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	playerToUpdate := &models.Player{
		ID:         id,
		Name:       input.Name,
		Federation: input.Federation,
		Rating:     input.Rating,
		Title:      input.Title,
		BirthYear:  input.BirthYear,
	}

	if err := s.playerRepo.Update(ctx, playerToUpdate); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to update player (id: %s): %w", id, err)
	}

	// Re-read so the response carries the stored id and created_at.
	return s.GetPlayerByID(ctx, id)
}

func (s *playerService) DeletePlayer(ctx context.Context, id string) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player (id: %s): %w", id, err)
	}
	return nil
}
