package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/chess-registry/models"
	"github.com/Dosada05/chess-registry/repositories"
)

type FederationService interface {
	CreateFederation(ctx context.Context, input CreateFederationInput) (*models.Federation, error)
	GetAllFederations(ctx context.Context) ([]models.Federation, error)
	GetFederationByCode(ctx context.Context, code string) (*models.Federation, error)
}

type CreateFederationInput struct {
	Code string `json:"code" validate:"required,notblank"`
	Name string `json:"name" validate:"required,notblank"`
}

type federationService struct {
	federationRepo repositories.FederationRepository
	listLimit      int
}

func NewFederationService(federationRepo repositories.FederationRepository, listLimit int) FederationService {
	return &federationService{
		federationRepo: federationRepo,
		listLimit:      listLimit,
	}
}

func (s *federationService) CreateFederation(ctx context.Context, input CreateFederationInput) (*models.Federation, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	federation := &models.Federation{
		ID:        models.NewID(),
		Code:      input.Code,
		Name:      input.Name,
		CreatedAt: models.Now(),
	}

	if err := s.federationRepo.Create(ctx, federation); err != nil {
		if errors.Is(err, repositories.ErrFederationCodeConflict) {
			return nil, ErrFederationCodeConflict
		}
		return nil, fmt.Errorf("failed to create federation %q: %w", input.Code, err)
	}

	return federation, nil
}

func (s *federationService) GetAllFederations(ctx context.Context) ([]models.Federation, error) {
	federations, err := s.federationRepo.List(ctx, "", s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list federations: %w", err)
	}
	if federations == nil {
		return []models.Federation{}, nil
	}
	return federations, nil
}

func (s *federationService) GetFederationByCode(ctx context.Context, code string) (*models.Federation, error) {
	federation, err := s.federationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrFederationNotFound) {
			return nil, ErrFederationNotFound
		}
		return nil, fmt.Errorf("failed to get federation by code %q: %w", code, err)
	}
	return federation, nil
}
