package service

import (
	"context"
	"time"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type setupService struct {
	repo ports.CondoRepository
}

// NewSetupService returns a SetupService implementation.
func NewSetupService(repo ports.CondoRepository) ports.SetupService {
	return &setupService{repo: repo}
}

func (s *setupService) Status(ctx context.Context, condoID string) (*domain.Condominium, error) {
	return s.repo.FindByID(ctx, condoID)
}

func (s *setupService) Save(ctx context.Context, condoID string, in ports.SetupInput, complete bool) (*domain.Condominium, error) {
	now := time.Now().UTC()

	condo, err := s.repo.FindByID(ctx, condoID)
	if err == domain.ErrCondoNotFound {
		condo = &domain.Condominium{ID: condoID, CreatedAt: now}
	} else if err != nil {
		return nil, err
	}

	condo.Name = in.Name
	condo.Address = in.Address
	condo.City = in.City
	condo.Units = in.Units
	condo.UpdatedAt = now
	// The wizard never un-completes; partial saves keep the flag.
	if complete {
		condo.SetupComplete = true
	}

	return s.repo.Upsert(ctx, condo)
}
