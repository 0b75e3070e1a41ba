package service

import (
	"context"
	"time"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type resourceService struct {
	repo ports.ResourceRepository
}

// NewResourceService returns a ResourceService implementation.
func NewResourceService(repo ports.ResourceRepository) ports.ResourceService {
	return &resourceService{repo: repo}
}

func (s *resourceService) Create(ctx context.Context, condoID string, in ports.ResourceInput) (*domain.Resource, error) {
	now := time.Now().UTC()
	resource := &domain.Resource{
		CondoID:     condoID,
		Name:        in.Name,
		Description: in.Description,
		Capacity:    in.Capacity,
		OpensAt:     in.OpensAt,
		ClosesAt:    in.ClosesAt,
		Active:      in.Active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, resource)
}

func (s *resourceService) Get(ctx context.Context, condoID, id string) (*domain.Resource, error) {
	return s.repo.FindByID(ctx, condoID, id)
}

func (s *resourceService) List(ctx context.Context, condoID string, onlyActive bool) ([]domain.Resource, error) {
	return s.repo.List(ctx, condoID, onlyActive)
}

func (s *resourceService) Update(ctx context.Context, condoID, id string, in ports.ResourceInput) (*domain.Resource, error) {
	resource, err := s.repo.FindByID(ctx, condoID, id)
	if err != nil {
		return nil, err
	}

	resource.Name = in.Name
	resource.Description = in.Description
	resource.Capacity = in.Capacity
	resource.OpensAt = in.OpensAt
	resource.ClosesAt = in.ClosesAt
	resource.Active = in.Active
	resource.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) Delete(ctx context.Context, condoID, id string) error {
	return s.repo.Delete(ctx, condoID, id)
}
