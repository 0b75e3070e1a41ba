package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// ResourceInput carries the writable fields of an amenity.
type ResourceInput struct {
	Name        string
	Description string
	Capacity    int
	OpensAt     string
	ClosesAt    string
	Active      bool
}

type ResourceService interface {
	Create(ctx context.Context, condoID string, in ResourceInput) (*domain.Resource, error)
	Get(ctx context.Context, condoID, id string) (*domain.Resource, error)
	List(ctx context.Context, condoID string, onlyActive bool) ([]domain.Resource, error)
	Update(ctx context.Context, condoID, id string, in ResourceInput) (*domain.Resource, error)
	Delete(ctx context.Context, condoID, id string) error
}
