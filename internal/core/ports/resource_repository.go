package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// ResourceRepository defines persistence for amenity catalogue entries.
type ResourceRepository interface {
	Create(ctx context.Context, r *domain.Resource) (*domain.Resource, error)
	FindByID(ctx context.Context, condoID, id string) (*domain.Resource, error)
	List(ctx context.Context, condoID string, onlyActive bool) ([]domain.Resource, error)
	Update(ctx context.Context, r *domain.Resource) error
	Delete(ctx context.Context, condoID, id string) error
}
