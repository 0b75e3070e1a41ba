package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// ResidentFilter narrows List queries.
type ResidentFilter struct {
	CondoID string
	Status  domain.ResidentStatus
	Page    int
	Limit   int
}

// ResidentRepository defines persistence for resident records.
type ResidentRepository interface {
	Create(ctx context.Context, r *domain.Resident) (*domain.Resident, error)
	FindByID(ctx context.Context, condoID, id string) (*domain.Resident, error)
	List(ctx context.Context, f ResidentFilter) ([]domain.Resident, int64, error)
	Update(ctx context.Context, r *domain.Resident) error
	Delete(ctx context.Context, condoID, id string) error
}
