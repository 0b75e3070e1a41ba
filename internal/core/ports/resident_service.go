package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// ResidentInput carries the writable fields of a resident record.
type ResidentInput struct {
	Name    string
	Surname string
	Email   string
	Unit    string
	Phone   string
	Status  domain.ResidentStatus
}

type ResidentService interface {
	Create(ctx context.Context, condoID string, in ResidentInput) (*domain.Resident, error)
	Get(ctx context.Context, condoID, id string) (*domain.Resident, error)
	List(ctx context.Context, f ResidentFilter) ([]domain.Resident, int64, error)
	Update(ctx context.Context, condoID, id string, in ResidentInput) (*domain.Resident, error)
	Delete(ctx context.Context, condoID, id string) error
}
