package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// CondoRepository defines persistence for the condominium profile.
type CondoRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Condominium, error)
	Upsert(ctx context.Context, c *domain.Condominium) (*domain.Condominium, error)
}
