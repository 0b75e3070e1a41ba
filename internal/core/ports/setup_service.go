package ports

import (
	"context"

	"github.com/lifebit/platform/internal/core/domain"
)

// SetupInput carries the fields collected by the setup wizard.
type SetupInput struct {
	Name    string
	Address string
	City    string
	Units   int
}

// SetupService backs the onboarding wizard for a condominium.
type SetupService interface {
	Status(ctx context.Context, condoID string) (*domain.Condominium, error)
	// Save stores the wizard data; complete marks the wizard finished.
	Save(ctx context.Context, condoID string, in SetupInput, complete bool) (*domain.Condominium, error)
}
