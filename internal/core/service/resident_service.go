package service

import (
	"context"
	"strings"
	"time"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type residentService struct {
	repo ports.ResidentRepository
}

// NewResidentService returns a ResidentService implementation.
func NewResidentService(repo ports.ResidentRepository) ports.ResidentService {
	return &residentService{repo: repo}
}

func (s *residentService) Create(ctx context.Context, condoID string, in ports.ResidentInput) (*domain.Resident, error) {
	status := in.Status
	if status == "" {
		status = domain.ResidentInvited
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidResidentStatus
	}

	now := time.Now().UTC()
	resident := &domain.Resident{
		CondoID:   condoID,
		Name:      in.Name,
		Surname:   in.Surname,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Unit:      in.Unit,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.repo.Create(ctx, resident)
}

func (s *residentService) Get(ctx context.Context, condoID, id string) (*domain.Resident, error) {
	return s.repo.FindByID(ctx, condoID, id)
}

func (s *residentService) List(ctx context.Context, f ports.ResidentFilter) ([]domain.Resident, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.repo.List(ctx, f)
}

func (s *residentService) Update(ctx context.Context, condoID, id string, in ports.ResidentInput) (*domain.Resident, error) {
	resident, err := s.repo.FindByID(ctx, condoID, id)
	if err != nil {
		return nil, err
	}

	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, domain.ErrInvalidResidentStatus
		}
		resident.Status = in.Status
	}
	resident.Name = in.Name
	resident.Surname = in.Surname
	resident.Email = strings.ToLower(strings.TrimSpace(in.Email))
	resident.Unit = in.Unit
	resident.Phone = in.Phone
	resident.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *residentService) Delete(ctx context.Context, condoID, id string) error {
	return s.repo.Delete(ctx, condoID, id)
}
