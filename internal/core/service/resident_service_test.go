package service

import (
	"context"
	"testing"

	"github.com/lifebit/platform/internal/core/domain"
	"github.com/lifebit/platform/internal/core/ports"
)

type stubResidentRepo struct {
	createFunc   func(ctx context.Context, r *domain.Resident) (*domain.Resident, error)
	findByIDFunc func(ctx context.Context, condoID, id string) (*domain.Resident, error)
	listFunc     func(ctx context.Context, f ports.ResidentFilter) ([]domain.Resident, int64, error)
	updateFunc   func(ctx context.Context, r *domain.Resident) error
	deleteFunc   func(ctx context.Context, condoID, id string) error
}

func (s *stubResidentRepo) Create(ctx context.Context, r *domain.Resident) (*domain.Resident, error) {
	return s.createFunc(ctx, r)
}
func (s *stubResidentRepo) FindByID(ctx context.Context, condoID, id string) (*domain.Resident, error) {
	return s.findByIDFunc(ctx, condoID, id)
}
func (s *stubResidentRepo) List(ctx context.Context, f ports.ResidentFilter) ([]domain.Resident, int64, error) {
	return s.listFunc(ctx, f)
}
func (s *stubResidentRepo) Update(ctx context.Context, r *domain.Resident) error {
	return s.updateFunc(ctx, r)
}
func (s *stubResidentRepo) Delete(ctx context.Context, condoID, id string) error {
	return s.deleteFunc(ctx, condoID, id)
}

func TestResidentCreateDefaultsToInvited(t *testing.T) {
	repo := &stubResidentRepo{
		createFunc: func(ctx context.Context, r *domain.Resident) (*domain.Resident, error) {
			return r, nil
		},
	}
	svc := NewResidentService(repo)

	resident, err := svc.Create(context.Background(), "c1", ports.ResidentInput{
		Name:  "Ana",
		Email: " Ana@Example.com ",
		Unit:  "A-101",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if resident.Status != domain.ResidentInvited {
		t.Fatalf("expected invited, got %s", resident.Status)
	}
	if resident.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", resident.Email)
	}
	if resident.CondoID != "c1" {
		t.Fatalf("condo not bound: %q", resident.CondoID)
	}
}

func TestResidentCreateRejectsUnknownStatus(t *testing.T) {
	svc := NewResidentService(&stubResidentRepo{})

	_, err := svc.Create(context.Background(), "c1", ports.ResidentInput{Name: "Ana", Status: "vip"})
	if err != domain.ErrInvalidResidentStatus {
		t.Fatalf("expected ErrInvalidResidentStatus, got %v", err)
	}
}

func TestResidentListClampsPagination(t *testing.T) {
	var seen ports.ResidentFilter
	repo := &stubResidentRepo{
		listFunc: func(ctx context.Context, f ports.ResidentFilter) ([]domain.Resident, int64, error) {
			seen = f
			return nil, 0, nil
		},
	}
	svc := NewResidentService(repo)

	if _, _, err := svc.List(context.Background(), ports.ResidentFilter{CondoID: "c1", Page: -3, Limit: 500}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if seen.Page != 1 || seen.Limit != 20 {
		t.Fatalf("expected clamped page 1 limit 20, got %d/%d", seen.Page, seen.Limit)
	}
}
