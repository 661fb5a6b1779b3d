package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/repository"
)

type unitService struct {
	units repository.UnitRepo
}

// NewUnitService creates the organizational-unit service.
func NewUnitService(units repository.UnitRepo) UnitService {
	return &unitService{units: units}
}

func (s *unitService) Create(ctx context.Context, name, parentID string) (*domain.Unit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("unit name is required")
	}

	u := &domain.Unit{
		ID:   uuid.New().String(),
		Name: name,
	}
	// Units are only created as roots or as children of existing units,
	// which keeps the forest acyclic.
	if parentID != "" {
		if _, err := s.units.GetByID(ctx, parentID); err != nil {
			return nil, fmt.Errorf("resolving parent unit: %w", err)
		}
		u.ParentID = &parentID
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.units.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *unitService) Get(ctx context.Context, id string) (*domain.Unit, error) {
	return s.units.GetByID(ctx, id)
}

func (s *unitService) List(ctx context.Context) ([]*domain.Unit, error) {
	return s.units.List(ctx)
}

func (s *unitService) Rename(ctx context.Context, id, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("unit name is required")
	}
	u, err := s.units.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Name = name
	u.UpdatedAt = time.Now().UTC()
	return s.units.Update(ctx, u)
}

func (s *unitService) Delete(ctx context.Context, id string) error {
	// Descendants go with the subtree root; records keep their unit id and
	// simply stop matching unit filters.
	return s.units.Delete(ctx, id)
}
