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

type recordService struct {
	records repository.RecordRepo
	units   repository.UnitRepo
}

// NewRecordService creates the record CRUD service. The unit repository is
// used to snapshot the unit display name onto the record at save time.
func NewRecordService(records repository.RecordRepo, units repository.UnitRepo) RecordService {
	return &recordService{records: records, units: units}
}

func (s *recordService) Create(ctx context.Context, r *domain.PersonnelRecord) error {
	if strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.snapshotUnitName(ctx, r)
	return s.records.Create(ctx, r)
}

func (s *recordService) Get(ctx context.Context, id string) (*domain.PersonnelRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) List(ctx context.Context) ([]*domain.PersonnelRecord, error) {
	return s.records.List(ctx)
}

func (s *recordService) Update(ctx context.Context, r *domain.PersonnelRecord) error {
	if strings.TrimSpace(r.FullName) == "" {
		return fmt.Errorf("full name is required")
	}
	r.UpdatedAt = time.Now().UTC()
	s.snapshotUnitName(ctx, r)
	return s.records.Update(ctx, r)
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	return s.records.Delete(ctx, id)
}

// snapshotUnitName refreshes the denormalized unit name from the live unit
// when the referenced unit still exists. The snapshot may drift after a
// later unit rename; that staleness is accepted and repaired on the next
// save of the record.
func (s *recordService) snapshotUnitName(ctx context.Context, r *domain.PersonnelRecord) {
	if r.UnitID == "" {
		r.UnitName = ""
		return
	}
	if u, err := s.units.GetByID(ctx, r.UnitID); err == nil {
		r.UnitName = u.Name
	}
}
