package repository

import (
	"context"

	"github.com/vdtan/hoso/internal/domain"
)

// RecordRepo persists personnel records. The query engine never writes;
// everything that mutates a record goes through here.
type RecordRepo interface {
	Create(ctx context.Context, r *domain.PersonnelRecord) error
	GetByID(ctx context.Context, id string) (*domain.PersonnelRecord, error)
	// List returns every record ordered by creation time ascending; the
	// engine applies its own ordering on top.
	List(ctx context.Context) ([]*domain.PersonnelRecord, error)
	ListByUnit(ctx context.Context, unitID string) ([]*domain.PersonnelRecord, error)
	Update(ctx context.Context, r *domain.PersonnelRecord) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// UnitRepo persists organizational units. Deleting a unit cascades to its
// descendants at the storage layer.
type UnitRepo interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id string) error
}
