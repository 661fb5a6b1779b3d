package service

import (
	"context"
	"io"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
)

// RecordService manages the personnel-record lifecycle. Create assigns the
// id and timestamps; Update expects the full record merged onto the
// last-known state by the caller and refreshes the denormalized unit name.
type RecordService interface {
	Create(ctx context.Context, r *domain.PersonnelRecord) error
	Get(ctx context.Context, id string) (*domain.PersonnelRecord, error)
	List(ctx context.Context) ([]*domain.PersonnelRecord, error)
	Update(ctx context.Context, r *domain.PersonnelRecord) error
	Delete(ctx context.Context, id string) error
}

// UnitService manages the organizational-unit forest.
type UnitService interface {
	Create(ctx context.Context, name, parentID string) (*domain.Unit, error)
	Get(ctx context.Context, id string) (*domain.Unit, error)
	List(ctx context.Context) ([]*domain.Unit, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

// SearchOptions configures one search beyond the filter criteria.
type SearchOptions struct {
	SortBy query.SortBy
	// Unlimited skips the row cap. Export and statistics always search
	// unlimited so their output is complete.
	Unlimited bool
}

// SearchService runs the query engine over the materialized collection.
type SearchService interface {
	Search(ctx context.Context, c domain.FilterCriteria, opts SearchOptions) ([]*domain.PersonnelRecord, error)
}

// DashboardStats is the summary block shown on the dashboard.
type DashboardStats struct {
	Total        int
	Alerts       int
	PartyMembers int
	UnionMembers int
	AgeBuckets   map[string]int
}

// UnitStats is the aggregate for one unit including all of its descendants.
type UnitStats struct {
	Unit   *domain.Unit
	Depth  int
	Total  int
	Alerts int
}

// StatsService computes dashboard counters and unit-tree aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	UnitBreakdown(ctx context.Context) ([]UnitStats, error)
}

// ExportFormat selects the export serialization.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ExportService writes complete (unlimited) query results to a stream.
// The returned count is the number of exported rows.
type ExportService interface {
	Export(ctx context.Context, c domain.FilterCriteria, sortBy query.SortBy, format ExportFormat, w io.Writer) (int, error)
}
