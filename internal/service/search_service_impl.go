package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
	"github.com/vdtan/hoso/internal/repository"
)

type searchService struct {
	records  repository.RecordRepo
	units    repository.UnitRepo
	observer UseCaseObserver
}

// NewSearchService creates the search service. All call sites that need
// filtered personnel lists (dashboard search, export, statistics) go
// through it so results are filtered, ordered, and capped identically.
func NewSearchService(records repository.RecordRepo, units repository.UnitRepo, observers ...UseCaseObserver) SearchService {
	return &searchService{
		records:  records,
		units:    units,
		observer: observerOrNoop(observers),
	}
}

func (s *searchService) Search(ctx context.Context, c domain.FilterCriteria, opts SearchOptions) ([]*domain.PersonnelRecord, error) {
	started := time.Now()

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	if query.CycleCheck(units) {
		slog.WarnContext(ctx, "unit hierarchy contains a parent cycle, closure truncated")
	}

	out := query.Run(records, units, c, query.Options{
		SortBy:    opts.SortBy,
		Unlimited: opts.Unlimited,
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "search",
		Duration: time.Since(started),
		Fields: map[string]any{
			"scanned":   len(records),
			"matched":   len(out),
			"unlimited": opts.Unlimited,
		},
	})
	return out, nil
}
