package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/query"
	"github.com/vdtan/hoso/internal/repository"
)

type statsService struct {
	search   SearchService
	units    repository.UnitRepo
	observer UseCaseObserver
}

// NewStatsService creates the statistics service. It consumes unlimited
// search output so counts are never clipped by the UI cap, and calls the
// standalone security-alert predicate per record.
func NewStatsService(search SearchService, units repository.UnitRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{
		search:   search,
		units:    units,
		observer: observerOrNoop(observers),
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	started := time.Now()

	records, err := s.search.Search(ctx, domain.FilterCriteria{}, SearchOptions{Unlimited: true})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Total: len(records),
		AgeBuckets: map[string]int{
			domain.AgeBucket18To25: 0,
			domain.AgeBucket26To30: 0,
			domain.AgeBucket31To40: 0,
			domain.AgeBucketOver40: 0,
		},
	}
	now := time.Now()
	for _, r := range records {
		if query.HasSecurityAlert(r) {
			stats.Alerts++
		}
		if r.IsPartyMember() {
			stats.PartyMembers++
		} else if r.IsUnionMember() {
			stats.UnionMembers++
		}
		if bucket := ageBucketOf(r.Age(now)); bucket != "" {
			stats.AgeBuckets[bucket]++
		}
	}

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "stats_dashboard",
		Duration: time.Since(started),
		Fields:   map[string]any{"total": stats.Total, "alerts": stats.Alerts},
	})
	return stats, nil
}

func (s *statsService) UnitBreakdown(ctx context.Context) ([]UnitStats, error) {
	records, err := s.search.Search(ctx, domain.FilterCriteria{}, SearchOptions{Unlimited: true})
	if err != nil {
		return nil, err
	}
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}

	out := make([]UnitStats, 0, len(units))
	for _, u := range orderByHierarchy(units) {
		member := query.DescendantIDs(units, u.Unit.ID)
		us := UnitStats{Unit: u.Unit, Depth: u.Depth}
		for _, r := range records {
			if !member[r.UnitID] {
				continue
			}
			us.Total++
			if query.HasSecurityAlert(r) {
				us.Alerts++
			}
		}
		out = append(out, us)
	}
	return out, nil
}

// ageBucketOf maps a whole-year age to its bucket label; "" for ages
// outside every bucket (including the 0 of an unknown birth date).
func ageBucketOf(age int) string {
	switch {
	case age >= 18 && age <= 25:
		return domain.AgeBucket18To25
	case age >= 26 && age <= 30:
		return domain.AgeBucket26To30
	case age >= 31 && age <= 40:
		return domain.AgeBucket31To40
	case age > 40:
		return domain.AgeBucketOver40
	default:
		return ""
	}
}

type hierarchyEntry struct {
	Unit  *domain.Unit
	Depth int
}

// orderByHierarchy flattens the unit forest depth-first, roots in name
// order, so the breakdown renders as an indented tree.
func orderByHierarchy(units []*domain.Unit) []hierarchyEntry {
	children := make(map[string][]*domain.Unit)
	var roots []*domain.Unit
	for _, u := range units {
		if u.ParentID == nil {
			roots = append(roots, u)
		} else {
			children[*u.ParentID] = append(children[*u.ParentID], u)
		}
	}
	byName := func(list []*domain.Unit) {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	byName(roots)

	var out []hierarchyEntry
	seen := make(map[string]bool)
	var walk func(u *domain.Unit, depth int)
	walk = func(u *domain.Unit, depth int) {
		if seen[u.ID] {
			return
		}
		seen[u.ID] = true
		out = append(out, hierarchyEntry{Unit: u, Depth: depth})
		kids := children[u.ID]
		byName(kids)
		for _, k := range kids {
			walk(k, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return out
}
