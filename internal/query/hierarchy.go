package query

import "github.com/vdtan/hoso/internal/domain"

// DescendantIDs returns the id set of the unit rooted at rootID together
// with all of its transitive descendants. The unit forest is acyclic by
// construction; the visited set guards against an accidental cycle anyway,
// truncating the walk instead of recursing forever. Callers that care can
// detect truncation with CycleCheck.
func DescendantIDs(units []*domain.Unit, rootID string) map[string]bool {
	children := make(map[string][]string, len(units))
	for _, u := range units {
		if u.ParentID != nil {
			children[*u.ParentID] = append(children[*u.ParentID], u.ID)
		}
	}

	visited := make(map[string]bool)
	var walk func(id string)
	walk = func(id string) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, c := range children[id] {
			walk(c)
		}
	}
	walk(rootID)
	return visited
}

// CycleCheck reports whether the unit forest contains a parent cycle
// reachable from any unit. Used by callers to log a warning; a cycle is
// never a crash.
func CycleCheck(units []*domain.Unit) bool {
	parent := make(map[string]string, len(units))
	for _, u := range units {
		if u.ParentID != nil {
			parent[u.ID] = *u.ParentID
		}
	}
	for id := range parent {
		seen := map[string]bool{id: true}
		cur := id
		for {
			next, ok := parent[cur]
			if !ok {
				break
			}
			if seen[next] {
				return true
			}
			seen[next] = true
			cur = next
		}
	}
	return false
}
