package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vdtan/hoso/internal/domain"
	"github.com/vdtan/hoso/internal/testutil"
)

func threeLevelUnits() []*domain.Unit {
	return []*domain.Unit{
		testutil.NewTestUnit("a", "Tiểu đoàn 1", ""),
		testutil.NewTestUnit("b", "Đại đội 2", "a"),
		testutil.NewTestUnit("c", "Trung đội 3", "b"),
		testutil.NewTestUnit("x", "Tiểu đoàn 9", ""),
	}
}

func TestDescendantIDs_TransitiveClosure(t *testing.T) {
	units := threeLevelUnits()

	fromRoot := DescendantIDs(units, "a")
	assert.Equal(t, map[string]bool{"a": true, "b": true, "c": true}, fromRoot)

	fromMiddle := DescendantIDs(units, "b")
	assert.Equal(t, map[string]bool{"b": true, "c": true}, fromMiddle)
	assert.False(t, fromMiddle["a"], "closure never includes ancestors")

	leaf := DescendantIDs(units, "c")
	assert.Equal(t, map[string]bool{"c": true}, leaf)
}

func TestDescendantIDs_UnknownRoot(t *testing.T) {
	got := DescendantIDs(threeLevelUnits(), "missing")
	assert.Equal(t, map[string]bool{"missing": true}, got)
}

func TestDescendantIDs_CycleTruncates(t *testing.T) {
	// A parent cycle violates the construction invariant; the walk must
	// terminate anyway.
	units := []*domain.Unit{
		testutil.NewTestUnit("a", "A", "b"),
		testutil.NewTestUnit("b", "B", "a"),
	}
	got := DescendantIDs(units, "a")
	assert.Equal(t, map[string]bool{"a": true, "b": true}, got)
}

func TestCycleCheck(t *testing.T) {
	assert.False(t, CycleCheck(threeLevelUnits()))

	cyclic := []*domain.Unit{
		testutil.NewTestUnit("a", "A", "b"),
		testutil.NewTestUnit("b", "B", "a"),
	}
	assert.True(t, CycleCheck(cyclic))
}
