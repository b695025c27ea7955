package euler

import (
	"fmt"

	"github.com/katalvlaran/eulertour/multigraph"
)

// Verify replays tour against a clone of s and reports the first violation:
// wrong length, open walk, a step over an absent or spent edge, or unused
// edges left over. s itself is not modified.
//
// Complexity: O(V + Σd + E log d).
func Verify(s *multigraph.Store, tour []int) error {
	if s == nil {
		return ErrNilStore
	}
	c := s.Clone()
	want := c.Unused() + 1
	if len(tour) != want {
		return fmt.Errorf("Verify: len(tour)=%d, want %d: %w", len(tour), want, ErrTourLength)
	}
	if tour[0] != tour[len(tour)-1] {
		return fmt.Errorf("Verify: starts at %d, ends at %d: %w", tour[0], tour[len(tour)-1], ErrTourNotClosed)
	}
	for i := 0; i+1 < len(tour); i++ {
		if err := c.RemoveEdge(tour[i], tour[i+1]); err != nil {
			return fmt.Errorf("Verify: step %d (%d→%d): %w: %w", i, tour[i], tour[i+1], ErrTourEdgeUnknown, err)
		}
	}
	if !c.IsDrained() {
		return fmt.Errorf("Verify: %d edges unused: %w", c.Unused(), ErrTourIncomplete)
	}

	return nil
}
