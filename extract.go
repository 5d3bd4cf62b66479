package tsp

import "fmt"

/* Given the final arc variable values, rebuild the visiting order. An arc
   counts as selected above 0.5 - the engine returns binaries as floats
   close to 0 or 1. Anything that is not exactly one cycle through all
   cities is reported as an error instead of being patched up, because it
   points at a modeling or tolerance bug that must not stay hidden. */

// ExtractTour follows the chain of selected arcs from the anchor city and
// returns the visiting order. x is the row-major n*n block of arc values.
func ExtractTour(x []float64, n int, anchor int) ([]int, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCities, n)
	}
	if len(x) < n*n {
		return nil, fmt.Errorf("%w: got %d arc values for %d cities", ErrBadParams, len(x), n)
	}
	if anchor < 0 || anchor >= n {
		return nil, fmt.Errorf("%w: anchor %d not in [0,%d)", ErrBadTour, anchor, n)
	}

	succ := make([]int, n)
	indeg := make([]int, n)
	for i := 0; i < n; i++ {
		succ[i] = -1
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || x[i*n+j] <= 0.5 {
				continue
			}
			if succ[i] >= 0 {
				return nil, fmt.Errorf("%w: city %d has more than one outgoing arc", ErrArcConflict, i)
			}
			succ[i] = j
			indeg[j]++
		}
	}
	for i := 0; i < n; i++ {
		if succ[i] < 0 {
			return nil, fmt.Errorf("%w: city %d has no outgoing arc", ErrNoArcSelected, i)
		}
		if indeg[i] == 0 {
			return nil, fmt.Errorf("%w: city %d has no incoming arc", ErrNoArcSelected, i)
		}
		if indeg[i] > 1 {
			return nil, fmt.Errorf("%w: city %d has %d incoming arcs", ErrArcConflict, i, indeg[i])
		}
	}

	tour := make([]int, 0, n)
	tour = append(tour, anchor)
	for node := succ[anchor]; node != anchor; node = succ[node] {
		if len(tour) == n {
			break
		}
		tour = append(tour, node)
	}
	if len(tour) != n || succ[tour[n-1]] != anchor {
		return nil, fmt.Errorf("%w: cycle through the anchor covers %d of %d cities", ErrSubcycle, len(tour), n)
	}
	return tour, nil
}
