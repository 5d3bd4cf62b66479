package tsp

import "fmt"

/* Greedy construction used to warm-start the exact solver. The tour it
   returns is feasible by construction but usually not optimal - it only
   gives the branch-and-bound a first incumbent to prune against. */

// NearestNeighborTour builds a tour starting at 'start' by always moving to
// the closest not-yet-visited city. When several cities are equally close,
// the one with the lowest index wins, so the result is reproducible.
func NearestNeighborTour(d [][]float64, start int) ([]int, error) {
	n := len(d)
	if n < 1 {
		return nil, fmt.Errorf("%w: empty distance matrix", ErrTooFewCities)
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: start city %d not in [0,%d)", ErrBadTour, start, n)
	}
	visited := make([]bool, n)
	tour := make([]int, 0, n)
	node := start
	visited[node] = true
	tour = append(tour, node)
	for len(tour) < n {
		next := -1
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if next < 0 || d[node][j] < d[node][next] {
				next = j
			}
		}
		visited[next] = true
		tour = append(tour, next)
		node = next
	}
	return tour, nil
}
