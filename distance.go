package tsp

import (
	"fmt"
	"math"
)

const (
	EUC2D  = "EUC_2D"
	CEIL2D = "CEIL_2D"
)

// CalcArcDist computes the travel cost for every ordered pair of distinct
// cities from their 2D coordinates. The distances are symmetric, the arcs
// stay directed for the model. EUC_2D keeps the exact euclidean distance,
// CEIL_2D rounds it up like the TSPLIB instances do.
func CalcArcDist(coordinates [][]float64, distType string) ([][]float64, error) {
	n := len(coordinates)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCities, n)
	}
	if distType != EUC2D && distType != CEIL2D {
		return nil, fmt.Errorf("tsp: unsupported edge weight type %q", distType)
	}
	for node := 0; node < n; node++ {
		c := coordinates[node]
		if len(c) != 2 || !isFinite(c[0]) || !isFinite(c[1]) {
			return nil, fmt.Errorf("%w: city %d", ErrBadCoordinates, node)
		}
	}
	result := make([][]float64, n)
	for node := 0; node < n; node++ {
		result[node] = make([]float64, n)
	}
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < node; node2++ {
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			distance := math.Sqrt(xDist*xDist + yDist*yDist)
			if distType == CEIL2D {
				distance = math.Ceil(distance)
			}
			result[node][node2] = distance
			result[node2][node] = distance
		}
	}
	return result, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
