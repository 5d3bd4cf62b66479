package tsp

import (
	"fmt"
	"regexp"
)

// GetTourLength sums the arc distances along the tour, including the
// closing arc back to the first city.
func GetTourLength(tour []int, d [][]float64) float64 {
	length := 0.0
	for i := 0; i < len(tour); i++ {
		j := (i + 1) % len(tour)
		length += d[tour[i]][tour[j]]
	}
	return length
}

// ValidateTour checks that tour is a permutation of all n city indices.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return fmt.Errorf("%w: has %d cities, expected %d", ErrBadTour, len(tour), n)
	}
	seen := make([]bool, n)
	for _, node := range tour {
		if node < 0 || node >= n {
			return fmt.Errorf("%w: city %d not in [0,%d)", ErrBadTour, node, n)
		}
		if seen[node] {
			return fmt.Errorf("%w: city %d visited twice", ErrBadTour, node)
		}
		seen[node] = true
	}
	return nil
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
