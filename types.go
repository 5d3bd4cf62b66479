package tsp

import (
	"errors"
	"fmt"
)

type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Dimension       int         `json:"dimension"`
	EdgeWeightType  string      `json:"edge_weight_type"`
	NodeCoordinates [][]float64 `json:"node_coordinates"`

	Solution *Solution `json:"solution,omitempty"`
}

type Solution struct {
	Obj     float64 `json:"obj"`
	Bound   float64 `json:"bound"`
	Gap     float64 `json:"gap"`
	Optimal bool    `json:"optimal"`
	Status  string  `json:"status"`
	Tour    []int   `json:"tour"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

var (
	// ErrTooFewCities is returned for instances with less than 2 cities,
	// for which no round trip exists.
	ErrTooFewCities = errors.New("tsp: need at least 2 cities")

	// ErrBadCoordinates is returned when a city coordinate is not a finite
	// (x, y) pair.
	ErrBadCoordinates = errors.New("tsp: malformed coordinate")

	// ErrBadTour is returned when a tour is not a permutation of all city
	// indices, or a city index is out of range.
	ErrBadTour = errors.New("tsp: invalid tour")

	// ErrBadParams is returned for solve parameters outside their domain.
	ErrBadParams = errors.New("tsp: invalid solve parameters")

	// ErrInfeasible is returned when the engine reports the model as
	// infeasible. The formulation is feasible for every complete arc set,
	// so this signals a bug in the model construction, not a user error.
	ErrInfeasible = errors.New("tsp: model reported infeasible")

	// ErrInvalidSolution is returned when the arc values coming back from
	// the engine do not describe a single cycle through all cities.
	ErrInvalidSolution = errors.New("tsp: solution is not a single tour")

	// ErrNoArcSelected, ErrArcConflict and ErrSubcycle refine
	// ErrInvalidSolution; errors.Is matches them against the umbrella too.
	ErrNoArcSelected = fmt.Errorf("%w: city without a selected arc", ErrInvalidSolution)
	ErrArcConflict   = fmt.Errorf("%w: city with conflicting arcs", ErrInvalidSolution)
	ErrSubcycle      = fmt.Errorf("%w: selected arcs form a subcycle", ErrInvalidSolution)
)
