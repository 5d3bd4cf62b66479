package tsp

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

/*
  Exact MIP model for the asymmetric formulation of the TSP. One binary
  variable x_i_j for every ordered pair of cities weighted by the distance
  in the objective, degree-1 constraints for incoming and outgoing arcs,
  and Miller-Tucker-Zemlin ordering variables to cut off subtours. The MTZ
  implication "x_i_j = 1  =>  u_i + 1 = u_j" is linearized with big-M rows
  (M = n), so the whole model can be submitted as plain linear constraints.
*/

// LinConstr is a single linear constraint row.
type LinConstr struct {
	Ind   []int32
	Val   []float64
	Sense int8
	RHS   float64
	Name  string
}

// Formulation holds the complete model for one instance as plain data.
// It owns the variable layout; nothing here touches the engine, so the
// model can be inspected and tested without a solver license.
type Formulation struct {
	N        int
	VarCount int
	XStart   int
	UStart   int

	Obj      []float64
	LB       []float64
	UB       []float64
	VarTypes []int8
	VarNames []string
	Constrs  []LinConstr

	Dist [][]float64
}

// ArcIndex returns the variable index of the arc from city i to city j.
func (f *Formulation) ArcIndex(i, j int) int {
	return f.XStart + i*f.N + j
}

// OrderIndex returns the variable index of the MTZ ordering variable of city i.
func (f *Formulation) OrderIndex(i int) int {
	return f.UStart + i
}

// NewFormulation builds the model for the given distance matrix. City 0 is
// the fixed anchor at which every tour starts and ends; its ordering
// variable is pinned to 0 through its bounds, like the self-loop arcs are
// forbidden through theirs.
func NewFormulation(d [][]float64) (*Formulation, error) {
	n := len(d)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewCities, n)
	}
	for i := 0; i < n; i++ {
		if len(d[i]) != n {
			return nil, fmt.Errorf("tsp: distance matrix is not square at row %d", i)
		}
	}

	xCount := n * n
	f := &Formulation{
		N:        n,
		VarCount: xCount + n,
		XStart:   0,
		UStart:   xCount,
		Dist:     d,
	}

	f.Obj = make([]float64, f.VarCount)
	f.LB = make([]float64, f.VarCount)
	f.UB = make([]float64, f.VarCount)
	f.VarTypes = make([]int8, f.VarCount)
	f.VarNames = make([]string, f.VarCount)

	/* Arc variables x_i_j - the diagonal stays fixed at 0 */
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := f.ArcIndex(i, j)
			f.Obj[x] = d[i][j]
			f.VarTypes[x] = gurobi.BINARY
			f.VarNames[x] = fmt.Sprintf("x_%d_%d", i, j)
			if i != j {
				f.UB[x] = 1.0
			}
		}
	}

	/* Ordering variables u_i - u_0 is pinned to 0 */
	for i := 0; i < n; i++ {
		u := f.OrderIndex(i)
		f.VarTypes[u] = gurobi.CONTINUOUS
		f.VarNames[u] = fmt.Sprintf("u_%d", i)
		if i != 0 {
			f.UB[u] = float64(n - 1)
		}
	}

	/* Degree constraints - every city is left exactly once and entered exactly once */
	for i := 0; i < n; i++ {
		var (
			indOut []int32
			indIn  []int32
			val    []float64
		)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			indOut = append(indOut, int32(f.ArcIndex(i, j)))
			indIn = append(indIn, int32(f.ArcIndex(j, i)))
			val = append(val, 1.0)
		}
		f.Constrs = append(f.Constrs, LinConstr{
			Ind: indOut, Val: val, Sense: gurobi.EQUAL, RHS: 1.0,
			Name: fmt.Sprintf("deg2o_%d", i),
		})
		f.Constrs = append(f.Constrs, LinConstr{
			Ind: indIn, Val: val, Sense: gurobi.EQUAL, RHS: 1.0,
			Name: fmt.Sprintf("deg2i_%d", i),
		})
	}

	/* MTZ rows for every arc (i,j) with j != 0. Both directions of the
	   big-M linearization, so a used arc forces u_j = u_i + 1 exactly:
	     u_i - u_j + M*x_i_j <= M - 1
	     u_j - u_i + M*x_i_j <= M + 1
	   With x_i_j = 0 both rows are slack for any u in [0, n-1]. */
	M := float64(n)
	for i := 0; i < n; i++ {
		for j := 1; j < n; j++ {
			if j == i {
				continue
			}
			x := int32(f.ArcIndex(i, j))
			ui := int32(f.OrderIndex(i))
			uj := int32(f.OrderIndex(j))
			f.Constrs = append(f.Constrs, LinConstr{
				Ind:   []int32{ui, uj, x},
				Val:   []float64{1.0, -1.0, M},
				Sense: gurobi.LESS_EQUAL, RHS: M - 1,
				Name: fmt.Sprintf("mtz_lo_%d_%d", i, j),
			})
			f.Constrs = append(f.Constrs, LinConstr{
				Ind:   []int32{uj, ui, x},
				Val:   []float64{1.0, -1.0, M},
				Sense: gurobi.LESS_EQUAL, RHS: M + 1,
				Name: fmt.Sprintf("mtz_up_%d_%d", i, j),
			})
		}
	}

	return f, nil
}

// WarmStart turns a feasible tour into a start vector for every variable of
// the model. The arc from the last city back to the first is included, so
// the start describes the closed cycle. The ordering values are rotated so
// that city 0 sits at position 0, matching its pinned bounds.
func (f *Formulation) WarmStart(tour []int) ([]float64, error) {
	n := f.N
	if err := ValidateTour(tour, n); err != nil {
		return nil, err
	}
	start := make([]float64, f.VarCount)
	for g := 0; g < n; g++ {
		i := tour[(g+n-1)%n]
		j := tour[g]
		start[f.ArcIndex(i, j)] = 1.0
	}
	anchorAt := 0
	for g := 0; g < n; g++ {
		if tour[g] == 0 {
			anchorAt = g
			break
		}
	}
	for g := 0; g < n; g++ {
		start[f.OrderIndex(tour[(anchorAt+g)%n])] = float64(g)
	}
	return start, nil
}
