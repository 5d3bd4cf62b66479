package tsp_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
	"git.solver4all.com/azaryc2s/tsp"
	"github.com/stretchr/testify/require"
)

func squareFormulation(t *testing.T) *tsp.Formulation {
	t.Helper()
	d, err := tsp.CalcArcDist(squareCoords(), tsp.EUC2D)
	require.NoError(t, err)
	f, err := tsp.NewFormulation(d)
	require.NoError(t, err)
	return f
}

// holdsFor evaluates a single constraint row against an assignment.
func holdsFor(c tsp.LinConstr, x []float64) bool {
	lhs := 0.0
	for k := range c.Ind {
		lhs += c.Val[k] * x[c.Ind[k]]
	}
	switch c.Sense {
	case gurobi.EQUAL:
		return lhs == c.RHS
	case gurobi.LESS_EQUAL:
		return lhs <= c.RHS
	case gurobi.GREATER_EQUAL:
		return lhs >= c.RHS
	}
	return false
}

func TestNewFormulation_TooFewCities(t *testing.T) {
	_, err := tsp.NewFormulation([][]float64{{0}})
	require.ErrorIs(t, err, tsp.ErrTooFewCities)
	_, err = tsp.NewFormulation(nil)
	require.ErrorIs(t, err, tsp.ErrTooFewCities)
}

func TestNewFormulation_NonSquare(t *testing.T) {
	_, err := tsp.NewFormulation([][]float64{{0, 1}, {1}})
	require.Error(t, err)
}

func TestNewFormulation_Layout(t *testing.T) {
	f := squareFormulation(t)
	n := 4
	require.Equal(t, n, f.N)
	require.Equal(t, n*n+n, f.VarCount)

	for i := 0; i < n; i++ {
		// self-loops and the anchor ordering variable are fixed through bounds
		x := f.ArcIndex(i, i)
		require.Equal(t, 0.0, f.LB[x])
		require.Equal(t, 0.0, f.UB[x])
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			x := f.ArcIndex(i, j)
			require.Equal(t, gurobi.BINARY, f.VarTypes[x])
			require.Equal(t, 1.0, f.UB[x])
			require.Equal(t, f.Dist[i][j], f.Obj[x])
		}
		u := f.OrderIndex(i)
		require.Equal(t, gurobi.CONTINUOUS, f.VarTypes[u])
		require.Equal(t, 0.0, f.Obj[u])
		if i == 0 {
			require.Equal(t, 0.0, f.UB[u])
		} else {
			require.Equal(t, float64(n-1), f.UB[u])
		}
	}
}

func TestNewFormulation_ConstraintCount(t *testing.T) {
	f := squareFormulation(t)
	n := 4
	// 2n degree rows plus two MTZ rows per arc (i,j) with i != j, j != 0
	require.Len(t, f.Constrs, 2*n+2*(n-1)*(n-1))
}

func TestWarmStart_SatisfiesAllConstraints(t *testing.T) {
	f := squareFormulation(t)
	start, err := f.WarmStart([]int{0, 1, 2, 3})
	require.NoError(t, err)
	for _, c := range f.Constrs {
		require.True(t, holdsFor(c, start), "constraint %s violated by a valid tour", c.Name)
	}
}

func TestWarmStart_RotatedTour(t *testing.T) {
	f := squareFormulation(t)
	// same tour starting at city 2 - the ordering must still anchor city 0
	start, err := f.WarmStart([]int{2, 3, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 0.0, start[f.OrderIndex(0)])
	require.Equal(t, 1.0, start[f.OrderIndex(1)])
	require.Equal(t, 2.0, start[f.OrderIndex(2)])
	require.Equal(t, 3.0, start[f.OrderIndex(3)])
	for _, c := range f.Constrs {
		require.True(t, holdsFor(c, start), "constraint %s violated by a valid tour", c.Name)
	}
}

func TestWarmStart_IncludesClosingArc(t *testing.T) {
	f := squareFormulation(t)
	start, err := f.WarmStart([]int{0, 1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 1.0, start[f.ArcIndex(0, 1)])
	require.Equal(t, 1.0, start[f.ArcIndex(1, 2)])
	require.Equal(t, 1.0, start[f.ArcIndex(2, 3)])
	require.Equal(t, 1.0, start[f.ArcIndex(3, 0)])
	require.Equal(t, 0.0, start[f.ArcIndex(1, 0)])
}

func TestWarmStart_RejectsBadTour(t *testing.T) {
	f := squareFormulation(t)
	_, err := f.WarmStart([]int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrBadTour)
	_, err = f.WarmStart([]int{0, 1, 2, 2})
	require.ErrorIs(t, err, tsp.ErrBadTour)
	_, err = f.WarmStart([]int{0, 1, 2, 4})
	require.ErrorIs(t, err, tsp.ErrBadTour)
}

func TestFormulation_TwoCities(t *testing.T) {
	// degenerate round trip: out and back over the same edge
	f, err := tsp.NewFormulation([][]float64{{0, 5}, {5, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, f.N)
	require.Equal(t, 6, f.VarCount)

	start, err := f.WarmStart([]int{0, 1})
	require.NoError(t, err)
	require.Equal(t, 1.0, start[f.ArcIndex(0, 1)])
	require.Equal(t, 1.0, start[f.ArcIndex(1, 0)])
	require.Equal(t, 0.0, start[f.OrderIndex(0)])
	require.Equal(t, 1.0, start[f.OrderIndex(1)])
	for _, c := range f.Constrs {
		require.True(t, holdsFor(c, start), "constraint %s violated by the two-city tour", c.Name)
	}

	obj := 0.0
	for k, v := range start[:f.UStart] {
		obj += f.Obj[k] * v
	}
	require.Equal(t, 10.0, obj)
}

func TestMTZ_CutsOffSubcycles(t *testing.T) {
	f := squareFormulation(t)
	// 0->1->0 and 2->3->2 satisfies every degree row but must violate an
	// MTZ row no matter how the ordering variables are picked
	for _, u := range [][]float64{
		{0, 1, 0, 1},
		{0, 1, 2, 3},
		{0, 3, 1, 2},
	} {
		x := make([]float64, f.VarCount)
		x[f.ArcIndex(0, 1)] = 1
		x[f.ArcIndex(1, 0)] = 1
		x[f.ArcIndex(2, 3)] = 1
		x[f.ArcIndex(3, 2)] = 1
		for i := 0; i < 4; i++ {
			x[f.OrderIndex(i)] = u[i]
		}
		violated := false
		for _, c := range f.Constrs {
			if !holdsFor(c, x) {
				violated = true
				break
			}
		}
		require.True(t, violated, "subcycle assignment with u = %v slipped through", u)
	}
}
