package tsp

import (
	"fmt"
	"log"
	"math"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// Status classifies the outcome of one solve.
type Status int

const (
	// StatusUnknown is the zero value, left in place when a solve fails
	// before the engine reaches a verdict. It must never be mistaken for
	// a proven outcome.
	StatusUnknown Status = iota
	// StatusOptimal means the engine proved the returned tour optimal.
	StatusOptimal
	// StatusSuboptimal means a feasible tour exists but optimality was not
	// proven, either because the time budget ran out or because the solve
	// stopped at the configured gap.
	StatusSuboptimal
	// StatusInfeasible means the engine proved the model infeasible.
	StatusInfeasible
	// StatusNoSolution means the time budget ran out before any feasible
	// tour was found.
	StatusNoSolution
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusSuboptimal:
		return "SUBOPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusNoSolution:
		return "NO_SOLUTION"
	default:
		return "UNKNOWN"
	}
}

// SolveParams carries the termination configuration for one solve.
type SolveParams struct {
	// TimeLimit is the wall-clock budget in seconds. 0 means no limit.
	TimeLimit float64
	// MIPGap lets the engine stop once the relative gap between incumbent
	// and best bound falls below this threshold. Must be in [0,1).
	MIPGap float64
	// WarmStart is an optional feasible tour injected as the starting
	// solution. It only speeds up convergence, never changes the result.
	WarmStart []int
	// LogFile is the engine log path. Defaults to "tsp_gurobi.log".
	LogFile string
	// ModelFile, when set, makes the solve write the built model in LP
	// format before optimizing.
	ModelFile string
}

// SolveResult is the outcome of one solve.
type SolveResult struct {
	Status Status
	// Obj and Bound are the incumbent objective and the best proven bound.
	// Only meaningful when a solution exists.
	Obj   float64
	Bound float64
	// Gap is the relative distance between Obj and Bound.
	Gap float64
	// Tour is the extracted visiting order, starting at city 0.
	Tour []int
	// X holds the final value of every model variable.
	X []float64
}

// gap under which an engine-optimal result is reported as proven optimal
// rather than gap-terminated.
const provenGapTol = 1e-9

// SolveTSP submits the formulation to the engine and returns the extracted
// tour. Every call builds its own environment and model and frees both on
// return - no solver state survives between calls.
func SolveTSP(f *Formulation, params SolveParams) (SolveResult, error) {
	var res SolveResult
	if f == nil {
		return res, fmt.Errorf("%w: nil formulation", ErrBadParams)
	}
	if params.TimeLimit < 0 {
		return res, fmt.Errorf("%w: negative time limit %f", ErrBadParams, params.TimeLimit)
	}
	if params.MIPGap < 0 || params.MIPGap >= 1 {
		return res, fmt.Errorf("%w: gap %f not in [0,1)", ErrBadParams, params.MIPGap)
	}
	var warmStart []float64
	if params.WarmStart != nil {
		var err error
		warmStart, err = f.WarmStart(params.WarmStart)
		if err != nil {
			return res, err
		}
	}

	logFile := params.LogFile
	if logFile == "" {
		logFile = "tsp_gurobi.log"
	}
	env, err := gurobi.LoadEnv(logFile)
	if err != nil {
		return res, err
	}
	defer env.Free()

	env.SetIntParam("LogToConsole", int32(0))
	defer env.SetIntParam("LogToConsole", int32(1))
	if params.TimeLimit > 0 {
		err = env.SetDblParam("TimeLimit", params.TimeLimit)
		if err != nil {
			return res, err
		}
	}
	if params.MIPGap > 0 {
		err = env.SetDblParam("MIPGap", params.MIPGap)
		if err != nil {
			return res, err
		}
	}

	model, err := env.NewModel("tsp", int32(f.VarCount), f.Obj, f.LB, f.UB, f.VarTypes, f.VarNames)
	if err != nil {
		return res, err
	}
	defer model.Free()

	for _, c := range f.Constrs {
		err = model.AddConstr(c.Ind, c.Val, c.Sense, c.RHS, c.Name)
		if err != nil {
			return res, fmt.Errorf("adding %s: %w", c.Name, err)
		}
	}

	if warmStart != nil {
		err = model.SetDblAttrArray(gurobi.DBL_ATTR_START, 0, warmStart)
		if err != nil {
			log.Printf("Couldn't set the starting solution: %s\n", err.Error())
		}
	}

	if params.ModelFile != "" {
		err = model.Write(params.ModelFile)
		if err != nil {
			return res, err
		}
	}

	err = model.Optimize()
	if err != nil {
		return res, err
	}

	optimstatus, err := model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return res, err
	}
	if optimstatus == gurobi.INFEASIBLE || optimstatus == gurobi.INF_OR_UNBD {
		res.Status = StatusInfeasible
		return res, fmt.Errorf("%w: engine status %d", ErrInfeasible, optimstatus)
	}

	solcount, err := model.GetIntAttr(gurobi.INT_ATTR_SOLCOUNT)
	if err != nil {
		return res, err
	}
	if solcount == 0 {
		res.Status = StatusNoSolution
		return res, nil
	}

	res.Obj, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		return res, err
	}
	res.Bound, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJBOUND)
	if err != nil {
		return res, err
	}
	res.Gap = relativeGap(res.Obj, res.Bound)
	if optimstatus == gurobi.OPTIMAL && (params.MIPGap == 0 || res.Gap <= provenGapTol) {
		res.Status = StatusOptimal
	} else {
		res.Status = StatusSuboptimal
	}

	res.X, err = model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(f.VarCount))
	if err != nil {
		return res, err
	}

	tour, err := ExtractTour(res.X[f.XStart:f.XStart+f.N*f.N], f.N, 0)
	if err != nil {
		return res, err
	}
	res.Tour = tour

	length := GetTourLength(tour, f.Dist)
	if math.Abs(length-res.Obj) > 1e-6*(1+math.Abs(res.Obj)) {
		log.Printf("Tour length %f doesn't match the reported objective %f!\n", length, res.Obj)
	}
	return res, nil
}

func relativeGap(obj, bound float64) float64 {
	if obj == bound {
		return 0
	}
	denom := math.Abs(obj)
	if denom < 1e-10 {
		denom = 1e-10
	}
	return math.Abs(obj-bound) / denom
}
