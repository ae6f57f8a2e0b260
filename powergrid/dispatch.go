package powergrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descent/lpform"
)

// Dispatch computes the cheapest generator schedule satisfying every
// load under the DC power-flow model. The grid is compiled into a linear
// program with one variable per generator output, one per line flow and
// one per bus angle; nodal balance and susceptance coupling enter as
// equality rows, and the reference angle is pinned to zero through its
// variable bounds.
//
// The tol argument is the simplex pivot tolerance; pass 0 for the
// solver default.
//
// Errors: ErrNoReference, ErrNoLines; lpform.ErrInfeasible when no
// schedule meets the loads within the line limits and generator bounds.
func (g *Grid) Dispatch(tol float64) (*DispatchPlan, error) {
	if !g.hasRef {
		return nil, ErrNoReference
	}
	if len(g.lines) == 0 {
		return nil, ErrNoLines
	}

	// 1) Deterministic bus order: generators first, then loads, each in
	//    declaration order, skipping buses already listed.
	var buses []BusID
	seen := make(map[BusID]bool)
	for _, gen := range g.gens {
		if !seen[gen.Bus] {
			seen[gen.Bus] = true
			buses = append(buses, gen.Bus)
		}
	}
	for _, ld := range g.loads {
		if !seen[ld.Bus] {
			seen[ld.Bus] = true
			buses = append(buses, ld.Bus)
		}
	}

	// 2) Variables: outputs, flows, angles.
	prog := lpform.New()
	pVar := make([]lpform.VarID, len(g.gens))
	for i, gen := range g.gens {
		pVar[i] = prog.AddVariable(gen.Cost, gen.MinOutput, gen.MaxOutput)
	}
	fVar := make([]lpform.VarID, len(g.lines))
	for i, ln := range g.lines {
		fVar[i] = prog.AddVariable(0, -ln.FlowLimit, ln.FlowLimit)
	}
	thVar := make(map[BusID]lpform.VarID, len(buses))
	for _, bus := range buses {
		if bus == g.ref {
			thVar[bus] = prog.AddVariable(0, 0, 0) // pinned reference angle
			continue
		}
		thVar[bus] = prog.AddVariable(0, math.Inf(-1), math.Inf(1))
	}

	// 3) Nodal balance: generation plus net line inflow equals demand.
	demand := make(map[BusID]float64, len(g.loads))
	for _, ld := range g.loads {
		demand[ld.Bus] = ld.Demand
	}
	genVar := make(map[BusID]lpform.VarID, len(g.gens))
	for i, gen := range g.gens {
		genVar[gen.Bus] = pVar[i]
	}
	for _, bus := range buses {
		coeffs := make(map[lpform.VarID]float64)
		if v, ok := genVar[bus]; ok {
			coeffs[v] = 1
		}
		for i, ln := range g.lines {
			if ln.To == bus {
				coeffs[fVar[i]] += 1
			}
			if ln.From == bus {
				coeffs[fVar[i]] -= 1
			}
		}
		if len(coeffs) == 0 {
			if demand[bus] != 0 {
				return nil, fmt.Errorf("powergrid: bus %d unreachable: %w",
					bus, lpform.ErrInfeasible)
			}

			continue
		}
		prog.AddConstraint(coeffs, lpform.Eq, demand[bus])
	}

	// 4) DC coupling: f = B(θ_from − θ_to) for every line.
	for i, ln := range g.lines {
		coeffs := map[lpform.VarID]float64{
			fVar[i]:        1,
			thVar[ln.From]: -ln.Susceptance,
			thVar[ln.To]:   ln.Susceptance,
		}
		prog.AddConstraint(coeffs, lpform.Eq, 0)
	}

	// 5) Solve and read the operating point back.
	sol, err := prog.Solve(tol)
	if err != nil {
		return nil, fmt.Errorf("powergrid: %w", err)
	}

	plan := &DispatchPlan{
		TotalCost:  sol.Objective,
		Generation: make(map[BusID]float64, len(g.gens)),
		LineFlow:   make([]float64, len(g.lines)),
		Angle:      make(map[BusID]float64, len(buses)),
	}
	for i, gen := range g.gens {
		plan.Generation[gen.Bus] = sol.X[pVar[i]]
	}
	for i := range g.lines {
		plan.LineFlow[i] = sol.X[fVar[i]]
	}
	for _, bus := range buses {
		plan.Angle[bus] = sol.X[thVar[bus]]
	}

	return plan, nil
}
