package flownet

import (
	"fmt"
	"math"

	"github.com/katalvlaran/descent/lpform"
)

// MinCostFlow computes the cheapest flow assignment that satisfies every
// demand without exceeding any source capacity. The network is compiled
// into a linear program (one non-negative variable per pipe, one supply
// row per source, one coverage row per demand) and handed to lpform.
//
// The tol argument is the simplex pivot tolerance; pass 0 for the
// solver default.
//
// Errors: ErrNoPipes on an empty network; lpform.ErrInfeasible when the
// demands cannot be met; lpform.ErrUnbounded never occurs because every
// pipe cost is non-negative and demand rows are lower bounds, but it is
// propagated if it would.
func (n *Network) MinCostFlow(tol float64) (*FlowPlan, error) {
	if len(n.pipes) == 0 {
		return nil, ErrNoPipes
	}

	// 1) One LP variable per pipe, in declaration order for determinism.
	prog := lpform.New()
	vars := make([]lpform.VarID, len(n.pipes))
	for i, p := range n.pipes {
		vars[i] = prog.AddVariable(p.UnitCost, 0, math.Inf(1))
	}

	// 2) Supply rows: net outflow of each source may not exceed capacity.
	for _, s := range n.sources {
		coeffs := make(map[lpform.VarID]float64)
		for i, p := range n.pipes {
			if p.From == s.Node {
				coeffs[vars[i]] += 1
			}
			if p.To == s.Node {
				coeffs[vars[i]] -= 1
			}
		}
		if len(coeffs) == 0 {
			continue // isolated source constrains nothing
		}
		prog.AddConstraint(coeffs, lpform.LessEq, s.Capacity)
	}

	// 3) Coverage rows: net inflow of each demand must reach the requirement.
	for _, d := range n.demands {
		coeffs := make(map[lpform.VarID]float64)
		for i, p := range n.pipes {
			if p.To == d.Node {
				coeffs[vars[i]] += 1
			}
			if p.From == d.Node {
				coeffs[vars[i]] -= 1
			}
		}
		if len(coeffs) == 0 {
			if d.Required > 0 {
				return nil, fmt.Errorf("flownet: demand %d unreachable: %w",
					d.Node, lpform.ErrInfeasible)
			}

			continue
		}
		prog.AddConstraint(coeffs, lpform.GreaterEq, d.Required)
	}

	// 4) Solve and map pipe flows back by identifier.
	sol, err := prog.Solve(tol)
	if err != nil {
		return nil, fmt.Errorf("flownet: %w", err)
	}

	plan := &FlowPlan{
		TotalCost: sol.Objective,
		PipeFlow:  make(map[PipeID]float64, len(n.pipes)),
	}
	for i, p := range n.pipes {
		plan.PipeFlow[p.ID] = sol.X[vars[i]]
	}

	return plan, nil
}
