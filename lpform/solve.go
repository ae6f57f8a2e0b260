package lpform

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// colKind tags how one general-form variable was rewritten into the
// standard form.
type colKind int

const (
	colShifted   colKind = iota // x = lo + x′,  x′ ≥ 0
	colReflected                // x = hi − x″,  x″ ≥ 0
	colSplit                    // x = x⁺ − x⁻,  x⁺,x⁻ ≥ 0
	colPinned                   // lo == hi: x is a constant, no column
	colOrphan                   // referenced by no row: fixed at its best bound
)

// colMap records the standard-form columns of one variable.
type colMap struct {
	kind  colKind
	main  int     // column of x′ / x″ / x⁺
	aux   int     // column of x⁻ (colSplit only)
	value float64 // lo (shifted/pinned), hi (reflected), or the orphan fix
}

// Solve compiles the program to standard form, runs the simplex of
// gonum.org/v1/gonum/optimize/convex/lp, and maps the optimum back to the
// original variable space. tol is passed through to the collaborator;
// 0 selects its default.
//
// Stage 1 (Validate): bounds per variable, shape per constraint row —
// every failure is a sentinel, reported before any arithmetic.
// Stage 2 (Rewrite): assign standard-form columns in VarID order (fixed,
// deterministic), pin constant variables, resolve variables no row
// references at their cost-minimizing bound.
// Stage 3 (Compile): fill c, A, b — program rows first, then the
// x′ ≤ hi−lo rows for two-sided variables, one slack/surplus column per
// inequality row.
// Stage 4 (Delegate & map back): lp.Simplex, then X[id] and the
// objective re-evaluated in original space.
//
// Errors: ErrNoVariables, ErrBadBounds, ErrUnknownVariable,
// ErrEmptyConstraint, ErrBadSense, ErrInfeasible, ErrUnbounded; any other
// collaborator failure is wrapped with its cause preserved.
func (p *Program) Solve(tol float64) (*Solution, error) {
	// 1) Validate the variable set.
	if len(p.vars) == 0 {
		return nil, ErrNoVariables
	}
	var i, j int
	for i = range p.vars {
		lo, hi := p.vars[i].lo, p.vars[i].hi
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi ||
			math.IsInf(lo, 1) || math.IsInf(hi, -1) {
			return nil, fmt.Errorf("variable %d: %w", i, ErrBadBounds)
		}
	}

	// 2) Validate every constraint row.
	referenced := make([]bool, len(p.vars))
	for i = range p.cons {
		if len(p.cons[i].coeffs) == 0 {
			return nil, fmt.Errorf("constraint %d: %w", i, ErrEmptyConstraint)
		}
		if p.cons[i].sense != LessEq && p.cons[i].sense != GreaterEq && p.cons[i].sense != Eq {
			return nil, fmt.Errorf("constraint %d: %w", i, ErrBadSense)
		}
		for id := range p.cons[i].coeffs {
			if id < 0 || int(id) >= len(p.vars) {
				return nil, fmt.Errorf("constraint %d: variable %d: %w", i, id, ErrUnknownVariable)
			}
			referenced[id] = true
		}
	}

	// 3) Assign standard-form columns in VarID order.
	cols := make([]colMap, len(p.vars))
	nStd := 0        // standard columns assigned so far
	var bounded []int // variables needing an x′ ≤ hi−lo row
	for i = range p.vars {
		v := p.vars[i]
		switch {
		case v.lo == v.hi:
			cols[i] = colMap{kind: colPinned, value: v.lo}
		case !referenced[i]:
			fix, err := orphanValue(v)
			if err != nil {
				return nil, fmt.Errorf("variable %d: %w", i, err)
			}
			cols[i] = colMap{kind: colOrphan, value: fix}
		case !math.IsInf(v.lo, -1):
			cols[i] = colMap{kind: colShifted, main: nStd, value: v.lo}
			nStd++
			if !math.IsInf(v.hi, 1) {
				bounded = append(bounded, i)
			}
		case !math.IsInf(v.hi, 1):
			cols[i] = colMap{kind: colReflected, main: nStd, value: v.hi}
			nStd++
		default:
			cols[i] = colMap{kind: colSplit, main: nStd, aux: nStd + 1}
			nStd += 2
		}
	}

	// 4) Trivial program: nothing left for the simplex to decide. Rows
	//    over pinned variables reduce to constants and are checked here.
	rows := len(p.cons) + len(bounded)
	if rows == 0 || nStd == 0 {
		for i = range p.cons {
			lhs := 0.0
			for j = range p.vars {
				if coeff, ok := p.cons[i].coeffs[VarID(j)]; ok {
					lhs += coeff * cols[j].value
				}
			}
			sat := true
			switch p.cons[i].sense {
			case LessEq:
				sat = lhs <= p.cons[i].rhs
			case GreaterEq:
				sat = lhs >= p.cons[i].rhs
			case Eq:
				sat = lhs == p.cons[i].rhs
			}
			if !sat {
				return nil, fmt.Errorf("constraint %d: %w", i, ErrInfeasible)
			}
		}

		return p.assemble(cols, nil)
	}

	// 5) Count slack columns: one per inequality row.
	slacks := 0
	for i = range p.cons {
		if p.cons[i].sense != Eq {
			slacks++
		}
	}
	slacks += len(bounded) // every bound row is a ≤ row

	// 6) Compile c, A, b.
	total := nStd + slacks
	c := make([]float64, total)
	b := make([]float64, rows)
	a := mat.NewDense(rows, total, nil)

	for i = range p.vars {
		switch cols[i].kind {
		case colShifted:
			c[cols[i].main] = p.vars[i].cost
		case colReflected:
			c[cols[i].main] = -p.vars[i].cost
		case colSplit:
			c[cols[i].main] = p.vars[i].cost
			c[cols[i].aux] = -p.vars[i].cost
		}
	}

	slack := nStd // next free slack column
	for i = range p.cons {
		row := p.cons[i]
		rhs := row.rhs
		// Deterministic fill: walk variables in VarID order, not map order.
		for j = range p.vars {
			coeff, ok := row.coeffs[VarID(j)]
			if !ok || coeff == 0 {
				continue
			}
			switch cols[j].kind {
			case colShifted:
				a.Set(i, cols[j].main, coeff)
				rhs -= coeff * cols[j].value
			case colReflected:
				a.Set(i, cols[j].main, -coeff)
				rhs -= coeff * cols[j].value
			case colSplit:
				a.Set(i, cols[j].main, coeff)
				a.Set(i, cols[j].aux, -coeff)
			case colPinned, colOrphan:
				rhs -= coeff * cols[j].value
			}
		}
		switch row.sense {
		case LessEq:
			a.Set(i, slack, 1)
			slack++
		case GreaterEq:
			a.Set(i, slack, -1)
			slack++
		}
		b[i] = rhs
	}

	// Bound rows: x′ + s = hi − lo for every two-sided shifted variable.
	for i = range bounded {
		v := bounded[i]
		r := len(p.cons) + i
		a.Set(r, cols[v].main, 1)
		a.Set(r, slack, 1)
		slack++
		b[r] = p.vars[v].hi - p.vars[v].lo
	}

	// 7) Delegate to the collaborator and translate its sentinels.
	_, xStd, err := lp.Simplex(c, a, b, tol, nil)
	switch {
	case err == nil:
		// fallthrough to mapping
	case errors.Is(err, lp.ErrInfeasible):
		return nil, ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return nil, ErrUnbounded
	default:
		return nil, fmt.Errorf("lpform: simplex: %w", err)
	}

	return p.assemble(cols, xStd)
}

// assemble maps a standard-form point (possibly nil when the simplex was
// skipped) back to original variable space and evaluates the objective
// there.
func (p *Program) assemble(cols []colMap, xStd []float64) (*Solution, error) {
	x := make([]float64, len(p.vars))
	var obj float64
	for i := range p.vars {
		switch cols[i].kind {
		case colPinned, colOrphan:
			x[i] = cols[i].value
		case colShifted:
			x[i] = cols[i].value + xStd[cols[i].main]
		case colReflected:
			x[i] = cols[i].value - xStd[cols[i].main]
		case colSplit:
			x[i] = xStd[cols[i].main] - xStd[cols[i].aux]
		}
		obj += p.vars[i].cost * x[i]
	}

	return &Solution{Objective: obj, X: x}, nil
}

// orphanValue resolves a variable no constraint touches: it sits at
// whichever bound minimizes its cost term. An infinite minimizing bound
// makes the whole program unbounded.
func orphanValue(v variable) (float64, error) {
	switch {
	case v.cost > 0:
		if math.IsInf(v.lo, -1) {
			return 0, ErrUnbounded
		}

		return v.lo, nil
	case v.cost < 0:
		if math.IsInf(v.hi, 1) {
			return 0, ErrUnbounded
		}

		return v.hi, nil
	case !math.IsInf(v.lo, -1):
		return v.lo, nil
	case !math.IsInf(v.hi, 1):
		return v.hi, nil
	default:
		return 0, nil
	}
}
