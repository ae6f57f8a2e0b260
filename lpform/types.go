// Package lpform: program model, builder surface and sentinel errors.
package lpform

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrNoVariables indicates an empty program.
	ErrNoVariables = errors.New("lpform: program has no variables")

	// ErrBadBounds indicates a variable with lower bound above its upper
	// bound, or an infinite bound of the wrong sign (lo == +Inf, hi == -Inf).
	ErrBadBounds = errors.New("lpform: variable bounds are inconsistent")

	// ErrUnknownVariable indicates a constraint coefficient naming a VarID
	// that was never returned by AddVariable on this program.
	ErrUnknownVariable = errors.New("lpform: constraint references unknown variable")

	// ErrEmptyConstraint indicates a constraint row with no coefficients.
	ErrEmptyConstraint = errors.New("lpform: constraint has no coefficients")

	// ErrBadSense indicates an unrecognized constraint sense value.
	ErrBadSense = errors.New("lpform: invalid constraint sense")

	// ErrInfeasible indicates the collaborator proved no feasible point
	// exists.
	ErrInfeasible = errors.New("lpform: program is infeasible")

	// ErrUnbounded indicates the objective decreases without bound over
	// the feasible region.
	ErrUnbounded = errors.New("lpform: program is unbounded")
)

// VarID identifies one variable of a Program. IDs are dense integers
// assigned in AddVariable order, starting at 0.
type VarID int

// Sense fixes the relation of one constraint row: a·x {≤,≥,=} rhs.
type Sense int

const (
	// LessEq: a·x ≤ rhs.
	LessEq Sense = iota

	// GreaterEq: a·x ≥ rhs.
	GreaterEq

	// Eq: a·x = rhs.
	Eq
)

// String returns the relation symbol for the sense.
func (s Sense) String() string {
	switch s {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Eq:
		return "="
	default:
		return "?"
	}
}

// variable is one column of the general-form program.
type variable struct {
	cost   float64 // objective coefficient
	lo, hi float64 // bounds; ±Inf allowed
}

// constraint is one row of the general-form program.
type constraint struct {
	coeffs map[VarID]float64
	sense  Sense
	rhs    float64
}

// Program is a minimization linear program under construction. The zero
// value is not usable; construct with New. Not safe for concurrent
// mutation; a fully built Program may be solved from multiple goroutines
// since Solve does not mutate it.
type Program struct {
	vars []variable
	cons []constraint
}

// New returns an empty minimization program.
func New() *Program {
	return &Program{}
}

// AddVariable appends a variable with the given objective cost and bounds
// and returns its identifier. Bounds may be ±Inf; lo == hi pins the
// variable to that value. Validation is deferred to Solve.
func (p *Program) AddVariable(cost, lo, hi float64) VarID {
	p.vars = append(p.vars, variable{cost: cost, lo: lo, hi: hi})

	return VarID(len(p.vars) - 1)
}

// AddConstraint appends the row a·x {sense} rhs, where coeffs maps
// variable identifiers to their coefficients. The map is copied; the
// caller may reuse it. Validation is deferred to Solve.
func (p *Program) AddConstraint(coeffs map[VarID]float64, sense Sense, rhs float64) {
	own := make(map[VarID]float64, len(coeffs))
	for id, v := range coeffs {
		own[id] = v
	}
	p.cons = append(p.cons, constraint{coeffs: own, sense: sense, rhs: rhs})
}

// NumVariables returns the number of variables added so far.
func (p *Program) NumVariables() int { return len(p.vars) }

// NumConstraints returns the number of constraint rows added so far.
func (p *Program) NumConstraints() int { return len(p.cons) }

// Solution is the optimum of a Program mapped back to the original
// variable space: X[id] is the value of the variable with that VarID.
type Solution struct {
	Objective float64
	X         []float64
}
