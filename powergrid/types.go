// Package powergrid: grid records, builder surface and sentinel errors.
package powergrid

import "errors"

// Sentinel errors returned by the builder methods and Dispatch.
var (
	// ErrDuplicateBus indicates a second generator (or a second load)
	// declared on a bus that already hosts one.
	ErrDuplicateBus = errors.New("powergrid: bus already hosts one")

	// ErrUnknownBus indicates a bus identifier that hosts neither a
	// generator nor a load.
	ErrUnknownBus = errors.New("powergrid: unknown bus")

	// ErrSelfLoop indicates a line whose endpoints coincide.
	ErrSelfLoop = errors.New("powergrid: line endpoints coincide")

	// ErrBadSusceptance indicates a line with susceptance ≤ 0.
	ErrBadSusceptance = errors.New("powergrid: susceptance must be positive")

	// ErrBadFlowLimit indicates a line with flow limit ≤ 0.
	ErrBadFlowLimit = errors.New("powergrid: flow limit must be positive")

	// ErrBadBounds indicates generator bounds with min < 0 or min > max.
	ErrBadBounds = errors.New("powergrid: bad generator bounds")

	// ErrNegativeDemand indicates a load with demand < 0.
	ErrNegativeDemand = errors.New("powergrid: demand must be non-negative")

	// ErrNoReference indicates a dispatch attempt without a reference bus.
	ErrNoReference = errors.New("powergrid: no reference bus selected")

	// ErrNoLines indicates a dispatch attempt on a grid without lines.
	ErrNoLines = errors.New("powergrid: grid has no lines")
)

// BusID identifies one bus of the grid.
type BusID int

// Generator is a dispatchable source attached to a bus. Its output is a
// decision variable bounded by [MinOutput, MaxOutput] and priced at Cost
// per unit.
type Generator struct {
	Bus                  BusID
	MinOutput, MaxOutput float64
	Cost                 float64
}

// Load is a fixed consumption attached to a bus.
type Load struct {
	Bus    BusID
	Demand float64
}

// Line is a transmission line between two buses. Under the DC
// approximation its flow is Susceptance times the angle difference of
// its endpoints, and its magnitude may not exceed FlowLimit.
type Line struct {
	From, To    BusID
	Susceptance float64
	FlowLimit   float64
}

// Grid is a transmission grid under construction. The zero value is not
// usable; construct with NewGrid. Not safe for concurrent mutation.
type Grid struct {
	gens  []Generator
	loads []Load
	lines []Line

	genAt  map[BusID]bool
	loadAt map[BusID]bool

	ref    BusID
	hasRef bool
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{
		genAt:  make(map[BusID]bool),
		loadAt: make(map[BusID]bool),
	}
}

// knownBus reports whether the bus hosts a generator or a load.
func (g *Grid) knownBus(bus BusID) bool {
	return g.genAt[bus] || g.loadAt[bus]
}

// AddGenerator attaches a generator to a bus. At most one generator per
// bus. Errors: ErrDuplicateBus, ErrBadBounds.
func (g *Grid) AddGenerator(bus BusID, minOut, maxOut, cost float64) error {
	if g.genAt[bus] {
		return ErrDuplicateBus
	}
	if minOut < 0 || minOut > maxOut {
		return ErrBadBounds
	}
	g.genAt[bus] = true
	g.gens = append(g.gens, Generator{Bus: bus, MinOutput: minOut, MaxOutput: maxOut, Cost: cost})

	return nil
}

// AddLoad attaches a load to a bus. At most one load per bus; a load of
// zero demand declares a pure junction bus. Errors: ErrDuplicateBus,
// ErrNegativeDemand.
func (g *Grid) AddLoad(bus BusID, demand float64) error {
	if g.loadAt[bus] {
		return ErrDuplicateBus
	}
	if demand < 0 {
		return ErrNegativeDemand
	}
	g.loadAt[bus] = true
	g.loads = append(g.loads, Load{Bus: bus, Demand: demand})

	return nil
}

// AddLine connects two already-declared buses. Errors: ErrSelfLoop,
// ErrUnknownBus, ErrBadSusceptance, ErrBadFlowLimit.
func (g *Grid) AddLine(from, to BusID, susceptance, flowLimit float64) error {
	if from == to {
		return ErrSelfLoop
	}
	if !g.knownBus(from) || !g.knownBus(to) {
		return ErrUnknownBus
	}
	if susceptance <= 0 {
		return ErrBadSusceptance
	}
	if flowLimit <= 0 {
		return ErrBadFlowLimit
	}
	g.lines = append(g.lines, Line{From: from, To: to, Susceptance: susceptance, FlowLimit: flowLimit})

	return nil
}

// SetReference selects the bus whose angle is pinned to zero.
// Errors: ErrUnknownBus.
func (g *Grid) SetReference(bus BusID) error {
	if !g.knownBus(bus) {
		return ErrUnknownBus
	}
	g.ref, g.hasRef = bus, true

	return nil
}

// DispatchPlan is the optimal operating point of a grid.
type DispatchPlan struct {
	// TotalCost is Σ cost × output over all generators.
	TotalCost float64

	// Generation maps each generator's bus to its scheduled output.
	Generation map[BusID]float64

	// LineFlow holds the flow of each line in AddLine order; positive
	// flow runs From → To.
	LineFlow []float64

	// Angle maps each bus to its voltage angle; the reference bus maps
	// to zero.
	Angle map[BusID]float64
}
