// Package flownet: network records, builder surface and sentinel errors.
package flownet

import "errors"

// Sentinel errors returned by the builder methods and MinCostFlow.
var (
	// ErrDuplicateNode indicates that a node identifier was already
	// declared as a source or a demand.
	ErrDuplicateNode = errors.New("flownet: node already declared")

	// ErrUnknownNode indicates a pipe endpoint that was never declared.
	ErrUnknownNode = errors.New("flownet: unknown node")

	// ErrDuplicatePipe indicates a pipe identifier used twice.
	ErrDuplicatePipe = errors.New("flownet: pipe already declared")

	// ErrSelfLoop indicates a pipe whose endpoints coincide.
	ErrSelfLoop = errors.New("flownet: pipe endpoints coincide")

	// ErrNegativeCapacity indicates a source with capacity < 0.
	ErrNegativeCapacity = errors.New("flownet: capacity must be non-negative")

	// ErrNegativeDemand indicates a demand node with requirement < 0.
	ErrNegativeDemand = errors.New("flownet: demand must be non-negative")

	// ErrNegativeCost indicates a pipe with a negative unit cost.
	ErrNegativeCost = errors.New("flownet: unit cost must be non-negative")

	// ErrNoPipes indicates a solve attempt on a network without pipes.
	ErrNoPipes = errors.New("flownet: network has no pipes")
)

// NodeID identifies one node of the network.
type NodeID int

// PipeID identifies one directed pipe.
type PipeID int

// Source is a supply node: the flow leaving it may not exceed Capacity.
type Source struct {
	Node     NodeID
	Capacity float64
}

// Demand is a consumption node: its net inflow must reach Required.
type Demand struct {
	Node     NodeID
	Required float64
}

// Pipe is a directed transport arc with a per-unit cost and no upper
// capacity of its own (supply capacities bound the system).
type Pipe struct {
	ID       PipeID
	From, To NodeID
	UnitCost float64
}

// Network is a water-distribution network under construction. The zero
// value is not usable; construct with NewNetwork. Not safe for concurrent
// mutation.
type Network struct {
	sources []Source
	demands []Demand
	pipes   []Pipe

	nodes map[NodeID]bool // declared node set
	ids   map[PipeID]int  // pipe id -> index into pipes
}

// NewNetwork returns an empty network.
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[NodeID]bool),
		ids:   make(map[PipeID]int),
	}
}

// AddSource declares a supply node with the given capacity.
// Errors: ErrDuplicateNode, ErrNegativeCapacity.
func (n *Network) AddSource(node NodeID, capacity float64) error {
	if n.nodes[node] {
		return ErrDuplicateNode
	}
	if capacity < 0 {
		return ErrNegativeCapacity
	}
	n.nodes[node] = true
	n.sources = append(n.sources, Source{Node: node, Capacity: capacity})

	return nil
}

// AddDemand declares a demand node with the given requirement.
// Errors: ErrDuplicateNode, ErrNegativeDemand.
func (n *Network) AddDemand(node NodeID, required float64) error {
	if n.nodes[node] {
		return ErrDuplicateNode
	}
	if required < 0 {
		return ErrNegativeDemand
	}
	n.nodes[node] = true
	n.demands = append(n.demands, Demand{Node: node, Required: required})

	return nil
}

// AddPipe declares a directed pipe between two already-declared nodes.
// Errors: ErrDuplicatePipe, ErrSelfLoop, ErrUnknownNode, ErrNegativeCost.
func (n *Network) AddPipe(id PipeID, from, to NodeID, unitCost float64) error {
	if _, ok := n.ids[id]; ok {
		return ErrDuplicatePipe
	}
	if from == to {
		return ErrSelfLoop
	}
	if !n.nodes[from] || !n.nodes[to] {
		return ErrUnknownNode
	}
	if unitCost < 0 {
		return ErrNegativeCost
	}
	n.ids[id] = len(n.pipes)
	n.pipes = append(n.pipes, Pipe{ID: id, From: from, To: to, UnitCost: unitCost})

	return nil
}

// FlowPlan is the optimal flow assignment of a network.
type FlowPlan struct {
	// TotalCost is Σ unit cost × flow over all pipes.
	TotalCost float64

	// PipeFlow maps every pipe identifier to its assigned flow (≥ 0).
	PipeFlow map[PipeID]float64
}

// NetInflow returns inflow minus outflow at the given node under the plan.
func (p *FlowPlan) NetInflow(n *Network, node NodeID) float64 {
	var net float64
	for _, pipe := range n.pipes {
		if pipe.To == node {
			net += p.PipeFlow[pipe.ID]
		}
		if pipe.From == node {
			net -= p.PipeFlow[pipe.ID]
		}
	}

	return net
}
