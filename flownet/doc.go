// Package flownet models a water-distribution network — supply nodes
// with capacities, demand nodes with required deliveries, and directed
// pipes with per-unit transport costs — and computes the cheapest
// feasible flow by compiling the network to a linear program solved
// through lpform.
//
// Modeling rules:
//   - Nodes and pipes carry explicit integer identifiers; a pipe usable
//     in both directions is declared as two directed pipes with their own
//     identifiers and costs.
//   - A supply node bounds the total flow on its outgoing pipes by its
//     capacity.
//   - A demand node requires net inflow (inflow minus outflow) of at
//     least its demand.
//   - The objective is the total transport cost, Σ cost·flow over all
//     pipes.
//
// Construction is fail-fast: AddSource, AddDemand and AddPipe validate
// their arguments immediately and return sentinel errors. MinCostFlow
// compiles and solves; an oversubscribed network surfaces
// lpform.ErrInfeasible through the returned error chain.
//
// Example:
//
//	n := flownet.NewNetwork()
//	_ = n.AddSource(1, 10)
//	_ = n.AddDemand(2, 4)
//	_ = n.AddPipe(100, 1, 2, 2.5)
//	plan, err := n.MinCostFlow(0)
//	// plan.PipeFlow[100] == 4, plan.TotalCost == 10
package flownet
