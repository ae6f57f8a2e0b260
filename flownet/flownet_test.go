package flownet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/descent/flownet"
	"github.com/katalvlaran/descent/lpform"
)

// TestNetwork_BuilderValidation verifies the fail-fast Add* surface:
// every malformed declaration is rejected with its sentinel and leaves
// the network usable.
func TestNetwork_BuilderValidation(t *testing.T) {
	n := flownet.NewNetwork()

	require.NoError(t, n.AddSource(1, 10))
	require.NoError(t, n.AddDemand(2, 4))

	assert.ErrorIs(t, n.AddSource(1, 5), flownet.ErrDuplicateNode)
	assert.ErrorIs(t, n.AddDemand(2, 5), flownet.ErrDuplicateNode)
	assert.ErrorIs(t, n.AddSource(3, -1), flownet.ErrNegativeCapacity)
	assert.ErrorIs(t, n.AddDemand(3, -1), flownet.ErrNegativeDemand)

	require.NoError(t, n.AddPipe(100, 1, 2, 1))
	assert.ErrorIs(t, n.AddPipe(100, 1, 2, 1), flownet.ErrDuplicatePipe)
	assert.ErrorIs(t, n.AddPipe(101, 1, 1, 1), flownet.ErrSelfLoop)
	assert.ErrorIs(t, n.AddPipe(102, 1, 9, 1), flownet.ErrUnknownNode)
	assert.ErrorIs(t, n.AddPipe(103, 1, 2, -1), flownet.ErrNegativeCost)
}

// TestMinCostFlow_NoPipes verifies the empty-network guard.
func TestMinCostFlow_NoPipes(t *testing.T) {
	n := flownet.NewNetwork()
	require.NoError(t, n.AddSource(1, 10))

	_, err := n.MinCostFlow(0)
	assert.ErrorIs(t, err, flownet.ErrNoPipes)
}

// TestMinCostFlow_SinglePipe verifies the smallest closed-form instance:
// one source, one demand, one pipe. The demand pins the flow and the
// cost follows directly.
func TestMinCostFlow_SinglePipe(t *testing.T) {
	n := flownet.NewNetwork()
	require.NoError(t, n.AddSource(1, 10))
	require.NoError(t, n.AddDemand(2, 4))
	require.NoError(t, n.AddPipe(100, 1, 2, 2.5))

	plan, err := n.MinCostFlow(0)
	require.NoError(t, err)

	assert.InDelta(t, 4, plan.PipeFlow[100], 1e-9)
	assert.InDelta(t, 10, plan.TotalCost, 1e-9)
}

// TestMinCostFlow_PrefersCheapRoute verifies that with two parallel
// routes of unequal cost the whole demand travels the cheap one.
func TestMinCostFlow_PrefersCheapRoute(t *testing.T) {
	n := flownet.NewNetwork()
	require.NoError(t, n.AddSource(1, 10))
	require.NoError(t, n.AddDemand(2, 5))
	require.NoError(t, n.AddPipe(100, 1, 2, 1)) // cheap
	require.NoError(t, n.AddPipe(200, 1, 2, 3)) // expensive

	plan, err := n.MinCostFlow(0)
	require.NoError(t, err)

	assert.InDelta(t, 5, plan.PipeFlow[100], 1e-9)
	assert.InDelta(t, 0, plan.PipeFlow[200], 1e-9)
	assert.InDelta(t, 5, plan.TotalCost, 1e-9)
}

// TestMinCostFlow_Infeasible verifies that a demand beyond the reachable
// supply surfaces the program-level infeasibility sentinel.
func TestMinCostFlow_Infeasible(t *testing.T) {
	n := flownet.NewNetwork()
	require.NoError(t, n.AddSource(1, 3))
	require.NoError(t, n.AddDemand(2, 5)) // supply is only 3
	require.NoError(t, n.AddPipe(100, 1, 2, 1))

	_, err := n.MinCostFlow(0)
	assert.ErrorIs(t, err, lpform.ErrInfeasible)
}

// TestMinCostFlow_DistributionNetwork drives a nine-node distribution
// network: three reservoirs feeding six towns through fifteen pipes,
// including bidirectional trunk pairs. The exact optimum depends on the
// pivot path, so the test checks the physics instead: every demand met,
// no reservoir over capacity, no negative flow, and the total cost
// inside a hand-derived bracket (a feasible routing costs 960; summing
// each town's cheapest possible inflow cost gives the lower bound 800).
func TestMinCostFlow_DistributionNetwork(t *testing.T) {
	const (
		nA = flownet.NodeID(iota + 1) // reservoirs
		nB
		nC
		nD // towns
		nE
		nF
		nG
		nH
		nI
	)

	n := flownet.NewNetwork()
	require.NoError(t, n.AddSource(nA, 100))
	require.NoError(t, n.AddSource(nB, 100))
	require.NoError(t, n.AddSource(nC, 120))

	require.NoError(t, n.AddDemand(nD, 50))
	require.NoError(t, n.AddDemand(nE, 60))
	require.NoError(t, n.AddDemand(nF, 40))
	require.NoError(t, n.AddDemand(nG, 30))
	require.NoError(t, n.AddDemand(nH, 70))
	require.NoError(t, n.AddDemand(nI, 40))

	pipes := []struct {
		id       flownet.PipeID
		from, to flownet.NodeID
		cost     float64
	}{
		{1, nA, nD, 2},
		{2, nB, nD, 3},
		{3, nA, nE, 4},
		{4, nB, nF, 2},
		{5, nE, nF, 3},
		{-5, nF, nE, 3},
		{6, nF, nG, 2},
		{-6, nG, nF, 2},
		{7, nH, nE, 4},
		{-7, nE, nH, 4},
		{8, nC, nF, 1},
		{9, nI, nG, 2},
		{-9, nG, nI, 2},
		{10, nC, nH, 4},
		{11, nC, nI, 5},
		{12, nB, nG, 3},
	}
	for _, p := range pipes {
		require.NoError(t, n.AddPipe(p.id, p.from, p.to, p.cost))
	}

	plan, err := n.MinCostFlow(0)
	require.NoError(t, err)

	// 1) Non-negative flow on every pipe.
	for _, p := range pipes {
		assert.GreaterOrEqual(t, plan.PipeFlow[p.id], -1e-9, "pipe %d", p.id)
	}

	// 2) Every town receives its requirement.
	towns := map[flownet.NodeID]float64{nD: 50, nE: 60, nF: 40, nG: 30, nH: 70, nI: 40}
	for node, required := range towns {
		assert.GreaterOrEqual(t, plan.NetInflow(n, node), required-1e-6, "town %d", node)
	}

	// 3) No reservoir ships more than its capacity.
	caps := map[flownet.NodeID]float64{nA: 100, nB: 100, nC: 120}
	for node, capacity := range caps {
		assert.LessOrEqual(t, -plan.NetInflow(n, node), capacity+1e-6, "reservoir %d", node)
	}

	// 4) Cost bracket around the optimum.
	assert.GreaterOrEqual(t, plan.TotalCost, 800-1e-6)
	assert.LessOrEqual(t, plan.TotalCost, 960+1e-6)
}

// TestMinCostFlow_Deterministic verifies that repeated solves of the same
// network return the identical plan.
func TestMinCostFlow_Deterministic(t *testing.T) {
	build := func() *flownet.Network {
		n := flownet.NewNetwork()
		require.NoError(t, n.AddSource(1, 10))
		require.NoError(t, n.AddSource(2, 10))
		require.NoError(t, n.AddDemand(3, 8))
		require.NoError(t, n.AddPipe(100, 1, 3, 2))
		require.NoError(t, n.AddPipe(200, 2, 3, 2))

		return n
	}

	first, err := build().MinCostFlow(0)
	require.NoError(t, err)
	second, err := build().MinCostFlow(0)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCost, second.TotalCost)
	assert.Equal(t, first.PipeFlow, second.PipeFlow)
}
