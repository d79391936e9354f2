package makespan

import (
	"math"

	"github.com/eth-easl/estimator-eval/pkg/common"
	"github.com/eth-easl/estimator-eval/pkg/workflow"
	"github.com/pkg/errors"
)

type Resources struct {
	Nodes        int
	CoresPerNode int
}

func (r Resources) validate() error {
	if r.Nodes < 1 || r.CoresPerNode < 1 {
		return errors.Errorf("need at least one node and one core per node, got %+v", r)
	}

	return nil
}

type phaseTimes struct {
	read, compute, write float64
}

func phases(w *workflow.Workflow, p Platform, r Resources) phaseTimes {
	read, written := w.TotalData()
	nodes := float64(r.Nodes)
	cores := nodes * float64(r.CoresPerNode)

	return phaseTimes{
		read:    read / (p.IOReadSpeedPerNode * nodes),
		compute: w.TotalFlops() / (cores * p.ComputeSpeedPerCore),
		write:   written / (p.IOWriteSpeedPerNode * nodes),
	}
}

// NaiveNoOverlap assumes all reads, then all computation, then all writes,
// each spread perfectly over the allocation.
func NaiveNoOverlap(w *workflow.Workflow, p Platform, r Resources) float64 {
	t := phases(w, p, r)
	return t.read + t.compute + t.write
}

// NaiveOverlap assumes I/O fully overlaps with computation.
func NaiveOverlap(w *workflow.Workflow, p Platform, r Resources) float64 {
	t := phases(w, p, r)
	return math.Max(t.compute, t.read+t.write)
}

// CriticalPath is the length of the longest dependency chain, each task
// running on one core and doing its own I/O at full node bandwidth.
func CriticalPath(w *workflow.Workflow, p Platform) (float64, error) {
	order, err := w.TopologicalOrder()
	if err != nil {
		return 0, err
	}

	finish := make(map[*workflow.Task]float64, len(order))
	longest := 0.0

	for _, t := range order {
		start := 0.0
		for _, parent := range t.Parents {
			start = math.Max(start, finish[parent])
		}

		duration := t.InputSize()/p.IOReadSpeedPerNode +
			t.Flops/p.ComputeSpeedPerCore +
			t.OutputSize()/p.IOWriteSpeedPerNode

		finish[t] = start + duration
		longest = math.Max(longest, finish[t])
	}

	return longest, nil
}

// Estimate returns the three makespan estimates in seconds, in the order
// the model results file carries them.
func Estimate(w *workflow.Workflow, p Platform, r Resources) ([common.NumEstimators]float64, error) {
	var estimates [common.NumEstimators]float64

	if err := p.validate(); err != nil {
		return estimates, err
	}
	if err := r.validate(); err != nil {
		return estimates, err
	}

	criticalPath, err := CriticalPath(w, p)
	if err != nil {
		return estimates, err
	}

	estimates[common.EstimatorA] = NaiveNoOverlap(w, p, r)
	estimates[common.EstimatorB] = NaiveOverlap(w, p, r)
	estimates[common.EstimatorC] = criticalPath

	return estimates, nil
}
