package policies

import (
	"math"

	"github.com/lmarcon/lane-rl/lane"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftmaxPolicy samples actions with Boltzmann weights over a Q-table.
// Pass a Copy of a live agent's table for a frozen stochastic opponent, or
// the live table itself for an on-policy view. Unseen observations read as
// all zeros, which makes the draw uniform.
type SoftmaxPolicy struct {
	table       *QTable
	temperature float64
	rand        *rand.Rand
}

func NewSoftmaxPolicy(table *QTable, temperature float64, r *rand.Rand) *SoftmaxPolicy {
	return &SoftmaxPolicy{
		table:       table,
		temperature: temperature,
		rand:        r,
	}
}

func (p *SoftmaxPolicy) Act(obs lane.Observation) lane.Action {
	actions := p.table.actions
	weights := make([]float64, len(actions))
	row, ok := p.table.table[obs]
	for i := range actions {
		v := 0.0
		if ok {
			v = row[i]
		}
		weights[i] = math.Exp(v / p.temperature)
	}
	i, ok := sampleuv.NewWeighted(weights, p.rand).Take()
	if !ok {
		return actions[0]
	}
	return actions[i]
}
