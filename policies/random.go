package policies

import (
	"github.com/lmarcon/lane-rl/lane"
	"golang.org/x/exp/rand"
)

// RandomPolicy picks uniformly among the canonical actions. Useful as a
// fixed baseline opponent.
type RandomPolicy struct {
	rand *rand.Rand
}

func NewRandomPolicy(r *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rand: r}
}

func (p *RandomPolicy) Act(_ lane.Observation) lane.Action {
	return lane.AllActions[p.rand.Intn(len(lane.AllActions))]
}
