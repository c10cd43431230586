package policies

import (
	"github.com/lmarcon/lane-rl/lane"
	"golang.org/x/exp/rand"
)

const (
	DefaultAlpha   = 0.15
	DefaultGamma   = 0.95
	DefaultEpsilon = 0.15
)

// QLearningAgent is a tabular one-step Q-learner for one player of the lane
// game. It owns its table; nothing else mutates it.
type QLearningAgent struct {
	alpha   float64
	gamma   float64
	epsilon float64
	actions []lane.Action
	table   *QTable
	rand    *rand.Rand
}

func NewQLearningAgent(alpha, gamma, epsilon float64, r *rand.Rand) *QLearningAgent {
	actions := make([]lane.Action, len(lane.AllActions))
	copy(actions, lane.AllActions)
	return &QLearningAgent{
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		actions: actions,
		table:   NewQTable(actions),
		rand:    r,
	}
}

func NewDefaultQLearningAgent(r *rand.Rand) *QLearningAgent {
	return NewQLearningAgent(DefaultAlpha, DefaultGamma, DefaultEpsilon, r)
}

// Table exposes the live table, e.g. for analysis or a softmax view over a
// copy. Mutate it only through Update.
func (a *QLearningAgent) Table() *QTable {
	return a.table
}

// Act picks an action epsilon-greedily: explore uniformly with probability
// epsilon, otherwise take the canonical-order stable argmax.
func (a *QLearningAgent) Act(obs lane.Observation) lane.Action {
	if a.rand.Float64() < a.epsilon {
		return a.actions[a.rand.Intn(len(a.actions))]
	}
	return a.table.ArgMax(obs)
}

// Update applies the one-step Q-learning rule for the observed transition.
// An action outside the canonical set is a caller contract violation.
func (a *QLearningAgent) Update(obs lane.Observation, action lane.Action, reward float64, next lane.Observation) error {
	i, err := a.table.actionIndex(action)
	if err != nil {
		return err
	}
	row := a.table.Row(obs)
	target := reward + a.gamma*a.table.MaxValue(next)
	row[i] += a.alpha * (target - row[i])
	return nil
}

// SnapshotGreedyPolicy freezes the current values into an independent
// greedy policy. Later updates to the live agent do not affect it.
func (a *QLearningAgent) SnapshotGreedyPolicy() *FrozenPolicy {
	return &FrozenPolicy{table: a.table.Copy()}
}

// FrozenPolicy is an immutable greedy policy over a deep copy of an
// agent's table, taken at snapshot time. It is safe to hand to another
// training loop: evaluation never mutates the copy.
type FrozenPolicy struct {
	table *QTable
}

func (p *FrozenPolicy) Act(obs lane.Observation) lane.Action {
	return p.table.ArgMax(obs)
}
