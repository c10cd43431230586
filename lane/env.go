package lane

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func clampInt(x, low, high int) int {
	if x < low {
		return low
	}
	if x > high {
		return high
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func indicator(cond bool) int {
	if cond {
		return 1
	}
	return 0
}

func bernoulli(r *rand.Rand, p float64) int {
	if r.Float64() < p {
		return 1
	}
	return 0
}

// Action is one of the three lane moves. The declaration order is the
// canonical action order used for Q-table rows and tie breaking.
type Action int

const (
	Split Action = iota
	Shove
	Freeze
)

var AllActions = []Action{Split, Shove, Freeze}

func (a Action) String() string {
	switch a {
	case Split:
		return "Split"
	case Shove:
		return "Shove"
	case Freeze:
		return "Freeze"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// waveDelta is the push each action applies to the wave, from the
// perspective of the player taking it.
func waveDelta(a Action) (int, error) {
	switch a {
	case Split:
		return +1, nil
	case Shove:
		return +2, nil
	case Freeze:
		return -1, nil
	}
	return 0, errors.Errorf("invalid action: %d", int(a))
}

// Params configures the lane game. Read-only for the lifetime of an
// environment instance.
type Params struct {
	T   int     // episode length
	G   int     // advantage bound
	Eps float64 // cyclic payoff magnitude
	PV  float64 // per-step vision probability

	BPlates    float64
	BDeny      float64
	BDenyBonus float64
	BCrash     float64

	Q0 float64
	Q1 float64
	Q2 float64
	L  float64 // gank penalty
}

func DefaultParams() Params {
	return Params{
		T:   40,
		G:   3,
		Eps: 0.3,
		PV:  0.6,

		BPlates:    0.6,
		BDeny:      0.4,
		BDenyBonus: 0.2,
		BCrash:     0.8,

		Q0: 0.05,
		Q1: 0.20,
		Q2: 0.15,
		L:  5.0,
	}
}

// Observation is one player's projection of the game state:
// wave and advantage signed from that player's perspective, own fields first.
type Observation struct {
	W     int
	MSelf int
	MOpp  int
	VSelf int
	VOpp  int
	G     int
}

func (o Observation) Hash() string {
	return fmt.Sprintf("(%d,%d,%d,%d,%d,%d)", o.W, o.MSelf, o.MOpp, o.VSelf, o.VOpp, o.G)
}

// Mirror is the same state seen by the other player.
func (o Observation) Mirror() Observation {
	return Observation{
		W:     -o.W,
		MSelf: o.MOpp,
		MOpp:  o.MSelf,
		VSelf: o.VOpp,
		VOpp:  o.VSelf,
		G:     -o.G,
	}
}

// StepResult carries everything one Step emits: the two mirrored
// observations, the per-player rewards and the episode-end flag.
type StepResult struct {
	ObsSelf    Observation
	ObsOpp     Observation
	RewardSelf float64
	RewardOpp  float64
	Done       bool
}

// LaneEnv is the two-player lane Markov game. It owns the full game state;
// both players act simultaneously through Step. All randomness comes from
// the source passed at construction, so seeded runs are reproducible.
type LaneEnv struct {
	p    Params
	rand *rand.Rand

	w     int
	mSelf int
	mOpp  int
	vSelf int
	vOpp  int
	g     int
	t     int
}

func NewLaneEnv(params Params, r *rand.Rand) *LaneEnv {
	e := &LaneEnv{p: params, rand: r}
	e.Reset()
	return e
}

// Reset reinitializes the game state and returns the two mirrored
// observations.
func (e *LaneEnv) Reset() (Observation, Observation) {
	e.w = 0
	e.mSelf = 0
	e.mOpp = 0
	e.vSelf = bernoulli(e.rand, e.p.PV)
	e.vOpp = bernoulli(e.rand, e.p.PV)
	e.g = 0
	e.t = 0
	return e.ObserveSelf(), e.ObserveOpp()
}

func (e *LaneEnv) ObserveSelf() Observation {
	return Observation{
		W:     e.w,
		MSelf: e.mSelf,
		MOpp:  e.mOpp,
		VSelf: e.vSelf,
		VOpp:  e.vOpp,
		G:     e.g,
	}
}

func (e *LaneEnv) ObserveOpp() Observation {
	return e.ObserveSelf().Mirror()
}

// payoff is the cyclic-dominance matrix: Shove beats Split, Freeze beats
// Shove, Split beats Freeze. Antisymmetric, zero on the diagonal.
func (e *LaneEnv) payoff(a, b Action) float64 {
	if a == b {
		return 0
	}
	wins := (a == Shove && b == Split) ||
		(a == Freeze && b == Shove) ||
		(a == Split && b == Freeze)
	if wins {
		return e.p.Eps
	}
	return -e.p.Eps
}

// gankProb is the chance of an adverse gank this step. Vision fully
// suppresses it.
func (e *LaneEnv) gankProb(w, v int, a Action) float64 {
	base := e.p.Q0 +
		e.p.Q1*float64(indicator(w == 2)) +
		e.p.Q2*float64(indicator(a == Shove))
	return float64(1-v) * clamp01(base)
}

// updateStack advances one player's minion stack given that player's action
// and own-perspective next wave. Split builds until the wave crashes, Shove
// cashes the stack on a crash, Freeze trims it.
func updateStack(m int, a Action, wNext int) int {
	switch {
	case a == Split && wNext < 2:
		return clampInt(m+1, 0, 2)
	case a == Shove && wNext == 2:
		return 0
	case a == Freeze:
		return clampInt(m-1, 0, 2)
	}
	return m
}

// reward computes one perspective's reward for a step. All state arguments
// are pre-step and already in that perspective; wNext is the post-step wave
// in the same perspective.
func (e *LaneEnv) reward(w, m, v int, aSelf, aOpp Action, wNext int) float64 {
	r := e.payoff(aSelf, aOpp)

	if aSelf == Shove && w >= 1 {
		r += e.p.BPlates
	}
	if aSelf == Freeze && w <= -1 {
		r += e.p.BDeny
		if aOpp == Split || aOpp == Shove {
			r += e.p.BDenyBonus
		}
	}
	if wNext == 2 && m == 2 {
		r += e.p.BCrash
	}

	gank := bernoulli(e.rand, e.gankProb(w, v, aSelf))
	r -= e.p.L * float64(gank)

	return r
}

// Step advances the game by one simultaneous move pair. It returns an error
// only for actions outside the canonical set, which is a caller contract
// violation.
func (e *LaneEnv) Step(aSelf, aOpp Action) (StepResult, error) {
	dSelf, err := waveDelta(aSelf)
	if err != nil {
		return StepResult{}, err
	}
	dOpp, err := waveDelta(aOpp)
	if err != nil {
		return StepResult{}, err
	}

	wNext := clampInt(e.w+dSelf-dOpp, -2, 2)

	// rewards are computed symmetrically: same function, mirrored operands
	rSelf := e.reward(e.w, e.mSelf, e.vSelf, aSelf, aOpp, wNext)
	rOpp := e.reward(-e.w, e.mOpp, e.vOpp, aOpp, aSelf, -wNext)

	// the advantage tracks the rounded reward differential so the
	// observation space stays finite
	gNext := clampInt(e.g+int(math.Round(rSelf-rOpp)), -e.p.G, e.p.G)

	e.mSelf = updateStack(e.mSelf, aSelf, wNext)
	e.mOpp = updateStack(e.mOpp, aOpp, -wNext)

	e.w = wNext
	e.g = gNext
	e.vSelf = bernoulli(e.rand, e.p.PV)
	e.vOpp = bernoulli(e.rand, e.p.PV)
	e.t++

	return StepResult{
		ObsSelf:    e.ObserveSelf(),
		ObsOpp:     e.ObserveOpp(),
		RewardSelf: rSelf,
		RewardOpp:  rOpp,
		Done:       e.t >= e.p.T,
	}, nil
}
