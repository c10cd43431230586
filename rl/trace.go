package rl

import "github.com/lmarcon/lane-rl/lane"

// Transition is one step of one player's experience.
type Transition struct {
	Obs    lane.Observation
	Action lane.Action
	Reward float64
	Next   lane.Observation
}

// Trace records one player's transitions over an episode.
type Trace struct {
	transitions []Transition
}

func NewTrace() *Trace {
	return &Trace{
		transitions: make([]Transition, 0),
	}
}

func (t *Trace) Append(tr Transition) {
	t.transitions = append(t.transitions, tr)
}

func (t *Trace) Len() int {
	return len(t.transitions)
}

func (t *Trace) Get(i int) (Transition, bool) {
	if i >= len(t.transitions) {
		return Transition{}, false
	}
	return t.transitions[i], true
}

// Return is the undiscounted sum of rewards over the episode.
func (t *Trace) Return() float64 {
	sum := 0.0
	for _, tr := range t.transitions {
		sum += tr.Reward
	}
	return sum
}
