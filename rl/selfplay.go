package rl

import (
	"github.com/lmarcon/lane-rl/lane"
	"github.com/lmarcon/lane-rl/policies"
)

// ActionSelector is any policy that can answer an observation with an
// action: a live agent, a frozen snapshot, or a baseline.
type ActionSelector interface {
	Act(lane.Observation) lane.Action
}

// SelfPlay drives one learning agent against an opponent policy on a lane
// environment. The learner sees the self observation, the opponent the
// mirrored one; only the learner's table is updated.
type SelfPlay struct {
	env      *lane.LaneEnv
	learner  *policies.QLearningAgent
	opponent ActionSelector
}

func NewSelfPlay(env *lane.LaneEnv, learner *policies.QLearningAgent, opponent ActionSelector) *SelfPlay {
	return &SelfPlay{
		env:      env,
		learner:  learner,
		opponent: opponent,
	}
}

func (s *SelfPlay) Learner() *policies.QLearningAgent {
	return s.learner
}

// SetOpponent swaps the opponent policy, typically for a fresh frozen
// snapshot of the learner.
func (s *SelfPlay) SetOpponent(opponent ActionSelector) {
	s.opponent = opponent
}

// RunEpisode plays one full episode, feeding every transition to the
// learner's update, and returns the learner's trace.
func (s *SelfPlay) RunEpisode() (*Trace, error) {
	obsSelf, obsOpp := s.env.Reset()
	trace := NewTrace()

	for {
		aSelf := s.learner.Act(obsSelf)
		aOpp := s.opponent.Act(obsOpp)

		res, err := s.env.Step(aSelf, aOpp)
		if err != nil {
			return nil, err
		}
		if err := s.learner.Update(obsSelf, aSelf, res.RewardSelf, res.ObsSelf); err != nil {
			return nil, err
		}

		trace.Append(Transition{
			Obs:    obsSelf,
			Action: aSelf,
			Reward: res.RewardSelf,
			Next:   res.ObsSelf,
		})

		obsSelf, obsOpp = res.ObsSelf, res.ObsOpp
		if res.Done {
			break
		}
	}
	return trace, nil
}
