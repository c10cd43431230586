package rl

import (
	"testing"

	"github.com/lmarcon/lane-rl/lane"
	"github.com/lmarcon/lane-rl/policies"
	"golang.org/x/exp/rand"
)

func newTestSelfPlay(seed uint64) *SelfPlay {
	r := rand.New(rand.NewSource(seed))
	learner := policies.NewDefaultQLearningAgent(r)
	env := lane.NewLaneEnv(lane.DefaultParams(), r)
	return NewSelfPlay(env, learner, policies.NewRandomPolicy(r))
}

func TestRunEpisodeLength(t *testing.T) {
	selfPlay := newTestSelfPlay(1)

	trace, err := selfPlay.RunEpisode()
	if err != nil {
		t.Fatalf("episode failed: %v", err)
	}
	if trace.Len() != lane.DefaultParams().T {
		t.Errorf("expected a trace of %d transitions, got %d", lane.DefaultParams().T, trace.Len())
	}
	if selfPlay.Learner().Table().Len() == 0 {
		t.Errorf("expected the learner's table to be populated after an episode")
	}
}

func TestRunEpisodeTransitionsChain(t *testing.T) {
	selfPlay := newTestSelfPlay(2)

	trace, err := selfPlay.RunEpisode()
	if err != nil {
		t.Fatalf("episode failed: %v", err)
	}
	for i := 0; i+1 < trace.Len(); i++ {
		cur, _ := trace.Get(i)
		next, _ := trace.Get(i + 1)
		if cur.Next != next.Obs {
			t.Fatalf("transition %d does not chain: %+v -> %+v", i, cur.Next, next.Obs)
		}
	}
}

func TestExperimentRun(t *testing.T) {
	selfPlay := newTestSelfPlay(3)
	exp := NewExperiment("test", 20, 5, selfPlay)

	if err := exp.Run(); err != nil {
		t.Fatalf("experiment failed: %v", err)
	}
	if len(exp.Result) != 20 {
		t.Errorf("expected 20 traces, got %d", len(exp.Result))
	}
	for i, trace := range exp.Result {
		if trace.Len() != lane.DefaultParams().T {
			t.Errorf("trace %d has %d transitions", i, trace.Len())
		}
	}
}

func TestTraceReturn(t *testing.T) {
	trace := NewTrace()
	trace.Append(Transition{Reward: 0.5})
	trace.Append(Transition{Reward: -0.2})
	trace.Append(Transition{Reward: 1.0})

	if got := trace.Return(); got < 1.3-1e-9 || got > 1.3+1e-9 {
		t.Errorf("expected return 1.3, got %f", got)
	}
	if _, ok := trace.Get(3); ok {
		t.Errorf("expected no transition past the end of the trace")
	}
}

func TestVisitAnalyzer(t *testing.T) {
	trace := NewTrace()
	trace.Append(Transition{Obs: lane.Observation{W: 2, G: 1}})
	trace.Append(Transition{Obs: lane.Observation{W: 2, G: 1}})
	trace.Append(Transition{Obs: lane.Observation{W: -1, G: -3}})

	d := VisitAnalyzer(3)([]*Trace{trace}).(*lane.VisitDataSet)
	if d.Visits[1][2] != 2 {
		t.Errorf("expected 2 visits at (w=2, g=1), got %d", d.Visits[1][2])
	}
	if d.Visits[-3][-1] != 1 {
		t.Errorf("expected 1 visit at (w=-1, g=-3), got %d", d.Visits[-3][-1])
	}
}
