package rl

import (
	"fmt"
	"strconv"

	"github.com/lmarcon/lane-rl/util"
)

// Experiment runs a named self-play configuration for a number of episodes.
// With SnapshotEvery > 0 the opponent is re-frozen from the learner at that
// cadence, so the learner always trains against a fixed policy.
type Experiment struct {
	Name          string
	Episodes      int
	SnapshotEvery int
	// when set, per-episode returns are appended here, one per line
	ReturnsFile string

	selfPlay *SelfPlay
	Result   []*Trace
}

func NewExperiment(name string, episodes, snapshotEvery int, selfPlay *SelfPlay) *Experiment {
	return &Experiment{
		Name:          name,
		Episodes:      episodes,
		SnapshotEvery: snapshotEvery,
		selfPlay:      selfPlay,
		Result:        make([]*Trace, 0, episodes),
	}
}

func (e *Experiment) Run() error {
	fmt.Printf("Running Experiment: %s\n", e.Name)
	for i := 0; i < e.Episodes; i++ {
		fmt.Printf("\rExperiment: %s, Episode: %d/%d", e.Name, i+1, e.Episodes)
		if e.SnapshotEvery > 0 && i%e.SnapshotEvery == 0 {
			e.selfPlay.SetOpponent(e.selfPlay.Learner().SnapshotGreedyPolicy())
		}
		trace, err := e.selfPlay.RunEpisode()
		if err != nil {
			return err
		}
		e.Result = append(e.Result, trace)
		if e.ReturnsFile != "" {
			if err := util.AppendToFile(e.ReturnsFile, strconv.FormatFloat(trace.Return(), 'f', 4, 64)); err != nil {
				return err
			}
		}
	}
	fmt.Println("")
	return nil
}

type DataSet interface{}

type Analyzer func([]*Trace) DataSet

type Comparator func([]string, []DataSet)

// Comparison runs several experiments and hands their analyzed results to a
// comparator.
type Comparison struct {
	Experiments []*Experiment
	analyzer    Analyzer
	comparator  Comparator
}

func NewComparison(analyzer Analyzer, comparator Comparator) *Comparison {
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzer:    analyzer,
		comparator:  comparator,
	}
}

func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

func (c *Comparison) Run() error {
	datasets := make([]DataSet, len(c.Experiments))
	names := make([]string, len(c.Experiments))
	for i, e := range c.Experiments {
		if err := e.Run(); err != nil {
			return err
		}
		datasets[i] = c.analyzer(e.Result)
		names[i] = e.Name
	}
	c.comparator(names, datasets)
	return nil
}
