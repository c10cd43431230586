package benchmarks

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/lmarcon/lane-rl/lane"
	"github.com/lmarcon/lane-rl/policies"
	"github.com/lmarcon/lane-rl/rl"
)

// LaneSelfPlay trains a tabular Q-learner on the lane game against three
// opponents: its own frozen snapshots, a uniform random baseline, and a
// softmax view of its table. Visit heatmaps are merged across runs and
// dumped per experiment.
func LaneSelfPlay(episodes, runs int, seed uint64, saveDir string, snapshotEvery int, alpha, gamma, epsilon, temperature float64) error {
	params := lane.DefaultParams()

	collected := make(map[string][]rl.DataSet)
	order := make([]string, 0)
	collect := func(names []string, dataSets []rl.DataSet) {
		for i, name := range names {
			if _, ok := collected[name]; !ok {
				order = append(order, name)
			}
			collected[name] = append(collected[name], dataSets[i])
		}
	}

	var lastLearner *policies.QLearningAgent
	for run := 0; run < runs; run++ {
		runSeed := seed + uint64(run)*7919

		c := rl.NewComparison(rl.VisitAnalyzer(params.G), collect)
		addExperiment := func(name string, snapEvery int, selfPlay *rl.SelfPlay) {
			exp := rl.NewExperiment(name, episodes, snapEvery, selfPlay)
			exp.ReturnsFile = path.Join(saveDir, fmt.Sprintf("%s_returns_%d.txt", name, run))
			c.AddExperiment(exp)
		}

		{
			r := rand.New(rand.NewSource(runSeed))
			learner := policies.NewQLearningAgent(alpha, gamma, epsilon, r)
			selfPlay := rl.NewSelfPlay(lane.NewLaneEnv(params, r), learner, learner.SnapshotGreedyPolicy())
			addExperiment("Frozen-SelfPlay", snapshotEvery, selfPlay)
			lastLearner = learner
		}
		{
			r := rand.New(rand.NewSource(runSeed + 1))
			learner := policies.NewQLearningAgent(alpha, gamma, epsilon, r)
			selfPlay := rl.NewSelfPlay(lane.NewLaneEnv(params, r), learner, policies.NewRandomPolicy(r))
			addExperiment("Random-Opponent", 0, selfPlay)
		}
		{
			r := rand.New(rand.NewSource(runSeed + 2))
			learner := policies.NewQLearningAgent(alpha, gamma, epsilon, r)
			opponent := policies.NewSoftmaxPolicy(learner.Table(), temperature, r)
			selfPlay := rl.NewSelfPlay(lane.NewLaneEnv(params, r), learner, opponent)
			addExperiment("Softmax-Opponent", 0, selfPlay)
		}

		if err := c.Run(); err != nil {
			return err
		}
	}

	names := make([]string, len(order))
	merged := make([]rl.DataSet, len(order))
	for i, name := range order {
		names[i] = name
		merged[i] = rl.MergeVisitDataSets(collected[name])
	}
	rl.VisitDumpComparator(saveDir)(names, merged)

	printGreedySummary(lastLearner)
	return nil
}

// printGreedySummary shows the learned greedy action across wave positions
// with empty stacks, no vision and even advantage.
func printGreedySummary(learner *policies.QLearningAgent) {
	if learner == nil {
		return
	}
	frozen := learner.SnapshotGreedyPolicy()
	fmt.Println("Greedy policy by wave position (m=0, v=0, g=0):")
	for w := -2; w <= 2; w++ {
		obs := lane.Observation{W: w}
		fmt.Printf("  w=%+d: %s\n", w, frozen.Act(obs))
	}
	fmt.Printf("States visited: %d\n", learner.Table().Len())
}

func LaneSelfPlayCommand() *cobra.Command {
	var snapshotEvery int
	var alpha float64
	var gamma float64
	var epsilon float64
	var temperature float64

	cmd := &cobra.Command{
		Use: "lane",
		RunE: func(cmd *cobra.Command, args []string) error {
			return LaneSelfPlay(episodes, runs, seed, saveDir, snapshotEvery, alpha, gamma, epsilon, temperature)
		},
	}
	cmd.PersistentFlags().IntVar(&snapshotEvery, "snapshot-every", 500, "Episodes between opponent snapshots")
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", policies.DefaultAlpha, "Learning rate")
	cmd.PersistentFlags().Float64Var(&gamma, "gamma", policies.DefaultGamma, "Discount factor")
	cmd.PersistentFlags().Float64Var(&epsilon, "epsilon", policies.DefaultEpsilon, "Exploration rate")
	cmd.PersistentFlags().Float64Var(&temperature, "temperature", 1.0, "Softmax opponent temperature")
	return cmd
}
