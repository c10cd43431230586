package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	runs     int
	seed     uint64
	saveDir  string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{Use: "lane-rl"}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 5000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save", "s", "results", "Save the result data in the specified folder")
	// adding the subcommands here
	rootCommand.AddCommand(LaneSelfPlayCommand())
	return rootCommand
}
