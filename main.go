package main

import (
	"fmt"

	"github.com/lmarcon/lane-rl/benchmarks"
)

// main entry point to the experiments
func main() {
	rootCommand := benchmarks.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
