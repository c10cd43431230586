package rl

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/lmarcon/lane-rl/lane"
	"github.com/lmarcon/lane-rl/util"
)

// VisitAnalyzer folds every observation the learner visited into a
// wave/advantage visit heatmap.
func VisitAnalyzer(bound int) Analyzer {
	return func(traces []*Trace) DataSet {
		d := lane.NewVisitDataSet(bound)
		for _, trace := range traces {
			for i := 0; i < trace.Len(); i++ {
				tr, ok := trace.Get(i)
				if !ok {
					break
				}
				d.Add(tr.Obs)
			}
		}
		return d
	}
}

func MergeVisitDataSets(dataSets []DataSet) DataSet {
	merged := lane.NewVisitDataSet(0)
	for _, d := range dataSets {
		merged.Merge(d.(*lane.VisitDataSet))
	}
	return merged
}

// VisitDumpComparator writes each experiment's visit data set to
// <saveDir>/<name>.json.
func VisitDumpComparator(saveDir string) Comparator {
	return func(names []string, dataSets []DataSet) {
		for i, name := range names {
			bs, err := json.Marshal(dataSets[i].(*lane.VisitDataSet))
			if err != nil {
				fmt.Printf("failed to marshal data set %s: %v\n", name, err)
				continue
			}
			if err := util.WriteToFile(path.Join(saveDir, name+".json"), string(bs)); err != nil {
				fmt.Printf("failed to write data set %s: %v\n", name, err)
			}
		}
	}
}
