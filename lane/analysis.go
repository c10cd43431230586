package lane

import (
	"gonum.org/v1/plot/plotter"
)

// VisitDataSet counts observation visits over the wave/advantage plane.
// It plots as a heatmap: columns are wave positions, rows advantage values.
type VisitDataSet struct {
	Visits map[int]map[int]int // g -> w -> count
	Bound  int                 // advantage bound G
}

var _ plotter.GridXYZ = &VisitDataSet{}

func NewVisitDataSet(bound int) *VisitDataSet {
	return &VisitDataSet{
		Visits: make(map[int]map[int]int),
		Bound:  bound,
	}
}

func (d *VisitDataSet) Add(obs Observation) {
	if _, ok := d.Visits[obs.G]; !ok {
		d.Visits[obs.G] = make(map[int]int)
	}
	d.Visits[obs.G][obs.W] += 1
}

func (d *VisitDataSet) Dims() (int, int) {
	return 5, 2*d.Bound + 1
}

func (d *VisitDataSet) Z(c, r int) float64 {
	return float64(d.Visits[r-d.Bound][c-2])
}

func (d *VisitDataSet) X(c int) float64 {
	return float64(c - 2)
}

func (d *VisitDataSet) Y(r int) float64 {
	return float64(r - d.Bound)
}

func (d *VisitDataSet) Min() float64 {
	return 0.0
}

func (d *VisitDataSet) Max() float64 {
	max := 0
	for _, row := range d.Visits {
		for _, count := range row {
			if count > max {
				max = count
			}
		}
	}
	return float64(max)
}

// Merge folds another data set into this one. Used to aggregate the visit
// counts of repeated runs.
func (d *VisitDataSet) Merge(other *VisitDataSet) {
	if other.Bound > d.Bound {
		d.Bound = other.Bound
	}
	for g, row := range other.Visits {
		if _, ok := d.Visits[g]; !ok {
			d.Visits[g] = make(map[int]int)
		}
		for w, count := range row {
			d.Visits[g][w] += count
		}
	}
}
