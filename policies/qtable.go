package policies

import (
	"github.com/lmarcon/lane-rl/lane"
	"github.com/pkg/errors"
)

// QTable maps observations to their action values, stored in canonical
// action order. Rows for unseen observations are materialized lazily with
// zeros; reads that do not need a row to exist never create one.
type QTable struct {
	table   map[lane.Observation][]float64
	actions []lane.Action
}

func NewQTable(actions []lane.Action) *QTable {
	return &QTable{
		table:   make(map[lane.Observation][]float64),
		actions: actions,
	}
}

func (q *QTable) actionIndex(a lane.Action) (int, error) {
	for i, action := range q.actions {
		if action == a {
			return i, nil
		}
	}
	return -1, errors.Errorf("action outside the canonical set: %d", int(a))
}

// Row returns the value row for obs, creating a zero row if needed.
func (q *QTable) Row(obs lane.Observation) []float64 {
	row, ok := q.table[obs]
	if !ok {
		row = make([]float64, len(q.actions))
		q.table[obs] = row
	}
	return row
}

// ArgMax returns the action with the highest value for obs, breaking ties
// by canonical order. Unseen observations read as all zeros and are not
// materialized.
func (q *QTable) ArgMax(obs lane.Observation) lane.Action {
	row, ok := q.table[obs]
	if !ok {
		return q.actions[0]
	}
	best := 0
	for i, v := range row {
		if v > row[best] {
			best = i
		}
	}
	return q.actions[best]
}

// MaxValue returns the highest value for obs without materializing a row.
func (q *QTable) MaxValue(obs lane.Observation) float64 {
	row, ok := q.table[obs]
	if !ok {
		return 0
	}
	max := row[0]
	for _, v := range row[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (q *QTable) Len() int {
	return len(q.table)
}

// Copy deep-copies the table and its action order. The copy shares nothing
// with the receiver.
func (q *QTable) Copy() *QTable {
	table := make(map[lane.Observation][]float64, len(q.table))
	for obs, row := range q.table {
		rowCopy := make([]float64, len(row))
		copy(rowCopy, row)
		table[obs] = rowCopy
	}
	actions := make([]lane.Action, len(q.actions))
	copy(actions, q.actions)
	return &QTable{table: table, actions: actions}
}
