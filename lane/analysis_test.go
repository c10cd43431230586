package lane

import "testing"

func TestVisitDataSetGrid(t *testing.T) {
	d := NewVisitDataSet(3)

	cols, rows := d.Dims()
	if cols != 5 || rows != 7 {
		t.Fatalf("expected a 5x7 grid, got %dx%d", cols, rows)
	}

	d.Add(Observation{W: 2, G: -3})
	d.Add(Observation{W: 2, G: -3})
	d.Add(Observation{W: 0, G: 0})

	// w=2 is the last column, g=-3 the first row
	if z := d.Z(4, 0); z != 2 {
		t.Errorf("expected 2 visits at the corner cell, got %f", z)
	}
	if z := d.Z(2, 3); z != 1 {
		t.Errorf("expected 1 visit at the center cell, got %f", z)
	}
	if x := d.X(0); x != -2 {
		t.Errorf("expected the first column at wave -2, got %f", x)
	}
	if y := d.Y(6); y != 3 {
		t.Errorf("expected the last row at advantage 3, got %f", y)
	}
	if d.Min() != 0 || d.Max() != 2 {
		t.Errorf("unexpected range: [%f, %f]", d.Min(), d.Max())
	}
}

func TestVisitDataSetMerge(t *testing.T) {
	a := NewVisitDataSet(3)
	a.Add(Observation{W: 1, G: 2})
	b := NewVisitDataSet(3)
	b.Add(Observation{W: 1, G: 2})
	b.Add(Observation{W: -2, G: -1})

	a.Merge(b)
	if a.Visits[2][1] != 2 {
		t.Errorf("expected merged count 2, got %d", a.Visits[2][1])
	}
	if a.Visits[-1][-2] != 1 {
		t.Errorf("expected merged count 1, got %d", a.Visits[-1][-2])
	}
}
