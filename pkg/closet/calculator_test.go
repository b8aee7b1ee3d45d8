package closet

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestDoorWidth(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		buffer    float64
		doorCount int
		expected  float64
	}{
		{"three doors with buffer", 180, 0.17, 3, 59.886666666666667},
		{"two doors without buffer", 100, 0, 2, 50},
		{"single door spans full width", 60, 0, 1, 60},
		{"buffer subtracted once per side regardless of doors", 100, 5, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DoorWidth(tt.width, tt.buffer, tt.doorCount)
			if !approx(got, tt.expected) {
				t.Errorf("DoorWidth(%v, %v, %d) = %v, expected %v", tt.width, tt.buffer, tt.doorCount, got, tt.expected)
			}
			if got <= 0 {
				t.Errorf("DoorWidth must be positive for valid input, got %v", got)
			}
		})
	}
}

func TestDoorHeightMatchesInternalBeamHeight(t *testing.T) {
	for _, h := range []float64{3.5, 100, 200, 240, 1000.25} {
		door := DoorHeight(h)
		if !approx(door, h-3.4) {
			t.Errorf("DoorHeight(%v) = %v, expected %v", h, door, h-3.4)
		}
		if beam := InternalBeamHeight(h); beam != door {
			t.Errorf("InternalBeamHeight(%v) = %v differs from DoorHeight %v", h, beam, door)
		}
	}
}

func TestShelfFormulas(t *testing.T) {
	if got := ShelfWidth(180, 0.17, 10); !approx(got, 17.966) {
		t.Errorf("ShelfWidth failed: got %v", got)
	}
	if got := ShelfHeight(240, 10); got != 24 {
		t.Errorf("ShelfHeight failed: got %v", got)
	}
	for _, d := range []float64{0, 45.5, 60, -3} {
		if got := ShelfDepth(d); got != d {
			t.Errorf("ShelfDepth(%v) = %v, expected identity", d, got)
		}
	}
}

func TestBeamCountsAreConstant(t *testing.T) {
	specs := []Spec{DefaultSpec(), {}, {Width: 1, Height: 1, Depth: 1, DoorCount: 9, ShelfCount: 10}}
	for _, s := range specs {
		d := Compute(s)
		if d.ExternalBeamCount != 2 || d.InternalBeamCount != 2 {
			t.Errorf("beam counts changed with input %+v: %d/%d", s, d.ExternalBeamCount, d.InternalBeamCount)
		}
	}
}

func TestComputeEndToEnd(t *testing.T) {
	spec := Spec{Width: 180, Height: 240, Depth: 60, BufferWidth: 0.17, DoorCount: 3, ShelfCount: 10}
	d := Compute(spec)

	checks := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"DoorWidth", d.DoorWidth, (180 - 0.34) / 3},
		{"DoorHeight", d.DoorHeight, 236.6},
		{"InternalBeamHeight", d.InternalBeamHeight, 236.6},
		{"ShelfWidth", d.ShelfWidth, 17.966},
		{"ShelfHeight", d.ShelfHeight, 24},
		{"ShelfDepth", d.ShelfDepth, 60},
	}
	for _, c := range checks {
		if !approx(c.got, c.expected) {
			t.Errorf("%s = %v, expected %v", c.name, c.got, c.expected)
		}
	}

	// Rounded as shown to the user
	if got := math.Round(d.DoorWidth*100) / 100; got != 59.89 {
		t.Errorf("rounded DoorWidth = %v, expected 59.89", got)
	}
}

func TestComputeSecondExample(t *testing.T) {
	d := Compute(Spec{Width: 100, Height: 200, Depth: 50, DoorCount: 2, ShelfCount: 4})
	if d.DoorWidth != 50 {
		t.Errorf("DoorWidth = %v, expected 50", d.DoorWidth)
	}
	if !approx(d.DoorHeight, 196.6) {
		t.Errorf("DoorHeight = %v, expected 196.6", d.DoorHeight)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	spec := DefaultSpec()
	first := Compute(spec)
	second := Compute(spec)
	if first != second {
		t.Errorf("Compute is not deterministic: %+v vs %+v", first, second)
	}
}

func TestComputeZeroCountsFollowIEEE(t *testing.T) {
	d := Compute(Spec{Width: 100, Height: 200, Depth: 50})

	if !math.IsInf(d.DoorWidth, 1) {
		t.Errorf("zero doors should yield +Inf door width, got %v", d.DoorWidth)
	}
	if !math.IsInf(d.ShelfWidth, 1) || !math.IsInf(d.ShelfHeight, 1) {
		t.Errorf("zero shelves should yield +Inf shelf sizes, got %v/%v", d.ShelfWidth, d.ShelfHeight)
	}

	// A buffer wider than half the closet goes negative rather than failing
	if w := DoorWidth(10, 6, 1); w >= 0 {
		t.Errorf("expected negative door width, got %v", w)
	}
}
