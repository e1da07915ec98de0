package profiles

import (
	"math"
	"testing"

	"github.com/chazu/scabbard/pkg/kernel/sdfx"
)

func TestDeflectionAngle(t *testing.T) {
	tests := []struct {
		name        string
		right, back float64
		want        float64
	}{
		{"no deflection", 1, 0, 0},
		{"equal factors", 1, 1, math.Pi / 4},
		{"straight back", 0, 1, math.Pi / 2},
		{"shallow", 2, 1, math.Atan(0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeflectionAngle(tt.right, tt.back)
			if !approx(got, tt.want) {
				t.Errorf("DeflectionAngle(%g, %g) = %g, want %g", tt.right, tt.back, got, tt.want)
			}
			if tt.right > 0 {
				if ratio := math.Tan(got); !approx(ratio, tt.back/tt.right) {
					t.Errorf("tan(angle) = %g, want %g", ratio, tt.back/tt.right)
				}
			}
		})
	}
}

func TestSlotChannelExtents(t *testing.T) {
	k := sdfx.New()
	s := Slot(k, SlotSpec{Width: 6, Thickness: 4, Length: 20, RightFactor: 1})

	min, max := s.BoundingBox()
	// Rounded channel ends add half a width past both endpoints; the lock
	// segment reaches Width*RightFactor plus its end cap towards +X.
	if !approx(min[1], -3) || !approx(max[1], 23) {
		t.Errorf("y extent = [%g, %g], want [-3, 23]", min[1], max[1])
	}
	if !approx(min[0], -3) || !approx(max[0], 9) {
		t.Errorf("x extent = [%g, %g], want [-3, 9]", min[0], max[0])
	}
	if !approx(min[2], 0) || !approx(max[2], 4) {
		t.Errorf("z extent = [%g, %g], want [0, 4]", min[2], max[2])
	}
}

func TestSlotNotchThreshold(t *testing.T) {
	k := sdfx.New()
	tests := []struct {
		name        string
		rightFactor float64
		notched     bool
	}{
		{"below threshold", 1.0, false},
		{"at threshold", NotchThreshold, false},
		{"above threshold", 1.3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Slot(k, SlotSpec{
				Width: 6, Thickness: 4, Length: 20,
				RightFactor: tt.rightFactor, BackFactor: 1.5,
			})
			min, _ := s.BoundingBox()
			// The notch runs Width*BackFactor towards -Y from the lock end,
			// plus its rounded cap.
			wantMinY := -3.0
			if tt.notched {
				wantMinY = -6*1.5 - 3
			}
			if !approx(min[1], wantMinY) {
				t.Errorf("y min = %g, want %g", min[1], wantMinY)
			}
		})
	}
}

func TestSlotDiagonal(t *testing.T) {
	k := sdfx.New()
	s := Slot(k, SlotSpec{
		Width: 6, Thickness: 4, Length: 20,
		Diagonal: true, RightFactor: 1, BackFactor: 1,
	})

	min, max := s.BoundingBox()
	// One segment to (6, -6) with rounded caps.
	if !approx(max[0], 9) || !approx(min[1], -9) {
		t.Errorf("extents = x max %g, y min %g, want 9 and -9", max[0], min[1])
	}

	// Midpoint of the diagonal is inside; a point more than half a width
	// off its centerline is not.
	if d := sdfx.Evaluate(s, 3, -3, 2); d >= 0 {
		t.Errorf("diagonal midpoint not inside, distance %g", d)
	}
	if d := sdfx.Evaluate(s, 8, -1, 2); d <= 0 {
		t.Errorf("point off the diagonal is inside, distance %g", d)
	}
}

func TestSlotLShape(t *testing.T) {
	k := sdfx.New()
	s := Slot(k, SlotSpec{
		Width: 6, Thickness: 4, Length: 20,
		RightFactor: 1.5, BackFactor: 1,
	})

	// Perpendicular segment midpoint.
	if d := sdfx.Evaluate(s, 4.5, 0, 2); d >= 0 {
		t.Errorf("lock segment midpoint not inside, distance %g", d)
	}
	// Notch midpoint (rightFactor 1.5 > threshold, so the notch exists):
	// from (9, 0) down to (9, -6).
	if d := sdfx.Evaluate(s, 9, -3, 2); d >= 0 {
		t.Errorf("notch midpoint not inside, distance %g", d)
	}
	// The diagonal's path is empty in the L policy.
	if d := sdfx.Evaluate(s, 5, -4, 2); d <= 0 {
		t.Errorf("interior of the L is filled, distance %g", d)
	}
}
