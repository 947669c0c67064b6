package game

import (
	"testing"

	"github.com/vovakirdan/poke-the-dots/internal/core"
)

var playfield = core.Sz(500, 400)

func TestBounceMovesByVelocity(t *testing.T) {
	// Small and big dot far from every edge
	small := Dot{Color: core.ColorRed, Center: core.Pt(250, 200), Radius: 30, Velocity: core.Pt(1, 2)}
	big := Dot{Color: core.ColorBlue, Center: core.Pt(200, 150), Radius: 40, Velocity: core.Pt(2, 1)}

	small.Bounce(playfield)
	big.Bounce(playfield)

	if small.Center != core.Pt(251, 202) {
		t.Errorf("small center = %v, expected (251,202)", small.Center)
	}
	if small.Velocity != core.Pt(1, 2) {
		t.Errorf("small velocity changed to %v", small.Velocity)
	}
	if big.Center != core.Pt(202, 151) {
		t.Errorf("big center = %v, expected (202,151)", big.Center)
	}
	if big.Velocity != core.Pt(2, 1) {
		t.Errorf("big velocity changed to %v", big.Velocity)
	}
}

func TestBounceReflectsLeftEdge(t *testing.T) {
	d := Dot{Center: core.Pt(29, 100), Radius: 30, Velocity: core.Pt(-1, 0)}
	d.Bounce(playfield)

	// 29-1 = 28 < radius, so x reflects without correcting the position
	if d.Center.X != 28 {
		t.Errorf("center x = %d, expected 28", d.Center.X)
	}
	if d.Velocity.X != 1 {
		t.Errorf("velocity x = %d, expected 1", d.Velocity.X)
	}
	if d.Center.Y != 100 || d.Velocity.Y != 0 {
		t.Errorf("y axis should be unaffected, got center %v velocity %v", d.Center, d.Velocity)
	}
}

func TestBounceEdgeCases(t *testing.T) {
	tests := []struct {
		name         string
		dot          Dot
		expectCenter core.Point
		expectVel    core.Point
	}{
		{
			name:         "touching left edge is inside",
			dot:          Dot{Center: core.Pt(31, 200), Radius: 30, Velocity: core.Pt(-1, 1)},
			expectCenter: core.Pt(30, 201),
			expectVel:    core.Pt(-1, 1),
		},
		{
			name:         "touching right edge is inside",
			dot:          Dot{Center: core.Pt(469, 200), Radius: 30, Velocity: core.Pt(1, 1)},
			expectCenter: core.Pt(470, 201),
			expectVel:    core.Pt(1, 1),
		},
		{
			name:         "crossing right edge",
			dot:          Dot{Center: core.Pt(470, 200), Radius: 30, Velocity: core.Pt(2, 1)},
			expectCenter: core.Pt(472, 201),
			expectVel:    core.Pt(-2, 1),
		},
		{
			name:         "crossing top edge",
			dot:          Dot{Center: core.Pt(200, 41), Radius: 40, Velocity: core.Pt(2, -2)},
			expectCenter: core.Pt(202, 39),
			expectVel:    core.Pt(2, 2),
		},
		{
			name:         "crossing bottom edge",
			dot:          Dot{Center: core.Pt(200, 359), Radius: 40, Velocity: core.Pt(2, 2)},
			expectCenter: core.Pt(202, 361),
			expectVel:    core.Pt(2, -2),
		},
		{
			name:         "corner reflects both axes",
			dot:          Dot{Center: core.Pt(470, 370), Radius: 30, Velocity: core.Pt(1, 1)},
			expectCenter: core.Pt(471, 371),
			expectVel:    core.Pt(-1, -1),
		},
		{
			// Positions are never corrected, so a dot still past the edge after moving
			// inward reflects again.
			name:         "overshoot still outside flips back outward",
			dot:          Dot{Center: core.Pt(28, 200), Radius: 30, Velocity: core.Pt(1, 1)},
			expectCenter: core.Pt(29, 201),
			expectVel:    core.Pt(-1, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.dot
			before := d.Velocity
			d.Bounce(playfield)
			if d.Center != tc.dot.Center.Add(before) {
				t.Errorf("center moved to %v, expected exactly %v", d.Center, tc.dot.Center.Add(before))
			}
			if d.Center != tc.expectCenter {
				t.Errorf("center = %v, expected %v", d.Center, tc.expectCenter)
			}
			if d.Velocity != tc.expectVel {
				t.Errorf("velocity = %v, expected %v", d.Velocity, tc.expectVel)
			}
		})
	}
}

func TestBounceLinearWithoutReflection(t *testing.T) {
	start := core.Pt(100, 100)
	d := Dot{Center: start, Radius: 30, Velocity: core.Pt(2, 1)}

	const ticks = 50 // ends at (200,150), well inside 500x400
	for i := 0; i < ticks; i++ {
		d.Bounce(playfield)
	}

	expected := start.Add(core.Pt(2, 1).Mul(ticks))
	if d.Center != expected {
		t.Errorf("after %d ticks center = %v, expected %v", ticks, d.Center, expected)
	}
	if d.Velocity != core.Pt(2, 1) {
		t.Errorf("velocity changed to %v", d.Velocity)
	}
}

func TestBounceSignFlipsOnlyOnCrossing(t *testing.T) {
	d := Dot{Center: core.Pt(250, 200), Radius: 30, Velocity: core.Pt(3, 2)}

	for i := 0; i < 5000; i++ {
		prev := d
		d.Bounce(playfield)

		for axis, bound := range [2]int{playfield.W, playfield.H} {
			pos, v0, v1 := d.Center.X, prev.Velocity.X, d.Velocity.X
			if axis == 1 {
				pos, v0, v1 = d.Center.Y, prev.Velocity.Y, d.Velocity.Y
			}
			crossed := pos-d.Radius < 0 || pos+d.Radius > bound
			flipped := v1 == -v0
			if crossed != flipped {
				t.Fatalf("tick %d axis %d: crossed=%v flipped=%v (center %v)", i, axis, crossed, flipped, d.Center)
			}
		}
	}
}

func TestRandomizeStaysInside(t *testing.T) {
	rng := NewRandom(7)
	d := Dot{Center: core.Pt(-100, 9999), Radius: 40, Velocity: core.Pt(2, 1)}

	for i := 0; i < 10000; i++ {
		d.Randomize(playfield, rng)
		if !d.Inside(playfield) {
			t.Fatalf("draw %d: center %v escapes playfield", i, d.Center)
		}
	}
	if d.Velocity != core.Pt(2, 1) {
		t.Errorf("Randomize changed velocity to %v", d.Velocity)
	}
}

func TestRandomizeTightFit(t *testing.T) {
	// bound == 2*radius leaves exactly one legal position
	d := Dot{Radius: 50}
	d.Randomize(core.Sz(100, 100), NewRandom(1))
	if d.Center != core.Pt(50, 50) {
		t.Errorf("center = %v, expected (50,50)", d.Center)
	}
}

func TestRandomizeUsesBothEnds(t *testing.T) {
	d := Dot{Radius: 30}
	bounds := core.Sz(64, 64) // x and y in [30, 34]
	rng := NewRandom(99)

	seenX := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		d.Randomize(bounds, rng)
		seenX[d.Center.X] = true
	}
	for x := 30; x <= 34; x++ {
		if !seenX[x] {
			t.Errorf("x=%d never drawn; range should be inclusive", x)
		}
	}
}

func TestDotFits(t *testing.T) {
	tests := []struct {
		name    string
		radius  int
		bounds  core.Size
		wantErr bool
	}{
		{"default small", 30, playfield, false},
		{"exact fit", 200, playfield, false},
		{"too tall", 201, playfield, true},
		{"zero radius", 0, playfield, true},
		{"negative radius", -5, playfield, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Dot{Radius: tc.radius}
			err := d.Fits(tc.bounds)
			if (err != nil) != tc.wantErr {
				t.Errorf("Fits() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
