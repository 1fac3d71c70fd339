// ABOUTME: Tests for the compound cutout path: even-odd parity, rounded corners
// ABOUTME: Asserts the documented overlap seam artifact rather than hiding it

package overlay

import "testing"

func TestBuildCutoutPath_SingleTarget(t *testing.T) {
	t.Parallel()

	viewport := Size{W: 400, H: 800}
	target := Rect{X: 20, Y: 700, W: 60, H: 60}
	style := Style{Padding: 8, CornerRadius: 12}

	path := BuildCutoutPath(viewport, []Rect{target}, style)

	if path.Rule != FillEvenOdd {
		t.Fatalf("fill rule = %v, want FillEvenOdd", path.Rule)
	}
	if len(path.Cutouts) != 1 {
		t.Fatalf("cutout count = %d, want 1", len(path.Cutouts))
	}
	if got, want := path.Cutouts[0].Rect, target.Inflate(8); got != want {
		t.Errorf("cutout rect = %+v, want %+v", got, want)
	}
	if path.Cutouts[0].Radius != 12 {
		t.Errorf("cutout radius = %v, want 12", path.Cutouts[0].Radius)
	}

	// Strictly inside the target: even parity, transparent.
	if path.Filled(Point{X: 50, Y: 730}) {
		t.Error("point inside target is filled, want transparent")
	}
	// Outside the target but inside the viewport: odd parity, scrim.
	if !path.Filled(Point{X: 10, Y: 10}) {
		t.Error("point on scrim is transparent, want filled")
	}
	// Outside the viewport: zero enclosures, transparent.
	if path.Filled(Point{X: -5, Y: -5}) {
		t.Error("point outside viewport is filled, want transparent")
	}
}

func TestBuildCutoutPath_EmptyRegions(t *testing.T) {
	t.Parallel()

	path := BuildCutoutPath(Size{W: 100, H: 100}, nil, DefaultStyle)
	if len(path.Cutouts) != 0 {
		t.Fatalf("cutout count = %d, want 0", len(path.Cutouts))
	}
	// A target-less scrim is solid everywhere inside the viewport.
	for _, p := range []Point{{0, 0}, {50, 50}, {100, 100}} {
		if !path.Filled(p) {
			t.Errorf("Filled(%+v) = false on a solid scrim", p)
		}
	}
}

// Two inflated regions that overlap enclose their intersection three
// times (base rect plus both shapes), so even-odd fills it: a seam
// appears inside the combined hole. The behavior is deliberate; this
// test pins it so a change to boolean subtraction shows up loudly.
func TestBuildCutoutPath_OverlapSeamArtifact(t *testing.T) {
	t.Parallel()

	viewport := Size{W: 400, H: 400}
	a := Rect{X: 100, Y: 100, W: 60, H: 60}
	b := Rect{X: 155, Y: 100, W: 60, H: 60} // inflated rects overlap by 5px in x
	style := Style{Padding: 0, CornerRadius: 0}

	path := BuildCutoutPath(viewport, []Rect{a, b}, style)

	seam := Point{X: 157, Y: 130} // inside both a and b
	if !path.Filled(seam) {
		t.Error("overlap zone is transparent; expected the documented filled seam")
	}
	onlyA := Point{X: 110, Y: 130}
	onlyB := Point{X: 200, Y: 130}
	if path.Filled(onlyA) || path.Filled(onlyB) {
		t.Error("non-overlapping parts of the holes must stay transparent")
	}
}

func TestRoundedRect_Contains(t *testing.T) {
	t.Parallel()

	rr := RoundedRect{Rect: Rect{X: 0, Y: 0, W: 100, H: 100}, Radius: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{50, 50}, true},
		{"edge midpoint", Point{0, 50}, true},
		{"outside corner arc", Point{4, 4}, false}, // beyond the 20px arc
		{"inside corner arc", Point{8, 8}, true},
		{"square corner", Point{0, 0}, false},
		{"outside", Point{101, 50}, false},
	}
	for _, tt := range tests {
		if got := rr.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRoundedRect_EffectiveRadius_Clamped(t *testing.T) {
	t.Parallel()

	rr := RoundedRect{Rect: Rect{W: 30, H: 80}, Radius: 100}
	if got := rr.EffectiveRadius(); got != 15 {
		t.Errorf("EffectiveRadius() = %v, want 15 (half the shorter side)", got)
	}

	// Zero radius keeps sharp corners: the exact corner point is inside.
	sharp := RoundedRect{Rect: Rect{X: 10, Y: 10, W: 20, H: 20}}
	if !sharp.Contains(Point{10, 10}) {
		t.Error("sharp corner point not contained with zero radius")
	}
}
