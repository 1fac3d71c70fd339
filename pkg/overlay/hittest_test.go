// ABOUTME: Tests for pointer hit-testing: pass-through symmetry with the painted holes
// ABOUTME: Covers target scenarios, viewport edges, and the off-viewport fallback

package overlay

import (
	"math/rand"
	"testing"
)

func TestTestPoint_Scenario(t *testing.T) {
	t.Parallel()

	viewport := Size{W: 400, H: 800}
	regions := []Rect{{X: 20, Y: 700, W: 60, H: 60}}
	const padding = 8.0

	if got := TestPoint(Point{X: 50, Y: 730}, viewport, regions, padding); got != PassThrough {
		t.Errorf("point inside target = %v, want pass-through", got)
	}
	if got := TestPoint(Point{X: 10, Y: 10}, viewport, regions, padding); got != Captured {
		t.Errorf("point on scrim = %v, want captured", got)
	}
	// Just inside the inflation margin but outside the raw target.
	if got := TestPoint(Point{X: 17, Y: 700}, viewport, regions, padding); got != PassThrough {
		t.Errorf("point inside inflation margin = %v, want pass-through", got)
	}
}

func TestTestPoint_OutsideViewport(t *testing.T) {
	t.Parallel()

	viewport := Size{W: 400, H: 800}
	for _, p := range []Point{{-1, 10}, {10, -1}, {401, 10}, {10, 801}} {
		if got := TestPoint(p, viewport, nil, 0); got != PassThrough {
			t.Errorf("TestPoint(%+v) = %v, want pass-through outside viewport", p, got)
		}
	}
}

func TestTestPoint_EmptyRegionsCapturesViewport(t *testing.T) {
	t.Parallel()

	viewport := Size{W: 400, H: 800}
	for _, p := range []Point{{0, 0}, {200, 400}, {400, 800}} {
		if got := TestPoint(p, viewport, nil, 8); got != Captured {
			t.Errorf("TestPoint(%+v) = %v, want captured on a target-less scrim", p, got)
		}
	}
}

// Pass-through symmetry: for any point inside the viewport, the result
// is PassThrough exactly when some inflated region contains the point —
// the same containment the even-odd path exposes as a hole. Regions are
// kept disjoint here; under overlap, paint parity and the boolean-OR hit
// test intentionally diverge (see the seam test in path_test.go).
func TestTestPoint_SymmetryWithPath(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	viewport := Size{W: 640, H: 480}
	style := Style{Padding: 6} // radius 0 so rect parity matches rect hit-test

	for i := 0; i < 300; i++ {
		// One region per 160px column band so inflated rects never touch.
		regions := make([]Rect, rng.Intn(4))
		for j := range regions {
			regions[j] = Rect{
				X: float64(j)*160 + rng.Float64()*40,
				Y: rng.Float64() * 380,
				W: rng.Float64()*100 + 1,
				H: rng.Float64()*80 + 1,
			}
		}
		p := Point{X: rng.Float64() * 640, Y: rng.Float64() * 480}

		inHole := false
		for _, r := range regions {
			if r.Inflate(style.Padding).Contains(p) {
				inHole = true
				break
			}
		}

		got := TestPoint(p, viewport, regions, style.Padding)
		if inHole && got != PassThrough {
			t.Fatalf("iteration %d: point %+v in a hole but %v", i, p, got)
		}
		if !inHole && got != Captured {
			t.Fatalf("iteration %d: point %+v on scrim but %v", i, p, got)
		}

		// With square corners the painted parity must agree exactly.
		path := BuildCutoutPath(viewport, regions, style)
		if filled := path.Filled(p); filled != (got == Captured) {
			t.Fatalf("iteration %d: Filled=%v disagrees with hit test %v", i, filled, got)
		}
	}
}

func TestHitResult_String(t *testing.T) {
	t.Parallel()

	if PassThrough.String() != "pass-through" || Captured.String() != "captured" {
		t.Errorf("unexpected labels: %q, %q", PassThrough.String(), Captured.String())
	}
}
