package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const tolerance = 1e-5

func approxEqual(a, b float32) bool {
	return math32.Abs(a-b) < tolerance
}

func approxEqualVec(a, b rl.Vector3) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) && approxEqual(a.Z, b.Z)
}

func TestBoundingInflatedByTwoPercent(t *testing.T) {
	c := NewCuboidCollider(
		rl.Vector3{X: 1, Y: 2, Z: 3},
		rl.Vector3{X: 2, Y: 4, Z: 6},
		rl.Vector3{},
	)

	wantHalf := rl.Vector3{X: 1.02, Y: 2.04, Z: 3.06}
	if !approxEqualVec(c.Bounding.HalfExtents(), wantHalf) {
		t.Errorf("Expected bounding half extents %v, got %v", wantHalf, c.Bounding.HalfExtents())
	}
	if !approxEqualVec(c.Bounding.Center(), rl.Vector3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Expected bounding centered on the shape, got %v", c.Bounding.Center())
	}
}

func TestBoundingCoversRotatedShape(t *testing.T) {
	// A unit cuboid rotated 45 degrees about Y reaches sqrt(2)/2 along X
	// and Z; the bounding box must still contain it.
	c := NewCuboidCollider(
		rl.Vector3{},
		rl.Vector3{X: 1, Y: 1, Z: 1},
		rl.Vector3{Y: math32.Pi / 4},
	)

	reach := math32.Sqrt(2) / 2
	if c.Bounding.Max.X < reach || c.Bounding.Max.Z < reach {
		t.Errorf("Expected bounding to cover rotated extent %f, got max %v", reach, c.Bounding.Max)
	}
}

func TestShiftTranslatesBoundingExactly(t *testing.T) {
	c := NewCuboidCollider(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}, rl.Vector3{})
	before := c.Bounding

	delta := rl.Vector3{X: 0.5, Y: -1.25, Z: 3}
	c.Shift(delta)

	if !approxEqualVec(c.Pose.Position, delta) {
		t.Errorf("Expected position %v, got %v", delta, c.Pose.Position)
	}
	if !approxEqualVec(c.Bounding.Min, rl.Vector3Add(before.Min, delta)) {
		t.Errorf("Expected bounding min to translate with the shape, got %v", c.Bounding.Min)
	}
	if !approxEqualVec(c.Bounding.HalfExtents(), before.HalfExtents()) {
		t.Errorf("Expected bounding extents unchanged by shift, got %v", c.Bounding.HalfExtents())
	}
}

func TestDefaultPhysicalProperties(t *testing.T) {
	props := DefaultPhysicalProperties()
	if !approxEqual(props.Friction, 0.80) || !approxEqual(props.Control, 1.0) || !approxEqual(props.JumpMultiplier, 1.0) {
		t.Errorf("Expected defaults {0.80 1 1}, got %+v", props)
	}
}

func TestColliderBuilders(t *testing.T) {
	c := NewCuboidCollider(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{}).
		NonSolid().
		AsForeground().
		WithOwner(7, 2)

	if c.Solid {
		t.Error("Expected NonSolid to clear the solid flag")
	}
	if !c.Foreground {
		t.Error("Expected AsForeground to set the foreground flag")
	}
	if c.Model != 7 || c.Renderable != 2 {
		t.Errorf("Expected owner 7/2, got %d/%d", c.Model, c.Renderable)
	}
}
