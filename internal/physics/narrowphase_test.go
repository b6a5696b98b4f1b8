package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCuboidContactPenetration(t *testing.T) {
	unit := NewCuboid(rl.Vector3{X: 1, Y: 1, Z: 1})
	poseA := NewPose(rl.Vector3{}, rl.Vector3{})
	poseB := NewPose(rl.Vector3{X: 1.5}, rl.Vector3{})

	contact, ok := ShapeContact(poseA, unit, poseB, unit, 1.0)
	if !ok {
		t.Fatal("Expected a contact for overlapping cuboids")
	}
	if !approxEqualVec(contact.Normal, rl.Vector3{X: -1}) {
		t.Errorf("Expected normal (-1,0,0) pointing from B to A, got %v", contact.Normal)
	}
	if !approxEqual(contact.Distance, -0.5) {
		t.Errorf("Expected penetration depth 0.5, got distance %f", contact.Distance)
	}
}

func TestCuboidContactWithinMargin(t *testing.T) {
	unit := NewCuboid(rl.Vector3{X: 1, Y: 1, Z: 1})
	poseA := NewPose(rl.Vector3{}, rl.Vector3{})
	poseB := NewPose(rl.Vector3{X: 2.5}, rl.Vector3{})

	contact, ok := ShapeContact(poseA, unit, poseB, unit, 1.0)
	if !ok {
		t.Fatal("Expected a predictive contact within the margin")
	}
	if contact.Distance <= 0 || !approxEqual(contact.Distance, 0.5) {
		t.Errorf("Expected separation 0.5, got %f", contact.Distance)
	}
}

func TestCuboidContactBeyondMargin(t *testing.T) {
	unit := NewCuboid(rl.Vector3{X: 1, Y: 1, Z: 1})
	poseA := NewPose(rl.Vector3{}, rl.Vector3{})
	poseB := NewPose(rl.Vector3{X: 4}, rl.Vector3{})

	if _, ok := ShapeContact(poseA, unit, poseB, unit, 1.0); ok {
		t.Error("Expected no contact beyond the prediction margin")
	}
}

func TestCuboidContactVerticalNormal(t *testing.T) {
	mover := NewCuboid(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	floor := NewCuboid(rl.Vector3{X: 10, Y: 0.5, Z: 10})

	// Mover resting slightly into the floor's top face.
	contact, ok := ShapeContact(
		NewPose(rl.Vector3{Y: 0.8}, rl.Vector3{}),
		mover,
		NewPose(rl.Vector3{}, rl.Vector3{}),
		floor,
		1.0,
	)
	if !ok || contact.Distance >= 0 {
		t.Fatalf("Expected penetrating contact, got ok=%v distance=%f", ok, contact.Distance)
	}
	if !approxEqualVec(contact.Normal, rl.Vector3{Y: 1}) {
		t.Errorf("Expected upward normal, got %v", contact.Normal)
	}
	if !approxEqual(contact.Distance, -0.2) {
		t.Errorf("Expected penetration 0.2, got %f", contact.Distance)
	}
}

func TestRayCuboidAxisAligned(t *testing.T) {
	shape := NewCuboid(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	pose := NewPose(rl.Vector3{X: 5}, rl.Vector3{})
	ray := rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{X: 1}}

	hit, ok := CastRay(pose, shape, ray, 100)
	if !ok {
		t.Fatal("Expected ray to hit the cuboid")
	}
	if !approxEqual(hit.TimeOfImpact, 4.5) {
		t.Errorf("Expected time of impact 4.5, got %f", hit.TimeOfImpact)
	}
	if !approxEqualVec(hit.Normal, rl.Vector3{X: -1}) {
		t.Errorf("Expected entry face normal (-1,0,0), got %v", hit.Normal)
	}
}

func TestRayCuboidRotated(t *testing.T) {
	// Half extents (2,1,1) rotated 90 degrees about Y swap the X and Z
	// footprint: the ray along -X now enters through the 1-unit face.
	shape := NewCuboid(rl.Vector3{X: 2, Y: 1, Z: 1})
	pose := NewPose(rl.Vector3{}, rl.Vector3{Y: math32.Pi / 2})
	ray := rl.Ray{Position: rl.Vector3{X: 5}, Direction: rl.Vector3{X: -1}}

	hit, ok := CastRay(pose, shape, ray, 100)
	if !ok {
		t.Fatal("Expected ray to hit the rotated cuboid")
	}
	if !approxEqual(hit.TimeOfImpact, 4) {
		t.Errorf("Expected time of impact 4, got %f", hit.TimeOfImpact)
	}
	if !approxEqual(hit.Normal.X, 1) {
		t.Errorf("Expected world normal facing the ray, got %v", hit.Normal)
	}
}

func TestRayCuboidMiss(t *testing.T) {
	shape := NewCuboid(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})
	pose := NewPose(rl.Vector3{X: 5}, rl.Vector3{})

	if _, ok := CastRay(pose, shape, rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{Y: 1}}, 100); ok {
		t.Error("Expected a perpendicular ray to miss")
	}
	if _, ok := CastRay(pose, shape, rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{X: 1}}, 2); ok {
		t.Error("Expected a hit past max distance to be discarded")
	}
	if _, ok := CastRay(pose, shape, rl.Ray{Position: rl.Vector3{}, Direction: rl.Vector3{X: -1}}, 100); ok {
		t.Error("Expected a ray pointing away to miss")
	}
}
