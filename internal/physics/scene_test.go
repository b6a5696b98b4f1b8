package physics

import (
	"errors"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testCollider(center rl.Vector3) *Collider {
	return NewCuboidCollider(center, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
}

func TestAddReusesLowestFreeSlot(t *testing.T) {
	scene := NewPhysicalScene()

	h0 := scene.AddCollider(testCollider(rl.Vector3{}))
	h1 := scene.AddCollider(testCollider(rl.Vector3{X: 2}))
	h2 := scene.AddCollider(testCollider(rl.Vector3{X: 4}))

	if h0.Index != 0 || h1.Index != 1 || h2.Index != 2 {
		t.Errorf("Expected indices 0,1,2, got %d,%d,%d", h0.Index, h1.Index, h2.Index)
	}

	if err := scene.RemoveCollider(h1); err != nil {
		t.Fatalf("RemoveCollider failed: %v", err)
	}

	h3 := scene.AddCollider(testCollider(rl.Vector3{X: 6}))
	if h3.Index != 1 {
		t.Errorf("Expected new collider to reuse slot 1, got %d", h3.Index)
	}

	h4 := scene.AddCollider(testCollider(rl.Vector3{X: 8}))
	if h4.Index != 3 {
		t.Errorf("Expected registry to grow to slot 3, got %d", h4.Index)
	}

	if scene.ColliderCount() != 4 {
		t.Errorf("Expected 4 live colliders, got %d", scene.ColliderCount())
	}
}

func TestRemoveOutOfBounds(t *testing.T) {
	scene := NewPhysicalScene()
	scene.AddCollider(testCollider(rl.Vector3{}))

	err := scene.RemoveCollider(Handle{Index: 5})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Expected ErrOutOfBounds, got %v", err)
	}
}

func TestRemoveEmptySlotIsNoOp(t *testing.T) {
	scene := NewPhysicalScene()
	h := scene.AddCollider(testCollider(rl.Vector3{}))

	if err := scene.RemoveCollider(h); err != nil {
		t.Fatalf("First remove failed: %v", err)
	}
	// Second removal of the same handle hits an empty slot in range.
	if err := scene.RemoveCollider(h); err != nil {
		t.Errorf("Expected idempotent remove to succeed, got %v", err)
	}
}

func TestRemoveStaleHandleLeavesNewOccupantAlone(t *testing.T) {
	scene := NewPhysicalScene()
	stale := scene.AddCollider(testCollider(rl.Vector3{}))

	if err := scene.RemoveCollider(stale); err != nil {
		t.Fatalf("RemoveCollider failed: %v", err)
	}
	fresh := scene.AddCollider(testCollider(rl.Vector3{X: 2}))
	if fresh.Index != stale.Index {
		t.Fatalf("Expected slot reuse for this test, got %d vs %d", fresh.Index, stale.Index)
	}

	err := scene.RemoveCollider(stale)
	if !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Expected ErrStaleHandle, got %v", err)
	}
	if !scene.Valid(fresh) {
		t.Error("New occupant should survive a stale remove")
	}
}

func TestStaleHandleAccessPanics(t *testing.T) {
	scene := NewPhysicalScene()
	stale := scene.AddCollider(testCollider(rl.Vector3{}))
	if err := scene.RemoveCollider(stale); err != nil {
		t.Fatalf("RemoveCollider failed: %v", err)
	}
	scene.AddCollider(testCollider(rl.Vector3{X: 2}))

	defer func() {
		if recover() == nil {
			t.Error("Expected Pose on a stale handle to panic")
		}
	}()
	scene.Pose(stale)
}

func TestEmptySlotAccessPanics(t *testing.T) {
	scene := NewPhysicalScene()
	h := scene.AddCollider(testCollider(rl.Vector3{}))
	if err := scene.RemoveCollider(h); err != nil {
		t.Fatalf("RemoveCollider failed: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected access to an empty slot to panic")
		}
	}()
	scene.Collider(h)
}

func TestSetColliderPosTranslatesBounding(t *testing.T) {
	scene := NewPhysicalScene()
	h := scene.AddCollider(testCollider(rl.Vector3{}))

	before := scene.Collider(h).Bounding
	scene.SetColliderPos(h, rl.Vector3{X: 3, Y: -1, Z: 2})

	c := scene.Collider(h)
	if c.Pose.Position.X != 3 || c.Pose.Position.Y != -1 || c.Pose.Position.Z != 2 {
		t.Errorf("Expected position (3,-1,2), got %v", c.Pose.Position)
	}

	wantMin := rl.Vector3Add(before.Min, rl.Vector3{X: 3, Y: -1, Z: 2})
	if c.Bounding.Min != wantMin {
		t.Errorf("Expected bounding min %v, got %v", wantMin, c.Bounding.Min)
	}
}
