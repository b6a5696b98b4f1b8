package physics

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrOutOfBounds reports a handle whose index was never allocated.
	ErrOutOfBounds = errors.New("physics: handle index out of bounds")
	// ErrStaleHandle reports a handle whose slot has been reused since it
	// was captured.
	ErrStaleHandle = errors.New("physics: stale handle generation")
)

// Handle identifies a collider in a PhysicalScene. Slots are reused after
// removal; the generation counter detects handles that outlived their
// collider instead of letting them silently alias the slot's next occupant.
type Handle struct {
	Index      int
	Generation uint32
}

type slot struct {
	collider   *Collider
	generation uint32
}

// PhysicalScene is the collider registry: a slot array with lowest-free-slot
// reuse. It is owned by exactly one world and accessed from one goroutine;
// collider data never leaves the registry, callers only hold handles.
type PhysicalScene struct {
	slots []slot
}

func NewPhysicalScene() *PhysicalScene {
	return &PhysicalScene{}
}

// AddCollider stores the collider in the lowest empty slot, growing the
// array only when every slot is occupied.
func (s *PhysicalScene) AddCollider(c *Collider) Handle {
	for i := range s.slots {
		if s.slots[i].collider == nil {
			s.slots[i].collider = c
			return Handle{Index: i, Generation: s.slots[i].generation}
		}
	}
	s.slots = append(s.slots, slot{collider: c})
	return Handle{Index: len(s.slots) - 1, Generation: 0}
}

// RemoveCollider tombstones the handle's slot and bumps its generation.
// Removing an already-empty slot in range is a no-op; an occupied slot whose
// generation does not match the handle is someone else's collider and is
// left alone.
func (s *PhysicalScene) RemoveCollider(h Handle) error {
	if h.Index < 0 || h.Index >= len(s.slots) {
		return ErrOutOfBounds
	}
	sl := &s.slots[h.Index]
	if sl.collider == nil {
		return nil
	}
	if sl.generation != h.Generation {
		return ErrStaleHandle
	}
	sl.collider = nil
	sl.generation++
	return nil
}

// Valid reports whether the handle still denotes a live collider.
func (s *PhysicalScene) Valid(h Handle) bool {
	return h.Index >= 0 && h.Index < len(s.slots) &&
		s.slots[h.Index].collider != nil &&
		s.slots[h.Index].generation == h.Generation
}

// ColliderCount returns the number of live colliders.
func (s *PhysicalScene) ColliderCount() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].collider != nil {
			n++
		}
	}
	return n
}

// Collider resolves a handle to its collider. Passing an invalid or stale
// handle means the caller has desynchronized from the registry; that is a
// programming error and panics rather than being masked.
func (s *PhysicalScene) Collider(h Handle) *Collider {
	if h.Index < 0 || h.Index >= len(s.slots) {
		panic(fmt.Sprintf("physics: handle index %d out of bounds (len %d)", h.Index, len(s.slots)))
	}
	sl := &s.slots[h.Index]
	if sl.collider == nil {
		panic(fmt.Sprintf("physics: handle %d/%d points at an empty slot", h.Index, h.Generation))
	}
	if sl.generation != h.Generation {
		panic(fmt.Sprintf("physics: stale handle %d/%d (slot generation %d)", h.Index, h.Generation, sl.generation))
	}
	return sl.collider
}

// Pose returns the collider's current pose.
func (s *PhysicalScene) Pose(h Handle) Pose {
	return s.Collider(h).Pose
}

// SetColliderPos repositions a collider absolutely. Implemented as a shift
// so the bounding box stays a pure translation of the constructed one.
func (s *PhysicalScene) SetColliderPos(h Handle, pos rl.Vector3) {
	c := s.Collider(h)
	c.Shift(rl.Vector3Subtract(pos, c.Pose.Position))
}

// Shift moves a collider by a relative delta.
func (s *PhysicalScene) Shift(h Handle, delta rl.Vector3) {
	s.Collider(h).Shift(delta)
}

// take removes the collider from its slot for exclusive use during a
// resolver pass; put restores it. The generation is untouched so the
// caller's handle stays valid across the pair.
func (s *PhysicalScene) take(h Handle) *Collider {
	c := s.Collider(h)
	s.slots[h.Index].collider = nil
	return c
}

func (s *PhysicalScene) put(h Handle, c *Collider) {
	s.slots[h.Index].collider = c
}
