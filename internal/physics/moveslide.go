package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// StairMaxSize is the tallest ledge the resolver will snap a mover onto
// instead of treating it as a wall.
const StairMaxSize = 0.55

// A contact face counts as a wall when its normal is this close to
// horizontal.
const wallFaceThreshold = 0.01

// Stair snapping only applies while the mover is not moving upward faster
// than this, so a jump clears a ledge instead of teleporting onto it.
const stairClimbVelocityLimit = 0.005

// MoveSlideResult reports one resolver call: the corrected velocity, the
// contact normals encountered with the material each came from (parallel
// slices, registry iteration order) and the mover's final world position.
type MoveSlideResult struct {
	Velocity      rl.Vector3
	Normals       []rl.Vector3
	Materials     []PhysicalProperties
	FinalPosition rl.Vector3
}

// MoveAndSlide applies the desired displacement to the mover, then makes a
// single forward pass over the registry removing the velocity component
// pointing into each obstacle it has actually penetrated. Two simultaneous
// near-perpendicular contacts may leave residual penetration after one
// call; the per-tick re-run corrects it incrementally, which is a deliberate
// tradeoff against an iterative solver.
func (s *PhysicalScene) MoveAndSlide(mover Handle, velocity rl.Vector3) MoveSlideResult {
	m := s.take(mover)
	m.Shift(velocity)

	final := velocity
	var normals []rl.Vector3
	var materials []PhysicalProperties

	for i := range s.slots {
		other := s.slots[i].collider
		if other == nil || !other.Solid {
			continue
		}
		contact, ok := m.contact(other)
		if !ok {
			continue
		}
		// A mover separating from (or sliding along) the obstacle is left
		// alone, even if it started the tick already embedded in it.
		if rl.Vector3DotProduct(contact.Normal, final) >= 0 {
			continue
		}

		// Stair step: a wall face whose top edge sits just above the
		// mover's feet is climbed by snapping upward, costing no
		// horizontal velocity and recording no contact.
		if math32.Abs(contact.Normal.Y) < wallFaceThreshold && final.Y < stairClimbVelocityLimit {
			standingDiff := other.Bounding.Max.Y - m.Bounding.Min.Y
			if standingDiff >= 0 && standingDiff < StairMaxSize {
				m.Shift(rl.Vector3{Y: standingDiff})
				continue
			}
		}

		// Ordinary slide: drop the velocity component pointing into the
		// obstacle, then redo the tentative move with the corrected
		// velocity so later obstacles see the slid trajectory.
		initial := final
		final = rl.Vector3Subtract(final, project(final, contact.Normal))
		normals = append(normals, contact.Normal)
		materials = append(materials, other.Properties)

		m.Shift(rl.Vector3Scale(initial, -1))
		m.Shift(final)
	}

	s.put(mover, m)
	return MoveSlideResult{
		Velocity:      final,
		Normals:       normals,
		Materials:     materials,
		FinalPosition: m.Pose.Position,
	}
}
