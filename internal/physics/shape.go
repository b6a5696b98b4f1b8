package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind tags the members of the Shape union.
type ShapeKind int

const (
	ShapeCuboid ShapeKind = iota
)

// Shape is a closed union over the convex primitives the narrow phase
// understands. Only cuboids exist today; new kinds get a tag here and a
// branch in the narrow-phase dispatch.
type Shape struct {
	Kind        ShapeKind
	HalfExtents rl.Vector3 // cuboid
}

func NewCuboid(halfExtents rl.Vector3) Shape {
	return Shape{Kind: ShapeCuboid, HalfExtents: halfExtents}
}

// Pose is a rigid transform: position plus orientation.
type Pose struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
}

// NewPose builds a pose from a position and an axis-angle rotation vector
// (direction = axis, length = angle in radians). A zero vector means no
// rotation.
func NewPose(position, axisAngle rl.Vector3) Pose {
	angle := rl.Vector3Length(axisAngle)
	orientation := rl.QuaternionIdentity()
	if angle > 1e-6 {
		orientation = rl.QuaternionFromAxisAngle(rl.Vector3Scale(axisAngle, 1/angle), angle)
	}
	return Pose{Position: position, Orientation: orientation}
}

// Axes returns the pose's rotated local basis vectors.
func (p Pose) Axes() [3]rl.Vector3 {
	return [3]rl.Vector3{
		rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, p.Orientation),
		rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, p.Orientation),
		rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, p.Orientation),
	}
}

// BoundingAt computes a tight world-space AABB of the shape at the given
// pose. For a rotated cuboid the world extent along each axis is the sum of
// the projected half extents.
func (s Shape) BoundingAt(pose Pose) AABB {
	switch s.Kind {
	case ShapeCuboid:
		axes := pose.Axes()
		he := rl.Vector3{
			X: math32.Abs(axes[0].X)*s.HalfExtents.X + math32.Abs(axes[1].X)*s.HalfExtents.Y + math32.Abs(axes[2].X)*s.HalfExtents.Z,
			Y: math32.Abs(axes[0].Y)*s.HalfExtents.X + math32.Abs(axes[1].Y)*s.HalfExtents.Y + math32.Abs(axes[2].Y)*s.HalfExtents.Z,
			Z: math32.Abs(axes[0].Z)*s.HalfExtents.X + math32.Abs(axes[1].Z)*s.HalfExtents.Y + math32.Abs(axes[2].Z)*s.HalfExtents.Z,
		}
		return NewAABBFromHalfExtents(pose.Position, he)
	default:
		panic(fmt.Sprintf("physics: unknown shape kind %d", s.Kind))
	}
}
