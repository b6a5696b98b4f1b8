package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box in world space, stored as min/max corners.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromHalfExtents creates an AABB from a center point and half extents.
func NewAABBFromHalfExtents(center, halfExtents rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, halfExtents),
		Max: rl.Vector3Add(center, halfExtents),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) HalfExtents() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Translated returns the box moved by delta without changing its extents.
func (a AABB) Translated(delta rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Add(a.Min, delta),
		Max: rl.Vector3Add(a.Max, delta),
	}
}

// ScaledAboutCenter grows (or shrinks) the box by a uniform factor while
// keeping its center fixed.
func (a AABB) ScaledAboutCenter(factor float32) AABB {
	return NewAABBFromHalfExtents(a.Center(), rl.Vector3Scale(a.HalfExtents(), factor))
}

// Box converts to raylib's bounding box type for ray queries.
func (a AABB) Box() rl.BoundingBox {
	return rl.BoundingBox{Min: a.Min, Max: a.Max}
}
