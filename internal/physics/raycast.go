package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastParameters filters a raycast. Zero value matches everything; the
// builder methods return modified copies so parameters compose inline at
// the call site.
type RaycastParameters struct {
	ignore           []Handle
	respectSolid     bool
	selectForeground bool
}

func NewRaycastParameters() RaycastParameters {
	return RaycastParameters{}
}

// Ignore excludes the given handles from the cast.
func (p RaycastParameters) Ignore(handles ...Handle) RaycastParameters {
	p.ignore = append(p.ignore, handles...)
	return p
}

// RespectSolid restricts the cast to solid colliders.
func (p RaycastParameters) RespectSolid() RaycastParameters {
	p.respectSolid = true
	return p
}

// SelectForeground makes the cast try foreground colliders first; any
// foreground hit wins over world geometry regardless of depth.
func (p RaycastParameters) SelectForeground() RaycastParameters {
	p.selectForeground = true
	return p
}

// ignored matches full handles, generation included, so a stale entry in
// the ignore list never masks the slot's current occupant.
func (p RaycastParameters) ignored(h Handle) bool {
	for _, ig := range p.ignore {
		if ig == h {
			return true
		}
	}
	return false
}

// RaycastResult reports the nearest intersection and the owning world
// entities, NoOwner when the collider has none.
type RaycastResult struct {
	Position   rl.Vector3
	Normal     rl.Vector3
	Model      int
	Renderable int
}

// Raycast finds the nearest intersection along the ray within maxDistance.
// With SelectForeground set, foreground colliders form a priority tier that
// is scanned first; this keeps overlay/gizmo geometry clickable even when
// world geometry sits in front of it. Direction need not be normalized.
func (s *PhysicalScene) Raycast(origin, direction rl.Vector3, maxDistance float32, params RaycastParameters) (RaycastResult, bool) {
	ray := rl.Ray{Position: origin, Direction: rl.Vector3Normalize(direction)}
	if params.selectForeground {
		if result, ok := s.castTier(ray, maxDistance, params, true); ok {
			return result, true
		}
	}
	return s.castTier(ray, maxDistance, params, false)
}

func (s *PhysicalScene) castTier(ray rl.Ray, maxDistance float32, params RaycastParameters, foregroundOnly bool) (RaycastResult, bool) {
	var result RaycastResult
	best := maxDistance
	found := false

	for i := range s.slots {
		c := s.slots[i].collider
		if c == nil {
			continue
		}
		if foregroundOnly && !c.Foreground {
			continue
		}
		if params.respectSolid && !c.Solid {
			continue
		}
		if params.ignored(Handle{Index: i, Generation: s.slots[i].generation}) {
			continue
		}
		// Cheap rejection against the inflated bounding box before the
		// oriented narrow-phase test.
		if !rl.GetRayCollisionBox(ray, c.Bounding.Box()).Hit {
			continue
		}
		hit, ok := CastRay(c.Pose, c.Shape, ray, maxDistance)
		if !ok || hit.TimeOfImpact > best || (found && hit.TimeOfImpact == best) {
			continue
		}
		best = hit.TimeOfImpact
		found = true
		result = RaycastResult{
			Position:   rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, hit.TimeOfImpact)),
			Normal:     hit.Normal,
			Model:      c.Model,
			Renderable: c.Renderable,
		}
	}

	return result, found
}
