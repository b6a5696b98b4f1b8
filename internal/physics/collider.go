package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// boundingInflation keeps every collider's cached AABB a conservative 2%
// superset of its shape, so slightly-separated narrow-phase contacts still
// pass the broad phase.
const boundingInflation = 1.02

// contactMargin is the prediction margin handed to the narrow phase.
const contactMargin = 1.0

// NoOwner marks a collider with no model or renderable back-reference.
const NoOwner = -1

// PhysicalProperties are the opaque material numbers the movement layer
// reads off contacts. They are authored elsewhere; the core only carries
// them through.
type PhysicalProperties struct {
	Friction       float32 `json:"friction"`
	Control        float32 `json:"control"`
	JumpMultiplier float32 `json:"jumpMultiplier"`
}

func DefaultPhysicalProperties() PhysicalProperties {
	return PhysicalProperties{
		Friction:       0.80,
		Control:        1.0,
		JumpMultiplier: 1.0,
	}
}

// Collider is one rigid volume in the physical scene: a shape at a pose,
// its cached conservative bounding box, visibility flags and material.
// Model and Renderable are back-references to the owning world entities,
// reported upward on raycast hits, never followed by the core.
type Collider struct {
	Shape      Shape
	Pose       Pose
	Bounding   AABB
	Solid      bool
	Foreground bool
	Properties PhysicalProperties

	Model      int
	Renderable int
}

// NewCuboidCollider creates a solid cuboid collider from a center, full
// extents and an axis-angle rotation.
func NewCuboidCollider(center, fullExtents, axisAngle rl.Vector3) *Collider {
	shape := NewCuboid(rl.Vector3Scale(fullExtents, 0.5))
	pose := NewPose(center, axisAngle)
	return &Collider{
		Shape:      shape,
		Pose:       pose,
		Bounding:   shape.BoundingAt(pose).ScaledAboutCenter(boundingInflation),
		Solid:      true,
		Properties: DefaultPhysicalProperties(),
		Model:      NoOwner,
		Renderable: NoOwner,
	}
}

// NonSolid makes the collider invisible to move-and-slide and to
// solid-respecting raycasts while staying addressable.
func (c *Collider) NonSolid() *Collider {
	c.Solid = false
	return c
}

// AsForeground marks the collider as overlay/gizmo geometry that the
// raycaster prefers over world geometry.
func (c *Collider) AsForeground() *Collider {
	c.Foreground = true
	return c
}

func (c *Collider) WithProperties(props PhysicalProperties) *Collider {
	c.Properties = props
	return c
}

// WithOwner attaches model/renderable back-references for hit reporting.
func (c *Collider) WithOwner(model, renderable int) *Collider {
	c.Model = model
	c.Renderable = renderable
	return c
}

// Shift moves the collider by delta. The bounding box is translated by the
// same delta rather than recomputed, which preserves the inflation exactly.
func (c *Collider) Shift(delta rl.Vector3) {
	c.Pose.Position = rl.Vector3Add(c.Pose.Position, delta)
	c.Bounding = c.Bounding.Translated(delta)
}

// contact runs the broad phase then the narrow phase against another
// collider, reporting only interpenetrating contacts.
func (c *Collider) contact(other *Collider) (Contact, bool) {
	if !c.Bounding.Intersects(other.Bounding) {
		return Contact{}, false
	}
	contact, ok := ShapeContact(c.Pose, c.Shape, other.Pose, other.Shape, contactMargin)
	if !ok || contact.Distance >= 0 {
		return Contact{}, false
	}
	return contact, true
}
