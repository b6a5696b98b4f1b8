package world

import (
	"github.com/olaney14/viceptica-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderable is one textured cuboid brush of a model. Offset is relative to
// the model's position; Extents are full sizes.
type Renderable struct {
	Texture string
	Offset  rl.Vector3
	Extents rl.Vector3
}

// ModelCollider is a designer-authored collision cuboid. When a model has
// any of these, they replace the per-brush colliders derived from its
// renderables.
type ModelCollider struct {
	Offset      rl.Vector3
	HalfExtents rl.Vector3
}

// Model is one placeable world object: a transform, its visual brushes,
// optional designer collision shapes and the flags the physics layer reads.
type Model struct {
	Name        string
	Position    rl.Vector3
	Rotation    rl.Vector3 // axis-angle, radians
	Renderables []Renderable
	Colliders   []ModelCollider

	Hidden     bool
	Solid      bool
	Foreground bool
	Mobile     bool
	Properties physics.PhysicalProperties

	// Registry handles owned by this model, filled in by World.InsertModel.
	handles []physics.Handle
}

func NewModel(name string, position rl.Vector3) *Model {
	return &Model{
		Name:       name,
		Position:   position,
		Solid:      true,
		Properties: physics.DefaultPhysicalProperties(),
	}
}

// WithBrush appends a textured cuboid brush.
func (m *Model) WithBrush(texture string, offset, extents rl.Vector3) *Model {
	m.Renderables = append(m.Renderables, Renderable{Texture: texture, Offset: offset, Extents: extents})
	return m
}

// WithCollider appends a designer collision cuboid, overriding the brush
// shapes.
func (m *Model) WithCollider(offset, halfExtents rl.Vector3) *Model {
	m.Colliders = append(m.Colliders, ModelCollider{Offset: offset, HalfExtents: halfExtents})
	return m
}

func (m *Model) WithRotation(axisAngle rl.Vector3) *Model {
	m.Rotation = axisAngle
	return m
}

func (m *Model) NonSolid() *Model {
	m.Solid = false
	return m
}

func (m *Model) AsForeground() *Model {
	m.Foreground = true
	return m
}

func (m *Model) AsMobile() *Model {
	m.Mobile = true
	return m
}

func (m *Model) Hide() *Model {
	m.Hidden = true
	return m
}

func (m *Model) WithProperties(props physics.PhysicalProperties) *Model {
	m.Properties = props
	return m
}

// Handles returns the model's registry handles, one per collision shape.
func (m *Model) Handles() []physics.Handle {
	return m.handles
}
