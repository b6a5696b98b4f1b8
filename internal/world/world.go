package world

import (
	"fmt"
	"log"

	"github.com/olaney14/viceptica-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the physical scene and the model registry. Models are keyed by
// a UID handed out at insertion; collider back-references carry the UID so
// raycast hits resolve straight to models.
type World struct {
	Physical *physics.PhysicalScene
	Player   *Player

	models  map[int]*Model
	nextUID int
}

func New() *World {
	return &World{
		Physical: physics.NewPhysicalScene(),
		models:   make(map[int]*Model),
	}
}

// InsertModel registers the model and creates its colliders: one per
// designer shape when any are authored, otherwise one per brush. The
// renderable back-reference is the brush index for brush-derived colliders
// and NoOwner for designer shapes.
func (w *World) InsertModel(m *Model) int {
	uid := w.nextUID
	w.nextUID++

	if len(m.Colliders) > 0 {
		for _, mc := range m.Colliders {
			c := physics.NewCuboidCollider(
				rl.Vector3Add(m.Position, mc.Offset),
				rl.Vector3Scale(mc.HalfExtents, 2),
				m.Rotation,
			).WithProperties(m.Properties).WithOwner(uid, physics.NoOwner)
			w.applyFlags(c, m)
			m.handles = append(m.handles, w.Physical.AddCollider(c))
		}
	} else {
		for i, r := range m.Renderables {
			c := physics.NewCuboidCollider(
				rl.Vector3Add(m.Position, r.Offset),
				r.Extents,
				m.Rotation,
			).WithProperties(m.Properties).WithOwner(uid, i)
			w.applyFlags(c, m)
			m.handles = append(m.handles, w.Physical.AddCollider(c))
		}
	}

	w.models[uid] = m
	log.Printf("World: inserted model %q as uid %d with %d colliders", m.Name, uid, len(m.handles))
	return uid
}

func (w *World) applyFlags(c *physics.Collider, m *Model) {
	if !m.Solid {
		c.NonSolid()
	}
	if m.Foreground {
		c.AsForeground()
	}
}

// RemoveModel drops the model and all its colliders from the registry.
func (w *World) RemoveModel(uid int) error {
	m, ok := w.models[uid]
	if !ok {
		return fmt.Errorf("world: no model with uid %d", uid)
	}
	for _, h := range m.handles {
		if err := w.Physical.RemoveCollider(h); err != nil {
			return fmt.Errorf("world: removing colliders of model %d: %w", uid, err)
		}
	}
	m.handles = nil
	delete(w.models, uid)
	log.Printf("World: removed model %q (uid %d)", m.Name, uid)
	return nil
}

// Model looks up a model by UID.
func (w *World) Model(uid int) (*Model, bool) {
	m, ok := w.models[uid]
	return m, ok
}

// Models visits every model in the registry.
func (w *World) Models(visit func(uid int, m *Model)) {
	for uid, m := range w.models {
		visit(uid, m)
	}
}

// ModelCount returns the number of registered models.
func (w *World) ModelCount() int {
	return len(w.models)
}

// SetModelPosition moves a mobile model and shifts its colliders by the
// same delta. Static models are baked into the scene and refuse to move.
func (w *World) SetModelPosition(uid int, pos rl.Vector3) error {
	m, ok := w.models[uid]
	if !ok {
		return fmt.Errorf("world: no model with uid %d", uid)
	}
	if !m.Mobile {
		return fmt.Errorf("world: model %q is not mobile", m.Name)
	}
	delta := rl.Vector3Subtract(pos, m.Position)
	m.Position = pos
	for _, h := range m.handles {
		w.Physical.Shift(h, delta)
	}
	return nil
}

// Pick casts a mouse ray into the scene for selection: the player's own
// collider is ignored and foreground gizmo geometry wins over world
// geometry regardless of depth.
func (w *World) Pick(origin, direction rl.Vector3, maxDistance float32) (physics.RaycastResult, bool) {
	params := physics.NewRaycastParameters().SelectForeground()
	if w.Player != nil {
		params = params.Ignore(w.Player.Collider)
	}
	return w.Physical.Raycast(origin, direction, maxDistance, params)
}

// Clear removes every model, leaving the player (if spawned) in place.
func (w *World) Clear() {
	for uid := range w.models {
		if err := w.RemoveModel(uid); err != nil {
			log.Printf("World: clear: %v", err)
		}
	}
}
