package world

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/olaney14/viceptica-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type LevelFile struct {
	Name   string     `json:"name,omitempty"`
	Models []ModelDef `json:"models"`
}

type ModelDef struct {
	Name       string        `json:"name"`
	Position   [3]float32    `json:"position"`
	Rotation   [3]float32    `json:"rotation,omitempty"`
	Brushes    []BrushDef    `json:"brushes,omitempty"`
	Colliders  []ColliderDef `json:"colliders,omitempty"`
	Hidden     bool          `json:"hidden,omitempty"`
	Solid      *bool         `json:"solid,omitempty"` // default true
	Foreground bool          `json:"foreground,omitempty"`
	Mobile     bool          `json:"mobile,omitempty"`

	Properties *physics.PhysicalProperties `json:"properties,omitempty"`
}

type BrushDef struct {
	Texture string     `json:"texture"`
	Offset  [3]float32 `json:"offset,omitempty"`
	Size    [3]float32 `json:"size"`
}

type ColliderDef struct {
	Offset      [3]float32 `json:"offset,omitempty"`
	HalfExtents [3]float32 `json:"halfExtents"`
}

func vec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

func ReadLevelFile(path string) (*LevelFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lf LevelFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return &lf, nil
}

// LoadLevel replaces the world's models with the file's contents. The
// player, when spawned, stays where it is.
func (w *World) LoadLevel(path string) error {
	lf, err := ReadLevelFile(path)
	if err != nil {
		return err
	}

	w.Clear()
	for _, def := range lf.Models {
		w.InsertModel(modelFromDef(def))
	}
	log.Printf("World: loaded level %q (%d models) from %s", lf.Name, len(lf.Models), path)
	return nil
}

func modelFromDef(def ModelDef) *Model {
	m := NewModel(def.Name, vec3(def.Position)).WithRotation(vec3(def.Rotation))
	for _, b := range def.Brushes {
		m.WithBrush(b.Texture, vec3(b.Offset), vec3(b.Size))
	}
	for _, c := range def.Colliders {
		m.WithCollider(vec3(c.Offset), vec3(c.HalfExtents))
	}
	if def.Hidden {
		m.Hide()
	}
	if def.Solid != nil && !*def.Solid {
		m.NonSolid()
	}
	if def.Foreground {
		m.AsForeground()
	}
	if def.Mobile {
		m.AsMobile()
	}
	if def.Properties != nil {
		m.WithProperties(*def.Properties)
	}
	return m
}

// --- Saving ---

func (w *World) SaveLevel(path, name string) error {
	lf := LevelFile{Name: name}
	w.Models(func(_ int, m *Model) {
		lf.Models = append(lf.Models, defFromModel(m))
	})

	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal level: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

func defFromModel(m *Model) ModelDef {
	def := ModelDef{
		Name:       m.Name,
		Position:   arr3(m.Position),
		Rotation:   arr3(m.Rotation),
		Hidden:     m.Hidden,
		Foreground: m.Foreground,
		Mobile:     m.Mobile,
	}
	for _, b := range m.Renderables {
		def.Brushes = append(def.Brushes, BrushDef{Texture: b.Texture, Offset: arr3(b.Offset), Size: arr3(b.Extents)})
	}
	for _, c := range m.Colliders {
		def.Colliders = append(def.Colliders, ColliderDef{Offset: arr3(c.Offset), HalfExtents: arr3(c.HalfExtents)})
	}
	if !m.Solid {
		solid := false
		def.Solid = &solid
	}
	if m.Properties != physics.DefaultPhysicalProperties() {
		props := m.Properties
		def.Properties = &props
	}
	return def
}
