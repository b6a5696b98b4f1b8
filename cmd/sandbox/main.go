// Interactive viewer: first-person movement through the collision resolver,
// mouse picking with foreground priority, live level reload.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/olaney14/viceptica-sub000/internal/physics"
	"github.com/olaney14/viceptica-sub000/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type sandbox struct {
	world     *world.World
	player    *world.Player
	levelPath string
	watcher   *world.LevelWatcher

	cubeModel rl.Model

	yaw       float32
	pitch     float32
	cursor    bool
	showBoxes bool

	selected  int
	markerUID int
}

var textureColors = map[string]rl.Color{
	"stone": rl.Gray,
	"grass": rl.Lime,
	"crate": rl.Brown,
	"metal": rl.LightGray,
	"ice":   rl.SkyBlue,
	"glass": rl.NewColor(200, 230, 255, 120),
	"gizmo": rl.Yellow,
}

func main() {
	s := &sandbox{
		world:     world.New(),
		yaw:       -90,
		selected:  -1,
		markerUID: -1,
	}

	if len(os.Args) > 1 {
		s.levelPath = os.Args[1]
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Viceptica Sandbox")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)
	rl.DisableCursor()

	s.cubeModel = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	defer rl.UnloadModel(s.cubeModel)

	s.loadLevel()
	s.player = world.SpawnPlayer(s.world, rl.Vector3{Y: 0.5})

	if s.levelPath != "" {
		w, err := world.WatchLevel(s.levelPath)
		if err != nil {
			log.Printf("Sandbox: watch %s: %v", s.levelPath, err)
		} else {
			s.watcher = w
			defer s.watcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		s.update()
		s.draw()
	}
}

func (s *sandbox) loadLevel() {
	if s.levelPath == "" {
		buildDefaultLevel(s.world)
		return
	}
	if err := s.world.LoadLevel(s.levelPath); err != nil {
		log.Printf("Sandbox: %v", err)
		buildDefaultLevel(s.world)
	}
}

// buildDefaultLevel assembles a small test yard when no level file is given.
func buildDefaultLevel(w *world.World) {
	w.InsertModel(world.NewModel("floor", rl.Vector3{Y: -0.5}).
		WithBrush("grass", rl.Vector3{}, rl.Vector3{X: 60, Y: 1, Z: 60}))

	w.InsertModel(world.NewModel("wall", rl.Vector3{X: 8, Y: 2}).
		WithBrush("stone", rl.Vector3{}, rl.Vector3{X: 1, Y: 4, Z: 12}))

	// Staircase of climbable ledges.
	for i := 0; i < 5; i++ {
		h := 0.4 * float32(i+1)
		w.InsertModel(world.NewModel("step", rl.Vector3{X: -6 - float32(i)*1.5, Y: h / 2}).
			WithBrush("stone", rl.Vector3{}, rl.Vector3{X: 1.5, Y: h, Z: 4}))
	}

	w.InsertModel(world.NewModel("ice_patch", rl.Vector3{Z: 10, Y: 0.1}).
		WithBrush("ice", rl.Vector3{}, rl.Vector3{X: 8, Y: 0.2, Z: 8}).
		WithProperties(physics.PhysicalProperties{Friction: 0.05, Control: 0.25, JumpMultiplier: 1}))

	w.InsertModel(world.NewModel("trampoline", rl.Vector3{Z: -10, Y: 0.15}).
		WithBrush("metal", rl.Vector3{}, rl.Vector3{X: 4, Y: 0.3, Z: 4}).
		WithProperties(physics.PhysicalProperties{Friction: 0.8, Control: 1, JumpMultiplier: 2.2}))

	w.InsertModel(world.NewModel("crate", rl.Vector3{X: 3, Y: 0.75, Z: 4}).
		WithBrush("crate", rl.Vector3{}, rl.Vector3{X: 1.5, Y: 1.5, Z: 1.5}).
		AsMobile())
}

func (s *sandbox) update() {
	dt := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		s.cursor = !s.cursor
		if s.cursor {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if rl.IsKeyPressed(rl.KeyN) {
		s.player.Noclip = !s.player.Noclip
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.reload()
	}

	if !s.cursor {
		delta := rl.GetMouseDelta()
		s.yaw += delta.X * 0.1
		s.pitch -= delta.Y * 0.1
		if s.pitch > 89 {
			s.pitch = 89
		}
		if s.pitch < -89 {
			s.pitch = -89
		}
	}

	s.player.Update(s.world, s.wishDirection(), rl.IsKeyDown(rl.KeySpace), dt)

	if s.cursor && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		s.pick()
	}

	if s.watcher != nil {
		select {
		case path := <-s.watcher.Events:
			log.Printf("Sandbox: level changed on disk, reloading %s", path)
			s.reload()
		case err := <-s.watcher.Errors:
			log.Printf("Sandbox: watcher: %v", err)
		default:
		}
	}
}

func (s *sandbox) reload() {
	s.world.Clear()
	s.selected = -1
	s.markerUID = -1
	s.loadLevel()
}

// wishDirection builds the horizontal input direction in world space from
// WASD relative to the camera yaw.
func (s *sandbox) wishDirection() rl.Vector3 {
	forward := world.LookDirection(s.yaw, 0)
	right := rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1})

	var wish rl.Vector3
	if rl.IsKeyDown(rl.KeyW) {
		wish = rl.Vector3Add(wish, forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		wish = rl.Vector3Subtract(wish, forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		wish = rl.Vector3Add(wish, right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		wish = rl.Vector3Subtract(wish, right)
	}
	if rl.Vector3Length(wish) > 0 {
		wish = rl.Vector3Normalize(wish)
	}
	if s.player.Noclip {
		wish = world.LookDirection(s.yaw, s.pitch)
	}
	return wish
}

func (s *sandbox) camera() rl.Camera3D {
	eye := s.player.EyePosition(s.world)
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, world.LookDirection(s.yaw, s.pitch)),
		Up:         rl.Vector3{Y: 1},
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

func (s *sandbox) pick() {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), s.camera())
	result, ok := s.world.Pick(ray.Position, ray.Direction, 100)
	if !ok {
		s.selected = -1
		return
	}
	if result.Model == s.markerUID {
		return
	}
	s.selected = result.Model
	s.placeMarker(result.Position)
}

// placeMarker drops the selection gizmo at the hit point. It is registered
// as a foreground non-solid model so it stays clickable and never blocks
// movement.
func (s *sandbox) placeMarker(pos rl.Vector3) {
	if s.markerUID >= 0 {
		if err := s.world.SetModelPosition(s.markerUID, pos); err == nil {
			return
		}
		s.markerUID = -1
	}
	s.markerUID = s.world.InsertModel(world.NewModel("marker", pos).
		WithBrush("gizmo", rl.Vector3{}, rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}).
		NonSolid().
		AsForeground().
		AsMobile())
}

func (s *sandbox) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(25, 30, 40, 255))

	rl.BeginMode3D(s.camera())
	rl.DrawGrid(40, 2)
	s.world.Models(func(uid int, m *world.Model) {
		s.drawModel(uid, m)
	})
	rl.EndMode3D()

	s.drawOverlay()
	rl.EndDrawing()
}

func (s *sandbox) drawModel(uid int, m *world.Model) {
	if m.Hidden {
		return
	}
	axis, angleDeg := rotationAxisAngle(m.Rotation)
	for _, b := range m.Renderables {
		color, ok := textureColors[b.Texture]
		if !ok {
			color = rl.Purple
		}
		pos := rl.Vector3Add(m.Position, b.Offset)
		rl.DrawModelEx(s.cubeModel, pos, axis, angleDeg, b.Extents, color)
		if uid == s.selected {
			rl.DrawCubeWiresV(pos, rl.Vector3Scale(b.Extents, 1.01), rl.Yellow)
		}
	}
	if s.showBoxes {
		for _, h := range m.Handles() {
			box := s.world.Physical.Collider(h).Bounding.Box()
			rl.DrawBoundingBox(box, rl.Green)
		}
	}
}

func rotationAxisAngle(axisAngle rl.Vector3) (rl.Vector3, float32) {
	length := rl.Vector3Length(axisAngle)
	if length < 1e-6 {
		return rl.Vector3{Y: 1}, 0
	}
	return rl.Vector3Scale(axisAngle, 1/length), length * 180 / rl.Pi
}

func (s *sandbox) drawOverlay() {
	s.showBoxes = gui.CheckBox(rl.NewRectangle(10, 10, 20, 20), "Bounding boxes", s.showBoxes)
	s.player.Noclip = gui.CheckBox(rl.NewRectangle(10, 36, 20, 20), "Noclip", s.player.Noclip)
	if gui.Button(rl.NewRectangle(10, 62, 120, 24), "Reload level") {
		s.reload()
	}

	pos := s.player.Position(s.world)
	rl.DrawText(fmt.Sprintf("pos %.1f %.1f %.1f", pos.X, pos.Y, pos.Z), 10, 96, 18, rl.RayWhite)
	state := "airborne"
	if s.player.Grounded {
		state = "grounded"
	}
	rl.DrawText(state, 10, 116, 18, rl.RayWhite)
	rl.DrawText("Tab: cursor  N: noclip  R: reload  Click: pick", 10, 136, 18, rl.Gray)
	rl.DrawFPS(10, 160)

	if !s.cursor {
		// Crosshair
		cx, cy := int32(rl.GetScreenWidth()/2), int32(rl.GetScreenHeight()/2)
		rl.DrawLine(cx-6, cy, cx+6, cy, rl.RayWhite)
		rl.DrawLine(cx, cy-6, cx, cy+6, rl.RayWhite)
	}
}
