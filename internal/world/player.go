package world

import (
	"github.com/chewxy/math32"
	"github.com/olaney14/viceptica-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundedNormalY is how vertical a contact normal has to be before the
// surface counts as ground rather than a steep slope.
const groundedNormalY = 0.7

// Player is the first-person mover: a cuboid collider driven through
// MoveAndSlide, with the ground material feeding back into steering,
// damping and jump strength.
type Player struct {
	Collider  physics.Handle
	EyeHeight float32

	MoveSpeed    float32
	Accel        float32
	Gravity      float32
	JumpStrength float32

	Velocity rl.Vector3
	Grounded bool
	Noclip   bool

	// Material of the last surface stood on; kept while airborne so a jump
	// off ice still steers like ice.
	ground physics.PhysicalProperties
}

// SpawnPlayer creates the player collider at the given feet position and
// registers it with the world.
func SpawnPlayer(w *World, feet rl.Vector3) *Player {
	size := rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}
	center := rl.Vector3Add(feet, rl.Vector3{Y: size.Y / 2})
	c := physics.NewCuboidCollider(center, size, rl.Vector3{})

	p := &Player{
		Collider:     w.Physical.AddCollider(c),
		EyeHeight:    1.6,
		MoveSpeed:    8.0,
		Accel:        10.0,
		Gravity:      20.0,
		JumpStrength: 8.0,
		ground:       physics.DefaultPhysicalProperties(),
	}
	w.Player = p
	return p
}

// Position returns the collider's center.
func (p *Player) Position(w *World) rl.Vector3 {
	return w.Physical.Pose(p.Collider).Position
}

// EyePosition returns the camera anchor: eye height above the feet.
func (p *Player) EyePosition(w *World) rl.Vector3 {
	pos := p.Position(w)
	half := w.Physical.Collider(p.Collider).Shape.HalfExtents.Y
	pos.Y += p.EyeHeight - half
	return pos
}

// Update advances the player one tick. wish is the desired horizontal
// direction in world space (length <= 1); the ground material scales
// steering (Control), damping (Friction) and jump impulse (JumpMultiplier).
func (p *Player) Update(w *World, wish rl.Vector3, jump bool, dt float32) {
	if dt <= 0 {
		return
	}

	if p.Noclip {
		// Fly freely, no collision and no gravity.
		p.Velocity = rl.Vector3Scale(wish, p.MoveSpeed)
		w.Physical.Shift(p.Collider, rl.Vector3Scale(p.Velocity, dt))
		p.Grounded = false
		return
	}

	// Steer the horizontal velocity toward the wish velocity. Control < 1
	// makes the blend sluggish, the slippery-surface feel.
	target := rl.Vector3Scale(wish, p.MoveSpeed)
	blend := p.Accel * p.ground.Control * dt
	if blend > 1 {
		blend = 1
	}
	p.Velocity.X += (target.X - p.Velocity.X) * blend
	p.Velocity.Z += (target.Z - p.Velocity.Z) * blend

	// Friction damps whatever steering left behind, only while standing.
	if p.Grounded && wish.X == 0 && wish.Z == 0 {
		damp := 1 - p.ground.Friction*p.Accel*dt
		if damp < 0 {
			damp = 0
		}
		p.Velocity.X *= damp
		p.Velocity.Z *= damp
	}

	if jump && p.Grounded {
		p.Velocity.Y = p.JumpStrength * p.ground.JumpMultiplier
		p.Grounded = false
	}
	p.Velocity.Y -= p.Gravity * dt

	result := w.Physical.MoveAndSlide(p.Collider, rl.Vector3Scale(p.Velocity, dt))
	p.Velocity = rl.Vector3Scale(result.Velocity, 1/dt)

	p.Grounded = false
	for i, n := range result.Normals {
		if n.Y > groundedNormalY {
			p.Grounded = true
			p.ground = result.Materials[i]
		}
	}
}

// LookDirection converts yaw/pitch in degrees to a world-space unit vector,
// raylib's free-camera convention.
func LookDirection(yaw, pitch float32) rl.Vector3 {
	yawRad := yaw * math32.Pi / 180
	pitchRad := pitch * math32.Pi / 180
	return rl.Vector3{
		X: math32.Cos(yawRad) * math32.Cos(pitchRad),
		Y: math32.Sin(pitchRad),
		Z: math32.Sin(yawRad) * math32.Cos(pitchRad),
	}
}
