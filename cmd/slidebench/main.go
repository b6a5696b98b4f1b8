// Headless benchmark of the move-and-slide resolver and the raycaster at
// increasing collider counts.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/olaney14/viceptica-sub000/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const iterations = 1000

func main() {
	counts := []int{10, 50, 100, 500, 1000, 5000}
	fmt.Printf("%6s | %12s | %12s\n", "boxes", "slide/op", "raycast/op")
	for _, count := range counts {
		benchScene(count)
	}
}

func benchScene(count int) {
	rng := rand.New(rand.NewSource(42))
	scene := physics.NewPhysicalScene()

	// Random boxes in a cube whose size scales with count to keep density
	// roughly constant.
	spawnSize := float32(30) + float32(count)/20
	for i := 0; i < count; i++ {
		center := rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		extents := rl.Vector3{
			X: 1 + rng.Float32()*2,
			Y: 1 + rng.Float32()*2,
			Z: 1 + rng.Float32()*2,
		}
		rotation := rl.Vector3{Y: rng.Float32() * 2 * rl.Pi}
		scene.AddCollider(physics.NewCuboidCollider(center, extents, rotation))
	}

	mover := scene.AddCollider(physics.NewCuboidCollider(
		rl.Vector3{}, rl.Vector3{X: 0.8, Y: 1.8, Z: 0.8}, rl.Vector3{}))

	// Warm up, then time the resolver wandering through the field.
	scene.MoveAndSlide(mover, rl.Vector3{X: 0.1})

	slideStart := time.Now()
	for i := 0; i < iterations; i++ {
		v := rl.Vector3{
			X: 0.2 * float32(i%3-1),
			Y: -0.05,
			Z: 0.2 * float32(i%5-2),
		}
		scene.MoveAndSlide(mover, v)
	}
	slideTime := time.Since(slideStart) / iterations

	params := physics.NewRaycastParameters().Ignore(mover)
	rayStart := time.Now()
	hits := 0
	for i := 0; i < iterations; i++ {
		dir := rl.Vector3{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
			Z: rng.Float32()*2 - 1,
		}
		if _, ok := scene.Raycast(rl.Vector3{}, dir, spawnSize, params); ok {
			hits++
		}
	}
	rayTime := time.Since(rayStart) / iterations

	fmt.Printf("%6d | %12v | %12v (%d/%d rays hit)\n",
		count, slideTime.Round(time.Nanosecond), rayTime.Round(time.Nanosecond), hits, iterations)
}
