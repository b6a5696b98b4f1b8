package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// project returns the vector projection of v onto n.
func project(v, n rl.Vector3) rl.Vector3 {
	lenSq := rl.Vector3DotProduct(n, n)
	if lenSq < 1e-12 {
		return rl.Vector3{}
	}
	return rl.Vector3Scale(n, rl.Vector3DotProduct(v, n)/lenSq)
}
