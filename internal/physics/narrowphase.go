package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes a narrow-phase query result. Normal points from the
// second shape (the obstacle) toward the first (the mover). Distance < 0
// means the shapes interpenetrate by that depth along Normal; a value in
// [0, margin] means they are separated but within the prediction margin.
type Contact struct {
	Normal   rl.Vector3
	Distance float32
}

// RayHit is a narrow-phase ray intersection.
type RayHit struct {
	TimeOfImpact float32
	Normal       rl.Vector3
}

// ShapeContact runs the narrow-phase contact query between two posed shapes.
// Returns false when the shapes are separated by more than margin.
func ShapeContact(poseA Pose, shapeA Shape, poseB Pose, shapeB Shape, margin float32) (Contact, bool) {
	if shapeA.Kind == ShapeCuboid && shapeB.Kind == ShapeCuboid {
		return cuboidContact(poseA, shapeA.HalfExtents, poseB, shapeB.HalfExtents, margin)
	}
	panic(fmt.Sprintf("physics: unsupported shape pair %d/%d", shapeA.Kind, shapeB.Kind))
}

// cuboidContact tests two oriented cuboids with the Separating Axis Theorem.
// 15 candidate axes: 3 face normals each plus 9 edge cross products. The
// minimum-penetration axis gives the contact normal, oriented from B to A.
func cuboidContact(poseA Pose, halfA rl.Vector3, poseB Pose, halfB rl.Vector3, margin float32) (Contact, bool) {
	axesA := poseA.Axes()
	axesB := poseB.Axes()
	t := rl.Vector3Subtract(poseA.Position, poseB.Position)

	minPenetration := float32(math32.MaxFloat32)
	var minAxis rl.Vector3
	separated := false
	maxSeparation := float32(-math32.MaxFloat32)
	var sepAxis rl.Vector3

	testAxis := func(axis rl.Vector3) {
		if rl.Vector3Length(axis) < 1e-4 {
			return // parallel edges
		}
		axis = rl.Vector3Normalize(axis)

		aProj := halfA.X*math32.Abs(rl.Vector3DotProduct(axesA[0], axis)) +
			halfA.Y*math32.Abs(rl.Vector3DotProduct(axesA[1], axis)) +
			halfA.Z*math32.Abs(rl.Vector3DotProduct(axesA[2], axis))
		bProj := halfB.X*math32.Abs(rl.Vector3DotProduct(axesB[0], axis)) +
			halfB.Y*math32.Abs(rl.Vector3DotProduct(axesB[1], axis)) +
			halfB.Z*math32.Abs(rl.Vector3DotProduct(axesB[2], axis))

		dist := rl.Vector3DotProduct(t, axis)
		penetration := aProj + bProj - math32.Abs(dist)

		// Orient the axis from B toward A.
		if dist < 0 {
			axis = rl.Vector3Scale(axis, -1)
		}

		if penetration < 0 {
			separation := -penetration
			if !separated || separation > maxSeparation {
				separated = true
				maxSeparation = separation
				sepAxis = axis
			}
		} else if penetration < minPenetration {
			minPenetration = penetration
			minAxis = axis
		}
	}

	for i := 0; i < 3; i++ {
		testAxis(axesA[i])
	}
	for i := 0; i < 3; i++ {
		testAxis(axesB[i])
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			testAxis(rl.Vector3CrossProduct(axesA[i], axesB[j]))
		}
	}

	if separated {
		// One separating axis is enough to rule out contact; the widest
		// separation is the best lower bound on the true distance.
		if maxSeparation > margin {
			return Contact{}, false
		}
		return Contact{Normal: sepAxis, Distance: maxSeparation}, true
	}
	return Contact{Normal: minAxis, Distance: -minPenetration}, true
}

// CastRay intersects a ray with a posed shape. The ray direction must be
// normalized; the returned time of impact is a world-space distance.
func CastRay(pose Pose, shape Shape, ray rl.Ray, maxDistance float32) (RayHit, bool) {
	switch shape.Kind {
	case ShapeCuboid:
		return rayCuboid(pose, shape.HalfExtents, ray, maxDistance)
	default:
		panic(fmt.Sprintf("physics: unknown shape kind %d", shape.Kind))
	}
}

// rayCuboid transforms the ray into the cuboid's local frame and runs the
// slab method against [-half, half] on each axis, tracking which slab the
// entry crossing happened on so the face normal falls out directly.
func rayCuboid(pose Pose, half rl.Vector3, ray rl.Ray, maxDistance float32) (RayHit, bool) {
	inv := rl.QuaternionInvert(pose.Orientation)
	origin := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(ray.Position, pose.Position), inv)
	dir := rl.Vector3RotateByQuaternion(ray.Direction, inv)

	originAxes := [3]float32{origin.X, origin.Y, origin.Z}
	dirAxes := [3]float32{dir.X, dir.Y, dir.Z}
	halfAxes := [3]float32{half.X, half.Y, half.Z}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	entryAxis := -1
	entrySign := float32(1)

	for i := 0; i < 3; i++ {
		if math32.Abs(dirAxes[i]) < 1e-8 {
			// Parallel to this slab: miss unless the origin is inside it.
			if originAxes[i] < -halfAxes[i] || originAxes[i] > halfAxes[i] {
				return RayHit{}, false
			}
			continue
		}
		t1 := (-halfAxes[i] - originAxes[i]) / dirAxes[i]
		t2 := (halfAxes[i] - originAxes[i]) / dirAxes[i]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = i
			entrySign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmin > tmax || tmax < 0 {
		return RayHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax // ray starts inside: report the exit crossing
	}
	if t > maxDistance {
		return RayHit{}, false
	}

	local := rl.Vector3{}
	switch entryAxis {
	case 0:
		local.X = entrySign
	case 1:
		local.Y = entrySign
	case 2:
		local.Z = entrySign
	default:
		// Degenerate ray aligned with all slabs it starts inside of.
		local.Y = 1
	}

	return RayHit{
		TimeOfImpact: t,
		Normal:       rl.Vector3RotateByQuaternion(local, pose.Orientation),
	}, true
}
