package lighting

import "github.com/go-gl/mathgl/mgl32"

// Helper sizes, matching the gizmos drawn by common scene editors.
const (
	PointHelperSize       = 0.3
	DirectionalHelperSize = 5
)

// HelperLines returns the helper gizmo for a light as pairs of line endpoints.
//
// Point lights get a small octahedron around their position. Directional
// lights get a square facing the origin plus a line to the origin.
func HelperLines(l Light) []mgl32.Vec3 {
	if l.Kind == Point {
		return octahedron(l.Position, PointHelperSize)
	}
	return directionalGizmo(l.Position, DirectionalHelperSize)
}

func octahedron(c mgl32.Vec3, r float32) []mgl32.Vec3 {
	px, nx := c.Add(mgl32.Vec3{r, 0, 0}), c.Add(mgl32.Vec3{-r, 0, 0})
	py, ny := c.Add(mgl32.Vec3{0, r, 0}), c.Add(mgl32.Vec3{0, -r, 0})
	pz, nz := c.Add(mgl32.Vec3{0, 0, r}), c.Add(mgl32.Vec3{0, 0, -r})

	ring := []mgl32.Vec3{px, pz, nx, nz}
	lines := make([]mgl32.Vec3, 0, 24)
	for i, v := range ring {
		next := ring[(i+1)%len(ring)]
		lines = append(lines, v, next, v, py, v, ny)
	}
	return lines
}

func directionalGizmo(pos mgl32.Vec3, size float32) []mgl32.Vec3 {
	dir := pos.Mul(-1)
	if dir.Len() == 0 {
		return nil
	}
	dir = dir.Normalize()

	up := mgl32.Vec3{0, 1, 0}
	if abs32(dir.Dot(up)) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	right := dir.Cross(up).Normalize().Mul(size / 2)
	up = right.Cross(dir).Normalize().Mul(size / 2)

	a := pos.Add(right).Add(up)
	b := pos.Sub(right).Add(up)
	c := pos.Sub(right).Sub(up)
	d := pos.Add(right).Sub(up)

	return []mgl32.Vec3{
		a, b, b, c, c, d, d, a,
		pos, mgl32.Vec3{},
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
