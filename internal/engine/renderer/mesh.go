package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is indexed geometry with interleaved position and normal.
type Mesh struct {
	Vertices []float32 // x, y, z, nx, ny, nz
	Indices  []uint32
}

// vertexStride is the number of floats per vertex.
const vertexStride = 6

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / vertexStride
}

// AddEllipsoid appends a UV ellipsoid centred on c with the given radii.
func (m *Mesh) AddEllipsoid(c, radii mgl32.Vec3, stacks, slices int) {
	base := uint32(m.VertexCount())
	inv := mgl32.Vec3{1 / (radii[0] * radii[0]), 1 / (radii[1] * radii[1]), 1 / (radii[2] * radii[2])}

	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks) // 0 at the top
		sp, cp := math.Sincos(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			st, ct := math.Sincos(theta)

			unit := mgl32.Vec3{float32(sp * st), float32(cp), float32(sp * ct)}
			p := mgl32.Vec3{unit[0] * radii[0], unit[1] * radii[1], unit[2] * radii[2]}

			// Gradient of the implicit surface
			n := mgl32.Vec3{p[0] * inv[0], p[1] * inv[1], p[2] * inv[2]}
			if n.Len() > 0 {
				n = n.Normalize()
			} else {
				n = unit
			}

			p = p.Add(c)
			m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
		}
	}

	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := base + uint32(i)*row + uint32(j)
			b := a + row
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if m.VertexCount() == 0 {
		return
	}
	for i := 0; i < 3; i++ {
		lo[i] = math.MaxFloat32
		hi[i] = -math.MaxFloat32
	}
	for v := 0; v < len(m.Vertices); v += vertexStride {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], m.Vertices[v+i])
			hi[i] = max(hi[i], m.Vertices[v+i])
		}
	}
	return lo, hi
}

// HeadMesh builds a stylised head in unit space facing +Z: a cranium, a
// jaw, a nose and two ears. The asymmetry front to back makes rotation and
// light direction easy to read.
func HeadMesh() *Mesh {
	m := &Mesh{}
	m.AddEllipsoid(mgl32.Vec3{0, 0.15, 0}, mgl32.Vec3{0.78, 0.95, 0.88}, 32, 48)
	m.AddEllipsoid(mgl32.Vec3{0, -0.45, 0.18}, mgl32.Vec3{0.55, 0.45, 0.6}, 20, 32)
	m.AddEllipsoid(mgl32.Vec3{0, -0.05, 0.86}, mgl32.Vec3{0.1, 0.2, 0.14}, 12, 16)
	m.AddEllipsoid(mgl32.Vec3{0.78, 0, -0.02}, mgl32.Vec3{0.06, 0.2, 0.12}, 10, 12)
	m.AddEllipsoid(mgl32.Vec3{-0.78, 0, -0.02}, mgl32.Vec3{0.06, 0.2, 0.12}, 10, 12)
	return m
}

// Shininess maps roughness in [0, 1] onto a Blinn-Phong exponent and a
// specular weight. Rough surfaces get a broad, faint highlight.
func Shininess(roughness float64) (exponent, weight float32) {
	r := mgl32.Clamp(float32(roughness), 0, 1)
	smooth := 1 - r
	exponent = 2 + smooth*smooth*254
	weight = 0.04 + smooth*0.96
	return exponent, weight
}

// HeadModel returns the model matrix of the subject: scaled, turned about
// the vertical axis and lifted by offsetY.
func HeadModel(rotation float64, offsetY, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, offsetY, 0).
		Mul4(mgl32.HomogRotate3DY(float32(rotation))).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
