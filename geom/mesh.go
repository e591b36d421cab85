package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list.
type Mesh struct {
	Positions []mgl64.Vec3
	Indices   []uint32
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the corner positions of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl64.Vec3) {
	return m.Positions[m.Indices[i*3]], m.Positions[m.Indices[i*3+1]], m.Positions[m.Indices[i*3+2]]
}

// BoxMesh builds an axis-aligned box centered at the origin. Each face owns its four
// corners, so corners are duplicated across faces.
func BoxMesh(width, height, depth float64) *Mesh {
	hx, hy, hz := width/2, height/2, depth/2
	m := &Mesh{}

	// Corners are listed counter-clockwise when seen from outside the face.
	faces := [6][4]mgl64.Vec3{
		{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}},     // +x
		{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}, // -x
		{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}},     // +y
		{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}, // -y
		{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}},     // +z
		{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}, // -z
	}

	for _, f := range faces {
		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions, f[0], f[1], f[2], f[3])
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return m
}

// SphereMesh builds a UV sphere. Pole rows emit a single triangle per segment.
func SphereMesh(radius float64, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(3, widthSegments)
	heightSegments = max(2, heightSegments)

	m := &Mesh{}
	grid := make([][]uint32, 0, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		row := make([]uint32, 0, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			m.Positions = append(m.Positions, mgl64.Vec3{
				-radius * math.Cos(phi) * math.Sin(theta),
				radius * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
			})
			row = append(row, uint32(len(m.Positions)-1))
		}
		grid = append(grid, row)
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	return m
}

// TorusMesh builds a torus lying in the XY plane around the Z axis.
func TorusMesh(radius, tube float64, radialSegments, tubularSegments int) *Mesh {
	radialSegments = max(2, radialSegments)
	tubularSegments = max(3, tubularSegments)

	m := &Mesh{}
	for j := 0; j <= radialSegments; j++ {
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		for i := 0; i <= tubularSegments; i++ {
			u := float64(i) / float64(tubularSegments) * 2 * math.Pi
			m.Positions = append(m.Positions, mgl64.Vec3{
				(radius + tube*math.Cos(v)) * math.Cos(u),
				(radius + tube*math.Cos(v)) * math.Sin(u),
				tube * math.Sin(v),
			})
		}
	}

	stride := uint32(tubularSegments + 1)
	for j := uint32(1); j <= uint32(radialSegments); j++ {
		for i := uint32(1); i <= uint32(tubularSegments); i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}
