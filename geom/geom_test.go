package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxMeshNormalsPointOutward(t *testing.T) {
	m := BoxMesh(2, 2, 2)
	require.Equal(t, 24, len(m.Positions))
	require.Equal(t, 12, m.Triangles())

	for i := 0; i < m.Triangles(); i++ {
		a, b, c := m.Triangle(i)
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		n := triangleNormal(a, b, c)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d normal %v points inward", i, n)
		}
	}
}

func TestBoxLines(t *testing.T) {
	m := BoxMesh(5, 5, 5)
	assert.Len(t, Edges(m, DefaultEdgeThreshold), 12)
	// 12 cube edges plus one diagonal per face.
	assert.Len(t, FaceLines(m), 18)
}

func TestSphereLines(t *testing.T) {
	const w, h = 8, 4
	m := SphereMesh(1, w, h)
	require.Equal(t, (w+1)*(h+1), len(m.Positions))

	edges := Edges(m, DefaultEdgeThreshold)
	faces := FaceLines(m)

	// meridians + parallels; the planar quad diagonals are not feature edges.
	assert.Len(t, edges, w*h+w*(h-1))
	assert.Len(t, faces, w*h+w*(h-1)+w*(h-2))

	for _, l := range edges {
		assert.InDelta(t, 1.0, l[0].Len(), 1e-9)
		assert.InDelta(t, 1.0, l[1].Len(), 1e-9)
	}
}

func TestTorusLines(t *testing.T) {
	m := TorusMesh(4, 1, 16, 100)
	// Neighbouring quads along the ring bend by 3.6 deg scaled by cos of the tube angle.
	// On the four quad rows nearest the top and bottom of the tube that is about 0.7 deg,
	// under the threshold, so those 4*100 ring edges are not feature edges.
	assert.Len(t, Edges(m, DefaultEdgeThreshold), 16*100*2-4*100)
	assert.Len(t, FaceLines(m), 16*100*3)
}

func TestEdgesKeepsBoundary(t *testing.T) {
	// A single triangle has no neighbours, so all three edges are boundary edges.
	m := &Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	assert.Len(t, Edges(m, DefaultEdgeThreshold), 3)
}

func TestEdgesSkipsDegenerateTriangles(t *testing.T) {
	m := &Mesh{
		Positions: []mgl64.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	assert.Empty(t, Edges(m, DefaultEdgeThreshold))
	assert.Empty(t, FaceLines(m))
}

func TestTransformRotatesAndTranslates(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl64.Vec3{1, 0, 0}
	tr.Rotation = mgl64.Vec3{0, math.Pi / 2, 0}

	out := tr.Apply([]Line{{{0, 0, 1}, {0, 0, 0}}})
	require.Len(t, out, 1)

	// Rotating +Z by 90 degrees around Y gives +X.
	assertVec3(t, mgl64.Vec3{2, 0, 0}, out[0][0])
	assertVec3(t, mgl64.Vec3{1, 0, 0}, out[0][1])
}

func TestCameraProjectsOriginToCenter(t *testing.T) {
	cam := NewCamera(2)
	ndc, ok := cam.Project(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0, ndc.X(), 1e-9)
	assert.InDelta(t, 0, ndc.Y(), 1e-9)

	pr := cam.Projector(Screen{Width: 200, Height: 100})
	p, ok := pr.Point(mgl64.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 100, p.X(), 1e-9)
	assert.InDelta(t, 50, p.Y(), 1e-9)

	// +Y in world is up on screen, which is a smaller screen Y.
	up, ok := pr.Point(mgl64.Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Less(t, up.Y(), p.Y())
}

func TestCameraRejectsPointsBehind(t *testing.T) {
	cam := NewCamera(1)
	_, ok := cam.Project(mgl64.Vec3{0, 0, 30})
	assert.False(t, ok)

	pr := cam.Projector(Screen{Width: 10, Height: 10})
	_, _, ok = pr.Line(Line{{0, 0, 0}, {0, 0, 30}})
	assert.False(t, ok)
}

func assertVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}
