package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Line is a single segment between two points.
type Line [2]mgl64.Vec3

// DefaultEdgeThreshold is the dihedral angle, in degrees, above which an edge is kept
// by Edges.
const DefaultEdgeThreshold = 1.0

// Vertices closer than 1e-4 on every axis are treated as the same point.
const weldPrecision = 1e4

type vertexKey [3]int64

func weld(p mgl64.Vec3) vertexKey {
	return vertexKey{
		int64(math.Round(p[0] * weldPrecision)),
		int64(math.Round(p[1] * weldPrecision)),
		int64(math.Round(p[2] * weldPrecision)),
	}
}

type edgeKey [2]vertexKey

func triangleNormal(a, b, c mgl64.Vec3) mgl64.Vec3 {
	n := c.Sub(b).Cross(a.Sub(b))
	if l := n.Len(); l > 0 {
		return n.Mul(1 / l)
	}
	return mgl64.Vec3{}
}

// FaceLines returns every triangle edge of m once, welding coincident vertices.
func FaceLines(m *Mesh) []Line {
	seen := make(map[edgeKey]struct{})
	var lines []Line

	for t := 0; t < m.Triangles(); t++ {
		a, b, c := m.Triangle(t)
		corners := [3]mgl64.Vec3{a, b, c}
		keys := [3]vertexKey{weld(a), weld(b), weld(c)}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}

		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			k := edgeKey{keys[j], keys[next]}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			seen[edgeKey{keys[next], keys[j]}] = struct{}{}
			lines = append(lines, Line{corners[j], corners[next]})
		}
	}
	return lines
}

type pendingEdge struct {
	line   Line
	normal mgl64.Vec3
	open   bool
}

// Edges returns the feature edges of m: edges shared by two faces whose normals differ
// by more than thresholdDeg, plus edges that belong to a single face.
func Edges(m *Mesh, thresholdDeg float64) []Line {
	thresholdDot := math.Cos(mgl64.DegToRad(thresholdDeg))

	index := make(map[edgeKey]int)
	var pending []pendingEdge
	var lines []Line

	for t := 0; t < m.Triangles(); t++ {
		a, b, c := m.Triangle(t)
		corners := [3]mgl64.Vec3{a, b, c}
		keys := [3]vertexKey{weld(a), weld(b), weld(c)}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}
		normal := triangleNormal(a, b, c)

		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			k := edgeKey{keys[j], keys[next]}
			reverse := edgeKey{keys[next], keys[j]}

			if i, ok := index[reverse]; ok && pending[i].open {
				if normal.Dot(pending[i].normal) <= thresholdDot {
					lines = append(lines, Line{corners[j], corners[next]})
				}
				pending[i].open = false
				continue
			}
			if _, ok := index[k]; !ok {
				index[k] = len(pending)
				pending = append(pending, pendingEdge{
					line:   Line{corners[j], corners[next]},
					normal: normal,
					open:   true,
				})
			}
		}
	}

	for _, e := range pending {
		if e.open {
			lines = append(lines, e.line)
		}
	}
	return lines
}
