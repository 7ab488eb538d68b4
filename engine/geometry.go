package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is an indexed triangle list. Triangles wind counter-clockwise
// when seen from their front side.
type Geometry struct {
	Vertices []mgl32.Vec3
	Indices  []uint16

	disposed bool
}

// NewBoxGeometry builds a box centered on the origin.
func NewBoxGeometry(width, height, depth float32) *Geometry {
	x, y, z := width/2, height/2, depth/2

	return &Geometry{
		Vertices: []mgl32.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
		Indices: []uint16{
			4, 5, 6, 4, 6, 7, // +z
			1, 0, 3, 1, 3, 2, // -z
			5, 1, 2, 5, 2, 6, // +x
			0, 4, 7, 0, 7, 3, // -x
			7, 6, 2, 7, 2, 3, // +y
			0, 1, 5, 0, 5, 4, // -y
		},
	}
}

// NewPlaneGeometry builds a plane in the XY plane facing +Z.
func NewPlaneGeometry(width, height float32) *Geometry {
	x, y := width/2, height/2

	return &Geometry{
		Vertices: []mgl32.Vec3{
			{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// NewSphereGeometry builds a UV sphere. Segment counts are clamped to the
// smallest values that still close the surface.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	g := &Geometry{}
	grid := make([][]uint16, 0, heightSegments+1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		row := make([]uint16, 0, widthSegments+1)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)

			vertex := mgl32.Vec3{
				float32(-float64(radius) * math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi)),
				float32(float64(radius) * math.Cos(v*math.Pi)),
				float32(float64(radius) * math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi)),
			}

			row = append(row, uint16(len(g.Vertices)))
			g.Vertices = append(g.Vertices, vertex)
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
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	return g
}

// Triangles returns the number of triangles in the geometry.
func (g *Geometry) Triangles() int {
	return len(g.Indices) / 3
}

// BoundingBox returns the axis aligned bounds of the vertices in local space.
func (g *Geometry) BoundingBox() (lower, upper mgl32.Vec3) {
	if len(g.Vertices) == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}
	}

	lower, upper = g.Vertices[0], g.Vertices[0]
	for _, v := range g.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			lower[axis] = min(lower[axis], v[axis])
			upper[axis] = max(upper[axis], v[axis])
		}
	}
	return lower, upper
}

// Dispose releases the vertex data. A disposed geometry is skipped by the
// renderer.
func (g *Geometry) Dispose() {
	g.Vertices = nil
	g.Indices = nil
	g.disposed = true
}

func (g *Geometry) Disposed() bool {
	return g.disposed
}
