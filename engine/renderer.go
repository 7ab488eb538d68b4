package engine

import (
	"errors"
	"image"
	"image/color"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrNilScene  = errors.New("engine: nil scene")
	ErrNilCamera = errors.New("engine: nil camera")
)

// maxBatchVertices keeps every batch addressable with uint16 indices.
const maxBatchVertices = 1<<16 - 1

type batch struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

type frame struct {
	background color.RGBA
	batches    []batch
	labels     []Label
	triangles  int
}

type triangle struct {
	points [3]mgl32.Vec2
	depth  float32
	color  color.RGBA
}

type lighting struct {
	ambient     mgl32.Vec3
	directional []directional
}

type directional struct {
	direction mgl32.Vec3
	color     mgl32.Vec3
}

// Renderer rasterizes a scene into flat shaded triangles. Render builds a
// frame, Present draws the latest frame onto an ebiten screen.
type Renderer struct {
	// ShowLabels draws the name of every named mesh at its center.
	ShowLabels bool

	width, height int

	mutex sync.Mutex
	last  frame
	white *ebiten.Image
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
	}
}

func (r *Renderer) SetSize(width, height int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.width = width
	r.height = height
}

func (r *Renderer) Size() (width, height int) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.width, r.height
}

// Triangles reports how many triangles the latest frame contains.
func (r *Renderer) Triangles() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.last.triangles
}

// Labels returns the labels of the latest frame.
func (r *Renderer) Labels() []Label {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	result := make([]Label, len(r.last.labels))
	copy(result, r.last.labels)
	return result
}

func (r *Renderer) Render(scene *Scene, camera Camera) error {
	if scene == nil {
		return ErrNilScene
	}
	if camera == nil {
		return ErrNilCamera
	}

	width, height := r.Size()
	viewProjection := camera.ViewProjection()
	lights := collectLights(scene.Nodes())

	var (
		triangles []triangle
		labels    []Label
	)

	var visit func(node Node, parent mgl32.Mat4)
	visit = func(node Node, parent mgl32.Mat4) {
		object := node.Object()
		if !object.Visible {
			return
		}

		model := parent.Mul4(object.Matrix())

		switch n := node.(type) {
		case *Group:
			for _, child := range n.Children {
				visit(child, model)
			}
		case *Mesh:
			if n.Geometry == nil || n.Geometry.Disposed() || n.Material == nil || n.Material.Disposed() {
				return
			}

			triangles = appendMesh(triangles, n, model, viewProjection, lights, width, height)

			if r.ShowLabels && n.Name != "" {
				lower, upper := n.Geometry.BoundingBox()
				center := lower.Add(upper).Mul(0.5)
				if point, _, ok := project(viewProjection, model.Mul4x1(center.Vec4(1)).Vec3(), width, height); ok {
					labels = append(labels, Label{Text: n.Name, X: float64(point.X()), Y: float64(point.Y())})
				}
			}
		}
	}

	for _, node := range scene.Nodes() {
		visit(node, mgl32.Ident4())
	}

	// Painter's algorithm: far triangles first.
	sort.SliceStable(triangles, func(i, j int) bool {
		return triangles[i].depth > triangles[j].depth
	})

	next := frame{
		background: scene.Background,
		batches:    buildBatches(triangles),
		labels:     labels,
		triangles:  len(triangles),
	}

	r.mutex.Lock()
	r.last = next
	r.mutex.Unlock()

	return nil
}

// Present draws the latest rendered frame. It must be called from ebiten's
// Draw.
func (r *Renderer) Present(screen *ebiten.Image) {
	r.mutex.Lock()
	last := r.last
	r.mutex.Unlock()

	screen.Fill(last.background)

	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	for _, b := range last.batches {
		screen.DrawTriangles(b.vertices, b.indices, r.white, &ebiten.DrawTrianglesOptions{})
	}

	for i := range last.labels {
		DrawLabel(screen, &last.labels[i])
	}
}

func collectLights(nodes []Node) lighting {
	var lights lighting

	var visit func(node Node)
	visit = func(node Node) {
		switch n := node.(type) {
		case *Group:
			for _, child := range n.Children {
				visit(child)
			}
		case *AmbientLight:
			if n.Visible {
				lights.ambient = lights.ambient.Add(colorVec(n.Color).Mul(n.Intensity))
			}
		case *DirectionalLight:
			if n.Visible && n.Position.Len() > 0 {
				lights.directional = append(lights.directional, directional{
					direction: n.Position.Normalize(),
					color:     colorVec(n.Color).Mul(n.Intensity),
				})
			}
		}
	}

	for _, node := range nodes {
		visit(node)
	}
	return lights
}

func appendMesh(out []triangle, mesh *Mesh, model, viewProjection mgl32.Mat4, lights lighting, width, height int) []triangle {
	vertices := mesh.Geometry.Vertices
	indices := mesh.Geometry.Indices
	material := mesh.Material

	for i := 0; i+2 < len(indices); i += 3 {
		var (
			world  [3]mgl32.Vec3
			screen [3]mgl32.Vec2
			depth  float32
			inside = true
		)

		for k := 0; k < 3; k++ {
			index := int(indices[i+k])
			if index >= len(vertices) {
				inside = false
				break
			}

			world[k] = model.Mul4x1(vertices[index].Vec4(1)).Vec3()

			point, z, ok := project(viewProjection, world[k], width, height)
			if !ok {
				inside = false
				break
			}
			screen[k] = point
			depth += z
		}
		if !inside {
			continue
		}

		// Screen Y grows downwards, so front faces have a negative area.
		area := (screen[1].X()-screen[0].X())*(screen[2].Y()-screen[0].Y()) -
			(screen[2].X()-screen[0].X())*(screen[1].Y()-screen[0].Y())
		front := area < 0

		switch material.Side {
		case FrontSide:
			if !front {
				continue
			}
		case BackSide:
			if front {
				continue
			}
		}

		normal := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}
		if !front {
			normal = normal.Mul(-1)
		}

		out = append(out, triangle{
			points: screen,
			depth:  depth / 3,
			color:  shade(material, normal, lights),
		})
	}

	return out
}

// project maps a world position to screen pixels. It reports false for
// points behind the camera.
func project(viewProjection mgl32.Mat4, position mgl32.Vec3, width, height int) (mgl32.Vec2, float32, bool) {
	clip := viewProjection.Mul4x1(position.Vec4(1))
	if clip.W() <= 0 {
		return mgl32.Vec2{}, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * float32(width)
	y := (1 - ndc.Y()) / 2 * float32(height)

	return mgl32.Vec2{x, y}, ndc.Z(), true
}

func shade(material *Material, normal mgl32.Vec3, lights lighting) color.RGBA {
	if !material.Lit {
		return material.Color
	}

	light := lights.ambient
	for _, d := range lights.directional {
		if intensity := normal.Dot(d.direction); intensity > 0 {
			light = light.Add(d.color.Mul(intensity))
		}
	}

	base := colorVec(material.Color)
	return color.RGBA{
		R: channel(base.X() * light.X()),
		G: channel(base.Y() * light.Y()),
		B: channel(base.Z() * light.Z()),
		A: material.Color.A,
	}
}

func buildBatches(triangles []triangle) []batch {
	var (
		batches []batch
		current batch
	)

	for _, t := range triangles {
		if len(current.vertices)+3 > maxBatchVertices {
			batches = append(batches, current)
			current = batch{}
		}

		r, g, b, a := float32(t.color.R)/0xff, float32(t.color.G)/0xff, float32(t.color.B)/0xff, float32(t.color.A)/0xff
		base := uint16(len(current.vertices))
		for _, p := range t.points {
			current.vertices = append(current.vertices, ebiten.Vertex{
				DstX:   p.X(),
				DstY:   p.Y(),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: g,
				ColorB: b,
				ColorA: a,
			})
		}
		current.indices = append(current.indices, base, base+1, base+2)
	}

	if len(current.vertices) > 0 {
		batches = append(batches, current)
	}
	return batches
}

func colorVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v * 0xff)
}
