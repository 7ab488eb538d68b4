package tjs

import (
	"math"

	"github.com/ByteArena/box2d"

	"github.com/rhpo/tjs.go/engine"
)

type PlaneProps struct {
	MeshProps
	Width  float32
	Height float32
}

var (
	_ GameObject = (*Plane)(nil)
	_ Named      = (*Plane)(nil)
	_ Collider   = (*Plane)(nil)
)

// Plane is a flat, double sided ground plane lying on the XZ plane.
type Plane struct {
	meshObject
	props PlaneProps
}

func NewPlane(props *PlaneProps) *Plane {
	if props == nil {
		props = &PlaneProps{}
	}

	p := *props
	if p.Width == 0 {
		p.Width = DefaultPlaneWidth
	}
	if p.Height == 0 {
		p.Height = DefaultPlaneHeight
	}

	return &Plane{
		meshObject: newMeshObject(p.MeshProps),
		props:      p,
	}
}

func (p *Plane) Start(game *Game) error {
	mat := material(p.props.MeshProps, DefaultPlaneColor)
	if p.props.Material == nil {
		mat.Side = engine.DoubleSide
	}

	mesh := engine.NewMesh(engine.NewPlaneGeometry(p.props.Width, p.props.Height), mat)
	mesh.Rotation[0] = -math.Pi / 2

	p.attach(game, mesh)
	return nil
}

func (p *Plane) Bounds() box2d.B2AABB {
	pos := p.Position()
	return GroundBounds(float64(pos.X()), float64(pos.Z()), float64(p.props.Width)/2, float64(p.props.Height)/2)
}
