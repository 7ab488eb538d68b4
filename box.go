package tjs

import (
	"github.com/ByteArena/box2d"

	"github.com/rhpo/tjs.go/engine"
)

type BoxProps struct {
	MeshProps
	Width  float32
	Height float32
	Depth  float32
}

var (
	_ GameObject = (*Box)(nil)
	_ Named      = (*Box)(nil)
	_ Collider   = (*Box)(nil)
)

type Box struct {
	meshObject
	props BoxProps
}

func NewBox(props *BoxProps) *Box {
	if props == nil {
		props = &BoxProps{}
	}

	p := *props
	if p.Width == 0 {
		p.Width = DefaultBoxWidth
	}
	if p.Height == 0 {
		p.Height = DefaultBoxHeight
	}
	if p.Depth == 0 {
		p.Depth = DefaultBoxDepth
	}

	return &Box{
		meshObject: newMeshObject(p.MeshProps),
		props:      p,
	}
}

func (b *Box) Start(game *Game) error {
	geometry := engine.NewBoxGeometry(b.props.Width, b.props.Height, b.props.Depth)
	b.attach(game, engine.NewMesh(geometry, material(b.props.MeshProps, DefaultBoxColor)))
	return nil
}

func (b *Box) Bounds() box2d.B2AABB {
	p := b.Position()
	return GroundBounds(float64(p.X()), float64(p.Z()), float64(b.props.Width)/2, float64(b.props.Depth)/2)
}
