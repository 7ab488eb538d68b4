package tjs

import (
	"github.com/ByteArena/box2d"

	"github.com/rhpo/tjs.go/engine"
)

type SphereProps struct {
	MeshProps
	Radius         float32
	WidthSegments  int
	HeightSegments int
}

var (
	_ GameObject = (*Sphere)(nil)
	_ Named      = (*Sphere)(nil)
	_ Collider   = (*Sphere)(nil)
)

type Sphere struct {
	meshObject
	props SphereProps
}

func NewSphere(props *SphereProps) *Sphere {
	if props == nil {
		props = &SphereProps{}
	}

	p := *props
	if p.Radius == 0 {
		p.Radius = DefaultSphereRadius
	}
	if p.WidthSegments == 0 {
		p.WidthSegments = DefaultSphereWidthSegments
	}
	if p.HeightSegments == 0 {
		p.HeightSegments = DefaultSphereHeightSegments
	}

	return &Sphere{
		meshObject: newMeshObject(p.MeshProps),
		props:      p,
	}
}

func (s *Sphere) Start(game *Game) error {
	geometry := engine.NewSphereGeometry(s.props.Radius, s.props.WidthSegments, s.props.HeightSegments)
	s.attach(game, engine.NewMesh(geometry, material(s.props.MeshProps, DefaultSphereColor)))
	return nil
}

func (s *Sphere) Bounds() box2d.B2AABB {
	p := s.Position()
	r := float64(s.props.Radius)
	return GroundBounds(float64(p.X()), float64(p.Z()), r, r)
}
