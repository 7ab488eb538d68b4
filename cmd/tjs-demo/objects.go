package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	tjs "github.com/rhpo/tjs.go"
)

// spinner is a box turning around its Y axis.
type spinner struct {
	*tjs.Box
	speed float32
}

func (s *spinner) Update() error {
	mesh := s.Mesh()
	if mesh == nil {
		return nil
	}

	delta := float32(s.Game().Frame().Delta)
	mesh.Rotation = mesh.Rotation.Add(mgl32.Vec3{s.speed * delta * 0.5, s.speed * delta, 0})
	return nil
}

// orbiter is a sphere circling the origin.
type orbiter struct {
	*tjs.Sphere
	radius float64
	speed  float64
}

func (o *orbiter) Update() error {
	elapsed := o.Game().Frame().Elapsed
	angle := elapsed * o.speed

	o.SetPosition(float32(o.radius*math.Cos(angle)), 0, float32(o.radius*math.Sin(angle)))
	if mesh := o.Mesh(); mesh != nil {
		mesh.Scale = mgl32.Vec3{1, 1, 1}
	}
	return nil
}

// OnCollision runs after Update, so the ball is drawn larger only on frames
// where it touches the crate.
func (o *orbiter) OnCollision(other tjs.GameObject) {
	if _, ok := other.(*spinner); !ok {
		return
	}
	if mesh := o.Mesh(); mesh != nil {
		mesh.Scale = mgl32.Vec3{1.2, 1.2, 1.2}
	}
}
