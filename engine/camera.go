package engine

import "github.com/go-gl/mathgl/mgl32"

// Camera is what a renderer needs from a camera, plus the hooks used to
// keep it in sync with the viewport.
type Camera interface {
	// SetAspect stores a new aspect ratio. It takes effect on the next
	// UpdateProjectionMatrix call.
	SetAspect(aspect float64)
	Aspect() float64
	UpdateProjectionMatrix()
	ViewProjection() mgl32.Mat4
}

var _ Camera = (*PerspectiveCamera)(nil)

type PerspectiveCamera struct {
	Object3D

	// FOV is the vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32
	Up   mgl32.Vec3

	aspect     float32
	target     mgl32.Vec3
	projection mgl32.Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	camera := &PerspectiveCamera{
		Object3D: newObject3D(),
		FOV:      fov,
		Near:     near,
		Far:      far,
		Up:       mgl32.Vec3{0, 1, 0},
		aspect:   aspect,
	}
	camera.UpdateProjectionMatrix()
	return camera
}

func (c *PerspectiveCamera) SetAspect(aspect float64) {
	c.aspect = float32(aspect)
}

func (c *PerspectiveCamera) Aspect() float64 {
	return float64(c.aspect)
}

func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.FOV), c.aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return c.projection
}

// LookAt points the camera at target.
func (c *PerspectiveCamera) LookAt(target mgl32.Vec3) {
	c.target = target
}

func (c *PerspectiveCamera) Target() mgl32.Vec3 {
	return c.target
}

func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.target, c.Up)
}

func (c *PerspectiveCamera) ViewProjection() mgl32.Mat4 {
	return c.projection.Mul4(c.View())
}
