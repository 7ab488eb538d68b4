package engine

import "github.com/go-gl/mathgl/mgl32"

// AutoRotate orbits a camera around its target on the Y axis.
type AutoRotate struct {
	Camera *PerspectiveCamera
	// Speed is in radians per second.
	Speed float32
}

func NewAutoRotate(camera *PerspectiveCamera, speed float32) *AutoRotate {
	return &AutoRotate{Camera: camera, Speed: speed}
}

// Update advances the orbit by delta seconds and keeps the camera pointed
// at its target.
func (a *AutoRotate) Update(delta float64) {
	if a.Camera == nil || a.Speed == 0 || delta <= 0 {
		return
	}

	target := a.Camera.Target()
	offset := a.Camera.Position.Sub(target)
	rotated := mgl32.Rotate3DY(a.Speed * float32(delta)).Mul3x1(offset)

	a.Camera.Position = target.Add(rotated)
	a.Camera.LookAt(target)
}
