package engine

import "image/color"

type Mesh struct {
	Object3D
	Geometry *Geometry
	Material *Material
}

func NewMesh(geometry *Geometry, material *Material) *Mesh {
	return &Mesh{
		Object3D: newObject3D(),
		Geometry: geometry,
		Material: material,
	}
}

// Dispose releases the geometry and the material of the mesh.
func (m *Mesh) Dispose() {
	if m.Geometry != nil {
		m.Geometry.Dispose()
	}
	if m.Material != nil {
		m.Material.Dispose()
	}
}

type AmbientLight struct {
	Object3D
	Color     color.RGBA
	Intensity float32
}

func NewAmbientLight(hex uint32) *AmbientLight {
	return &AmbientLight{
		Object3D:  newObject3D(),
		Color:     Hex(hex),
		Intensity: 1,
	}
}

// DirectionalLight shines from its position towards the origin.
type DirectionalLight struct {
	Object3D
	Color      color.RGBA
	Intensity  float32
	CastShadow bool
}

func NewDirectionalLight(hex uint32, intensity float32) *DirectionalLight {
	light := &DirectionalLight{
		Object3D:  newObject3D(),
		Color:     Hex(hex),
		Intensity: intensity,
	}
	light.SetPosition(0, 1, 0)
	return light
}

// NewAxesHelper returns a group of three thin bars along the X (red),
// Y (green) and Z (blue) axes.
func NewAxesHelper(size float32) *Group {
	const thickness = 0.02

	x := NewMesh(NewBoxGeometry(size, thickness, thickness), NewBasicMaterial(0xff0000))
	x.SetPosition(size/2, 0, 0)

	y := NewMesh(NewBoxGeometry(thickness, size, thickness), NewBasicMaterial(0x00ff00))
	y.SetPosition(0, size/2, 0)

	z := NewMesh(NewBoxGeometry(thickness, thickness, size), NewBasicMaterial(0x0000ff))
	z.SetPosition(0, 0, size/2)

	group := NewGroup(x, y, z)
	group.Name = "axes"
	return group
}
