package tjs

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rhpo/tjs.go/engine"
)

// MeshProps are the options shared by the built-in objects. A zero Color
// selects the object's default color; Material, when set, wins over Color.
type MeshProps struct {
	Name     string
	Color    uint32
	Material *engine.Material
	Position [3]float32
}

// meshObject is the part of Box, Plane and Sphere that owns the mesh and
// its place in the scene.
type meshObject struct {
	name     string
	game     *Game
	mesh     *engine.Mesh
	position mgl32.Vec3
}

func newMeshObject(props MeshProps) meshObject {
	return meshObject{
		name:     props.Name,
		position: mgl32.Vec3(props.Position),
	}
}

func (m *meshObject) Name() string {
	return m.name
}

func (m *meshObject) SetName(name string) {
	m.name = name
	if m.mesh != nil {
		m.mesh.Name = name
	}
}

// Mesh returns the mesh attached to the scene, or nil before Start and
// after End.
func (m *meshObject) Mesh() *engine.Mesh {
	return m.mesh
}

// Game returns the game the object was started by.
func (m *meshObject) Game() *Game {
	return m.game
}

func (m *meshObject) Position() mgl32.Vec3 {
	if m.mesh != nil {
		return m.mesh.Position
	}
	return m.position
}

func (m *meshObject) SetPosition(x, y, z float32) {
	m.position = mgl32.Vec3{x, y, z}
	if m.mesh != nil {
		m.mesh.Position = m.position
	}
}

func (m *meshObject) attach(game *Game, mesh *engine.Mesh) {
	m.game = game
	mesh.Name = m.name
	mesh.Position = m.position
	m.mesh = mesh
	game.Scene().Add(mesh)
}

func (m *meshObject) Update() error {
	return nil
}

// End removes the mesh from the scene and releases its geometry and
// material.
func (m *meshObject) End() error {
	if m.mesh == nil {
		return nil
	}

	m.position = m.mesh.Position
	if m.game != nil {
		m.game.Scene().Remove(m.mesh)
	}
	m.mesh.Dispose()
	m.mesh = nil
	return nil
}

func material(props MeshProps, fallback uint32) *engine.Material {
	if props.Material != nil {
		return props.Material
	}

	hex := props.Color
	if hex == 0 {
		hex = fallback
	}
	return engine.NewBasicMaterial(hex)
}
