package tjs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhpo/tjs.go/engine"
)

func TestBoxLifecycle(t *testing.T) {
	tg := newTestGame(t)
	box := NewBox(&BoxProps{
		MeshProps: MeshProps{Name: "crate", Position: [3]float32{1, 2, 3}},
		Width:     2,
	})

	assert.Nil(t, box.Mesh(), "no mesh before start")
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, box.Position())

	_, err := tg.Register(box)
	require.NoError(t, err)
	require.NoError(t, tg.Start())

	mesh := box.Mesh()
	require.NotNil(t, mesh)
	assert.True(t, tg.Scene().Contains(mesh))
	assert.Equal(t, "crate", mesh.Name)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, mesh.Position)
	assert.Equal(t, engine.Hex(DefaultBoxColor), mesh.Material.Color)
	assert.Same(t, tg.Game, box.Game())

	bounds := box.Bounds()
	assert.Equal(t, 0.0, bounds.LowerBound.X)
	assert.Equal(t, 2.0, bounds.UpperBound.X)
	assert.Equal(t, 2.5, bounds.LowerBound.Y)
	assert.Equal(t, 3.5, bounds.UpperBound.Y)

	geometry, material := mesh.Geometry, mesh.Material
	require.NoError(t, tg.Unregister(box))

	assert.False(t, tg.Scene().Contains(mesh))
	assert.Nil(t, box.Mesh())
	assert.True(t, geometry.Disposed())
	assert.True(t, material.Disposed())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, box.Position())
}

func TestBoxRenamedOnCollision(t *testing.T) {
	tg := newTestGame(t)
	require.NoError(t, tg.Start())

	first := NewBox(&BoxProps{MeshProps: MeshProps{Name: "crate"}})
	second := NewBox(&BoxProps{MeshProps: MeshProps{Name: "crate"}})

	_, err := tg.Register(first)
	require.NoError(t, err)
	name, err := tg.Register(second)
	require.NoError(t, err)

	assert.NotEqual(t, "crate", name)
	assert.Equal(t, name, second.Name())
	assert.Equal(t, name, second.Mesh().Name)

	second.SetName("renamed")
	assert.Equal(t, "renamed", second.Mesh().Name)
}

func TestUnnamedBoxUsesTypeName(t *testing.T) {
	tg := newTestGame(t)

	name, err := tg.Register(NewBox(nil))
	require.NoError(t, err)
	assert.Equal(t, "Box", name)

	name, err = tg.Register(NewSphere(nil))
	require.NoError(t, err)
	assert.Equal(t, "Sphere", name)
}

func TestPlaneLiesOnGround(t *testing.T) {
	tg := newTestGame(t)
	plane := NewPlane(&PlaneProps{MeshProps: MeshProps{Color: 0x00ff00}, Width: 4, Height: 6})

	_, err := tg.Register(plane)
	require.NoError(t, err)
	require.NoError(t, tg.Start())

	mesh := plane.Mesh()
	require.NotNil(t, mesh)
	assert.InDelta(t, -math.Pi/2, mesh.Rotation.X(), 1e-6)
	assert.Equal(t, engine.DoubleSide, mesh.Material.Side)
	assert.Equal(t, engine.Hex(0x00ff00), mesh.Material.Color)

	bounds := plane.Bounds()
	assert.Equal(t, -2.0, bounds.LowerBound.X)
	assert.Equal(t, 3.0, bounds.UpperBound.Y)
}

func TestPlaneKeepsCustomMaterial(t *testing.T) {
	tg := newTestGame(t)
	custom := engine.NewLambertMaterial(0x123456)
	plane := NewPlane(&PlaneProps{MeshProps: MeshProps{Material: custom}})

	_, err := tg.Register(plane)
	require.NoError(t, err)
	require.NoError(t, tg.Start())

	assert.Same(t, custom, plane.Mesh().Material)
	assert.Equal(t, engine.FrontSide, custom.Side)
}

func TestSphereDefaults(t *testing.T) {
	tg := newTestGame(t)
	sphere := NewSphere(&SphereProps{MeshProps: MeshProps{Name: "ball"}})

	_, err := tg.Register(sphere)
	require.NoError(t, err)
	require.NoError(t, tg.Start())

	mesh := sphere.Mesh()
	require.NotNil(t, mesh)
	// the pole rows hold one triangle per segment, the others two
	expected := DefaultSphereWidthSegments * (2*DefaultSphereHeightSegments - 2)
	assert.Equal(t, expected, mesh.Geometry.Triangles())

	sphere.SetPosition(3, 0, 0)
	bounds := sphere.Bounds()
	assert.Equal(t, 2.0, bounds.LowerBound.X)
	assert.Equal(t, 4.0, bounds.UpperBound.X)
}
