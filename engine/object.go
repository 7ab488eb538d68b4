// Package engine is a small 3D scene graph rasterized with ebiten. It plays
// the part of the external rendering engine for the tjs host: a scene, a
// perspective camera, a renderer and the geometry/material primitives the
// built-in game objects attach.
package engine

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Node is anything that can be placed in a Scene.
type Node interface {
	Object() *Object3D
}

// Object3D carries the identity and transform shared by every node.
type Object3D struct {
	ID       uuid.UUID
	Name     string
	Position mgl32.Vec3
	// Rotation is an XYZ euler rotation in radians.
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
	Visible  bool
}

func newObject3D() Object3D {
	return Object3D{
		ID:      uuid.New(),
		Scale:   mgl32.Vec3{1, 1, 1},
		Visible: true,
	}
}

func (o *Object3D) Object() *Object3D {
	return o
}

// Matrix returns the local transform: translation * rotation(Z*Y*X) * scale.
func (o *Object3D) Matrix() mgl32.Mat4 {
	rotation := mgl32.HomogRotate3DZ(o.Rotation.Z()).
		Mul4(mgl32.HomogRotate3DY(o.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DX(o.Rotation.X()))

	return mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(rotation).
		Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

func (o *Object3D) SetPosition(x, y, z float32) {
	o.Position = mgl32.Vec3{x, y, z}
}

// Group is a node that only exists to hold children.
type Group struct {
	Object3D
	Children []Node
}

func NewGroup(children ...Node) *Group {
	return &Group{
		Object3D: newObject3D(),
		Children: children,
	}
}

func (g *Group) Add(children ...Node) {
	g.Children = append(g.Children, children...)
}
