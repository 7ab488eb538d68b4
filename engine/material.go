package engine

import "image/color"

type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material describes how a mesh is shaded. Unlit materials are drawn with
// their flat color, lit ones are shaded by the scene lights.
type Material struct {
	Color color.RGBA
	Side  Side
	Lit   bool

	disposed bool
}

// NewBasicMaterial returns an unlit material.
func NewBasicMaterial(hex uint32) *Material {
	return &Material{Color: Hex(hex)}
}

// NewLambertMaterial returns a diffuse material shaded by the scene lights.
func NewLambertMaterial(hex uint32) *Material {
	return &Material{Color: Hex(hex), Lit: true}
}

func (m *Material) Dispose() {
	m.disposed = true
}

func (m *Material) Disposed() bool {
	return m.disposed
}

// Hex converts a 0xRRGGBB value to an opaque color.
func Hex(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xff,
	}
}
