package tjs

import (
	"fmt"
	"reflect"

	"github.com/ByteArena/box2d"
)

// GameObject is a unit driven by the Game. Start receives the game so the
// object can attach itself to the scene; the game outlives every object it
// hosts, so objects should keep the pointer only as a lookup handle.
type GameObject interface {
	Start(game *Game) error
	Update() error
	End() error
}

// Named objects carry their own display name. The registry uses it as key
// and writes back the name it actually stored.
type Named interface {
	Name() string
	SetName(name string)
}

// Collider objects take part in collision queries through their footprint
// on the ground (XZ) plane.
type Collider interface {
	Bounds() box2d.B2AABB
}

// CollisionListener objects are told about every collider overlapping them
// once per frame when collision dispatch is enabled.
type CollisionListener interface {
	OnCollision(other GameObject)
}

type phase int

const (
	phaseUnstarted phase = iota
	phaseStarted
	phaseEnded
)

func (p phase) String() string {
	switch p {
	case phaseUnstarted:
		return "unstarted"
	case phaseStarted:
		return "started"
	case phaseEnded:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// typeName is the default name of an object: its concrete type without the
// pointer.
func typeName(obj GameObject) string {
	t := reflect.TypeOf(obj)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "GameObject"
	}
	return t.Name()
}

// call runs one lifecycle call, turning a panic into an error.
func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return fn()
}
