package tjs

import (
	"github.com/ByteArena/box2d"
	"go.uber.org/multierr"
)

// GroundBounds returns the footprint of a shape centered on (x, z) with the
// given half extents.
func GroundBounds(x, z, halfWidth, halfDepth float64) box2d.B2AABB {
	return box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(x-halfWidth, z-halfDepth),
		UpperBound: box2d.MakeB2Vec2(x+halfWidth, z+halfDepth),
	}
}

// Colliding returns the registered colliders overlapping obj, in
// registration order. Objects that are not colliders never collide.
func (g *Game) Colliding(obj GameObject) []GameObject {
	collider, ok := obj.(Collider)
	if !ok || !g.registry.Contains(obj) {
		return nil
	}

	bounds := collider.Bounds()

	var result []GameObject
	for other := range g.registry.All() {
		if other == obj {
			continue
		}

		c, ok := other.(Collider)
		if !ok {
			continue
		}
		if box2d.B2TestOverlapBoundingBoxes(bounds, c.Bounds()) {
			result = append(result, other)
		}
	}
	return result
}

// dispatchCollisions notifies listeners of every overlapping pair of
// started colliders.
func (g *Game) dispatchCollisions() error {
	type collider struct {
		entry  *entry
		bounds box2d.B2AABB
	}

	var colliders []collider
	for _, e := range g.registry.snapshot() {
		if !g.current(e) || e.phase != phaseStarted {
			continue
		}
		if c, ok := e.object.(Collider); ok {
			colliders = append(colliders, collider{entry: e, bounds: c.Bounds()})
		}
	}

	var errs error
	for i := 0; i < len(colliders); i++ {
		for j := i + 1; j < len(colliders); j++ {
			a, b := colliders[i], colliders[j]
			if !box2d.B2TestOverlapBoundingBoxes(a.bounds, b.bounds) {
				continue
			}

			g.Emit(EventCollision, EventCollisionData{A: a.entry.object, B: b.entry.object})
			errs = multierr.Append(errs, g.notifyCollision(a.entry, b.entry))
			errs = multierr.Append(errs, g.notifyCollision(b.entry, a.entry))
		}
	}
	return errs
}

func (g *Game) notifyCollision(e, other *entry) error {
	listener, ok := e.object.(CollisionListener)
	if !ok || !g.current(e) {
		return nil
	}

	err := call(func() error {
		listener.OnCollision(other.object)
		return nil
	})
	if err != nil {
		return g.fail(e, PhaseUpdate, err)
	}
	return nil
}
