package tjs

import (
	"fmt"
	"iter"
	"math/rand/v2"

	"go.uber.org/zap"
)

type entry struct {
	object GameObject
	name   string
	phase  phase
}

// Registry holds the live game objects of a Game, keyed by a unique name
// and iterated in insertion order. It is not safe for concurrent use.
type Registry struct {
	order   []*entry
	byName  map[string]*entry
	members map[GameObject]*entry

	logger *zap.Logger
	intn   func(n int) int
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		byName:  make(map[string]*entry),
		members: make(map[GameObject]*entry),
		logger:  logger,
		intn:    rand.IntN,
	}
}

// Insert adds obj under a unique name and returns that name. An object
// without a name is named after its type. When the name is taken a random
// suffix is appended and, for Named objects, written back to the object.
// Inserting an object twice returns its current name.
func (r *Registry) Insert(obj GameObject) string {
	if e, ok := r.members[obj]; ok {
		return e.name
	}

	requested := ""
	named, isNamed := obj.(Named)
	if isNamed {
		requested = named.Name()
	}
	if requested == "" {
		requested = typeName(obj)
	}

	name := r.uniqueName(requested)
	if name != requested {
		r.logger.Warn("game object name already in use",
			zap.String("requested", requested),
			zap.String("generated", name))
	}
	if isNamed && named.Name() != name {
		named.SetName(name)
	}

	e := &entry{object: obj, name: name}
	r.order = append(r.order, e)
	r.byName[name] = e
	r.members[obj] = e

	return name
}

func (r *Registry) uniqueName(name string) string {
	if _, taken := r.byName[name]; !taken {
		return name
	}

	for i := 0; i < nameAttempts; i++ {
		candidate := fmt.Sprintf("%s-%d", name, r.intn(nameSuffixRange))
		if _, taken := r.byName[candidate]; !taken {
			return candidate
		}
	}

	r.logger.Warn("random name suffixes exhausted, falling back to sequential suffix",
		zap.String("name", name),
		zap.Int("attempts", nameAttempts))

	for i := nameSuffixRange; ; i++ {
		candidate := fmt.Sprintf("%s-%d", name, i)
		if _, taken := r.byName[candidate]; !taken {
			return candidate
		}
	}
}

// Remove drops obj from the registry. It reports whether obj was present.
func (r *Registry) Remove(obj GameObject) bool {
	e, ok := r.members[obj]
	if !ok {
		return false
	}

	delete(r.members, obj)
	delete(r.byName, e.name)
	for i, o := range r.order {
		if o == e {
			r.order = append(r.order[:i:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *Registry) Get(name string) (GameObject, bool) {
	e, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return e.object, true
}

// NameOf returns the name obj was registered under.
func (r *Registry) NameOf(obj GameObject) (string, bool) {
	e, ok := r.members[obj]
	if !ok {
		return "", false
	}
	return e.name, true
}

func (r *Registry) Contains(obj GameObject) bool {
	_, ok := r.members[obj]
	return ok
}

func (r *Registry) Len() int {
	return len(r.order)
}

// All yields the registered objects in insertion order. The sequence walks
// a snapshot taken when iteration starts, so the registry may be changed
// while iterating; the changes show up in the next iteration.
func (r *Registry) All() iter.Seq[GameObject] {
	return func(yield func(GameObject) bool) {
		for _, e := range r.snapshot() {
			if !yield(e.object) {
				return
			}
		}
	}
}

func (r *Registry) snapshot() []*entry {
	entries := make([]*entry, len(r.order))
	copy(entries, r.order)
	return entries
}

func (r *Registry) lookup(obj GameObject) (*entry, bool) {
	e, ok := r.members[obj]
	return e, ok
}
