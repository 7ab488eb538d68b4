package engine

import (
	"image/color"

	"github.com/google/uuid"
)

// Scene is the root of the node graph. Nodes keep the order they were added
// in, which is also the order the renderer visits them.
type Scene struct {
	Background color.RGBA

	nodes []Node
	index map[uuid.UUID]Node
}

func NewScene() *Scene {
	return &Scene{
		Background: Hex(0x000000),
		index:      make(map[uuid.UUID]Node),
	}
}

// Add appends nodes to the scene. A node that is already present stays
// where it is.
func (s *Scene) Add(nodes ...Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}

		id := node.Object().ID
		if _, ok := s.index[id]; ok {
			continue
		}

		s.index[id] = node
		s.nodes = append(s.nodes, node)
	}
}

// Remove detaches nodes from the scene. Absent nodes are ignored.
func (s *Scene) Remove(nodes ...Node) {
	for _, node := range nodes {
		if node == nil {
			continue
		}

		id := node.Object().ID
		if _, ok := s.index[id]; !ok {
			continue
		}

		delete(s.index, id)
		for i, n := range s.nodes {
			if n.Object().ID == id {
				s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
				break
			}
		}
	}
}

func (s *Scene) Contains(node Node) bool {
	if node == nil {
		return false
	}

	_, ok := s.index[node.Object().ID]
	return ok
}

func (s *Scene) Get(id uuid.UUID) (Node, bool) {
	node, ok := s.index[id]
	return node, ok
}

// Nodes returns a copy of the top-level nodes in insertion order.
func (s *Scene) Nodes() []Node {
	result := make([]Node, len(s.nodes))
	copy(result, s.nodes)
	return result
}

func (s *Scene) Len() int {
	return len(s.nodes)
}
