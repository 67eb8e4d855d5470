package pathgraph

import (
	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

// Graph is the prerequisite graph over skills and learning units. Nodes are
// held in an arena indexed by insertion order; edges are plain adjacency
// lists. Edge direction encodes "must come before": required skill -> unit,
// unit -> taught skill, nested child skill -> parent skill.
type Graph struct {
	nodes []NodeID
	out   [][]int
	in    [][]int
	index map[NodeID]int

	skills map[uuid.UUID]*types.Skill
	units  map[uuid.UUID]*types.LearningUnit
}

func newGraph() *Graph {
	return &Graph{
		index:  make(map[NodeID]int),
		skills: make(map[uuid.UUID]*types.Skill),
		units:  make(map[uuid.UUID]*types.LearningUnit),
	}
}

func (g *Graph) addNode(id NodeID) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, id)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	g.index[id] = i
	return i
}

func (g *Graph) addEdge(from, to NodeID) {
	f := g.addNode(from)
	t := g.addNode(to)
	g.out[f] = append(g.out[f], t)
	g.in[t] = append(g.in[t], f)
}

// Len reports the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) nodeAt(i int) NodeID { return g.nodes[i] }

func (g *Graph) lookup(id NodeID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Skill returns the originating skill record for a skill node id.
func (g *Graph) Skill(id uuid.UUID) (*types.Skill, bool) {
	s, ok := g.skills[id]
	return s, ok
}

// Unit returns the originating learning unit record for a unit node id.
func (g *Graph) Unit(id uuid.UUID) (*types.LearningUnit, bool) {
	u, ok := g.units[id]
	return u, ok
}

// Units returns all learning unit ids in insertion order.
func (g *Graph) Units() []uuid.UUID {
	var out []uuid.UUID
	for _, n := range g.nodes {
		if n.Kind == UnitNode {
			out = append(out, n.ID)
		}
	}
	return out
}

// Skills returns all skill ids in insertion order.
func (g *Graph) Skills() []uuid.UUID {
	var out []uuid.UUID
	for _, n := range g.nodes {
		if n.Kind == SkillNode {
			out = append(out, n.ID)
		}
	}
	return out
}
