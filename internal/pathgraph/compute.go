package pathgraph

import (
	"github.com/google/uuid"
)

// Path is an ordered sequence of learning units sufficient to reach the
// requested goals from the given knowledge. Ephemeral; promoted to a
// personalized path only by an explicit enrollment.
type Path struct {
	UnitIDs []uuid.UUID   `json:"unit_ids"`
	Units   []UnitSummary `json:"units"`
	// Covered maps each requested goal skill to whether the traversal
	// reached it. A false value is the caller-checkable "goal unreachable"
	// condition; it is not an error.
	Covered map[uuid.UUID]bool `json:"covered"`
}

// Computer performs goal-directed path computation over a built graph.
type Computer struct {
	view UnitView
}

func NewComputer(view UnitView) *Computer {
	return &Computer{view: view}
}

// ComputePath prunes skills the learner already holds and walks the
// remaining graph in preorder, collecting learning units in visitation
// order until every goal skill has been reached or the graph is exhausted.
//
// A unit is entered only once every required skill has been entered, and a
// parent skill only once every nested child has, so the collected sequence
// is a valid topological linearization with respect to requirement edges.
// Teaching edges are alternatives: completing any one unit that teaches a
// skill grants it, even while other teachers stay blocked. Pruning is per
// skill node: a parent skill is not treated as known just because one
// nested child is known.
//
// The traversal starts from the successors of known skills, then from the
// synthetic root (every unit with no requirements). Deterministic for a
// fixed construction order; the relative order of independent units carries
// no meaning.
func (c *Computer) ComputePath(g *Graph, goals []uuid.UUID, known map[uuid.UUID]bool) (*Path, error) {
	if err := AssertAcyclic(g); err != nil {
		return nil, err
	}

	visited := make([]bool, g.Len())
	covered := make(map[uuid.UUID]bool, len(goals))
	goalNodes := make(map[int]uuid.UUID, len(goals))
	remaining := 0
	for _, goal := range goals {
		if _, dup := covered[goal]; dup {
			continue
		}
		covered[goal] = false
		if i, ok := g.lookup(SkillID(goal)); ok {
			goalNodes[i] = goal
			remaining++
		}
	}

	var knownIdx []int
	for i, n := range g.nodes {
		if n.Kind == SkillNode && known[n.ID] {
			visited[i] = true
			knownIdx = append(knownIdx, i)
			if goal, ok := goalNodes[i]; ok {
				covered[goal] = true
				remaining--
			}
		}
	}

	var order []uuid.UUID
	done := func() bool { return remaining == 0 }

	// Unit requirements and nested-child edges are conjunctive; unit->skill
	// teaching edges are disjunctive. A skill with teaching units only needs
	// one of them visited.
	ready := func(i int) bool {
		if g.nodes[i].Kind == UnitNode {
			for _, pred := range g.in[i] {
				if !visited[pred] {
					return false
				}
			}
			return true
		}
		teachers := 0
		taught := false
		for _, pred := range g.in[i] {
			if g.nodes[pred].Kind == UnitNode {
				teachers++
				if visited[pred] {
					taught = true
				}
				continue
			}
			if !visited[pred] {
				return false
			}
		}
		return teachers == 0 || taught
	}

	var visit func(i int)
	visit = func(i int) {
		if done() || visited[i] || !ready(i) {
			return
		}
		visited[i] = true
		node := g.nodes[i]
		if node.Kind == UnitNode {
			order = append(order, node.ID)
		} else if goal, ok := goalNodes[i]; ok && !covered[goal] {
			covered[goal] = true
			remaining--
		}
		// A successor gated on several predecessors is skipped here and
		// entered later, from the successor loop of its last predecessor.
		for _, succ := range g.out[i] {
			visit(succ)
		}
	}

	// Entry points already satisfied by prior knowledge come first so a
	// fully-pruned prefix never reappears in the result.
	for _, i := range knownIdx {
		for _, succ := range g.out[i] {
			visit(succ)
		}
	}
	// Synthetic root: every unit with no requirements at all.
	for i, n := range g.nodes {
		if n.Kind == UnitNode && len(g.in[i]) == 0 {
			visit(i)
		}
	}

	p := &Path{UnitIDs: order, Covered: covered}
	if c.view != nil {
		p.Units = make([]UnitSummary, 0, len(order))
		for _, id := range order {
			if u, ok := g.Unit(id); ok {
				p.Units = append(p.Units, c.view.Summarize(u))
			}
		}
	}
	return p, nil
}

// Unreached returns the goal skills the path does not cover.
func (p *Path) Unreached() []uuid.UUID {
	var out []uuid.UUID
	for goal, ok := range p.Covered {
		if !ok {
			out = append(out, goal)
		}
	}
	return out
}
