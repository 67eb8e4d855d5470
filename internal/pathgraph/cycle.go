package pathgraph

// Cycle detection runs before any traversal that promises termination.
// Standard three-color depth-first search over the adjacency arena, linear
// in nodes plus edges.

type color uint8

const (
	white color = iota // unvisited
	gray               // on the recursion stack
	black              // fully explored
)

// IsAcyclic reports whether the graph contains no cycle.
func IsAcyclic(g *Graph) bool {
	return findCycleNode(g) < 0
}

// AssertAcyclic returns a CycleError naming one participating node when the
// graph contains a cycle.
func AssertAcyclic(g *Graph) error {
	if i := findCycleNode(g); i >= 0 {
		return &CycleError{Node: g.nodeAt(i)}
	}
	return nil
}

// findCycleNode returns the index of a node on a cycle, or -1. Iterative DFS
// so a deep chain of prerequisites cannot blow the goroutine stack.
func findCycleNode(g *Graph) int {
	colors := make([]color, g.Len())

	type frame struct {
		node int
		next int
	}

	for start := 0; start < g.Len(); start++ {
		if colors[start] != white {
			continue
		}
		stack := []frame{{node: start}}
		colors[start] = gray
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next < len(g.out[top.node]) {
				succ := g.out[top.node][top.next]
				top.next++
				switch colors[succ] {
				case gray:
					return succ
				case white:
					colors[succ] = gray
					stack = append(stack, frame{node: succ})
				}
				continue
			}
			colors[top.node] = black
			stack = stack[:len(stack)-1]
		}
	}
	return -1
}
