package pathgraph

import (
	"fmt"

	"github.com/google/uuid"
)

// UnresolvedReferenceError means a relationship references a skill that is
// not part of the loaded skill map. The graph is rejected rather than
// silently widened to another scope.
type UnresolvedReferenceError struct {
	From    NodeID
	SkillID uuid.UUID
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("node %s references skill %s outside the loaded skill map", e.From, e.SkillID)
}

// CycleError means the prerequisite graph contains a cycle: some learning
// unit transitively requires itself. Node names one participant so the
// offending definition can be found upstream.
type CycleError struct {
	Node NodeID
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("prerequisite graph contains a cycle through %s", e.Node)
}
