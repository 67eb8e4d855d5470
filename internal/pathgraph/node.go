package pathgraph

import (
	"fmt"

	"github.com/google/uuid"
)

type NodeKind uint8

const (
	SkillNode NodeKind = iota
	UnitNode
)

func (k NodeKind) String() string {
	switch k {
	case SkillNode:
		return "skill"
	case UnitNode:
		return "unit"
	default:
		return "unknown"
	}
}

// NodeID is a type-tagged node identifier. Skills and learning units live in
// separate id spaces, so a raw uuid alone is ambiguous inside the graph.
type NodeID struct {
	Kind NodeKind
	ID   uuid.UUID
}

func SkillID(id uuid.UUID) NodeID { return NodeID{Kind: SkillNode, ID: id} }
func UnitID(id uuid.UUID) NodeID  { return NodeID{Kind: UnitNode, ID: id} }

func (n NodeID) String() string {
	return fmt.Sprintf("%s:%s", n.Kind, n.ID)
}
