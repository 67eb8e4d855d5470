package pathgraph

import (
	"context"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// UnitRecord bundles a learning unit with its resolved skill id sets.
type UnitRecord struct {
	Unit     *types.LearningUnit
	Requires []uuid.UUID
	Teaches  []uuid.UUID
}

// Source is the narrow read surface the builder needs from persistence.
// Units are resolved transitively through the skills they reference, not by
// a direct skill map pointer.
type Source interface {
	SkillsInMap(ctx context.Context, skillMapID uuid.UUID) ([]*types.Skill, error)
	NestingsInMap(ctx context.Context, skillMapID uuid.UUID) ([]*types.SkillNesting, error)
	UnitsForSkills(ctx context.Context, skillIDs []uuid.UUID) ([]UnitRecord, error)
}

type Builder struct {
	src Source
	log *logger.Logger
}

func NewBuilder(src Source, baseLog *logger.Logger) *Builder {
	return &Builder{src: src, log: baseLog.With("component", "GraphBuilder")}
}

// Build assembles the prerequisite graph for one skill map. Pure read plus
// in-memory construction; a requirement, goal or nesting that points outside
// the loaded map fails fast with UnresolvedReferenceError.
func (b *Builder) Build(ctx context.Context, skillMapID uuid.UUID) (*Graph, error) {
	g := newGraph()

	skills, err := b.src.SkillsInMap(ctx, skillMapID)
	if err != nil {
		return nil, err
	}
	skillIDs := make([]uuid.UUID, 0, len(skills))
	for _, s := range skills {
		g.addNode(SkillID(s.ID))
		g.skills[s.ID] = s
		skillIDs = append(skillIDs, s.ID)
	}

	nestings, err := b.src.NestingsInMap(ctx, skillMapID)
	if err != nil {
		return nil, err
	}
	for _, n := range nestings {
		if _, ok := g.skills[n.ParentSkillID]; !ok {
			return nil, &UnresolvedReferenceError{From: SkillID(n.ChildSkillID), SkillID: n.ParentSkillID}
		}
		if _, ok := g.skills[n.ChildSkillID]; !ok {
			return nil, &UnresolvedReferenceError{From: SkillID(n.ParentSkillID), SkillID: n.ChildSkillID}
		}
		g.addEdge(SkillID(n.ChildSkillID), SkillID(n.ParentSkillID))
	}

	units, err := b.src.UnitsForSkills(ctx, skillIDs)
	if err != nil {
		return nil, err
	}
	for _, rec := range units {
		uid := UnitID(rec.Unit.ID)
		g.addNode(uid)
		g.units[rec.Unit.ID] = rec.Unit
		for _, req := range rec.Requires {
			if _, ok := g.skills[req]; !ok {
				return nil, &UnresolvedReferenceError{From: uid, SkillID: req}
			}
			g.addEdge(SkillID(req), uid)
		}
		for _, taught := range rec.Teaches {
			if _, ok := g.skills[taught]; !ok {
				return nil, &UnresolvedReferenceError{From: uid, SkillID: taught}
			}
			g.addEdge(uid, SkillID(taught))
		}
	}

	b.log.Debug("graph assembled",
		"skill_map_id", skillMapID,
		"skills", len(skills),
		"units", len(units),
		"nodes", g.Len())
	return g, nil
}
