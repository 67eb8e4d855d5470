package services

import (
	"context"

	"github.com/google/uuid"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
)

// repoGraphSource adapts the catalog repos to the graph builder's read
// surface. Reads run outside any transaction; the graph is a snapshot.
type repoGraphSource struct {
	skillRepo catalogrepo.SkillRepo
	unitRepo  catalogrepo.LearningUnitRepo
}

func NewGraphSource(skillRepo catalogrepo.SkillRepo, unitRepo catalogrepo.LearningUnitRepo) pathgraph.Source {
	return &repoGraphSource{skillRepo: skillRepo, unitRepo: unitRepo}
}

func (s *repoGraphSource) SkillsInMap(ctx context.Context, skillMapID uuid.UUID) ([]*types.Skill, error) {
	return s.skillRepo.ListByMap(dbctx.Context{Ctx: ctx}, skillMapID)
}

func (s *repoGraphSource) NestingsInMap(ctx context.Context, skillMapID uuid.UUID) ([]*types.SkillNesting, error) {
	return s.skillRepo.NestingsByMap(dbctx.Context{Ctx: ctx}, skillMapID)
}

func (s *repoGraphSource) UnitsForSkills(ctx context.Context, skillIDs []uuid.UUID) ([]pathgraph.UnitRecord, error) {
	dbc := dbctx.Context{Ctx: ctx}

	units, err := s.unitRepo.ListReferencingSkills(dbc, skillIDs)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, nil
	}

	unitIDs := make([]uuid.UUID, 0, len(units))
	for _, u := range units {
		unitIDs = append(unitIDs, u.ID)
	}

	reqs, err := s.unitRepo.RequirementsForUnits(dbc, unitIDs)
	if err != nil {
		return nil, err
	}
	goals, err := s.unitRepo.GoalsForUnits(dbc, unitIDs)
	if err != nil {
		return nil, err
	}

	requires := make(map[uuid.UUID][]uuid.UUID, len(units))
	for _, r := range reqs {
		requires[r.LearningUnitID] = append(requires[r.LearningUnitID], r.SkillID)
	}
	teaches := make(map[uuid.UUID][]uuid.UUID, len(units))
	for _, g := range goals {
		teaches[g.LearningUnitID] = append(teaches[g.LearningUnitID], g.SkillID)
	}

	out := make([]pathgraph.UnitRecord, 0, len(units))
	for _, u := range units {
		out = append(out, pathgraph.UnitRecord{
			Unit:     u,
			Requires: requires[u.ID],
			Teaches:  teaches[u.ID],
		})
	}
	return out, nil
}
