package pathgraph

import (
	"context"
	"testing"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type fakeSource struct {
	skills   []*types.Skill
	nestings []*types.SkillNesting
	units    []UnitRecord
}

func (f *fakeSource) SkillsInMap(_ context.Context, _ uuid.UUID) ([]*types.Skill, error) {
	return f.skills, nil
}
func (f *fakeSource) NestingsInMap(_ context.Context, _ uuid.UUID) ([]*types.SkillNesting, error) {
	return f.nestings, nil
}
func (f *fakeSource) UnitsForSkills(_ context.Context, _ []uuid.UUID) ([]UnitRecord, error) {
	return f.units, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// fixture builds a graph from symbolic names and returns the name -> id map.
type fixture struct {
	ids map[string]uuid.UUID
	src *fakeSource
}

func newFixture() *fixture {
	return &fixture{ids: map[string]uuid.UUID{}, src: &fakeSource{}}
}

func (f *fixture) id(name string) uuid.UUID {
	if v, ok := f.ids[name]; ok {
		return v
	}
	v := uuid.New()
	f.ids[name] = v
	return v
}

func (f *fixture) skill(name string) *fixture {
	f.src.skills = append(f.src.skills, &types.Skill{ID: f.id(name), Name: name})
	return f
}

func (f *fixture) nest(parent, child string) *fixture {
	f.src.nestings = append(f.src.nestings, &types.SkillNesting{
		ParentSkillID: f.id(parent),
		ChildSkillID:  f.id(child),
	})
	return f
}

func (f *fixture) unit(name string, requires, teaches []string) *fixture {
	rec := UnitRecord{Unit: &types.LearningUnit{ID: f.id(name), Title: name}}
	for _, r := range requires {
		rec.Requires = append(rec.Requires, f.id(r))
	}
	for _, s := range teaches {
		rec.Teaches = append(rec.Teaches, f.id(s))
	}
	f.src.units = append(f.src.units, rec)
	return f
}

func (f *fixture) build(t *testing.T) *Graph {
	t.Helper()
	g, err := NewBuilder(f.src, testLogger(t)).Build(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func (f *fixture) names(ids []uuid.UUID) []string {
	rev := make(map[uuid.UUID]string, len(f.ids))
	for n, id := range f.ids {
		rev[id] = n
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, rev[id])
	}
	return out
}

func (f *fixture) compute(t *testing.T, g *Graph, goals []string, known ...string) *Path {
	t.Helper()
	goalIDs := make([]uuid.UUID, 0, len(goals))
	for _, s := range goals {
		goalIDs = append(goalIDs, f.id(s))
	}
	knownSet := make(map[uuid.UUID]bool, len(known))
	for _, s := range known {
		knownSet[f.id(s)] = true
	}
	p, err := NewComputer(ViewFor(ModeSelfLearn)).ComputePath(g, goalIDs, knownSet)
	if err != nil {
		t.Fatalf("ComputePath: %v", err)
	}
	return p
}

func sameSeq(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
