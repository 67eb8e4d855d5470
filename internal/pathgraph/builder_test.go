package pathgraph

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

func TestBuildPopulatesLookups(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").
		unit("U1", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	if s, ok := g.Skill(f.id("S1")); !ok || s.Name != "S1" {
		t.Fatalf("Skill lookup failed: %v %v", s, ok)
	}
	if u, ok := g.Unit(f.id("U1")); !ok || u.Title != "U1" {
		t.Fatalf("Unit lookup failed: %v %v", u, ok)
	}
	if got := len(g.Units()); got != 1 {
		t.Fatalf("Units() len = %d", got)
	}
	if got := len(g.Skills()); got != 2 {
		t.Fatalf("Skills() len = %d", got)
	}
}

func TestBuildFailsOnUnresolvedRequirement(t *testing.T) {
	f := newFixture().skill("S1")
	outside := uuid.New()
	f.src.units = append(f.src.units, UnitRecord{
		Unit:     &types.LearningUnit{ID: uuid.New(), Title: "U1"},
		Requires: []uuid.UUID{outside},
		Teaches:  []uuid.UUID{f.id("S1")},
	})

	_, err := NewBuilder(f.src, testLogger(t)).Build(context.Background(), uuid.New())
	var ure *UnresolvedReferenceError
	if !errors.As(err, &ure) {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}
	if ure.SkillID != outside {
		t.Fatalf("error names skill %s, want %s", ure.SkillID, outside)
	}
}

func TestBuildFailsOnUnresolvedNesting(t *testing.T) {
	f := newFixture().skill("S1")
	f.src.nestings = append(f.src.nestings, &types.SkillNesting{
		ParentSkillID: f.id("S1"),
		ChildSkillID:  uuid.New(),
	})

	_, err := NewBuilder(f.src, testLogger(t)).Build(context.Background(), uuid.New())
	var ure *UnresolvedReferenceError
	if !errors.As(err, &ure) {
		t.Fatalf("expected UnresolvedReferenceError, got %v", err)
	}
}

func TestSkillAndUnitShareRawID(t *testing.T) {
	// Same raw uuid used for a skill and a unit must yield two distinct
	// nodes in the tagged id space.
	raw := uuid.New()
	f := newFixture()
	f.ids["S"] = raw
	f.skill("S")
	f.src.units = append(f.src.units, UnitRecord{
		Unit:    &types.LearningUnit{ID: raw, Title: "U"},
		Teaches: []uuid.UUID{raw},
	})
	g := f.build(t)

	if g.Len() != 2 {
		t.Fatalf("Len = %d, want 2 distinct nodes for shared raw id", g.Len())
	}
	if _, ok := g.lookup(SkillID(raw)); !ok {
		t.Fatalf("skill node missing")
	}
	if _, ok := g.lookup(UnitID(raw)); !ok {
		t.Fatalf("unit node missing")
	}
}
