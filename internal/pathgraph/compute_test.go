package pathgraph

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSingleUnitPath(t *testing.T) {
	f := newFixture().
		skill("S1").
		unit("U1", nil, []string{"S1"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S1"})
	if got := f.names(p.UnitIDs); !sameSeq(got, "U1") {
		t.Fatalf("path = %v, want [U1]", got)
	}
	if !p.Covered[f.id("S1")] {
		t.Fatalf("goal S1 not covered")
	}
}

func TestChainedUnits(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"})
	if got := f.names(p.UnitIDs); !sameSeq(got, "U1", "U2") {
		t.Fatalf("path = %v, want [U1 U2]", got)
	}
}

func TestKnownSkillPrunesPrefix(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"}, "S1")
	if got := f.names(p.UnitIDs); !sameSeq(got, "U2") {
		t.Fatalf("path = %v, want [U2]", got)
	}
}

func TestNestedChildDoesNotSatisfyParent(t *testing.T) {
	// S1 is composed of S1a and S1b. Knowing S1a alone must not mark S1
	// known: the path still has to teach S1b and then take Uc.
	f := newFixture().
		skill("S1").skill("S1a").skill("S1b").skill("S2").
		nest("S1", "S1a").
		nest("S1", "S1b").
		unit("Ua", nil, []string{"S1a"}).
		unit("Ub", nil, []string{"S1b"}).
		unit("Uc", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"}, "S1a")
	got := f.names(p.UnitIDs)
	has := func(name string) bool {
		for _, n := range got {
			if n == name {
				return true
			}
		}
		return false
	}
	if !has("Ub") || !has("Uc") {
		t.Fatalf("path = %v, must include Ub and Uc", got)
	}
	if !p.Covered[f.id("S2")] {
		t.Fatalf("goal S2 not covered")
	}
}

func TestAlternativeTeacherBypassesBlockedOne(t *testing.T) {
	// S1 has two teachers: U1 is immediately takeable, Ux is stuck behind the
	// never-taught S0. One completed teacher grants the skill, so the blocked
	// alternative must not keep S2 out of reach.
	f := newFixture().
		skill("S0").skill("S1").skill("S2").
		unit("U1", nil, []string{"S1"}).
		unit("Ux", []string{"S0"}, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"})
	if got := f.names(p.UnitIDs); !sameSeq(got, "U1", "U2") {
		t.Fatalf("path = %v, want [U1 U2]", got)
	}
	if !p.Covered[f.id("S2")] {
		t.Fatalf("goal S2 not covered: %v", p.Covered)
	}
}

func TestAllTeachersBlockedGoalUncovered(t *testing.T) {
	f := newFixture().
		skill("S0").skill("S1").skill("S2").
		unit("Ua", []string{"S0"}, []string{"S1"}).
		unit("Ub", []string{"S0"}, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"})
	if len(p.UnitIDs) != 0 {
		t.Fatalf("path = %v, want empty", f.names(p.UnitIDs))
	}
	if p.Covered[f.id("S2")] {
		t.Fatalf("goal behind blocked teachers reported as covered")
	}
}

func TestParentSkillNeedsChildrenAndOneTeacher(t *testing.T) {
	// S1 has a nested child S1a and a direct teacher Ud. The child edge stays
	// conjunctive while the teaching edge is one-of, so S1 opens only after
	// Ua (teaching S1a) and Ud have both been taken.
	f := newFixture().
		skill("S1").skill("S1a").skill("S2").
		nest("S1", "S1a").
		unit("Ua", nil, []string{"S1a"}).
		unit("Ud", nil, []string{"S1"}).
		unit("Uc", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2"})
	if got := f.names(p.UnitIDs); !sameSeq(got, "Ua", "Ud", "Uc") {
		t.Fatalf("path = %v, want [Ua Ud Uc]", got)
	}
	if !p.Covered[f.id("S2")] {
		t.Fatalf("goal S2 not covered: %v", p.Covered)
	}
}

func TestUnreachableGoalReportedNotFailed(t *testing.T) {
	// Nothing teaches S0, so U1 can never be taken.
	f := newFixture().
		skill("S0").skill("S1").
		unit("U1", []string{"S0"}, []string{"S1"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S1"})
	if len(p.UnitIDs) != 0 {
		t.Fatalf("path = %v, want empty", f.names(p.UnitIDs))
	}
	if p.Covered[f.id("S1")] {
		t.Fatalf("unreachable goal reported as covered")
	}
	unreached := p.Unreached()
	if len(unreached) != 1 || unreached[0] != f.id("S1") {
		t.Fatalf("Unreached = %v", unreached)
	}
}

func TestGoalAbsentFromGraph(t *testing.T) {
	f := newFixture().
		skill("S1").
		unit("U1", nil, []string{"S1"})
	g := f.build(t)

	ghost := uuid.New()
	p, err := NewComputer(ViewFor(ModeSelfLearn)).ComputePath(g, []uuid.UUID{ghost}, nil)
	if err != nil {
		t.Fatalf("ComputePath: %v", err)
	}
	if p.Covered[ghost] {
		t.Fatalf("goal outside the graph reported as covered")
	}
}

func TestKnownSkillMonotonicity(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").skill("S3").skill("S4").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"}).
		unit("U3", []string{"S2"}, []string{"S3"}).
		unit("U4", []string{"S3"}, []string{"S4"})
	g := f.build(t)

	knownSets := [][]string{
		{},
		{"S1"},
		{"S1", "S2"},
		{"S1", "S2", "S3"},
		{"S1", "S2", "S3", "S4"},
	}
	prev := -1
	for _, known := range knownSets {
		p := f.compute(t, g, []string{"S4"}, known...)
		if prev >= 0 && len(p.UnitIDs) > prev {
			t.Fatalf("enlarging known set to %v grew the path: %d > %d",
				known, len(p.UnitIDs), prev)
		}
		prev = len(p.UnitIDs)
	}
}

func TestTopologicalValidity(t *testing.T) {
	// Diamond: U1 teaches S1; U2 and U3 each require S1 and teach S2/S3;
	// U4 requires both S2 and S3.
	f := newFixture().
		skill("S1").skill("S2").skill("S3").skill("S4").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"}).
		unit("U3", []string{"S1"}, []string{"S3"}).
		unit("U4", []string{"S2", "S3"}, []string{"S4"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S4"})
	if !p.Covered[f.id("S4")] {
		t.Fatalf("goal S4 not covered, path=%v", f.names(p.UnitIDs))
	}

	// Every unit's required skills must be taught earlier in the sequence.
	taught := map[uuid.UUID]bool{}
	for _, unitID := range p.UnitIDs {
		var rec *UnitRecord
		for i := range f.src.units {
			if f.src.units[i].Unit.ID == unitID {
				rec = &f.src.units[i]
				break
			}
		}
		if rec == nil {
			t.Fatalf("computed path contains unknown unit %s", unitID)
		}
		for _, req := range rec.Requires {
			if !taught[req] {
				t.Fatalf("unit %s appears before its requirement is taught", rec.Unit.Title)
			}
		}
		for _, s := range rec.Teaches {
			taught[s] = true
		}
	}
}

func TestComputePathRejectsCyclicGraph(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").
		unit("U1", []string{"S2"}, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"})
	g := f.build(t)

	_, err := NewComputer(ViewFor(ModeSelfLearn)).ComputePath(g, []uuid.UUID{f.id("S1")}, nil)
	var ce *CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("expected CycleError, got %v", err)
	}
}

func TestDuplicateGoalsCountOnce(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"}).
		unit("U3", []string{"S2"}, nil)
	g := f.build(t)

	// The repeated goal must not inflate the outstanding-goal count, so the
	// walk still stops at U2 instead of collecting U3.
	p := f.compute(t, g, []string{"S2", "S2"})
	if got := f.names(p.UnitIDs); !sameSeq(got, "U1", "U2") {
		t.Fatalf("path = %v, want [U1 U2]", got)
	}
	if !p.Covered[f.id("S2")] {
		t.Fatalf("goal not covered: %v", p.Covered)
	}
}

func TestMultipleGoals(t *testing.T) {
	f := newFixture().
		skill("S1").skill("S2").skill("S3").
		unit("U1", nil, []string{"S1"}).
		unit("U2", []string{"S1"}, []string{"S2"}).
		unit("U3", []string{"S1"}, []string{"S3"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S2", "S3"})
	if !p.Covered[f.id("S2")] || !p.Covered[f.id("S3")] {
		t.Fatalf("not all goals covered: %v", p.Covered)
	}
}

func TestGoalAlreadyKnown(t *testing.T) {
	f := newFixture().
		skill("S1").
		unit("U1", nil, []string{"S1"})
	g := f.build(t)

	p := f.compute(t, g, []string{"S1"}, "S1")
	if len(p.UnitIDs) != 0 {
		t.Fatalf("path = %v, want empty for already-known goal", f.names(p.UnitIDs))
	}
	if !p.Covered[f.id("S1")] {
		t.Fatalf("known goal not covered")
	}
}

func TestViewSummariesFollowMode(t *testing.T) {
	f := newFixture().
		skill("S1").
		unit("U1", nil, []string{"S1"})
	f.src.units[0].Unit.Description = "intro text"
	f.src.units[0].Unit.Lifecycle = "pool"
	f.src.units[0].Unit.ProcessingTimeMinutes = 30
	g := f.build(t)

	goals := []uuid.UUID{f.id("S1")}
	selfLearn, err := NewComputer(ViewFor(ModeSelfLearn)).ComputePath(g, goals, nil)
	if err != nil {
		t.Fatalf("self-learn compute: %v", err)
	}
	if len(selfLearn.Units) != 1 || selfLearn.Units[0].Detail != "intro text" {
		t.Fatalf("self-learn summary = %+v", selfLearn.Units)
	}

	search, err := NewComputer(ViewFor(ModeSearch)).ComputePath(g, goals, nil)
	if err != nil {
		t.Fatalf("search compute: %v", err)
	}
	if len(search.Units) != 1 || search.Units[0].Detail != "pool" || search.Units[0].ProcessingTime == 0 {
		t.Fatalf("search summary = %+v", search.Units)
	}
}
