package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	learnerrepo "github.com/skillpath/skillpath-backend/internal/data/repos/learner"
	"github.com/skillpath/skillpath-backend/internal/data/repos/testutil"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/events"
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
)

// enrollmentHarness wires the full service stack against one transaction so
// every test leaves the database untouched.
type enrollmentHarness struct {
	dbc     dbctx.Context
	svc     EnrollmentService
	paths   PathService
	learned learnerrepo.LearnedSkillRepo
	inst    learnerrepo.UnitInstanceRepo
	path    learnerrepo.PersonalizedPathRepo
}

func newEnrollmentHarness(t *testing.T) *enrollmentHarness {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	log := testutil.Logger(t)

	skillRepo := catalogrepo.NewSkillRepo(tx, log)
	unitRepo := catalogrepo.NewLearningUnitRepo(tx, log)
	learnerRepo := learnerrepo.NewLearnerRepo(tx, log)
	learnedRepo := learnerrepo.NewLearnedSkillRepo(tx, log)
	defRepo := learnerrepo.NewPathDefinitionRepo(tx, log)
	pathRepo := learnerrepo.NewPersonalizedPathRepo(tx, log)
	instRepo := learnerrepo.NewUnitInstanceRepo(tx, log)

	source := NewGraphSource(skillRepo, unitRepo)

	return &enrollmentHarness{
		dbc: dbctx.Context{Ctx: context.Background(), Tx: tx},
		svc: NewEnrollmentService(
			tx, log, source, pathgraph.ModeSelfLearn, 0.5, events.NewNoopBus(),
			learnerRepo, learnedRepo, defRepo, pathRepo, instRepo, unitRepo,
		),
		paths:   NewPathService(log, source, pathgraph.ModeSelfLearn, learnedRepo),
		learned: learnedRepo,
		inst:    instRepo,
		path:    pathRepo,
	}
}

func TestEnrollAndFinishPath(t *testing.T) {
	h := newEnrollmentHarness(t)
	ctx := h.dbc.Ctx
	tx := h.dbc.Tx

	m := testutil.SeedSkillMap(t, ctx, tx, "go")
	s1 := testutil.SeedSkill(t, ctx, tx, m.ID, "basics")
	s2 := testutil.SeedSkill(t, ctx, tx, m.ID, "concurrency")
	u1 := testutil.SeedUnit(t, ctx, tx, "intro", nil, []uuid.UUID{s1.ID})
	u2 := testutil.SeedUnit(t, ctx, tx, "goroutines", []uuid.UUID{s1.ID}, []uuid.UUID{s2.ID})
	l := testutil.SeedLearner(t, ctx, tx, "enroll@example.com")

	// Preview does not persist.
	res, err := h.svc.Enroll(ctx, EnrollInput{
		LearnerID: l.ID, SkillMapID: m.ID, GoalSkillIDs: []uuid.UUID{s2.ID},
	})
	if err != nil {
		t.Fatalf("Enroll preview: %v", err)
	}
	if res.Path != nil {
		t.Fatalf("preview persisted a path: %+v", res.Path)
	}
	if got := res.Preview.UnitIDs; len(got) != 2 || got[0] != u1.ID || got[1] != u2.ID {
		t.Fatalf("preview units = %v, want [%s %s]", got, u1.ID, u2.ID)
	}

	// Persisted enrollment.
	res, err = h.svc.Enroll(ctx, EnrollInput{
		LearnerID: l.ID, SkillMapID: m.ID, GoalSkillIDs: []uuid.UUID{s2.ID}, Persist: true,
	})
	if err != nil {
		t.Fatalf("Enroll persist: %v", err)
	}
	if res.Path == nil || len(res.Path.Instances) != 2 {
		t.Fatalf("persisted path = %+v", res.Path)
	}
	if res.Path.Status != types.PathOpen {
		t.Fatalf("new path status = %v, want open", res.Path.Status)
	}

	// Finish the first unit; the path rolls up to in_progress and the
	// taught skill lands in the learner's history.
	prog, err := h.svc.UpdateProgress(ctx, ProgressReport{
		LearnerID: l.ID, LearningUnitID: u1.ID, Status: types.InstanceFinished,
	})
	if err != nil {
		t.Fatalf("UpdateProgress u1: %v", err)
	}
	if len(prog.Updated) != 1 || prog.Updated[0].Status != types.InstanceFinished {
		t.Fatalf("updated = %+v", prog.Updated)
	}

	known, err := h.learned.KnownSet(h.dbc, l.ID)
	if err != nil || !known[s1.ID] {
		t.Fatalf("known set = %v err=%v, want %s learned", known, err, s1.ID)
	}

	got, err := h.path.GetByID(h.dbc, res.Path.ID)
	if err != nil || got == nil || got.Status != types.PathInProgress {
		t.Fatalf("path after u1 = %+v err=%v, want in_progress", got, err)
	}

	// A fresh computation now skips the learned prefix.
	shorter, err := h.paths.ComputePath(ctx, m.ID, []uuid.UUID{s2.ID}, &l.ID)
	if err != nil {
		t.Fatalf("ComputePath after finish: %v", err)
	}
	if len(shorter.UnitIDs) != 1 || shorter.UnitIDs[0] != u2.ID {
		t.Fatalf("recomputed units = %v, want [%s]", shorter.UnitIDs, u2.ID)
	}

	// Finish the second unit with a passing score; path completes.
	prog, err = h.svc.UpdateProgress(ctx, ProgressReport{
		LearnerID: l.ID, LearningUnitID: u2.ID, Status: types.InstanceFinished,
		Score: testutil.Ptr(8.0), MaxScore: testutil.Ptr(10.0),
	})
	if err != nil || len(prog.Updated) != 1 {
		t.Fatalf("UpdateProgress u2: err=%v updated=%+v", err, prog.Updated)
	}
	got, err = h.path.GetByID(h.dbc, res.Path.ID)
	if err != nil || got == nil || got.Status != types.PathFinished {
		t.Fatalf("path after u2 = %+v err=%v, want finished", got, err)
	}

	// Re-finishing a finished unit changes nothing and reports a notice.
	prog, err = h.svc.UpdateProgress(ctx, ProgressReport{
		LearnerID: l.ID, LearningUnitID: u1.ID, Status: types.InstanceFinished,
	})
	if err != nil {
		t.Fatalf("stale UpdateProgress: %v", err)
	}
	if len(prog.Updated) != 0 || prog.Notice == "" {
		t.Fatalf("stale report: updated=%v notice=%q", prog.Updated, prog.Notice)
	}
}

func TestEnrollUnknownLearner(t *testing.T) {
	h := newEnrollmentHarness(t)
	ctx := h.dbc.Ctx
	tx := h.dbc.Tx

	m := testutil.SeedSkillMap(t, ctx, tx, "map")
	s := testutil.SeedSkill(t, ctx, tx, m.ID, "s")

	_, err := h.svc.Enroll(ctx, EnrollInput{
		LearnerID: uuid.New(), SkillMapID: m.ID, GoalSkillIDs: []uuid.UUID{s.ID},
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestEnrollViaPathDefinition(t *testing.T) {
	h := newEnrollmentHarness(t)
	ctx := h.dbc.Ctx
	tx := h.dbc.Tx

	m := testutil.SeedSkillMap(t, ctx, tx, "map")
	s1 := testutil.SeedSkill(t, ctx, tx, m.ID, "s1")
	s2 := testutil.SeedSkill(t, ctx, tx, m.ID, "s2")
	testutil.SeedUnit(t, ctx, tx, "u1", nil, []uuid.UUID{s1.ID})
	u2 := testutil.SeedUnit(t, ctx, tx, "u2", []uuid.UUID{s1.ID}, []uuid.UUID{s2.ID})
	l := testutil.SeedLearner(t, ctx, tx, "def@example.com")

	def := testutil.SeedPathDefinition(t, ctx, tx, m.ID, "advanced track",
		[]uuid.UUID{s2.ID}, []uuid.UUID{s1.ID})

	// The definition's required skills are assumed held, so the computed
	// sequence starts past them.
	res, err := h.svc.Enroll(ctx, EnrollInput{LearnerID: l.ID, PathID: &def.ID, Persist: true})
	if err != nil {
		t.Fatalf("Enroll via definition: %v", err)
	}
	if got := res.Preview.UnitIDs; len(got) != 1 || got[0] != u2.ID {
		t.Fatalf("units = %v, want [%s]", got, u2.ID)
	}
	if res.Path.SourcePathID == nil || *res.Path.SourcePathID != def.ID {
		t.Fatalf("source path = %v, want %s", res.Path.SourcePathID, def.ID)
	}
}

func TestRepeatedEnrollmentsAreIndependent(t *testing.T) {
	h := newEnrollmentHarness(t)
	ctx := h.dbc.Ctx
	tx := h.dbc.Tx

	m := testutil.SeedSkillMap(t, ctx, tx, "map")
	s := testutil.SeedSkill(t, ctx, tx, m.ID, "s")
	u := testutil.SeedUnit(t, ctx, tx, "u", nil, []uuid.UUID{s.ID})
	l := testutil.SeedLearner(t, ctx, tx, "twice@example.com")

	in := EnrollInput{LearnerID: l.ID, SkillMapID: m.ID, GoalSkillIDs: []uuid.UUID{s.ID}, Persist: true}
	first, err := h.svc.Enroll(ctx, in)
	if err != nil {
		t.Fatalf("first Enroll: %v", err)
	}
	second, err := h.svc.Enroll(ctx, in)
	if err != nil {
		t.Fatalf("second Enroll: %v", err)
	}
	if first.Path.ID == second.Path.ID {
		t.Fatalf("re-enrollment reused path %s", first.Path.ID)
	}

	// One report advances the unit in both enrollments.
	prog, err := h.svc.UpdateProgress(ctx, ProgressReport{
		LearnerID: l.ID, LearningUnitID: u.ID, Status: types.InstanceInProgress,
	})
	if err != nil || len(prog.Updated) != 2 {
		t.Fatalf("UpdateProgress: err=%v updated=%d, want 2", err, len(prog.Updated))
	}
}

func TestUpdateProgressNoEnrollment(t *testing.T) {
	h := newEnrollmentHarness(t)
	ctx := h.dbc.Ctx
	tx := h.dbc.Tx

	l := testutil.SeedLearner(t, ctx, tx, "nopath@example.com")

	prog, err := h.svc.UpdateProgress(ctx, ProgressReport{
		LearnerID: l.ID, LearningUnitID: uuid.New(), Status: types.InstanceFinished,
	})
	if err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if prog.Notice == "" || len(prog.Updated) != 0 {
		t.Fatalf("want notice-only result, got %+v", prog)
	}
}

func TestUpdateProgressRejectsOpenStatus(t *testing.T) {
	h := newEnrollmentHarness(t)

	_, err := h.svc.UpdateProgress(h.dbc.Ctx, ProgressReport{
		LearnerID: uuid.New(), LearningUnitID: uuid.New(), Status: types.InstanceOpen,
	})
	if !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}
