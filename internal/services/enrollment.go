package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	learnerrepo "github.com/skillpath/skillpath-backend/internal/data/repos/learner"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/events"
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// EnrollInput names either a stored path definition or an ad-hoc goal set.
// When PathID is set it wins and supplies the skill map and goals.
type EnrollInput struct {
	LearnerID    uuid.UUID   `json:"learner_id"`
	PathID       *uuid.UUID  `json:"path_id,omitempty"`
	SkillMapID   uuid.UUID   `json:"skill_map_id,omitempty"`
	GoalSkillIDs []uuid.UUID `json:"goal_skill_ids,omitempty"`
	Persist      bool        `json:"persist"`
}

// EnrollResult carries the computed preview and, when persisted, the
// created enrollment with its open unit instances.
type EnrollResult struct {
	Preview *pathgraph.Path         `json:"preview"`
	Path    *types.PersonalizedPath `json:"path,omitempty"`
}

// ProgressResult lists every instance a report advanced. Notice is set
// instead of an error when the report matched nothing updatable.
type ProgressResult struct {
	Updated []*types.UnitInstance `json:"updated"`
	Notice  string                `json:"notice,omitempty"`
}

type EnrollmentService interface {
	Enroll(ctx context.Context, in EnrollInput) (*EnrollResult, error)
	UpdateProgress(ctx context.Context, rep ProgressReport) (*ProgressResult, error)
}

type enrollmentService struct {
	db        *gorm.DB
	log       *logger.Logger
	builder   *pathgraph.Builder
	computer  *pathgraph.Computer
	threshold float64
	bus       events.Bus

	learnerRepo learnerrepo.LearnerRepo
	learnedRepo learnerrepo.LearnedSkillRepo
	defRepo     learnerrepo.PathDefinitionRepo
	pathRepo    learnerrepo.PersonalizedPathRepo
	instRepo    learnerrepo.UnitInstanceRepo
	unitRepo    catalogrepo.LearningUnitRepo
}

func NewEnrollmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	source pathgraph.Source,
	mode pathgraph.ExtensionMode,
	passingThreshold float64,
	bus events.Bus,
	learnerRepo learnerrepo.LearnerRepo,
	learnedRepo learnerrepo.LearnedSkillRepo,
	defRepo learnerrepo.PathDefinitionRepo,
	pathRepo learnerrepo.PersonalizedPathRepo,
	instRepo learnerrepo.UnitInstanceRepo,
	unitRepo catalogrepo.LearningUnitRepo,
) EnrollmentService {
	return &enrollmentService{
		db:          db,
		log:         baseLog.With("service", "EnrollmentService"),
		builder:     pathgraph.NewBuilder(source, baseLog),
		computer:    pathgraph.NewComputer(pathgraph.ViewFor(mode)),
		threshold:   passingThreshold,
		bus:         bus,
		learnerRepo: learnerRepo,
		learnedRepo: learnedRepo,
		defRepo:     defRepo,
		pathRepo:    pathRepo,
		instRepo:    instRepo,
		unitRepo:    unitRepo,
	}
}

func (es *enrollmentService) Enroll(ctx context.Context, in EnrollInput) (*EnrollResult, error) {
	dbc := dbctx.Context{Ctx: ctx}

	l, err := es.learnerRepo.GetByID(dbc, in.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("load learner: %w", err)
	}
	if l == nil {
		return nil, fmt.Errorf("learner %s: %w", in.LearnerID, apperrors.ErrNotFound)
	}

	skillMapID := in.SkillMapID
	goals := in.GoalSkillIDs
	var sourcePathID *uuid.UUID
	var assumed []uuid.UUID

	if in.PathID != nil {
		def, err := es.defRepo.GetByID(dbc, *in.PathID)
		if err != nil {
			return nil, fmt.Errorf("load path definition: %w", err)
		}
		if def == nil {
			return nil, fmt.Errorf("path definition %s: %w", *in.PathID, apperrors.ErrNotFound)
		}
		skillMapID = def.SkillMapID
		sourcePathID = &def.ID
		if goals, err = uuidSliceFromJSON(def.GoalSkillIDs); err != nil {
			return nil, fmt.Errorf("decode goal skills: %w", err)
		}
		if assumed, err = uuidSliceFromJSON(def.RequiredSkillIDs); err != nil {
			return nil, fmt.Errorf("decode required skills: %w", err)
		}
	}
	if skillMapID == uuid.Nil || len(goals) == 0 {
		return nil, fmt.Errorf("%w: skill map and goal skills required", apperrors.ErrInvalidArgument)
	}

	g, err := es.builder.Build(ctx, skillMapID)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	known, err := es.learnedRepo.KnownSet(dbc, in.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("load learned skills: %w", err)
	}
	// A definition's required skills are entry assumptions, treated as
	// already held for the purpose of computing the sequence.
	for _, id := range assumed {
		known[id] = true
	}

	preview, err := es.computer.ComputePath(g, goals, known)
	if err != nil {
		return nil, err
	}

	if !in.Persist {
		return &EnrollResult{Preview: preview}, nil
	}

	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("encode goal skills: %w", err)
	}

	path := &types.PersonalizedPath{
		ID:           uuid.New(),
		LearnerID:    in.LearnerID,
		SourcePathID: sourcePathID,
		SkillMapID:   skillMapID,
		GoalSkillIDs: datatypes.JSON(goalsJSON),
		Status:       types.PathOpen,
	}
	instances := make([]*types.UnitInstance, 0, len(preview.UnitIDs))
	for i, unitID := range preview.UnitIDs {
		instances = append(instances, &types.UnitInstance{
			ID:             uuid.New(),
			LearningUnitID: unitID,
			Position:       i,
			Status:         types.InstanceOpen,
		})
	}

	err = es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return es.pathRepo.CreateWithInstances(dbctx.Context{Ctx: ctx, Tx: tx}, path, instances)
	})
	if err != nil {
		es.log.Error("Enroll failed", "learner_id", in.LearnerID, "error", err)
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	path.Instances = instances

	es.publish(ctx, events.Message{
		Channel: in.LearnerID.String(),
		Event:   events.EventEnrollmentCreated,
		Data: map[string]any{
			"personalized_path_id": path.ID,
			"unit_count":           len(instances),
		},
	})

	return &EnrollResult{Preview: preview, Path: path}, nil
}

func (es *enrollmentService) UpdateProgress(ctx context.Context, rep ProgressReport) (*ProgressResult, error) {
	if rep.Status != types.InstanceInProgress && rep.Status != types.InstanceFinished {
		return nil, fmt.Errorf("%w: reported status must be %q or %q",
			apperrors.ErrInvalidArgument, types.InstanceInProgress, types.InstanceFinished)
	}

	matches, err := es.instRepo.ListForLearnerUnit(dbctx.Context{Ctx: ctx}, rep.LearnerID, rep.LearningUnitID)
	if err != nil {
		return nil, fmt.Errorf("find unit instances: %w", err)
	}
	if len(matches) == 0 {
		return &ProgressResult{Notice: "no enrollment of this learner contains the learning unit"}, nil
	}

	pathIDs := make([]uuid.UUID, 0, len(matches))
	seen := map[uuid.UUID]bool{}
	for _, m := range matches {
		if !seen[m.PersonalizedPathID] {
			seen[m.PersonalizedPathID] = true
			pathIDs = append(pathIDs, m.PersonalizedPathID)
		}
	}

	result := &ProgressResult{}
	var pending []events.Message

	for _, pathID := range pathIDs {
		msgs, updated, err := es.advancePath(ctx, pathID, rep)
		if err != nil {
			return nil, err
		}
		pending = append(pending, msgs...)
		if updated != nil {
			result.Updated = append(result.Updated, updated)
		}
	}

	for _, msg := range pending {
		es.publish(ctx, msg)
	}

	if len(result.Updated) == 0 {
		result.Notice = "progress report matched no updatable unit instance"
	}
	return result, nil
}

// advancePath applies one report to one enrollment inside its own
// transaction. The path row is locked first so concurrent reports for the
// same enrollment serialize; distinct enrollments proceed independently.
func (es *enrollmentService) advancePath(
	ctx context.Context,
	pathID uuid.UUID,
	rep ProgressReport,
) ([]events.Message, *types.UnitInstance, error) {
	var msgs []events.Message
	var updated *types.UnitInstance

	err := es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		path, err := es.pathRepo.LockByID(dbc, pathID)
		if err != nil {
			return fmt.Errorf("lock path: %w", err)
		}
		if path == nil {
			// Enrollment deleted between lookup and lock.
			return nil
		}

		all, err := es.instRepo.ListByPath(dbc, pathID)
		if err != nil {
			return fmt.Errorf("list instances: %w", err)
		}
		var inst *types.UnitInstance
		for _, candidate := range all {
			if candidate.LearningUnitID == rep.LearningUnitID {
				inst = candidate
				break
			}
		}
		if inst == nil {
			return nil
		}

		now := time.Now().UTC()
		outcome := applyReport(inst, rep, es.threshold, now)
		if outcome == transitionNone {
			return nil
		}
		if err := es.instRepo.Update(dbc, inst); err != nil {
			return fmt.Errorf("update instance: %w", err)
		}
		updated = inst

		switch outcome {
		case transitionStarted, transitionAttempted:
			msgs = append(msgs, events.Message{
				Channel: rep.LearnerID.String(),
				Event:   events.EventUnitStarted,
				Data:    map[string]any{"unit_instance_id": inst.ID, "personalized_path_id": pathID},
			})
		case transitionFinished:
			msgs = append(msgs, events.Message{
				Channel: rep.LearnerID.String(),
				Event:   events.EventUnitFinished,
				Data:    map[string]any{"unit_instance_id": inst.ID, "personalized_path_id": pathID},
			})
			learned, err := es.recordLearnedSkills(dbc, rep.LearnerID, rep.LearningUnitID)
			if err != nil {
				return err
			}
			if len(learned) > 0 {
				msgs = append(msgs, events.Message{
					Channel: rep.LearnerID.String(),
					Event:   events.EventSkillsLearned,
					Data:    map[string]any{"skill_ids": learned},
				})
			}
		}

		status := rollUp(all)
		if status != path.Status {
			if err := es.pathRepo.UpdateStatus(dbc, pathID, status); err != nil {
				return fmt.Errorf("update path status: %w", err)
			}
			if status == types.PathFinished {
				msgs = append(msgs, events.Message{
					Channel: rep.LearnerID.String(),
					Event:   events.EventPathFinished,
					Data:    map[string]any{"personalized_path_id": pathID},
				})
			}
		}
		return nil
	})
	if err != nil {
		es.log.Error("UpdateProgress failed", "personalized_path_id", pathID, "error", err)
		return nil, nil, err
	}
	return msgs, updated, nil
}

// recordLearnedSkills appends the unit's goal skills to the learner's
// history. The history is append-only; re-finishing a unit elsewhere adds
// rows without disturbing earlier ones.
func (es *enrollmentService) recordLearnedSkills(dbc dbctx.Context, learnerID, unitID uuid.UUID) ([]uuid.UUID, error) {
	goals, err := es.unitRepo.GoalsForUnits(dbc, []uuid.UUID{unitID})
	if err != nil {
		return nil, fmt.Errorf("load unit goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, nil
	}
	skillIDs := make([]uuid.UUID, 0, len(goals))
	for _, g := range goals {
		skillIDs = append(skillIDs, g.SkillID)
	}
	if err := es.learnedRepo.Append(dbc, learnerID, skillIDs); err != nil {
		return nil, fmt.Errorf("append learned skills: %w", err)
	}
	return skillIDs, nil
}

func (es *enrollmentService) publish(ctx context.Context, msg events.Message) {
	if es.bus == nil {
		return
	}
	if err := es.bus.Publish(ctx, msg); err != nil {
		es.log.Warn("event publish failed", "event", msg.Event, "error", err)
	}
}

func uuidSliceFromJSON(raw datatypes.JSON) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []uuid.UUID
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
