package services

import (
	"time"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

// ProgressReport is the caller's statement about one attempt at a learning
// unit. It names the unit, not an instance: the service fans the report out
// to every matching instance across the learner's paths.
type ProgressReport struct {
	LearnerID      uuid.UUID            `json:"learner_id"`
	LearningUnitID uuid.UUID            `json:"learning_unit_id"`
	Status         types.InstanceStatus `json:"status"`

	Score                 *float64 `json:"score,omitempty"`
	MaxScore              *float64 `json:"max_score,omitempty"`
	ProcessingTimeSeconds *int     `json:"processing_time_seconds,omitempty"`
}

type transitionOutcome int

const (
	// transitionNone: the report changed nothing (terminal instance or
	// redundant report). Feeds the stale-progress notice.
	transitionNone transitionOutcome = iota
	transitionStarted
	// transitionAttempted: a finish report below the passing threshold.
	// The attempt's score is recorded but the instance stays in progress.
	transitionAttempted
	transitionFinished
)

// passes reports whether a finish report clears the threshold. Reports
// without a usable score are unscored and always pass.
func passes(rep ProgressReport, threshold float64) bool {
	if rep.Score == nil || rep.MaxScore == nil || *rep.MaxScore <= 0 {
		return true
	}
	return *rep.Score / *rep.MaxScore >= threshold
}

// applyReport advances one instance per the transition rules, mutating it
// in place. FINISHED is terminal. A direct OPEN to FINISHED jump is legal.
func applyReport(inst *types.UnitInstance, rep ProgressReport, threshold float64, now time.Time) transitionOutcome {
	if inst.Status == types.InstanceFinished {
		return transitionNone
	}

	recordAttempt := func() {
		if inst.StartedAt == nil {
			inst.StartedAt = &now
		}
		if rep.Score != nil {
			inst.Score = rep.Score
		}
		if rep.MaxScore != nil {
			inst.MaxScore = rep.MaxScore
		}
		if rep.ProcessingTimeSeconds != nil {
			inst.ProcessingTimeSeconds = rep.ProcessingTimeSeconds
		}
	}

	switch rep.Status {
	case types.InstanceInProgress:
		recordAttempt()
		inst.Status = types.InstanceInProgress
		return transitionStarted

	case types.InstanceFinished:
		recordAttempt()
		if !passes(rep, threshold) {
			inst.Status = types.InstanceInProgress
			return transitionAttempted
		}
		inst.Status = types.InstanceFinished
		inst.FinishedAt = &now
		return transitionFinished
	}

	return transitionNone
}

// rollUp derives the path status from its instances: finished only when
// every instance is finished, open only when every instance is still open.
// An empty path counts as open.
func rollUp(instances []*types.UnitInstance) types.PathStatus {
	if len(instances) == 0 {
		return types.PathOpen
	}
	allOpen, allFinished := true, true
	for _, inst := range instances {
		if inst.Status != types.InstanceOpen {
			allOpen = false
		}
		if inst.Status != types.InstanceFinished {
			allFinished = false
		}
	}
	switch {
	case allFinished:
		return types.PathFinished
	case allOpen:
		return types.PathOpen
	default:
		return types.PathInProgress
	}
}
