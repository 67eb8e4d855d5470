package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	types "github.com/skillpath/skillpath-backend/internal/domain"
)

func f64(v float64) *float64 { return &v }

func TestApplyReport(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		current     types.InstanceStatus
		report      ProgressReport
		wantOutcome transitionOutcome
		wantStatus  types.InstanceStatus
	}{
		{
			name:        "open_to_in_progress",
			current:     types.InstanceOpen,
			report:      ProgressReport{Status: types.InstanceInProgress},
			wantOutcome: transitionStarted,
			wantStatus:  types.InstanceInProgress,
		},
		{
			name:        "repeat_in_progress_refreshes",
			current:     types.InstanceInProgress,
			report:      ProgressReport{Status: types.InstanceInProgress, Score: f64(3)},
			wantOutcome: transitionStarted,
			wantStatus:  types.InstanceInProgress,
		},
		{
			name:        "open_direct_finish_unscored",
			current:     types.InstanceOpen,
			report:      ProgressReport{Status: types.InstanceFinished},
			wantOutcome: transitionFinished,
			wantStatus:  types.InstanceFinished,
		},
		{
			name:    "finish_at_threshold",
			current: types.InstanceInProgress,
			report: ProgressReport{
				Status: types.InstanceFinished, Score: f64(5), MaxScore: f64(10),
			},
			wantOutcome: transitionFinished,
			wantStatus:  types.InstanceFinished,
		},
		{
			name:    "finish_below_threshold_stays_in_progress",
			current: types.InstanceOpen,
			report: ProgressReport{
				Status: types.InstanceFinished, Score: f64(4), MaxScore: f64(10),
			},
			wantOutcome: transitionAttempted,
			wantStatus:  types.InstanceInProgress,
		},
		{
			name:    "zero_max_score_counts_as_unscored",
			current: types.InstanceOpen,
			report: ProgressReport{
				Status: types.InstanceFinished, Score: f64(0), MaxScore: f64(0),
			},
			wantOutcome: transitionFinished,
			wantStatus:  types.InstanceFinished,
		},
		{
			name:        "finished_is_terminal",
			current:     types.InstanceFinished,
			report:      ProgressReport{Status: types.InstanceFinished},
			wantOutcome: transitionNone,
			wantStatus:  types.InstanceFinished,
		},
		{
			name:        "finished_ignores_started_report",
			current:     types.InstanceFinished,
			report:      ProgressReport{Status: types.InstanceInProgress},
			wantOutcome: transitionNone,
			wantStatus:  types.InstanceFinished,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := &types.UnitInstance{ID: uuid.New(), Status: tc.current}
			got := applyReport(inst, tc.report, 0.5, now)
			if got != tc.wantOutcome {
				t.Fatalf("outcome = %v, want %v", got, tc.wantOutcome)
			}
			if inst.Status != tc.wantStatus {
				t.Fatalf("status = %v, want %v", inst.Status, tc.wantStatus)
			}
		})
	}
}

func TestApplyReportTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	inst := &types.UnitInstance{ID: uuid.New(), Status: types.InstanceOpen}
	applyReport(inst, ProgressReport{Status: types.InstanceInProgress}, 0.5, now)
	if inst.StartedAt == nil || !inst.StartedAt.Equal(now) {
		t.Fatalf("StartedAt = %v, want %v", inst.StartedAt, now)
	}
	if inst.FinishedAt != nil {
		t.Fatalf("FinishedAt set on start: %v", inst.FinishedAt)
	}

	later := now.Add(time.Hour)
	applyReport(inst, ProgressReport{Status: types.InstanceFinished}, 0.5, later)
	if inst.StartedAt == nil || !inst.StartedAt.Equal(now) {
		t.Fatalf("StartedAt overwritten: %v", inst.StartedAt)
	}
	if inst.FinishedAt == nil || !inst.FinishedAt.Equal(later) {
		t.Fatalf("FinishedAt = %v, want %v", inst.FinishedAt, later)
	}
}

func TestApplyReportRecordsFailedAttemptScore(t *testing.T) {
	now := time.Now().UTC()
	inst := &types.UnitInstance{ID: uuid.New(), Status: types.InstanceOpen}

	rep := ProgressReport{Status: types.InstanceFinished, Score: f64(2), MaxScore: f64(10)}
	if got := applyReport(inst, rep, 0.5, now); got != transitionAttempted {
		t.Fatalf("outcome = %v, want attempted", got)
	}
	if inst.Score == nil || *inst.Score != 2 {
		t.Fatalf("attempt score not recorded: %v", inst.Score)
	}
	if inst.FinishedAt != nil {
		t.Fatalf("FinishedAt set on failed attempt")
	}
}

func TestRollUp(t *testing.T) {
	mk := func(statuses ...types.InstanceStatus) []*types.UnitInstance {
		out := make([]*types.UnitInstance, 0, len(statuses))
		for _, s := range statuses {
			out = append(out, &types.UnitInstance{Status: s})
		}
		return out
	}

	cases := []struct {
		name      string
		instances []*types.UnitInstance
		want      types.PathStatus
	}{
		{"empty", nil, types.PathOpen},
		{"all_open", mk(types.InstanceOpen, types.InstanceOpen), types.PathOpen},
		{"all_finished", mk(types.InstanceFinished, types.InstanceFinished), types.PathFinished},
		{"mixed_open_finished", mk(types.InstanceOpen, types.InstanceFinished), types.PathInProgress},
		{"one_in_progress", mk(types.InstanceOpen, types.InstanceInProgress), types.PathInProgress},
		{"single_finished", mk(types.InstanceFinished), types.PathFinished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rollUp(tc.instances); got != tc.want {
				t.Fatalf("rollUp = %v, want %v", got, tc.want)
			}
		})
	}
}
