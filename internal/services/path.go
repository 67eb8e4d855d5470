package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	learnerrepo "github.com/skillpath/skillpath-backend/internal/data/repos/learner"
	"github.com/skillpath/skillpath-backend/internal/pathgraph"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type PathService interface {
	// ComputePath builds the skill map's graph and returns an ordered unit
	// sequence toward the goals. When learnerID is set, the learner's
	// learned skills prune the front of the path. The result is ephemeral.
	ComputePath(ctx context.Context, skillMapID uuid.UUID, goalSkillIDs []uuid.UUID, learnerID *uuid.UUID) (*pathgraph.Path, error)
	// CheckGraphAcyclic reports whether the map's prerequisite graph has no
	// cycle, without computing any path.
	CheckGraphAcyclic(ctx context.Context, skillMapID uuid.UUID) (bool, error)
}

type pathService struct {
	log         *logger.Logger
	builder     *pathgraph.Builder
	computer    *pathgraph.Computer
	learnedRepo learnerrepo.LearnedSkillRepo
}

func NewPathService(
	baseLog *logger.Logger,
	source pathgraph.Source,
	mode pathgraph.ExtensionMode,
	learnedRepo learnerrepo.LearnedSkillRepo,
) PathService {
	return &pathService{
		log:         baseLog.With("service", "PathService"),
		builder:     pathgraph.NewBuilder(source, baseLog),
		computer:    pathgraph.NewComputer(pathgraph.ViewFor(mode)),
		learnedRepo: learnedRepo,
	}
}

func (ps *pathService) ComputePath(
	ctx context.Context,
	skillMapID uuid.UUID,
	goalSkillIDs []uuid.UUID,
	learnerID *uuid.UUID,
) (*pathgraph.Path, error) {
	if len(goalSkillIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one goal skill required", apperrors.ErrInvalidArgument)
	}

	g, err := ps.builder.Build(ctx, skillMapID)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	// Known skills are loaded fresh per call so a unit finished a moment
	// ago shortens the next computed path.
	known := map[uuid.UUID]bool{}
	if learnerID != nil {
		known, err = ps.learnedRepo.KnownSet(dbctx.Context{Ctx: ctx}, *learnerID)
		if err != nil {
			return nil, fmt.Errorf("load learned skills: %w", err)
		}
	}

	path, err := ps.computer.ComputePath(g, goalSkillIDs, known)
	if err != nil {
		return nil, err
	}

	if missing := path.Unreached(); len(missing) > 0 {
		ps.log.Debug("computed path leaves goals unreached",
			"skill_map_id", skillMapID, "unreached", len(missing))
	}
	return path, nil
}

func (ps *pathService) CheckGraphAcyclic(ctx context.Context, skillMapID uuid.UUID) (bool, error) {
	g, err := ps.builder.Build(ctx, skillMapID)
	if err != nil {
		return false, fmt.Errorf("build graph: %w", err)
	}
	return pathgraph.IsAcyclic(g), nil
}
