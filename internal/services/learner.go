package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	learnerrepo "github.com/skillpath/skillpath-backend/internal/data/repos/learner"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// LearnerService is the read model over a learner's enrollments and
// learning history.
type LearnerService interface {
	ListPaths(ctx context.Context, learnerID uuid.UUID) ([]*types.PersonalizedPath, error)
	ListLearnedSkills(ctx context.Context, learnerID uuid.UUID) ([]*types.LearnedSkill, error)
	DeletePath(ctx context.Context, learnerID, pathID uuid.UUID) error
}

type learnerService struct {
	log         *logger.Logger
	learnerRepo learnerrepo.LearnerRepo
	learnedRepo learnerrepo.LearnedSkillRepo
	pathRepo    learnerrepo.PersonalizedPathRepo
}

func NewLearnerService(
	baseLog *logger.Logger,
	learnerRepo learnerrepo.LearnerRepo,
	learnedRepo learnerrepo.LearnedSkillRepo,
	pathRepo learnerrepo.PersonalizedPathRepo,
) LearnerService {
	return &learnerService{
		log:         baseLog.With("service", "LearnerService"),
		learnerRepo: learnerRepo,
		learnedRepo: learnedRepo,
		pathRepo:    pathRepo,
	}
}

func (ls *learnerService) require(dbc dbctx.Context, learnerID uuid.UUID) error {
	l, err := ls.learnerRepo.GetByID(dbc, learnerID)
	if err != nil {
		return fmt.Errorf("load learner: %w", err)
	}
	if l == nil {
		return fmt.Errorf("learner %s: %w", learnerID, apperrors.ErrNotFound)
	}
	return nil
}

func (ls *learnerService) ListPaths(ctx context.Context, learnerID uuid.UUID) ([]*types.PersonalizedPath, error) {
	dbc := dbctx.Context{Ctx: ctx}
	if err := ls.require(dbc, learnerID); err != nil {
		return nil, err
	}
	return ls.pathRepo.ListByLearner(dbc, learnerID)
}

func (ls *learnerService) ListLearnedSkills(ctx context.Context, learnerID uuid.UUID) ([]*types.LearnedSkill, error) {
	dbc := dbctx.Context{Ctx: ctx}
	if err := ls.require(dbc, learnerID); err != nil {
		return nil, err
	}
	return ls.learnedRepo.ListByLearner(dbc, learnerID)
}

// DeletePath soft-deletes one of the learner's personalized paths. The
// learned-skill history stays: un-enrolling does not unlearn.
func (ls *learnerService) DeletePath(ctx context.Context, learnerID, pathID uuid.UUID) error {
	dbc := dbctx.Context{Ctx: ctx}
	p, err := ls.pathRepo.GetByID(dbc, pathID)
	if err != nil {
		return fmt.Errorf("load path: %w", err)
	}
	if p == nil || p.LearnerID != learnerID {
		return fmt.Errorf("path %s: %w", pathID, apperrors.ErrNotFound)
	}
	if err := ls.pathRepo.SoftDeleteByIDs(dbc, []uuid.UUID{pathID}); err != nil {
		return fmt.Errorf("delete path: %w", err)
	}
	ls.log.Info("personalized path deleted", "learner_id", learnerID, "personalized_path_id", pathID)
	return nil
}
