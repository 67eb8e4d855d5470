package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	catalogrepo "github.com/skillpath/skillpath-backend/internal/data/repos/catalog"
	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	apperrors "github.com/skillpath/skillpath-backend/internal/pkg/errors"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

// CatalogService exposes the skill-map catalog: discovery for clients that
// need a map id before computing paths, and maintenance removal.
type CatalogService interface {
	ListSkillMaps(ctx context.Context) ([]*types.SkillMap, error)
	GetSkillMap(ctx context.Context, id uuid.UUID) (*types.SkillMap, error)
	DeleteSkillMap(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	log     *logger.Logger
	mapRepo catalogrepo.SkillMapRepo
}

func NewCatalogService(baseLog *logger.Logger, mapRepo catalogrepo.SkillMapRepo) CatalogService {
	return &catalogService{
		log:     baseLog.With("service", "CatalogService"),
		mapRepo: mapRepo,
	}
}

func (cs *catalogService) ListSkillMaps(ctx context.Context) ([]*types.SkillMap, error) {
	return cs.mapRepo.List(dbctx.Context{Ctx: ctx})
}

func (cs *catalogService) GetSkillMap(ctx context.Context, id uuid.UUID) (*types.SkillMap, error) {
	m, err := cs.mapRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("load skill map: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("skill map %s: %w", id, apperrors.ErrNotFound)
	}
	return m, nil
}

// DeleteSkillMap soft-deletes the map row only. Skills, units and existing
// personalized paths keep working; the map just leaves the catalog.
func (cs *catalogService) DeleteSkillMap(ctx context.Context, id uuid.UUID) error {
	dbc := dbctx.Context{Ctx: ctx}
	m, err := cs.mapRepo.GetByID(dbc, id)
	if err != nil {
		return fmt.Errorf("load skill map: %w", err)
	}
	if m == nil {
		return fmt.Errorf("skill map %s: %w", id, apperrors.ErrNotFound)
	}
	if err := cs.mapRepo.SoftDeleteByIDs(dbc, []uuid.UUID{id}); err != nil {
		return fmt.Errorf("delete skill map: %w", err)
	}
	cs.log.Info("skill map deleted", "skill_map_id", id, "name", m.Name)
	return nil
}
