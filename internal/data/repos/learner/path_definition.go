package learner

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type PathDefinitionRepo interface {
	Create(dbc dbctx.Context, rows []*types.PathDefinition) ([]*types.PathDefinition, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PathDefinition, error)
	ListByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.PathDefinition, error)
}

type pathDefinitionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPathDefinitionRepo(db *gorm.DB, baseLog *logger.Logger) PathDefinitionRepo {
	return &pathDefinitionRepo{db: db, log: baseLog.With("repo", "PathDefinitionRepo")}
}

func (r *pathDefinitionRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *pathDefinitionRepo) Create(dbc dbctx.Context, rows []*types.PathDefinition) ([]*types.PathDefinition, error) {
	if len(rows) == 0 {
		return []*types.PathDefinition{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pathDefinitionRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PathDefinition, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.PathDefinition
	if err := r.handle(dbc).WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *pathDefinitionRepo) ListByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.PathDefinition, error) {
	var out []*types.PathDefinition
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("skill_map_id = ?", skillMapID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
