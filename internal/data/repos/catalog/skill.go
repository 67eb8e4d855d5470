package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type SkillRepo interface {
	Create(dbc dbctx.Context, rows []*types.Skill) ([]*types.Skill, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Skill, error)
	ListByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.Skill, error)

	CreateNestings(dbc dbctx.Context, rows []*types.SkillNesting) error
	NestingsByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.SkillNesting, error)
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *skillRepo) Create(dbc dbctx.Context, rows []*types.Skill) ([]*types.Skill, error) {
	if len(rows) == 0 {
		return []*types.Skill{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.Skill, error) {
	var out []*types.Skill
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillRepo) ListByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.Skill, error) {
	var out []*types.Skill
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("skill_map_id = ?", skillMapID).
		Order("created_at ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillRepo) CreateNestings(dbc dbctx.Context, rows []*types.SkillNesting) error {
	if len(rows) == 0 {
		return nil
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error
}

// NestingsByMap returns nesting rows whose parent skill is in the map.
func (r *skillRepo) NestingsByMap(dbc dbctx.Context, skillMapID uuid.UUID) ([]*types.SkillNesting, error) {
	var out []*types.SkillNesting
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Joins("JOIN skill ON skill.id = skill_nesting.parent_skill_id").
		Where("skill.skill_map_id = ?", skillMapID).
		Order("skill_nesting.created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
