package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type SkillMapRepo interface {
	Create(dbc dbctx.Context, rows []*types.SkillMap) ([]*types.SkillMap, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillMap, error)
	List(dbc dbctx.Context) ([]*types.SkillMap, error)
	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type skillMapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillMapRepo(db *gorm.DB, baseLog *logger.Logger) SkillMapRepo {
	return &skillMapRepo{db: db, log: baseLog.With("repo", "SkillMapRepo")}
}

func (r *skillMapRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *skillMapRepo) Create(dbc dbctx.Context, rows []*types.SkillMap) ([]*types.SkillMap, error) {
	if len(rows) == 0 {
		return []*types.SkillMap{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skillMapRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.SkillMap, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.SkillMap
	if err := r.handle(dbc).WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *skillMapRepo) List(dbc dbctx.Context) ([]*types.SkillMap, error) {
	var out []*types.SkillMap
	if err := r.handle(dbc).WithContext(dbc.Ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *skillMapRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Where("id IN ?", ids).Delete(&types.SkillMap{}).Error
}
