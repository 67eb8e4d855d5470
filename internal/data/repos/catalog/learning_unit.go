package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type LearningUnitRepo interface {
	Create(dbc dbctx.Context, rows []*types.LearningUnit) ([]*types.LearningUnit, error)
	GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.LearningUnit, error)

	CreateRequirements(dbc dbctx.Context, rows []*types.UnitRequirement) error
	CreateGoals(dbc dbctx.Context, rows []*types.UnitGoal) error

	// ListReferencingSkills returns units whose requirements or goals touch
	// any of the given skills, in creation order.
	ListReferencingSkills(dbc dbctx.Context, skillIDs []uuid.UUID) ([]*types.LearningUnit, error)
	RequirementsForUnits(dbc dbctx.Context, unitIDs []uuid.UUID) ([]*types.UnitRequirement, error)
	GoalsForUnits(dbc dbctx.Context, unitIDs []uuid.UUID) ([]*types.UnitGoal, error)

	// GoalsForSkills returns goal rows teaching any of the given skills.
	GoalsForSkills(dbc dbctx.Context, skillIDs []uuid.UUID) ([]*types.UnitGoal, error)
}

type learningUnitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningUnitRepo(db *gorm.DB, baseLog *logger.Logger) LearningUnitRepo {
	return &learningUnitRepo{db: db, log: baseLog.With("repo", "LearningUnitRepo")}
}

func (r *learningUnitRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *learningUnitRepo) Create(dbc dbctx.Context, rows []*types.LearningUnit) ([]*types.LearningUnit, error) {
	if len(rows) == 0 {
		return []*types.LearningUnit{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *learningUnitRepo) GetByIDs(dbc dbctx.Context, ids []uuid.UUID) ([]*types.LearningUnit, error) {
	var out []*types.LearningUnit
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningUnitRepo) CreateRequirements(dbc dbctx.Context, rows []*types.UnitRequirement) error {
	if len(rows) == 0 {
		return nil
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error
}

func (r *learningUnitRepo) CreateGoals(dbc dbctx.Context, rows []*types.UnitGoal) error {
	if len(rows) == 0 {
		return nil
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error
}

func (r *learningUnitRepo) ListReferencingSkills(dbc dbctx.Context, skillIDs []uuid.UUID) ([]*types.LearningUnit, error) {
	var out []*types.LearningUnit
	if len(skillIDs) == 0 {
		return out, nil
	}
	sub := r.handle(dbc).WithContext(dbc.Ctx).
		Table("unit_requirement").
		Select("learning_unit_id").
		Where("skill_id IN ?", skillIDs)
	sub2 := r.handle(dbc).WithContext(dbc.Ctx).
		Table("unit_goal").
		Select("learning_unit_id").
		Where("skill_id IN ?", skillIDs)
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("id IN (?) OR id IN (?)", sub, sub2).
		Order("created_at ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningUnitRepo) RequirementsForUnits(dbc dbctx.Context, unitIDs []uuid.UUID) ([]*types.UnitRequirement, error) {
	var out []*types.UnitRequirement
	if len(unitIDs) == 0 {
		return out, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("learning_unit_id IN ?", unitIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningUnitRepo) GoalsForUnits(dbc dbctx.Context, unitIDs []uuid.UUID) ([]*types.UnitGoal, error) {
	var out []*types.UnitGoal
	if len(unitIDs) == 0 {
		return out, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("learning_unit_id IN ?", unitIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learningUnitRepo) GoalsForSkills(dbc dbctx.Context, skillIDs []uuid.UUID) ([]*types.UnitGoal, error) {
	var out []*types.UnitGoal
	if len(skillIDs) == 0 {
		return out, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("skill_id IN ?", skillIDs).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
