package learner

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type UnitInstanceRepo interface {
	// ListForLearnerUnit returns the learner's instances of one learning
	// unit across all their personalized paths, oldest enrollment first.
	ListForLearnerUnit(dbc dbctx.Context, learnerID, learningUnitID uuid.UUID) ([]*types.UnitInstance, error)
	ListByPath(dbc dbctx.Context, personalizedPathID uuid.UUID) ([]*types.UnitInstance, error)
	Update(dbc dbctx.Context, row *types.UnitInstance) error
}

type unitInstanceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUnitInstanceRepo(db *gorm.DB, baseLog *logger.Logger) UnitInstanceRepo {
	return &unitInstanceRepo{db: db, log: baseLog.With("repo", "UnitInstanceRepo")}
}

func (r *unitInstanceRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *unitInstanceRepo) ListForLearnerUnit(dbc dbctx.Context, learnerID, learningUnitID uuid.UUID) ([]*types.UnitInstance, error) {
	var out []*types.UnitInstance
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Joins("JOIN personalized_path ON personalized_path.id = unit_instance.personalized_path_id").
		Where("personalized_path.learner_id = ? AND personalized_path.deleted_at IS NULL", learnerID).
		Where("unit_instance.learning_unit_id = ?", learningUnitID).
		Order("unit_instance.created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *unitInstanceRepo) ListByPath(dbc dbctx.Context, personalizedPathID uuid.UUID) ([]*types.UnitInstance, error) {
	var out []*types.UnitInstance
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("personalized_path_id = ?", personalizedPathID).
		Order("position ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *unitInstanceRepo) Update(dbc dbctx.Context, row *types.UnitInstance) error {
	return r.handle(dbc).WithContext(dbc.Ctx).Save(row).Error
}
