package learner

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type PersonalizedPathRepo interface {
	// CreateWithInstances persists the path and its unit instances together.
	CreateWithInstances(dbc dbctx.Context, path *types.PersonalizedPath, instances []*types.UnitInstance) error

	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PersonalizedPath, error)
	ListByLearner(dbc dbctx.Context, learnerID uuid.UUID) ([]*types.PersonalizedPath, error)

	// LockByID takes a row lock on the path for the duration of dbc.Tx,
	// serializing concurrent progress updates per enrollment.
	LockByID(dbc dbctx.Context, id uuid.UUID) (*types.PersonalizedPath, error)
	UpdateStatus(dbc dbctx.Context, id uuid.UUID, status types.PathStatus) error

	SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error
}

type personalizedPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPersonalizedPathRepo(db *gorm.DB, baseLog *logger.Logger) PersonalizedPathRepo {
	return &personalizedPathRepo{db: db, log: baseLog.With("repo", "PersonalizedPathRepo")}
}

func (r *personalizedPathRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *personalizedPathRepo) CreateWithInstances(dbc dbctx.Context, path *types.PersonalizedPath, instances []*types.UnitInstance) error {
	t := r.handle(dbc).WithContext(dbc.Ctx)
	if err := t.Create(path).Error; err != nil {
		return err
	}
	if len(instances) == 0 {
		return nil
	}
	for _, inst := range instances {
		inst.PersonalizedPathID = path.ID
	}
	return t.Create(&instances).Error
}

func (r *personalizedPathRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.PersonalizedPath, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.PersonalizedPath
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Preload("Instances", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *personalizedPathRepo) ListByLearner(dbc dbctx.Context, learnerID uuid.UUID) ([]*types.PersonalizedPath, error) {
	var out []*types.PersonalizedPath
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Preload("Instances", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *personalizedPathRepo) LockByID(dbc dbctx.Context, id uuid.UUID) (*types.PersonalizedPath, error) {
	var out []*types.PersonalizedPath
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *personalizedPathRepo) UpdateStatus(dbc dbctx.Context, id uuid.UUID, status types.PathStatus) error {
	return r.handle(dbc).WithContext(dbc.Ctx).
		Model(&types.PersonalizedPath{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *personalizedPathRepo) SoftDeleteByIDs(dbc dbctx.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Where("id IN ?", ids).Delete(&types.PersonalizedPath{}).Error
}
