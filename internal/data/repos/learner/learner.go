package learner

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type LearnerRepo interface {
	Create(dbc dbctx.Context, rows []*types.Learner) ([]*types.Learner, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Learner, error)
}

type learnerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearnerRepo(db *gorm.DB, baseLog *logger.Logger) LearnerRepo {
	return &learnerRepo{db: db, log: baseLog.With("repo", "LearnerRepo")}
}

func (r *learnerRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *learnerRepo) Create(dbc dbctx.Context, rows []*types.Learner) ([]*types.Learner, error) {
	if len(rows) == 0 {
		return []*types.Learner{}, nil
	}
	if err := r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *learnerRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*types.Learner, error) {
	if id == uuid.Nil {
		return nil, nil
	}
	var out []*types.Learner
	if err := r.handle(dbc).WithContext(dbc.Ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
