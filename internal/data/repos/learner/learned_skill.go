package learner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/skillpath/skillpath-backend/internal/domain"
	"github.com/skillpath/skillpath-backend/internal/pkg/dbctx"
	"github.com/skillpath/skillpath-backend/internal/pkg/logger"
)

type LearnedSkillRepo interface {
	// Append records skills as learned now. The history is append-only;
	// re-learning a skill adds another timestamped row.
	Append(dbc dbctx.Context, learnerID uuid.UUID, skillIDs []uuid.UUID) error
	ListByLearner(dbc dbctx.Context, learnerID uuid.UUID) ([]*types.LearnedSkill, error)
	// KnownSet collapses the history into the distinct skill id set.
	KnownSet(dbc dbctx.Context, learnerID uuid.UUID) (map[uuid.UUID]bool, error)
}

type learnedSkillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearnedSkillRepo(db *gorm.DB, baseLog *logger.Logger) LearnedSkillRepo {
	return &learnedSkillRepo{db: db, log: baseLog.With("repo", "LearnedSkillRepo")}
}

func (r *learnedSkillRepo) handle(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *learnedSkillRepo) Append(dbc dbctx.Context, learnerID uuid.UUID, skillIDs []uuid.UUID) error {
	if len(skillIDs) == 0 {
		return nil
	}
	now := time.Now().UTC()
	rows := make([]*types.LearnedSkill, 0, len(skillIDs))
	for _, sid := range skillIDs {
		rows = append(rows, &types.LearnedSkill{
			ID:         uuid.New(),
			LearnerID:  learnerID,
			SkillID:    sid,
			AcquiredAt: now,
		})
	}
	return r.handle(dbc).WithContext(dbc.Ctx).Create(&rows).Error
}

func (r *learnedSkillRepo) ListByLearner(dbc dbctx.Context, learnerID uuid.UUID) ([]*types.LearnedSkill, error) {
	var out []*types.LearnedSkill
	if err := r.handle(dbc).WithContext(dbc.Ctx).
		Where("learner_id = ?", learnerID).
		Order("acquired_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *learnedSkillRepo) KnownSet(dbc dbctx.Context, learnerID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.ListByLearner(dbc, learnerID)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]bool, len(rows))
	for _, row := range rows {
		out[row.SkillID] = true
	}
	return out, nil
}
